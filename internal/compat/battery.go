package compat

// Tipos de análisis que sabe puntuar el motor de compatibilidad.
const (
	AnalysisSimilarity         = "similarity"
	AnalysisImportance         = "importance"
	AnalysisCommunication      = "communication"
	AnalysisConflictReaction   = "conflict_reaction"
	AnalysisConflictResolution = "conflict_resolution"
	AnalysisSecurity           = "security"
	AnalysisImpulseControl     = "impulse_control"
	AnalysisTolerance          = "tolerance"
	AnalysisSuccessRate        = "success_rate"
	AnalysisHonesty            = "honesty"
	AnalysisForgiveness        = "forgiveness"
)

// DeepQuestion es una entrada de la batería profunda de compatibilidad.
// Solo la consume el motor de análisis, nunca se muestra como cuestionario.
type DeepQuestion struct {
	ID           int    `json:"id"`
	Text         string `json:"text"`
	Category     string `json:"category"`
	AnalysisType string `json:"analysisType"`
}

// DeepBattery devuelve las 18 preguntas de compatibilidad profunda en orden
// de catálogo. El slice devuelto es una copia.
func DeepBattery() []DeepQuestion {
	out := make([]DeepQuestion, len(deepBattery))
	copy(out, deepBattery)
	return out
}

var deepBattery = []DeepQuestion{
	{ID: 1, Text: "¿Qué te gusta hacer en tu tiempo libre?", Category: "Intereses comunes", AnalysisType: AnalysisSimilarity},
	{ID: 2, Text: "¿Qué valores son los más importantes en tu vida?", Category: "Valores", AnalysisType: AnalysisSimilarity},
	{ID: 3, Text: "¿Qué tan importante es para ti formar una familia?", Category: "Familia", AnalysisType: AnalysisImportance},
	{ID: 4, Text: "¿Qué tan importante es la fidelidad en una relación?", Category: "Fidelidad", AnalysisType: AnalysisImportance},
	{ID: 5, Text: "¿Cómo describirías tu forma de comunicarte en pareja?", Category: "Comunicación", AnalysisType: AnalysisCommunication},
	{ID: 6, Text: "¿Cómo reaccionas cuando discutes con tu pareja?", Category: "Reacción al conflicto", AnalysisType: AnalysisConflictReaction},
	{ID: 7, Text: "¿Cómo sueles resolver los conflictos de pareja?", Category: "Resolución de conflictos", AnalysisType: AnalysisConflictResolution},
	{ID: 8, Text: "¿Qué tan seguro/a te sientes en tus relaciones?", Category: "Seguridad emocional", AnalysisType: AnalysisSecurity},
	{ID: 9, Text: "¿Qué haces cuando sientes mucha rabia?", Category: "Control de impulsos", AnalysisType: AnalysisImpulseControl},
	{ID: 10, Text: "¿Cómo llevas los defectos de tu pareja?", Category: "Tolerancia", AnalysisType: AnalysisTolerance},
	{ID: 11, Text: "Cuando hay problemas en la relación, ¿logran resolverlos?", Category: "Resolución efectiva", AnalysisType: AnalysisSuccessRate},
	{ID: 12, Text: "¿Qué tan honesto/a eres con tu pareja?", Category: "Honestidad", AnalysisType: AnalysisHonesty},
	{ID: 13, Text: "¿Qué haces cuando tu pareja te falla?", Category: "Perdón", AnalysisType: AnalysisForgiveness},
	{ID: 14, Text: "¿Cómo imaginas tu vida dentro de diez años?", Category: "Proyecto de vida", AnalysisType: AnalysisSimilarity},
	{ID: 15, Text: "¿Qué tan importante es el dinero en una relación?", Category: "Economía", AnalysisType: AnalysisImportance},
	{ID: 16, Text: "¿Cómo expresas tus emociones a tu pareja?", Category: "Expresión emocional", AnalysisType: AnalysisCommunication},
	{ID: 17, Text: "¿Cómo manejas la confianza y los celos?", Category: "Confianza", AnalysisType: AnalysisSecurity},
	{ID: 18, Text: "¿Cómo llevas las costumbres y manías de la convivencia?", Category: "Convivencia", AnalysisType: AnalysisTolerance},
}
