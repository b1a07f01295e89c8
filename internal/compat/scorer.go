package compat

import (
	"fmt"
	"math"
	"strings"
)

// MaxScore es la puntuación máxima alcanzable: 18 preguntas x 5 puntos.
const MaxScore = 90

// CategoryMaxScore es la puntuación máxima por categoría.
const CategoryMaxScore = 5

// PhotoThreshold es la puntuación mínima para habilitar la revelación de fotos.
const PhotoThreshold = 54

// Answer es la unidad normalizada que consume el motor: una respuesta de un
// encuestado a una pregunta de la batería profunda.
type Answer struct {
	QuestionID int    `json:"questionId"`
	Answer     string `json:"answer"`
	Score      int    `json:"score"` // reservado, sin uso actual
	Category   string `json:"category"`
}

// CategoryAnalysis es el desglose de una categoría procesada.
type CategoryAnalysis struct {
	Category   string `json:"category"`
	Score      int    `json:"score"`
	MaxScore   int    `json:"maxScore"`
	Analysis   string `json:"analysis"`
	Compatible bool   `json:"compatible"`
}

// Result es el resultado completo de una comparación. Se calcula en fresco
// en cada invocación y nunca se persiste.
type Result struct {
	TotalScore              int                `json:"totalScore"`
	MaxScore                int                `json:"maxScore"`
	CompatibilityPercentage int                `json:"compatibilityPercentage"`
	CompatibilityLevel      string             `json:"compatibilityLevel"`
	CanShowPhotos           bool               `json:"canShowPhotos"`
	ShouldStopAnalysis      bool               `json:"shouldStopAnalysis"`
	RecommendTherapy        bool               `json:"recommendTherapy"`
	DetailedAnalysis        []CategoryAnalysis `json:"detailedAnalysis"`
	Recommendations         []string           `json:"recommendations"`
}

// Analyze compara las respuestas de dos encuestados contra la batería
// profunda y produce un resultado determinista. Es una función pura: sin
// estado oculto y sin I/O, segura para llamadas concurrentes.
func Analyze(answersA, answersB []Answer) Result {
	byIDA := indexAnswers(answersA)
	byIDB := indexAnswers(answersB)

	result := Result{MaxScore: MaxScore}

	for _, q := range deepBattery {
		ansA, okA := byIDA[q.ID]
		ansB, okB := byIDB[q.ID]
		if !okA || !okB {
			// Pregunta sin responder por alguno de los dos: se omite sin
			// reducir MaxScore.
			continue
		}

		if containsViolenceIndicator(ansA.Answer) || containsViolenceIndicator(ansB.Answer) {
			result.ShouldStopAnalysis = true
			result.RecommendTherapy = true
			result.Recommendations = append(result.Recommendations,
				"Se detectaron indicadores de violencia en las respuestas. Se recomienda encarecidamente buscar ayuda profesional antes de continuar con el proceso.")
			break
		}

		score, compatible, analysis := scoreCategory(q, ansA.Answer, ansB.Answer)
		result.TotalScore += score
		result.DetailedAnalysis = append(result.DetailedAnalysis, CategoryAnalysis{
			Category:   q.Category,
			Score:      score,
			MaxScore:   CategoryMaxScore,
			Analysis:   analysis,
			Compatible: compatible,
		})
	}

	result.CompatibilityPercentage = int(math.Round(float64(result.TotalScore) / float64(MaxScore) * 100))
	result.CompatibilityLevel = levelForScore(result.TotalScore)
	result.CanShowPhotos = result.TotalScore >= PhotoThreshold && !result.ShouldStopAnalysis

	if !result.ShouldStopAnalysis {
		switch {
		case result.TotalScore < PhotoThreshold:
			result.Recommendations = append(result.Recommendations,
				"La compatibilidad no es suficiente para la revelación de fotos. Se recomienda seguir conociéndose antes de avanzar.")
		case result.TotalScore < 64:
			result.Recommendations = append(result.Recommendations,
				"Compatibilidad media: hay base para avanzar, pero conviene trabajar las áreas más débiles del análisis.")
		}
		if result.TotalScore >= 84 {
			result.Recommendations = append(result.Recommendations,
				"¡Enhorabuena! La compatibilidad entre ambos es excelente.")
		}
	}

	return result
}

// AnswersForBattery proyecta un mapa plano de respuestas (clave = id de
// pregunta como string) sobre la batería profunda, en orden de catálogo.
// Las preguntas sin respuesta se omiten.
func AnswersForBattery(answers map[string]string) []Answer {
	out := make([]Answer, 0, len(deepBattery))
	for _, q := range deepBattery {
		value, ok := answers[fmt.Sprintf("%d", q.ID)]
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		out = append(out, Answer{QuestionID: q.ID, Answer: value, Category: q.Category})
	}
	return out
}

func indexAnswers(answers []Answer) map[int]Answer {
	byID := make(map[int]Answer, len(answers))
	for _, a := range answers {
		if strings.TrimSpace(a.Answer) == "" {
			continue
		}
		byID[a.QuestionID] = a
	}
	return byID
}

func containsViolenceIndicator(answer string) bool {
	l := strings.ToLower(answer)
	for _, kw := range violenceKeywords {
		if strings.Contains(l, kw) {
			return true
		}
	}
	return false
}

// scoreCategory aplica la regla del tipo de análisis de la pregunta y
// devuelve la puntuación {0,1,3,5}, si la categoría es compatible y un texto
// breve explicativo.
func scoreCategory(q DeepQuestion, rawA, rawB string) (int, bool, string) {
	a := strings.ToLower(strings.TrimSpace(rawA))
	b := strings.ToLower(strings.TrimSpace(rawB))

	switch q.AnalysisType {
	case AnalysisSimilarity:
		return scoreSimilarity(a, b)
	case AnalysisImportance:
		return scoreImportance(a, b)
	case AnalysisCommunication:
		return scoreCommunication(a, b)
	case AnalysisConflictReaction, AnalysisConflictResolution:
		return scoreConflict(a, b)
	case AnalysisSecurity:
		return scoreMinLevel(a, b, securityLevels, compatibleDefault, "seguridad emocional")
	case AnalysisImpulseControl:
		return scoreMinLevel(a, b, impulseControlLevels, compatibleUnlessBothLow, "control de impulsos")
	case AnalysisTolerance:
		return scoreMinLevel(a, b, toleranceLevels, compatibleUnlessBothLow, "tolerancia")
	case AnalysisSuccessRate:
		return scoreMinLevel(a, b, successRateLevels, compatibleDefault, "resolución efectiva")
	case AnalysisHonesty:
		return scoreMinLevel(a, b, honestyLevels, compatibleUnlessExtremes, "honestidad")
	case AnalysisForgiveness:
		return scoreMinLevel(a, b, forgivenessLevels, compatibleUnlessBothLow, "capacidad de perdón")
	default:
		// Tipo no reconocido: neutro, para que una entrada inesperada del
		// catálogo nunca rompa el bucle.
		return 3, true, "Análisis general: sin señales destacables en esta categoría."
	}
}

// scoreSimilarity puntúa por solapamiento de palabras: intersección de los
// conjuntos de palabras entre el mayor número de palabras de las dos
// respuestas. Dividir por el mayor (y no por el menor ni por la unión) es
// intencional y afecta a la simetría de la puntuación.
func scoreSimilarity(a, b string) (int, bool, string) {
	wordsA := significantWords(a)
	wordsB := significantWords(b)

	maxLen := len(wordsA)
	if len(wordsB) > maxLen {
		maxLen = len(wordsB)
	}

	var ratio float64
	if maxLen > 0 {
		common := 0
		for w := range wordsA {
			if _, ok := wordsB[w]; ok {
				common++
			}
		}
		ratio = float64(common) / float64(maxLen)
	}

	switch {
	case ratio >= 0.8:
		return 5, true, "Alta afinidad: comparten la mayoría de gustos y valores expresados."
	case ratio >= 0.6:
		return 3, true, "Afinidad parcial: coinciden en varios puntos pero con diferencias."
	default:
		return 1, false, "Baja afinidad: sus respuestas apuntan a intereses distintos."
	}
}

// significantWords descompone el texto en palabras únicas en minúsculas,
// descartando partículas de dos letras o menos.
func significantWords(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(text) {
		w = strings.Trim(w, ".,;:¡!¿?()\"'")
		if len([]rune(w)) <= 2 {
			continue
		}
		words[w] = struct{}{}
	}
	return words
}

func scoreImportance(a, b string) (int, bool, string) {
	ordA := ordinalFor(a, importanceLevels, 1)
	ordB := ordinalFor(b, importanceLevels, 1)

	diff := ordA - ordB
	if diff < 0 {
		diff = -diff
	}

	switch diff {
	case 0:
		return 5, true, "Ambos dan la misma importancia a este aspecto de la relación."
	case 1:
		return 3, true, "Dan una importancia parecida, con un matiz de diferencia."
	default:
		return 1, false, "La importancia que dan a este aspecto es muy distinta."
	}
}

func scoreCommunication(a, b string) (int, bool, string) {
	levelA := ordinalFor(a, communicationLevels, 1)
	levelB := ordinalFor(b, communicationLevels, 1)

	score := minInt(levelA, levelB)
	// La fortaleza comunicativa de uno compensa la del otro.
	compatible := (levelA >= 3 && levelB >= 3) || levelA == 5 || levelB == 5

	switch {
	case score == 5:
		return score, compatible, "Ambos muestran un estilo de comunicación abierto y fluido."
	case compatible:
		return score, compatible, "La comunicación es viable: al menos uno de los dos la facilita."
	default:
		return score, compatible, "A ambos les cuesta comunicarse; es un área a trabajar."
	}
}

func scoreConflict(a, b string) (int, bool, string) {
	styleA := conflictStyleFor(a)
	styleB := conflictStyleFor(b)

	if styleA == styleViolence || styleB == styleViolence {
		return 0, false, "Se detecta un patrón violento ante el conflicto: incompatibilidad grave."
	}

	switch {
	case styleA == styleCommunication && styleB == styleCommunication:
		return 5, true, "Ambos afrontan el conflicto hablando: el mejor escenario posible."
	case (styleA == styleCommunication && styleB == styleDistance) ||
		(styleA == styleDistance && styleB == styleCommunication):
		return 3, true, "Uno dialoga y el otro toma distancia: funciona con acuerdos claros."
	case styleA == styleDistance && styleB == styleDistance:
		return 1, false, "Ambos evitan el conflicto tomando distancia; los temas quedan sin resolver."
	default:
		return 3, true, "Estilos de afrontamiento neutros, sin señales de riesgo."
	}
}

func conflictStyleFor(answer string) string {
	for _, entry := range conflictStyles {
		for _, kw := range entry.keywords {
			if strings.Contains(answer, kw) {
				return entry.style
			}
		}
	}
	return styleNeutral
}

// Reglas de compatibilidad por familia de categorías.
func compatibleDefault(score, _, _ int) bool {
	return score >= 3
}

// compatibleUnlessBothLow solo marca incompatible cuando los dos están en el
// nivel más bajo.
func compatibleUnlessBothLow(_, levelA, levelB int) bool {
	return !(levelA == 1 && levelB == 1)
}

// compatibleUnlessExtremes marca incompatible cuando uno está en el extremo
// alto y el otro en el extremo bajo (asimetría propia de honestidad).
func compatibleUnlessExtremes(_, levelA, levelB int) bool {
	return !((levelA == 5 && levelB == 1) || (levelA == 1 && levelB == 5))
}

func scoreMinLevel(a, b string, table []levelRule, compatibleFn func(score, levelA, levelB int) bool, label string) (int, bool, string) {
	levelA := ordinalFor(a, table, 1)
	levelB := ordinalFor(b, table, 1)

	score := minInt(levelA, levelB)
	compatible := compatibleFn(score, levelA, levelB)

	switch {
	case score == 5:
		return score, compatible, fmt.Sprintf("Ambos puntúan alto en %s.", label)
	case compatible:
		return score, compatible, fmt.Sprintf("Nivel aceptable de %s entre ambos.", label)
	default:
		return score, compatible, fmt.Sprintf("Diferencias importantes en %s.", label)
	}
}

func ordinalFor(answer string, table []levelRule, fallback int) int {
	for _, rule := range table {
		for _, kw := range rule.keywords {
			if strings.Contains(answer, kw) {
				return rule.level
			}
		}
	}
	return fallback
}

// levelForScore mapea la puntuación total a la etiqueta discreta de nivel.
func levelForScore(total int) string {
	switch {
	case total >= 90:
		return "100% - Compatibilidad perfecta"
	case total >= 84:
		return "90% - Compatibilidad excelente"
	case total >= 74:
		return "80% - Compatibilidad muy alta"
	case total >= 64:
		return "70% - Compatibilidad alta"
	case total >= 54:
		return "60% - Compatibilidad media"
	case total >= 36:
		return "40% - Compatibilidad baja"
	case total >= 18:
		return "20% - Compatibilidad muy baja"
	default:
		return "0% - Sin compatibilidad"
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
