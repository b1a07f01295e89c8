package catalog

import (
	"errors"

	"github.com/josewalke/web-salud-mental/internal/domain"
)

// ErrUnknownType indica un tipo de cuestionario que no existe en los catálogos.
var ErrUnknownType = errors.New("unknown questionnaire type")

// ForType devuelve la batería de preguntas para un tipo de cuestionario.
func ForType(qType string) ([]domain.Question, error) {
	switch qType {
	case domain.QuestionnaireTypePareja:
		return Pareja(), nil
	case domain.QuestionnaireTypePersonalidad:
		return Personalidad(), nil
	default:
		return nil, ErrUnknownType
	}
}

// Pareja devuelve la batería de 17 preguntas de compatibilidad de pareja.
// El slice devuelto es una copia: los catálogos nunca se mutan.
func Pareja() []domain.Question {
	return copyQuestions(parejaQuestions)
}

// Personalidad devuelve la batería de 66 preguntas de personalidad.
func Personalidad() []domain.Question {
	return copyQuestions(personalidadQuestions)
}

func copyQuestions(src []domain.Question) []domain.Question {
	out := make([]domain.Question, len(src))
	copy(out, src)
	return out
}

var frecuencia = []string{"Nunca", "Casi nunca", "A veces", "Casi siempre", "Siempre"}

var parejaQuestions = []domain.Question{
	{ID: 1, Text: "¿Qué buscas en una relación de pareja?", Kind: domain.AnswerKindFreeText, Required: true},
	{ID: 2, Text: "¿Cuánto tiempo llevas soltero/a?", Kind: domain.AnswerKindSingleChoice, Options: []string{"Menos de 6 meses", "Entre 6 meses y 1 año", "Entre 1 y 3 años", "Más de 3 años"}, Required: true},
	{ID: 3, Text: "¿Qué valoras más en una persona?", Kind: domain.AnswerKindFreeText, Required: true},
	{ID: 4, Text: "¿Te gustaría tener hijos?", Kind: domain.AnswerKindSingleChoice, Options: []string{"Sí", "No", "No lo sé todavía", "Ya tengo"}, Required: true},
	{ID: 5, Text: "¿Cómo describirías tu estilo de vida?", Kind: domain.AnswerKindFreeText, Required: true},
	{ID: 6, Text: "¿Qué importancia tiene para ti la familia?", Kind: domain.AnswerKindSingleChoice, Options: []string{"Muy importante", "Importante", "Poco importante", "Nada importante"}, Required: true},
	{ID: 7, Text: "¿Practicas alguna religión o espiritualidad?", Kind: domain.AnswerKindSingleChoice, Options: []string{"Sí, practicante", "Creyente no practicante", "No, pero lo respeto", "No y no me interesa"}, Required: true},
	{ID: 8, Text: "¿Cómo gestionas una discusión de pareja?", Kind: domain.AnswerKindLongFreeText, Required: true},
	{ID: 9, Text: "¿Qué papel juega el deporte en tu vida?", Kind: domain.AnswerKindSingleChoice, Options: []string{"Fundamental", "Lo practico de vez en cuando", "Casi nunca", "Ninguno"}, Required: true},
	{ID: 10, Text: "¿Fumas?", Kind: domain.AnswerKindSingleChoice, Options: []string{"No", "Socialmente", "A diario"}, Required: true},
	{ID: 11, Text: "¿Qué haces en tu tiempo libre?", Kind: domain.AnswerKindFreeText, Required: true},
	{ID: 12, Text: "¿Qué tan importante es la independencia dentro de la pareja?", Kind: domain.AnswerKindSingleChoice, Options: []string{"Muy importante", "Importante", "Poco importante"}, Required: true},
	{ID: 13, Text: "Describe tu relación ideal.", Kind: domain.AnswerKindLongFreeText, Required: true},
	{ID: 14, Text: "¿Cómo te llevas con tu familia?", Kind: domain.AnswerKindFreeText, Required: true},
	{ID: 15, Text: "¿Qué no perdonarías nunca en una relación?", Kind: domain.AnswerKindFreeText, Required: true},
	{ID: 16, Text: "¿Te mudarías de ciudad por amor?", Kind: domain.AnswerKindSingleChoice, Options: []string{"Sí, sin dudarlo", "Depende de las circunstancias", "No"}, Required: true},
	{ID: 17, Text: "¿Hay algo más que quieras contarnos sobre ti?", Kind: domain.AnswerKindLongFreeText, Required: false},
}

// personalidadQuestions cubre las cinco dimensiones clásicas de personalidad
// (apertura, responsabilidad, extraversión, amabilidad y estabilidad emocional)
// con ítems de frecuencia, más un bloque final de preguntas abiertas.
var personalidadQuestions = buildPersonalidad()

func buildPersonalidad() []domain.Question {
	items := []string{
		"Me siento cómodo/a conociendo gente nueva.",
		"Prefiero planes tranquilos antes que fiestas grandes.",
		"Me gusta probar comidas y experiencias nuevas.",
		"Termino lo que empiezo aunque me cueste.",
		"Me irrito con facilidad.",
		"Disfruto siendo el centro de atención.",
		"Me preocupo por los problemas antes de que ocurran.",
		"Confío en las personas desde el primer momento.",
		"Mantengo mi espacio ordenado.",
		"Cambio de humor con frecuencia.",
		"Me resulta fácil iniciar una conversación.",
		"Dejo las tareas para el último momento.",
		"Me interesan el arte y la música.",
		"Perdono con facilidad.",
		"Me pongo nervioso/a ante situaciones imprevistas.",
		"Prefiero trabajar en equipo antes que solo/a.",
		"Cumplo las normas aunque no esté de acuerdo.",
		"Busco emociones fuertes.",
		"Me cuesta decir que no.",
		"Me recupero rápido de los disgustos.",
		"Hablo con desconocidos sin problema.",
		"Reviso varias veces lo que hago antes de darlo por terminado.",
		"Imagino escenarios y posibilidades constantemente.",
		"Cedo para evitar conflictos.",
		"Siento que los demás esperan demasiado de mí.",
		"Organizo mis días con antelación.",
		"Me aburro si la rutina dura demasiado.",
		"Escucho más de lo que hablo.",
		"Me afectan mucho las críticas.",
		"Ayudo aunque nadie me lo pida.",
		"Me gusta debatir ideas aunque haya desacuerdo.",
		"Pierdo cosas con frecuencia.",
		"Me emociono con facilidad viendo una película.",
		"Evito discusiones aunque tenga razón.",
		"Duermo mal cuando tengo preocupaciones.",
		"Tomo la iniciativa en los planes de grupo.",
		"Llego puntual a mis compromisos.",
		"Cuestiono las tradiciones.",
		"Digo lo que pienso aunque moleste.",
		"Me siento tenso/a sin motivo aparente.",
		"Necesito tiempo a solas para recargar energía.",
		"Hago listas de tareas pendientes.",
		"Sueño despierto/a a menudo.",
		"Me alegro sinceramente de los éxitos ajenos.",
		"Reacciono mal bajo presión.",
		"Cuento mis problemas con facilidad.",
		"Guardo los recibos y documentos importantes.",
		"Me atraen las ideas poco convencionales.",
		"Evito herir los sentimientos de los demás.",
		"Rumio los errores durante días.",
		"Prefiero escuchar música conocida antes que descubrir nueva.",
		"Respondo los mensajes en cuanto los leo.",
		"Me adapto rápido a los cambios de planes.",
		"Desconfío de las buenas intenciones.",
		"Mantengo la calma en emergencias.",
		"Me cuesta estar en silencio en una reunión.",
		"Dejo la cama hecha cada mañana.",
		"Leo sobre temas que no conozco por curiosidad.",
		"Pido perdón cuando me equivoco.",
		"Siento celos con facilidad.",
		"Me agota socializar muchas horas seguidas.",
		"Persigo mis objetivos aunque tarde años.",
		"Me gusta imaginar cómo será mi vida en diez años.",
	}
	qs := make([]domain.Question, 0, 66)
	for i, text := range items {
		qs = append(qs, domain.Question{
			ID:       i + 1,
			Text:     text,
			Kind:     domain.AnswerKindSingleChoice,
			Options:  frecuencia,
			Required: true,
		})
	}
	qs = append(qs,
		domain.Question{ID: 64, Text: "¿Qué es lo que más te gusta de ti?", Kind: domain.AnswerKindFreeText, Required: true},
		domain.Question{ID: 65, Text: "¿Qué te gustaría cambiar de ti?", Kind: domain.AnswerKindFreeText, Required: true},
		domain.Question{ID: 66, Text: "Describe un día perfecto para ti.", Kind: domain.AnswerKindLongFreeText, Required: false},
	)
	return qs
}
