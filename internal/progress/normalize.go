package progress

import (
	"fmt"
	"strings"

	"github.com/josewalke/web-salud-mental/internal/domain"
)

// InvalidAnswerSentinel reemplaza valores que llegan como objetos sin ningún
// campo de texto reconocible. Nunca se transmite un marcador de objeto crudo.
const InvalidAnswerSentinel = "Respuesta no válida"

// textFieldPriority es el orden fijo de campos que se sondean cuando la
// respuesta llega como objeto en lugar de string.
var textFieldPriority = []string{"text", "answer", "value", "label", "name"}

// NormalizeAnswer aplana cualquier valor de respuesta a un string. Es
// idempotente: un string ya plano se devuelve tal cual. El upstream puede
// entregar valores con formas inconsistentes; esta función es la última
// defensa para que el formato de transporte sea siempre texto plano.
func NormalizeAnswer(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]any:
		for _, field := range textFieldPriority {
			if s, ok := v[field].(string); ok {
				return s
			}
		}
		return InvalidAnswerSentinel
	case nil:
		return ""
	default:
		s := fmt.Sprintf("%v", value)
		if strings.Contains(s, "map[") || strings.Contains(s, "[object Object]") {
			return InvalidAnswerSentinel
		}
		return s
	}
}

// NormalizeAnswers aplana un mapa completo de respuestas.
func NormalizeAnswers(answers map[string]any) domain.AnswerSet {
	out := make(domain.AnswerSet, len(answers))
	for id, value := range answers {
		out[id] = NormalizeAnswer(value)
	}
	return out
}
