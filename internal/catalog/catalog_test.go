package catalog

import (
	"errors"
	"testing"

	"github.com/josewalke/web-salud-mental/internal/domain"
)

func TestForType(t *testing.T) {
	questions, err := ForType(domain.QuestionnaireTypePareja)
	if err != nil {
		t.Fatalf("pareja: %v", err)
	}
	if len(questions) != 17 {
		t.Fatalf("expected 17 pareja questions, got %d", len(questions))
	}

	questions, err = ForType(domain.QuestionnaireTypePersonalidad)
	if err != nil {
		t.Fatalf("personalidad: %v", err)
	}
	if len(questions) != 66 {
		t.Fatalf("expected 66 personalidad questions, got %d", len(questions))
	}

	if _, err := ForType("astrologia"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestCatalogs_SingleChoiceAlwaysHasOptions(t *testing.T) {
	for _, set := range [][]domain.Question{Pareja(), Personalidad()} {
		for _, q := range set {
			switch q.Kind {
			case domain.AnswerKindSingleChoice:
				if len(q.Options) < 2 {
					t.Fatalf("question %d: single choice with %d options", q.ID, len(q.Options))
				}
			case domain.AnswerKindFreeText, domain.AnswerKindLongFreeText:
				if len(q.Options) != 0 {
					t.Fatalf("question %d: free text with options", q.ID)
				}
			default:
				t.Fatalf("question %d: unknown kind %q", q.ID, q.Kind)
			}
			if q.Text == "" {
				t.Fatalf("question %d: empty text", q.ID)
			}
		}
	}
}

func TestCatalogs_IDsAreSequential(t *testing.T) {
	for _, set := range [][]domain.Question{Pareja(), Personalidad()} {
		for i, q := range set {
			if q.ID != i+1 {
				t.Fatalf("expected id %d at position %d, got %d", i+1, i, q.ID)
			}
		}
	}
}

func TestCatalogs_ReturnCopies(t *testing.T) {
	first := Pareja()
	first[0].Text = "mutada"
	if Pareja()[0].Text == "mutada" {
		t.Fatalf("catalog must not share backing array with callers")
	}
}
