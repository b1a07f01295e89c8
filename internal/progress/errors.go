package progress

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSubmitInFlight indica un segundo SubmitCompleted mientras hay una
	// sincronización en curso.
	ErrSubmitInFlight = errors.New("submit already in flight")
	// ErrNoPersonalInfo indica que aún no se registró información personal.
	ErrNoPersonalInfo = errors.New("personal info not submitted")
)

// ValidationError es un fallo local y recuperable: datos personales con
// formato inválido o preguntas obligatorias sin responder. Nunca destruye
// estado.
type ValidationError struct {
	Fields             []string
	MissingQuestionIDs []int
}

func (e *ValidationError) Error() string {
	if len(e.MissingQuestionIDs) > 0 {
		ids := make([]string, len(e.MissingQuestionIDs))
		for i, id := range e.MissingQuestionIDs {
			ids[i] = fmt.Sprintf("%d", id)
		}
		return "required questions unanswered: " + strings.Join(ids, ", ")
	}
	return "invalid personal info: " + strings.Join(e.Fields, ", ")
}

// SyncError es un fallo de red o HTTP durante la sincronización final.
// Recuperable por reintento: el borrador local se conserva.
type SyncError struct {
	StatusCode int
	Err        error
}

func (e *SyncError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sync failed: %v", e.Err)
	}
	return fmt.Sprintf("sync failed: status=%d", e.StatusCode)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}
