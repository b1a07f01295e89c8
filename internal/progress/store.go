package progress

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/josewalke/web-salud-mental/internal/catalog"
	"github.com/josewalke/web-salud-mental/internal/domain"
)

// State es el estado del intento en curso respecto a la sincronización.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateCompleted  State = "completed"
	StateFailed     State = "failed"
)

// debounceDelay colapsa escrituras de borrador que ocurren en esta ventana.
const defaultDebounceDelay = 500 * time.Millisecond

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Store es dueño del estado mutable de un intento de cuestionario en curso:
// restaura borradores, registra respuestas con persistencia debounced y
// realiza exactamente una escritura al backend al completar el intento.
// Todas las operaciones son seguras desde múltiples goroutines.
type Store struct {
	logger     *zap.Logger
	drafts     DraftStore
	syncClient SyncClient

	mu               sync.Mutex
	qType            string
	personalInfo     domain.PersonalInfo
	hasPersonalInfo  bool
	answers          map[string]any
	currentIndex     int
	questionCount    int
	completed        bool
	state            State
	autosaveDisabled bool
	pending          *time.Timer

	debounceDelay time.Duration
	now           func() time.Time
}

// NewStore crea un Store con las dependencias necesarias.
func NewStore(logger *zap.Logger, drafts DraftStore, syncClient SyncClient) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		logger:        logger,
		drafts:        drafts,
		syncClient:    syncClient,
		state:         StateIdle,
		debounceDelay: defaultDebounceDelay,
		now:           time.Now,
	}
}

// Restore lee el borrador persistido para un tipo. Estrictamente local: nunca
// hace llamadas de red. Contenido malformado o con más de 3 horas se trata
// como ausente; el borrador caducado se borra como efecto colateral.
func (s *Store) Restore(ctx context.Context, qType string) (domain.QuestionnaireDraft, bool, error) {
	draft, ok, err := s.drafts.Load(ctx, qType)
	if err != nil {
		return domain.QuestionnaireDraft{}, false, err
	}
	if !ok {
		return domain.QuestionnaireDraft{}, false, nil
	}

	age := s.now().UnixMilli() - draft.Timestamp
	if age > DraftTTL.Milliseconds() {
		if err := s.drafts.Delete(ctx, qType); err != nil {
			s.logger.Warn("delete expired draft", zap.String("type", qType), zap.Error(err))
		}
		return domain.QuestionnaireDraft{}, false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.adoptDraftLocked(qType, draft)
	return draft, true, nil
}

func (s *Store) adoptDraftLocked(qType string, draft domain.QuestionnaireDraft) {
	s.qType = qType
	s.personalInfo = draft.PersonalInfo
	s.hasPersonalInfo = true
	s.answers = make(map[string]any, len(draft.Answers))
	for k, v := range draft.Answers {
		s.answers[k] = v
	}
	s.currentIndex = draft.CurrentQuestionIndex
	s.completed = draft.Completed
	s.state = StateIdle
	s.autosaveDisabled = false
	s.questionCount = questionCountFor(qType)
}

func questionCountFor(qType string) int {
	questions, err := catalog.ForType(qType)
	if err != nil {
		return 0
	}
	return len(questions)
}

// SubmitPersonalInfo valida la información personal y ancla una sesión nueva:
// borrador fresco, sin respuestas, índice cero. La escritura es inmediata, no
// debounced, porque debe ser durable antes de mostrar la primera pregunta.
func (s *Store) SubmitPersonalInfo(ctx context.Context, qType string, info domain.PersonalInfo) error {
	if verr := validatePersonalInfo(info); verr != nil {
		return verr
	}
	questions, err := catalog.ForType(qType)
	if err != nil {
		return &ValidationError{Fields: []string{"type"}}
	}

	s.mu.Lock()
	s.qType = qType
	s.personalInfo = info
	s.hasPersonalInfo = true
	s.answers = make(map[string]any)
	s.currentIndex = 0
	s.completed = false
	s.state = StateIdle
	s.autosaveDisabled = false
	s.questionCount = len(questions)
	draft := s.draftLocked()
	s.mu.Unlock()

	return s.drafts.Save(ctx, qType, draft)
}

func validatePersonalInfo(info domain.PersonalInfo) *ValidationError {
	var bad []string
	if strings.TrimSpace(info.Name) == "" {
		bad = append(bad, "name")
	}
	if strings.TrimSpace(info.Surname) == "" {
		bad = append(bad, "surname")
	}
	age, err := strconv.Atoi(strings.TrimSpace(info.Age))
	if err != nil || age < 13 || age > 120 {
		bad = append(bad, "age")
	}
	if strings.TrimSpace(info.Gender) == "" {
		bad = append(bad, "gender")
	}
	if !emailPattern.MatchString(strings.TrimSpace(info.Email)) {
		bad = append(bad, "email")
	}
	if strings.TrimSpace(info.Orientation) == "" {
		bad = append(bad, "orientation")
	}
	if len(bad) > 0 {
		return &ValidationError{Fields: bad}
	}
	return nil
}

// RecordAnswer sobrescribe la respuesta de una pregunta y programa una
// persistencia debounced. No bloquea.
func (s *Store) RecordAnswer(questionID int, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.answers == nil {
		s.answers = make(map[string]any)
	}
	s.answers[strconv.Itoa(questionID)] = value
	s.scheduleAutosaveLocked()
}

// Advance mueve el índice de pregunta actual una posición adelante.
func (s *Store) Advance() {
	s.moveIndex(1)
}

// Retreat mueve el índice de pregunta actual una posición atrás.
func (s *Store) Retreat() {
	s.moveIndex(-1)
}

func (s *Store) moveIndex(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.currentIndex + delta
	if next < 0 {
		next = 0
	}
	if s.questionCount > 0 && next > s.questionCount-1 {
		next = s.questionCount - 1
	}
	s.currentIndex = next
	s.scheduleAutosaveLocked()
}

// scheduleAutosaveLocked resetea el único slot de timer pendiente: las
// llamadas dentro de la ventana colapsan en una sola escritura.
func (s *Store) scheduleAutosaveLocked() {
	if s.autosaveDisabled || s.drafts == nil {
		return
	}
	if s.pending != nil {
		s.pending.Stop()
	}
	s.pending = time.AfterFunc(s.debounceDelay, s.flush)
}

func (s *Store) flush() {
	s.mu.Lock()
	if s.autosaveDisabled || s.qType == "" {
		s.mu.Unlock()
		return
	}
	qType := s.qType
	draft := s.draftLocked()
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.drafts.Save(ctx, qType, draft); err != nil {
		s.logger.Warn("autosave draft", zap.String("type", qType), zap.Error(err))
	}
}

func (s *Store) draftLocked() domain.QuestionnaireDraft {
	answers := make(map[string]any, len(s.answers))
	for k, v := range s.answers {
		answers[k] = v
	}
	return domain.QuestionnaireDraft{
		PersonalInfo:         s.personalInfo,
		Answers:              answers,
		Completed:            s.completed,
		CurrentQuestionIndex: s.currentIndex,
		Timestamp:            s.now().UnixMilli(),
	}
}

// SubmitCompleted cierra el intento: valida las preguntas obligatorias,
// normaliza las respuestas a strings planos, escribe un checkpoint local con
// completed=true y realiza exactamente una llamada de sincronización. Solo
// tras una respuesta 2xx confirmada se borra el borrador local; ante
// cualquier fallo el borrador se conserva para reintentar sin volver a
// recoger respuestas.
func (s *Store) SubmitCompleted(ctx context.Context, qType string, questions []domain.Question) error {
	s.mu.Lock()
	if s.state == StateSubmitting {
		s.mu.Unlock()
		return ErrSubmitInFlight
	}
	if !s.hasPersonalInfo {
		s.mu.Unlock()
		return ErrNoPersonalInfo
	}

	var missing []int
	for _, q := range questions {
		if !q.Required {
			continue
		}
		raw, ok := s.answers[strconv.Itoa(q.ID)]
		if !ok || strings.TrimSpace(NormalizeAnswer(raw)) == "" {
			missing = append(missing, q.ID)
		}
	}
	if len(missing) > 0 {
		s.mu.Unlock()
		return &ValidationError{MissingQuestionIDs: missing}
	}

	s.state = StateSubmitting
	s.autosaveDisabled = true
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.completed = true

	normalized := NormalizeAnswers(s.answers)
	checkpoint := s.draftLocked()
	checkpoint.Answers = make(map[string]any, len(normalized))
	for k, v := range normalized {
		checkpoint.Answers[k] = v
	}
	payload := SyncPayload{
		Type:         qType,
		PersonalInfo: s.personalInfo,
		Answers:      normalized,
		Completed:    true,
		Timestamp:    checkpoint.Timestamp,
	}
	s.mu.Unlock()

	// Checkpoint de durabilidad antes de tocar la red.
	if err := s.drafts.Save(ctx, qType, checkpoint); err != nil {
		s.logger.Warn("checkpoint draft", zap.String("type", qType), zap.Error(err))
	}

	err := s.syncClient.SyncQuestionnaire(ctx, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateFailed
		s.autosaveDisabled = false
		var syncErr *SyncError
		if errors.As(err, &syncErr) {
			return err
		}
		return &SyncError{Err: err}
	}

	if err := s.drafts.Delete(ctx, qType); err != nil {
		s.logger.Warn("delete synced draft", zap.String("type", qType), zap.Error(err))
	}
	s.state = StateCompleted
	return nil
}

// Reset limpia el estado en memoria y borra el borrador persistido. Se usa
// para empezar un intento desde cero.
func (s *Store) Reset(ctx context.Context, qType string) error {
	s.mu.Lock()
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.qType = ""
	s.personalInfo = domain.PersonalInfo{}
	s.hasPersonalInfo = false
	s.answers = nil
	s.currentIndex = 0
	s.questionCount = 0
	s.completed = false
	s.state = StateIdle
	s.autosaveDisabled = false
	s.mu.Unlock()

	return s.drafts.Delete(ctx, qType)
}

// State devuelve el estado de sincronización del intento en curso.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentQuestionIndex devuelve el índice de pregunta actual.
func (s *Store) CurrentQuestionIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentIndex
}

// Snapshot devuelve una copia del borrador en memoria del intento en curso.
func (s *Store) Snapshot() domain.QuestionnaireDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draftLocked()
}
