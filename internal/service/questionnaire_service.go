package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/josewalke/web-salud-mental/internal/catalog"
	"github.com/josewalke/web-salud-mental/internal/compat"
	"github.com/josewalke/web-salud-mental/internal/domain"
	"github.com/josewalke/web-salud-mental/internal/repository"
)

var (
	ErrInvalidSyncPayload      = errors.New("invalid sync payload")
	ErrQuestionnaireNotFound   = errors.New("questionnaire not found")
	ErrQuestionnaireIncomplete = errors.New("questionnaire not completed")
)

// QuestionnaireService coordina la recepción de cuestionarios sincronizados
// y el análisis de compatibilidad entre dos intentos completados.
type QuestionnaireService struct {
	logger         *zap.Logger
	questionnaires repository.QuestionnaireRepository
}

func NewQuestionnaireService(logger *zap.Logger, questionnaires repository.QuestionnaireRepository) *QuestionnaireService {
	return &QuestionnaireService{
		logger:         logger,
		questionnaires: questionnaires,
	}
}

// SyncInput es el payload del endpoint de sincronización.
type SyncInput struct {
	Type         string              `json:"type"`
	PersonalInfo domain.PersonalInfo `json:"personalInfo"`
	Answers      domain.AnswerSet    `json:"answers"`
	Completed    bool                `json:"completed"`
	Timestamp    int64               `json:"timestamp"`
}

// Sync valida y persiste un intento completado. El payload llega ya
// normalizado a strings planos por el cliente; aquí solo se comprueba forma.
func (s *QuestionnaireService) Sync(ctx context.Context, input SyncInput) (domain.Questionnaire, error) {
	if _, err := catalog.ForType(input.Type); err != nil {
		return domain.Questionnaire{}, ErrInvalidSyncPayload
	}
	if !input.Completed || len(input.Answers) == 0 {
		return domain.Questionnaire{}, ErrInvalidSyncPayload
	}
	if strings.TrimSpace(input.PersonalInfo.Email) == "" {
		return domain.Questionnaire{}, ErrInvalidSyncPayload
	}

	q := domain.Questionnaire{
		ID:           uuid.NewString(),
		Type:         input.Type,
		PersonalInfo: input.PersonalInfo,
		Answers:      input.Answers,
		Completed:    true,
		Timestamp:    input.Timestamp,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.questionnaires.Create(ctx, q); err != nil {
		return domain.Questionnaire{}, err
	}

	s.logger.Info("questionnaire synced",
		zap.String("id", q.ID),
		zap.String("type", q.Type),
		zap.Int("answers", len(q.Answers)),
	)
	return q, nil
}

// ListByType devuelve los intentos sincronizados de un tipo.
func (s *QuestionnaireService) ListByType(ctx context.Context, qType string) ([]domain.Questionnaire, error) {
	if _, err := catalog.ForType(qType); err != nil {
		return nil, catalog.ErrUnknownType
	}
	return s.questionnaires.ListByType(ctx, qType)
}

// GetByID devuelve un intento por id.
func (s *QuestionnaireService) GetByID(ctx context.Context, id string) (domain.Questionnaire, error) {
	return s.questionnaires.GetByID(ctx, id)
}

// Compare carga dos intentos completados y ejecuta el análisis de
// compatibilidad sobre sus mapas de respuestas crudos. El resultado se
// calcula en fresco y no se persiste.
func (s *QuestionnaireService) Compare(ctx context.Context, idA, idB string) (compat.Result, error) {
	qa, err := s.questionnaires.GetByID(ctx, idA)
	if err != nil {
		return compat.Result{}, ErrQuestionnaireNotFound
	}
	qb, err := s.questionnaires.GetByID(ctx, idB)
	if err != nil {
		return compat.Result{}, ErrQuestionnaireNotFound
	}
	if !qa.Completed || !qb.Completed {
		return compat.Result{}, ErrQuestionnaireIncomplete
	}

	answersA := compat.AnswersForBattery(qa.Answers)
	answersB := compat.AnswersForBattery(qb.Answers)
	return compat.Analyze(answersA, answersB), nil
}
