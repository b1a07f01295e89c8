package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/josewalke/web-salud-mental/internal/domain"
)

type QuestionnaireRepository interface {
	Create(ctx context.Context, q domain.Questionnaire) error
	GetByID(ctx context.Context, id string) (domain.Questionnaire, error)
	ListByType(ctx context.Context, qType string) ([]domain.Questionnaire, error)
}

type PgQuestionnaireRepository struct {
	pool *pgxpool.Pool
}

func NewPgQuestionnaireRepository(pool *pgxpool.Pool) *PgQuestionnaireRepository {
	return &PgQuestionnaireRepository{pool: pool}
}

func (r *PgQuestionnaireRepository) Create(ctx context.Context, q domain.Questionnaire) error {
	const query = `
		INSERT INTO questionnaires (id, type, personal_info, answers, completed, submitted_at_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	personalInfo, err := json.Marshal(q.PersonalInfo)
	if err != nil {
		return err
	}
	answers, err := json.Marshal(q.Answers)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, query,
		q.ID,
		q.Type,
		personalInfo,
		answers,
		q.Completed,
		q.Timestamp,
		q.CreatedAt,
	)
	return err
}

func (r *PgQuestionnaireRepository) GetByID(ctx context.Context, id string) (domain.Questionnaire, error) {
	const query = `
		SELECT id, type, personal_info, answers, completed, submitted_at_ms, created_at
		FROM questionnaires
		WHERE id = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *PgQuestionnaireRepository) ListByType(ctx context.Context, qType string) ([]domain.Questionnaire, error) {
	const query = `
		SELECT id, type, personal_info, answers, completed, submitted_at_ms, created_at
		FROM questionnaires
		WHERE type = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, qType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Questionnaire
	for rows.Next() {
		q, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r *PgQuestionnaireRepository) scanOne(row pgx.Row) (domain.Questionnaire, error) {
	var (
		q            domain.Questionnaire
		personalInfo []byte
		answers      []byte
	)
	err := row.Scan(
		&q.ID,
		&q.Type,
		&personalInfo,
		&answers,
		&q.Completed,
		&q.Timestamp,
		&q.CreatedAt,
	)
	if err != nil {
		return domain.Questionnaire{}, err
	}
	if err := json.Unmarshal(personalInfo, &q.PersonalInfo); err != nil {
		return domain.Questionnaire{}, err
	}
	if err := json.Unmarshal(answers, &q.Answers); err != nil {
		return domain.Questionnaire{}, err
	}
	return q, nil
}
