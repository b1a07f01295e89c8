package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/josewalke/web-salud-mental/internal/domain"
)

type ContactRepository interface {
	Create(ctx context.Context, msg domain.ContactMessage) error
	List(ctx context.Context) ([]domain.ContactMessage, error)
	MarkRead(ctx context.Context, id string) error
}

type PgContactRepository struct {
	pool *pgxpool.Pool
}

func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

func (r *PgContactRepository) Create(ctx context.Context, msg domain.ContactMessage) error {
	const query = `
		INSERT INTO contact_messages (id, name, email, phone, message, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Phone,
		msg.Message,
		msg.Read,
		msg.CreatedAt,
	)
	return err
}

func (r *PgContactRepository) List(ctx context.Context) ([]domain.ContactMessage, error) {
	const query = `
		SELECT id, name, email, phone, message, read, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ContactMessage
	for rows.Next() {
		var msg domain.ContactMessage
		if err := rows.Scan(
			&msg.ID,
			&msg.Name,
			&msg.Email,
			&msg.Phone,
			&msg.Message,
			&msg.Read,
			&msg.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, msg)
	}
	return out, rows.Err()
}

func (r *PgContactRepository) MarkRead(ctx context.Context, id string) error {
	const query = `UPDATE contact_messages SET read = TRUE WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
