package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/josewalke/web-salud-mental/internal/domain"
)

type AdminRepository interface {
	Create(ctx context.Context, admin domain.Admin) error
	GetByEmail(ctx context.Context, email string) (domain.Admin, error)
	GetByID(ctx context.Context, id string) (domain.Admin, error)
}

type PgAdminRepository struct {
	pool *pgxpool.Pool
}

func NewPgAdminRepository(pool *pgxpool.Pool) *PgAdminRepository {
	return &PgAdminRepository{pool: pool}
}

func (r *PgAdminRepository) Create(ctx context.Context, admin domain.Admin) error {
	const query = `
		INSERT INTO admins (id, email, display_name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		admin.ID,
		admin.Email,
		admin.DisplayName,
		admin.PasswordHash,
		admin.CreatedAt,
	)
	return err
}

func (r *PgAdminRepository) GetByEmail(ctx context.Context, email string) (domain.Admin, error) {
	const query = `
		SELECT id, email, display_name, password_hash, created_at
		FROM admins
		WHERE email = $1
	`
	return r.scanOne(ctx, query, email)
}

func (r *PgAdminRepository) GetByID(ctx context.Context, id string) (domain.Admin, error) {
	const query = `
		SELECT id, email, display_name, password_hash, created_at
		FROM admins
		WHERE id = $1
	`
	return r.scanOne(ctx, query, id)
}

func (r *PgAdminRepository) scanOne(ctx context.Context, query string, arg any) (domain.Admin, error) {
	var admin domain.Admin
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&admin.ID,
		&admin.Email,
		&admin.DisplayName,
		&admin.PasswordHash,
		&admin.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Admin{}, err
	}
	return admin, err
}
