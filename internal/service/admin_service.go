package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/josewalke/web-salud-mental/internal/domain"
	"github.com/josewalke/web-salud-mental/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidEmail       = errors.New("invalid email")
)

// AdminService coordina autenticación y alta de cuentas de operador.
type AdminService struct {
	logger *zap.Logger
	admins repository.AdminRepository
}

func NewAdminService(logger *zap.Logger, admins repository.AdminRepository) *AdminService {
	return &AdminService{
		logger: logger,
		admins: admins,
	}
}

type CreateAdminInput struct {
	Email       string
	DisplayName string
	Password    string
}

func (s *AdminService) CreateAdmin(ctx context.Context, input CreateAdminInput) (domain.Admin, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return domain.Admin{}, ErrInvalidEmail
	}
	password := strings.TrimSpace(input.Password)
	if password == "" {
		return domain.Admin{}, ErrInvalidCredentials
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Admin{}, err
	}

	admin := domain.Admin{
		ID:           uuid.NewString(),
		Email:        email,
		DisplayName:  strings.TrimSpace(input.DisplayName),
		PasswordHash: string(hashBytes),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return domain.Admin{}, err
	}
	return admin, nil
}

// Authenticate verifica email y password de un operador.
func (s *AdminService) Authenticate(ctx context.Context, emailAddr, password string) (domain.Admin, error) {
	emailAddr = normalizeEmail(emailAddr)
	password = strings.TrimSpace(password)
	if emailAddr == "" || password == "" {
		return domain.Admin{}, ErrInvalidCredentials
	}
	admin, err := s.admins.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Admin{}, ErrInvalidCredentials
		}
		return domain.Admin{}, err
	}
	if admin.PasswordHash == "" {
		return domain.Admin{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return domain.Admin{}, ErrInvalidCredentials
	}
	return admin, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
