package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/josewalke/web-salud-mental/internal/domain"
	"github.com/josewalke/web-salud-mental/internal/email"
	"github.com/josewalke/web-salud-mental/internal/repository"
)

var (
	ErrInvalidContactMessage = errors.New("invalid contact message")
	ErrContactRateLimited    = errors.New("contact rate limited")
)

// ContactService guarda mensajes del formulario de contacto y notifica al
// operador por correo.
type ContactService struct {
	logger      *zap.Logger
	contacts    repository.ContactRepository
	emailSender email.Sender
	notifyEmail string
	limiter     RateLimiter
}

func NewContactService(logger *zap.Logger, contacts repository.ContactRepository, emailSender email.Sender, notifyEmail string, limiter RateLimiter) *ContactService {
	return &ContactService{
		logger:      logger,
		contacts:    contacts,
		emailSender: emailSender,
		notifyEmail: notifyEmail,
		limiter:     limiter,
	}
}

type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Create valida y persiste el mensaje. La notificación por correo es best
// effort: si falla se registra pero el mensaje queda guardado igualmente.
func (s *ContactService) Create(ctx context.Context, input ContactInput) (domain.ContactMessage, error) {
	name := strings.TrimSpace(input.Name)
	emailAddr := normalizeEmail(input.Email)
	message := strings.TrimSpace(input.Message)
	if name == "" || emailAddr == "" || message == "" {
		return domain.ContactMessage{}, ErrInvalidContactMessage
	}
	if s.limiter != nil && !s.limiter.Allow(emailAddr) {
		return domain.ContactMessage{}, ErrContactRateLimited
	}

	msg := domain.ContactMessage{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     emailAddr,
		Phone:     strings.TrimSpace(input.Phone),
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.contacts.Create(ctx, msg); err != nil {
		return domain.ContactMessage{}, err
	}

	if s.emailSender != nil && s.notifyEmail != "" {
		if err := s.emailSender.SendContactNotification(ctx, s.notifyEmail, msg); err != nil {
			s.logger.Warn("contact notification failed", zap.Error(err), zap.String("id", msg.ID))
		}
	}
	return msg, nil
}

// List devuelve todos los mensajes recibidos, más recientes primero.
func (s *ContactService) List(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.contacts.List(ctx)
}

// MarkRead marca un mensaje como leído.
func (s *ContactService) MarkRead(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidContactMessage
	}
	return s.contacts.MarkRead(ctx, id)
}
