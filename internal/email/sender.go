package email

import (
	"context"
	"errors"

	"github.com/josewalke/web-salud-mental/internal/domain"
)

// Sender define la interfaz para notificar por correo los mensajes del
// formulario de contacto.
type Sender interface {
	SendContactNotification(ctx context.Context, toEmail string, msg domain.ContactMessage) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendContactNotification(_ context.Context, _ string, _ domain.ContactMessage) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
