package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/josewalke/web-salud-mental/internal/service"
)

// ContactHandler mantiene dependencias para el formulario de contacto.
type ContactHandler struct {
	logger *zap.Logger
	svc    *service.ContactService
}

func NewContactHandler(logger *zap.Logger, svc *service.ContactService) *ContactHandler {
	return &ContactHandler{
		logger: logger,
		svc:    svc,
	}
}

// CreateContact maneja POST /api/contact.
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Phone   string `json:"phone"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid contact request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	msg, err := h.svc.Create(c.Request.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidContactMessage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact message"})
			return
		}
		if errors.Is(err, service.ErrContactRateLimited) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many messages, try again later"})
			return
		}
		h.logger.Error("create contact failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// ListContacts maneja GET /api/contact.
func (h *ContactHandler) ListContacts(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list contacts failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": list})
}

// MarkContactRead maneja POST /api/contact/:id/read.
func (h *ContactHandler) MarkContactRead(c *gin.Context) {
	if err := h.svc.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("mark contact read failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "read"})
}
