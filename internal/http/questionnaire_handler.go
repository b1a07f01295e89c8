package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/josewalke/web-salud-mental/internal/catalog"
	"github.com/josewalke/web-salud-mental/internal/domain"
	"github.com/josewalke/web-salud-mental/internal/service"
)

// QuestionnaireHandler mantiene dependencias para los endpoints de
// cuestionarios.
type QuestionnaireHandler struct {
	logger *zap.Logger
	svc    *service.QuestionnaireService
}

// NewQuestionnaireHandler crea una instancia con las dependencias necesarias.
func NewQuestionnaireHandler(logger *zap.Logger, svc *service.QuestionnaireService) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		logger: logger,
		svc:    svc,
	}
}

// SyncQuestionnaire maneja POST /api/questionnaires/sync.
func (h *QuestionnaireHandler) SyncQuestionnaire(c *gin.Context) {
	var req struct {
		Type         string              `json:"type" binding:"required"`
		PersonalInfo domain.PersonalInfo `json:"personalInfo" binding:"required"`
		Answers      domain.AnswerSet    `json:"answers" binding:"required"`
		Completed    bool                `json:"completed"`
		Timestamp    int64               `json:"timestamp"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid sync request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	q, err := h.svc.Sync(c.Request.Context(), service.SyncInput{
		Type:         req.Type,
		PersonalInfo: req.PersonalInfo,
		Answers:      req.Answers,
		Completed:    req.Completed,
		Timestamp:    req.Timestamp,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidSyncPayload) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid sync payload"})
			return
		}
		h.logger.Error("sync questionnaire failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not sync questionnaire"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": q.ID})
}

// ListQuestionnaires maneja GET /api/questionnaires?type=.
func (h *QuestionnaireHandler) ListQuestionnaires(c *gin.Context) {
	qType := c.Query("type")
	list, err := h.svc.ListByType(c.Request.Context(), qType)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown questionnaire type"})
			return
		}
		h.logger.Error("list questionnaires failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list questionnaires"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"questionnaires": list})
}

// GetQuestionnaire maneja GET /api/questionnaires/:id.
func (h *QuestionnaireHandler) GetQuestionnaire(c *gin.Context) {
	q, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "questionnaire not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"questionnaire": q})
}

// GetQuestions maneja GET /api/questions/:type y sirve el catálogo estático.
func (h *QuestionnaireHandler) GetQuestions(c *gin.Context) {
	questions, err := catalog.ForType(c.Param("type"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown questionnaire type"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}
