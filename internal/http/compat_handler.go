package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/josewalke/web-salud-mental/internal/service"
)

// CompatHandler expone el análisis de compatibilidad entre dos cuestionarios.
type CompatHandler struct {
	logger *zap.Logger
	svc    *service.QuestionnaireService
}

func NewCompatHandler(logger *zap.Logger, svc *service.QuestionnaireService) *CompatHandler {
	return &CompatHandler{
		logger: logger,
		svc:    svc,
	}
}

// AnalyzeCompatibility maneja POST /api/compatibility/analyze.
func (h *CompatHandler) AnalyzeCompatibility(c *gin.Context) {
	var req struct {
		QuestionnaireAID string `json:"questionnaire_a_id" binding:"required"`
		QuestionnaireBID string `json:"questionnaire_b_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analyze request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.svc.Compare(c.Request.Context(), req.QuestionnaireAID, req.QuestionnaireBID)
	if err != nil {
		if errors.Is(err, service.ErrQuestionnaireNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "questionnaire not found"})
			return
		}
		if errors.Is(err, service.ErrQuestionnaireIncomplete) {
			c.JSON(http.StatusConflict, gin.H{"error": "questionnaire not completed"})
			return
		}
		h.logger.Error("compatibility analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not analyze compatibility"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
