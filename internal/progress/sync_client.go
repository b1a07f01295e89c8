package progress

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/josewalke/web-salud-mental/internal/domain"
)

// SyncPayload es el cuerpo de la sincronización final: respuestas ya
// normalizadas a strings planos.
type SyncPayload struct {
	Type         string              `json:"type"`
	PersonalInfo domain.PersonalInfo `json:"personalInfo"`
	Answers      domain.AnswerSet    `json:"answers"`
	Completed    bool                `json:"completed"`
	Timestamp    int64               `json:"timestamp"`
}

// SyncClient envía el cuestionario completado al backend.
type SyncClient interface {
	SyncQuestionnaire(ctx context.Context, payload SyncPayload) error
}

// HTTPSyncClient implementa SyncClient contra el endpoint REST del backend.
type HTTPSyncClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPSyncClient construye un cliente apuntando a la API de cuestionarios.
func NewHTTPSyncClient(baseURL string, logger *zap.Logger) *HTTPSyncClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPSyncClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

type syncResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// SyncQuestionnaire hace el POST de sincronización. Cualquier estado no-2xx
// o error de red se devuelve como *SyncError; la llamada es todo-o-nada, sin
// sincronización parcial.
func (c *HTTPSyncClient) SyncQuestionnaire(ctx context.Context, payload SyncPayload) error {
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return &SyncError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/questionnaires/sync", bytes.NewReader(bodyBytes))
	if err != nil {
		return &SyncError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &SyncError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &SyncError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("sync rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("type", payload.Type),
		)
		return &SyncError{StatusCode: resp.StatusCode}
	}

	var sr syncResponse
	if err := json.Unmarshal(respBody, &sr); err != nil {
		return &SyncError{StatusCode: resp.StatusCode, Err: err}
	}
	if !sr.Success {
		return &SyncError{StatusCode: resp.StatusCode}
	}
	return nil
}
