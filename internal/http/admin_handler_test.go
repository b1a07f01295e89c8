package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/josewalke/web-salud-mental/internal/domain"
	"github.com/josewalke/web-salud-mental/internal/service"
)

type stubAdminRepo struct {
	byEmail map[string]domain.Admin
}

func (s *stubAdminRepo) Create(_ context.Context, admin domain.Admin) error {
	s.byEmail[admin.Email] = admin
	return nil
}

func (s *stubAdminRepo) GetByEmail(_ context.Context, email string) (domain.Admin, error) {
	admin, ok := s.byEmail[email]
	if !ok {
		return domain.Admin{}, pgx.ErrNoRows
	}
	return admin, nil
}

func (s *stubAdminRepo) GetByID(_ context.Context, id string) (domain.Admin, error) {
	for _, a := range s.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Admin{}, pgx.ErrNoRows
}

func newAdminRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	repo := &stubAdminRepo{byEmail: make(map[string]domain.Admin)}
	adminSvc := service.NewAdminService(logger, repo)
	jwtSvc := service.NewJWTServiceWithStore("secret", 15*time.Minute, 30*time.Minute, service.NewMemoryRefreshTokenStore())

	if _, err := adminSvc.CreateAdmin(context.Background(), service.CreateAdminInput{
		Email:    "admin@example.com",
		Password: "secreto123",
	}); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	h := NewAdminHandler(logger, adminSvc, jwtSvc)
	r := gin.New()
	r.POST("/api/admin/login", h.Login)
	r.POST("/api/admin/refresh", h.Refresh)
	r.POST("/api/admin/logout", h.Logout)
	return r
}

func postJSONString(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAdminLoginRefreshLogout(t *testing.T) {
	r := newAdminRouter(t)

	rec := postJSONString(r, "/api/admin/login", `{"email":"admin@example.com","password":"secreto123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var loginResp struct {
		Tokens struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
		} `json:"tokens"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if loginResp.Tokens.AccessToken == "" || loginResp.Tokens.RefreshToken == "" {
		t.Fatalf("expected token pair in response")
	}

	rec = postJSONString(r, "/api/admin/refresh", `{"refresh_token":"`+loginResp.Tokens.RefreshToken+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var refreshResp struct {
		Tokens struct {
			RefreshToken string `json:"refresh_token"`
		} `json:"tokens"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &refreshResp); err != nil {
		t.Fatalf("decode refresh response: %v", err)
	}

	// El refresh usado quedó revocado por la rotación.
	rec = postJSONString(r, "/api/admin/refresh", `{"refresh_token":"`+loginResp.Tokens.RefreshToken+`"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("rotated token: expected 401, got %d", rec.Code)
	}

	rec = postJSONString(r, "/api/admin/logout", `{"refresh_token":"`+refreshResp.Tokens.RefreshToken+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", rec.Code)
	}
	rec = postJSONString(r, "/api/admin/refresh", `{"refresh_token":"`+refreshResp.Tokens.RefreshToken+`"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("logged-out token: expected 401, got %d", rec.Code)
	}
}

func TestAdminLogin_BadCredentials(t *testing.T) {
	r := newAdminRouter(t)

	rec := postJSONString(r, "/api/admin/login", `{"email":"admin@example.com","password":"incorrecta"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = postJSONString(r, "/api/admin/login", `{"email":"no-es-email","password":"x"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed email, got %d", rec.Code)
	}
}
