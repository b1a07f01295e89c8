package progress

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/josewalke/web-salud-mental/internal/domain"
)

func testPayload() SyncPayload {
	return SyncPayload{
		Type:         domain.QuestionnaireTypePareja,
		PersonalInfo: validInfo(),
		Answers:      domain.AnswerSet{"1": "leer", "2": "Menos de 6 meses"},
		Completed:    true,
		Timestamp:    1700000000000,
	}
}

func TestHTTPSyncClient_Success(t *testing.T) {
	var received SyncPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/questionnaires/sync" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type: %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "id": "q-1"})
	}))
	defer server.Close()

	client := NewHTTPSyncClient(server.URL, nil)
	if err := client.SyncQuestionnaire(context.Background(), testPayload()); err != nil {
		t.Fatalf("sync: %v", err)
	}
	if received.Answers["1"] != "leer" || !received.Completed {
		t.Fatalf("payload mangled in transit: %+v", received)
	}
}

func TestHTTPSyncClient_Non2xxIsSyncError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHTTPSyncClient(server.URL, nil)
	err := client.SyncQuestionnaire(context.Background(), testPayload())
	var syncErr *SyncError
	if !errors.As(err, &syncErr) {
		t.Fatalf("expected SyncError, got %v", err)
	}
	if syncErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", syncErr.StatusCode)
	}
}

func TestHTTPSyncClient_SuccessFalseIsSyncError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "tipo desconocido"})
	}))
	defer server.Close()

	client := NewHTTPSyncClient(server.URL, nil)
	err := client.SyncQuestionnaire(context.Background(), testPayload())
	var syncErr *SyncError
	if !errors.As(err, &syncErr) {
		t.Fatalf("expected SyncError on success=false, got %v", err)
	}
}

func TestHTTPSyncClient_NetworkErrorIsSyncError(t *testing.T) {
	client := NewHTTPSyncClient("http://127.0.0.1:1", nil)
	err := client.SyncQuestionnaire(context.Background(), testPayload())
	var syncErr *SyncError
	if !errors.As(err, &syncErr) {
		t.Fatalf("expected SyncError on refused connection, got %v", err)
	}
}
