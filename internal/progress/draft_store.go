package progress

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/josewalke/web-salud-mental/internal/domain"
)

// DraftTTL es la ventana de vigencia de un borrador persistido.
const DraftTTL = 3 * time.Hour

// DraftStore persiste borradores de cuestionario por tipo. El contenido debe
// sobrevivir un JSON round-trip exacto; contenido no parseable se trata como
// ausente, nunca como error duro.
type DraftStore interface {
	Save(ctx context.Context, qType string, draft domain.QuestionnaireDraft) error
	Load(ctx context.Context, qType string) (domain.QuestionnaireDraft, bool, error)
	Delete(ctx context.Context, qType string) error
}

func draftKey(qType string) string {
	return "questionnaire:" + qType
}

type memoryDraftStore struct {
	mu    sync.Mutex
	items map[string][]byte
}

// NewMemoryDraftStore crea un almacén de borradores en memoria.
func NewMemoryDraftStore() DraftStore {
	return &memoryDraftStore{items: make(map[string][]byte)}
}

func (s *memoryDraftStore) Save(_ context.Context, qType string, draft domain.QuestionnaireDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[draftKey(qType)] = raw
	return nil
}

func (s *memoryDraftStore) Load(_ context.Context, qType string) (domain.QuestionnaireDraft, bool, error) {
	s.mu.Lock()
	raw, ok := s.items[draftKey(qType)]
	s.mu.Unlock()
	if !ok {
		return domain.QuestionnaireDraft{}, false, nil
	}
	var draft domain.QuestionnaireDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		// Contenido corrupto: se trata como cache-miss silencioso.
		return domain.QuestionnaireDraft{}, false, nil
	}
	return draft, true, nil
}

func (s *memoryDraftStore) Delete(_ context.Context, qType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, draftKey(qType))
	return nil
}
