package progress

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/josewalke/web-salud-mental/internal/domain"
)

type redisDraftClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisDraftStore struct {
	client redisDraftClient
	prefix string
}

// NewRedisDraftStore crea un almacén de borradores respaldado por Redis.
// Las claves expiran solas a las 3 horas; la comprobación de vigencia por
// timestamp del Store sigue aplicando igualmente.
func NewRedisDraftStore(client *redis.Client) DraftStore {
	if client == nil {
		return nil
	}
	return &redisDraftStore{client: client, prefix: "drafts:"}
}

func (s *redisDraftStore) Save(ctx context.Context, qType string, draft domain.QuestionnaireDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.prefix+draftKey(qType), raw, DraftTTL).Err()
}

func (s *redisDraftStore) Load(ctx context.Context, qType string) (domain.QuestionnaireDraft, bool, error) {
	raw, err := s.client.Get(ctx, s.prefix+draftKey(qType)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.QuestionnaireDraft{}, false, nil
		}
		return domain.QuestionnaireDraft{}, false, err
	}
	var draft domain.QuestionnaireDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return domain.QuestionnaireDraft{}, false, nil
	}
	return draft, true, nil
}

func (s *redisDraftStore) Delete(ctx context.Context, qType string) error {
	return s.client.Del(ctx, s.prefix+draftKey(qType)).Err()
}
