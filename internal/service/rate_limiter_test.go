package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestMemoryRateLimiter_EnforcesMax(t *testing.T) {
	limiter := NewMemoryRateLimiter(time.Minute, 2)

	if !limiter.Allow("a@b.com") || !limiter.Allow("a@b.com") {
		t.Fatalf("first two hits must pass")
	}
	if limiter.Allow("a@b.com") {
		t.Fatalf("third hit inside the window must be rejected")
	}
	// Claves distintas no comparten cuota.
	if !limiter.Allow("otra@b.com") {
		t.Fatalf("different key must have its own quota")
	}
}

func TestMemoryRateLimiter_WindowSlides(t *testing.T) {
	limiter := NewMemoryRateLimiter(30*time.Millisecond, 1)

	if !limiter.Allow("a@b.com") {
		t.Fatalf("first hit must pass")
	}
	if limiter.Allow("a@b.com") {
		t.Fatalf("second hit inside window must be rejected")
	}
	time.Sleep(40 * time.Millisecond)
	if !limiter.Allow("a@b.com") {
		t.Fatalf("hit after window must pass again")
	}
}

type mockRedisEvaler struct {
	count   int64
	err     error
	lastKey string
}

func (m *mockRedisEvaler) Eval(ctx context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	if len(keys) > 0 {
		m.lastKey = keys[0]
	}
	cmd := redis.NewCmd(ctx)
	if m.err != nil {
		cmd.SetErr(m.err)
		return cmd
	}
	m.count++
	cmd.SetVal(m.count)
	return cmd
}

func TestRedisRateLimiter_CountsAndPrefixesKey(t *testing.T) {
	mock := &mockRedisEvaler{}
	limiter := &redisRateLimiter{client: mock, window: time.Minute, max: 2, prefix: "contact:rl:"}

	if !limiter.Allow(" A@B.com ") || !limiter.Allow("a@b.com") {
		t.Fatalf("first two hits must pass")
	}
	if limiter.Allow("a@b.com") {
		t.Fatalf("third hit must be rejected")
	}
	if mock.lastKey != "contact:rl:a@b.com" {
		t.Fatalf("key must be normalized and prefixed, got %q", mock.lastKey)
	}
}

func TestRedisRateLimiter_FailsOpen(t *testing.T) {
	mock := &mockRedisEvaler{err: errors.New("conn reset")}
	limiter := &redisRateLimiter{client: mock, window: time.Minute, max: 1, prefix: "contact:rl:"}

	if !limiter.Allow("a@b.com") {
		t.Fatalf("redis failures must not block the contact form")
	}
}

func TestRedisRateLimiter_RejectsEmptyKey(t *testing.T) {
	limiter := &redisRateLimiter{client: &mockRedisEvaler{}, window: time.Minute, max: 1, prefix: "contact:rl:"}
	if limiter.Allow("   ") {
		t.Fatalf("blank key must be rejected")
	}
}
