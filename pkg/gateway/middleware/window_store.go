package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// WindowStore counts hits per key inside a fixed window.
type WindowStore interface {
	// Hit records one hit for key and returns the count so far and when the window closes.
	Hit(ctx context.Context, key string, window time.Duration) (count int64, resetAt time.Time, err error)
}

type windowEntry struct {
	count   int64
	resetAt time.Time
}

type MemoryWindowStoreOption func(s *MemoryWindowStore)

func WithWindowClock(now func() time.Time) MemoryWindowStoreOption {
	return func(s *MemoryWindowStore) {
		s.now = now
	}
}

// MemoryWindowStore keeps windows in process. Expired windows are replaced lazily on the next hit.
type MemoryWindowStore struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
	now     func() time.Time
}

func NewMemoryWindowStore(opts ...MemoryWindowStoreOption) *MemoryWindowStore {
	s := &MemoryWindowStore{
		entries: make(map[string]*windowEntry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryWindowStore) Hit(_ context.Context, key string, window time.Duration) (int64, time.Time, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.entries[key]
	if !ok || !now.Before(ent.resetAt) {
		ent = &windowEntry{resetAt: now.Add(window)}
		s.entries[key] = ent
	}
	ent.count++
	return ent.count, ent.resetAt, nil
}

type RedisWindowStoreOption func(s *RedisWindowStore)

func WithWindowPrefix(prefix string) RedisWindowStoreOption {
	return func(s *RedisWindowStore) {
		s.prefix = strings.Trim(prefix, ":")
	}
}

// RedisWindowStore shares windows between gateway instances.
type RedisWindowStore struct {
	rdb    redis.UniversalClient
	prefix string
}

func NewRedisWindowStore(rdb redis.UniversalClient, opts ...RedisWindowStoreOption) *RedisWindowStore {
	s := &RedisWindowStore{
		rdb:    rdb,
		prefix: "sicoob:ratelimit",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisWindowStore) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	redisKey := s.prefix + ":" + key

	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pttl := pipe.PTTL(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, err
	}

	now := time.Now()
	ttl := pttl.Val()
	// A fresh key (or one that lost its TTL) starts a new window.
	if incr.Val() == 1 || ttl < 0 {
		if err := s.rdb.PExpire(ctx, redisKey, window).Err(); err != nil {
			return 0, time.Time{}, err
		}
		ttl = window
	}
	return incr.Val(), now.Add(ttl), nil
}
