package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"citator/internal/ledger"
)

// CacheStore decorates a Store with a Redis volume cache. The enrichment
// core holds no cross-invocation state; callers that do want caching wrap
// their store with this decorator. Cache failures degrade to the inner
// store, never to an error.
type CacheStore struct {
	inner  Store
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCache constructs a Redis-caching decorator around inner.
func NewCache(inner Store, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CacheStore {
	return &CacheStore{inner: inner, client: client, ttl: ttl, logger: logger}
}

func cacheKey(volume int) string {
	return fmt.Sprintf("citator:ledger:%03d", volume)
}

func (s *CacheStore) Volume(ctx context.Context, volume int) ([]ledger.Entry, error) {
	key := cacheKey(volume)

	raw, err := s.client.Get(ctx, key).Bytes()
	if err == nil {
		var entries []ledger.Entry
		if err := json.Unmarshal(raw, &entries); err == nil {
			return entries, nil
		}
		// Corrupt cache value: drop it and reload from the inner store.
		s.client.Del(ctx, key)
	} else if err != redis.Nil && s.logger != nil {
		s.logger.WarnContext(ctx, "ledger cache read failed", "volume", volume, "error", err)
	}

	entries, err := s.inner.Volume(ctx, volume)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(entries); err == nil {
		if err := s.client.Set(ctx, key, encoded, s.ttl).Err(); err != nil && s.logger != nil {
			s.logger.WarnContext(ctx, "ledger cache write failed", "volume", volume, "error", err)
		}
	}
	return entries, nil
}
