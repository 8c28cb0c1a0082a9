// Package redis connects the optional ledger volume cache. Enrichment holds
// no cross-invocation state of its own; Redis only ever backs the
// store.CacheStore decorator, so this package hands out a plain client and
// leaves key layout and TTL policy to the cache.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"citator/internal/platform/config"
)

// New dials Redis from configuration and verifies the connection. Returns
// nil without error when no URL is configured: the ledger cache is optional
// and its absence is not a startup failure.
func New(cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}
