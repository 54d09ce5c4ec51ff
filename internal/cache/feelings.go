// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// feelings.go provides a Valkey-backed cache for the projected public
// feelings. The public corpus is small and read-heavy, so the serialized
// projection (full list and per-slug entries) is stored in Valkey and
// any admin mutation of feelings, verses, or duas invalidates it.
// Reads fall through to the database on miss or Valkey error; the cache
// is never a correctness dependency.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// feelingKeyPrefix namespaces cached projections in Valkey.
	feelingKeyPrefix = "feelings:"

	// listKey is the cache key for the full projected list.
	listKey = "_all"

	// DefaultFeelingsTTL is how long a cached projection stays valid
	// without invalidation.
	DefaultFeelingsTTL = 5 * time.Minute
)

// FeelingsCache manages cached public-feeling projections in Valkey.
type FeelingsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFeelingsCache creates a feelings cache backed by the given Valkey client.
func NewFeelingsCache(client *redis.Client, ttl time.Duration) *FeelingsCache {
	if ttl == 0 {
		ttl = DefaultFeelingsTTL
	}
	return &FeelingsCache{client: client, ttl: ttl}
}

// GetList retrieves the cached projected list. Returns false on miss.
func (c *FeelingsCache) GetList(ctx context.Context) ([]byte, bool) {
	return c.get(ctx, listKey)
}

// SetList stores the serialized projected list.
func (c *FeelingsCache) SetList(ctx context.Context, payload []byte) {
	c.set(ctx, listKey, payload)
}

// GetSlug retrieves a cached single projection by slug. Returns false on miss.
func (c *FeelingsCache) GetSlug(ctx context.Context, slug string) ([]byte, bool) {
	return c.get(ctx, slug)
}

// SetSlug stores a serialized single projection under its slug.
func (c *FeelingsCache) SetSlug(ctx context.Context, slug string, payload []byte) {
	c.set(ctx, slug, payload)
}

// Invalidate removes every cached projection. Called after any mutation
// of feelings, verses, or duas; a verse or dua edit can change any
// projection that links it, so everything goes.
func (c *FeelingsCache) Invalidate(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := c.client.Scan(ctx, cursor, feelingKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("feelings cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("feelings cache delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Debug("feelings cache invalidated", "deleted", deleted)
	}
}

func (c *FeelingsCache) get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, feelingKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("feelings cache get error", "key", key, "error", err)
		return nil, false
	}
	return val, true
}

func (c *FeelingsCache) set(ctx context.Context, key string, payload []byte) {
	if err := c.client.Set(ctx, feelingKeyPrefix+key, payload, c.ttl).Err(); err != nil {
		slog.Warn("feelings cache set error", "key", key, "error", err)
	}
}
