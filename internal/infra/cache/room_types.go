// Package cache provides small redis-backed read-through caches. A nil redis
// client disables caching entirely; callers always fall back to the store.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const roomTypesKey = "rooms:types"

type RoomTypeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRoomTypeCache(client *redis.Client, ttl time.Duration) *RoomTypeCache {
	return &RoomTypeCache{client: client, ttl: ttl}
}

func (c *RoomTypeCache) Get(ctx context.Context) ([]string, bool) {
	if c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, roomTypesKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Debug("room type cache read failed", "error", err)
		}
		return nil, false
	}

	var types []string
	if err := json.Unmarshal(payload, &types); err != nil {
		return nil, false
	}

	return types, true
}

func (c *RoomTypeCache) Set(ctx context.Context, types []string) {
	if c.client == nil {
		return
	}

	payload, err := json.Marshal(types)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, roomTypesKey, payload, c.ttl).Err(); err != nil {
		slog.Debug("room type cache write failed", "error", err)
	}
}
