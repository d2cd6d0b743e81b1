// Package cache holds the redis-backed read-side helpers: a short-lived
// cache for the resolved room view and a pub/sub fanout for change events.
package cache

import (
	"context"
	"errors"
	"time"

	"hotel-ops/internal/infra"

	"github.com/redis/go-redis/v9"
)

const roomViewKey = "hotel-ops:rooms:view"

// RoomViewCache keeps the serialized resolved room listing for a short TTL
// so repeated dashboard polls do not re-run the resolver against the store.
type RoomViewCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRoomViewCache(client *redis.Client, ttl time.Duration) *RoomViewCache {
	return &RoomViewCache{client: client, ttl: ttl}
}

// Get returns the cached payload, or ok=false on a miss.
func (c *RoomViewCache) Get(ctx context.Context) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, roomViewKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, infra.WrapRepoErr("failed to read room view cache", err)
	}
	return payload, true, nil
}

func (c *RoomViewCache) Set(ctx context.Context, payload []byte) error {
	if err := c.client.Set(ctx, roomViewKey, payload, c.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to write room view cache", err)
	}
	return nil
}

func (c *RoomViewCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, roomViewKey).Err(); err != nil {
		return infra.WrapRepoErr("failed to invalidate room view cache", err)
	}
	return nil
}
