package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ListingStore is satisfied by both the Redis and the no-op cache.
type ListingStore interface {
	Get(ctx context.Context, accommodationID uuid.UUID) ([]*queries.RoomTypeView, bool, error)
	Set(ctx context.Context, accommodationID uuid.UUID, views []*queries.RoomTypeView) error
	Invalidate(ctx context.Context, accommodationID uuid.UUID) error
}

// RoomTypeCache keeps room type listings per accommodation with a fixed TTL.
// It never stores availability.
type RoomTypeCache struct {
	client redis.Cmdable
	ttl    time.Duration
	prefix string
}

func NewRoomTypeCache(client redis.Cmdable, ttl time.Duration, prefix string) *RoomTypeCache {
	return &RoomTypeCache{client: client, ttl: ttl, prefix: prefix}
}

func (c *RoomTypeCache) key(accommodationID uuid.UUID) string {
	return c.prefix + ":room-types:" + accommodationID.String()
}

func (c *RoomTypeCache) Get(ctx context.Context, accommodationID uuid.UUID) ([]*queries.RoomTypeView, bool, error) {
	raw, err := c.client.Get(ctx, c.key(accommodationID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, infra.WrapRepoErr("failed to read room type cache", err, infra.KindCacheFailure)
	}

	var views []*queries.RoomTypeView
	if err := json.Unmarshal(raw, &views); err != nil {
		// A corrupt entry is treated as a miss and overwritten on the next Set.
		return nil, false, infra.WrapRepoErr("failed to decode room type cache entry", err, infra.KindCacheFailure)
	}
	return views, true, nil
}

func (c *RoomTypeCache) Set(ctx context.Context, accommodationID uuid.UUID, views []*queries.RoomTypeView) error {
	if views == nil {
		views = []*queries.RoomTypeView{}
	}
	raw, err := json.Marshal(views)
	if err != nil {
		return infra.WrapRepoErr("failed to encode room type cache entry", err, infra.KindCacheFailure)
	}
	if err := c.client.Set(ctx, c.key(accommodationID), raw, c.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to write room type cache", err, infra.KindCacheFailure)
	}
	return nil
}

func (c *RoomTypeCache) Invalidate(ctx context.Context, accommodationID uuid.UUID) error {
	if err := c.client.Del(ctx, c.key(accommodationID)).Err(); err != nil {
		return infra.WrapRepoErr("failed to invalidate room type cache", err, infra.KindCacheFailure)
	}
	return nil
}

// NoopRoomTypeCache is used when CACHE_ENABLED=false; every read is a miss.
type NoopRoomTypeCache struct{}

func (NoopRoomTypeCache) Get(context.Context, uuid.UUID) ([]*queries.RoomTypeView, bool, error) {
	return nil, false, nil
}

func (NoopRoomTypeCache) Set(context.Context, uuid.UUID, []*queries.RoomTypeView) error {
	return nil
}

func (NoopRoomTypeCache) Invalidate(context.Context, uuid.UUID) error {
	return nil
}
