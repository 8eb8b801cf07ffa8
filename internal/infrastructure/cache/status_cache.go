package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/KUD2IP/StreamFlow/internal/domain/entities"
)

const statusKeyPrefix = "video_status:"

// StatusCache keeps recently read/written video statuses in redis. The
// status endpoint is polled aggressively by clients during processing, so
// reads are served from here when possible. Cache failures degrade to the
// database, never to an error.
type StatusCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStatusCache(rdb *redis.Client, ttl time.Duration) *StatusCache {
	return &StatusCache{rdb: rdb, ttl: ttl}
}

func (c *StatusCache) Get(ctx context.Context, videoID uuid.UUID) (entities.Status, bool) {
	value, err := c.rdb.Get(ctx, statusKeyPrefix+videoID.String()).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Status cache read failed for %s: %v", videoID, err)
		}
		return "", false
	}
	return entities.Status(value), true
}

func (c *StatusCache) Set(ctx context.Context, videoID uuid.UUID, status entities.Status) {
	if err := c.rdb.Set(ctx, statusKeyPrefix+videoID.String(), string(status), c.ttl).Err(); err != nil {
		log.Printf("Status cache write failed for %s: %v", videoID, err)
	}
}
