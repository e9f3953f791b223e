package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mashkanta-digital/admin-api/internal/models"
)

const snapshotCacheKey = "scheduling:settings"

// SnapshotCache keeps the scheduling settings document in Redis so the
// validator does not hit Postgres on every booking attempt. All methods
// degrade gracefully when no client is configured.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewSnapshotCache constructs a snapshot cache.
func NewSnapshotCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *SnapshotCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &SnapshotCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached settings document, or (nil, nil) on a miss.
func (c *SnapshotCache) Get(ctx context.Context) (*models.SchedulingSettings, error) {
	if c.client == nil {
		return nil, nil
	}
	raw, err := c.client.Get(ctx, snapshotCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", snapshotCacheKey, err)
	}
	var settings models.SchedulingSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("unmarshal cached settings: %w", err)
	}
	return &settings, nil
}

// Set stores the settings document with the configured TTL. Failures
// are logged, not propagated: the cache is an optimization.
func (c *SnapshotCache) Set(ctx context.Context, settings *models.SchedulingSettings) {
	if c.client == nil || settings == nil {
		return
	}
	payload, err := json.Marshal(settings)
	if err != nil {
		c.logger.Warn("marshal settings for cache", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, snapshotCacheKey, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("cache scheduling settings", zap.Error(err))
	}
}

// Invalidate drops the cached document after a save.
func (c *SnapshotCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, snapshotCacheKey).Err(); err != nil {
		c.logger.Warn("invalidate scheduling settings cache", zap.Error(err))
	}
}
