package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-planner/backend/internal/application/adapter"
)

// DefaultAnalyticsTTL is used when no TTL is configured.
const DefaultAnalyticsTTL = 5 * time.Minute

// AnalyticsCache implements adapter.AnalyticsCache on Redis.
//
// Keys embed a per-user version counter. Invalidate bumps the counter, so
// stale entries are never read again and simply expire.
type AnalyticsCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewAnalyticsCache creates a new AnalyticsCache.
func NewAnalyticsCache(client *redis.Client, ttl time.Duration) *AnalyticsCache {
	if ttl <= 0 {
		ttl = DefaultAnalyticsTTL
	}
	return &AnalyticsCache{
		client: client,
		prefix: "analytics:",
		ttl:    ttl,
	}
}

var _ adapter.AnalyticsCache = (*AnalyticsCache)(nil)

// Get returns the cached value for key. A miss is (nil, false, nil).
func (c *AnalyticsCache) Get(ctx context.Context, userID uuid.UUID, key string) ([]byte, bool, error) {
	fullKey, err := c.key(ctx, userID, key)
	if err != nil {
		return nil, false, err
	}

	value, err := c.client.Get(ctx, fullKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read analytics cache: %w", err)
	}
	return value, true, nil
}

// Set stores value under key with the configured TTL.
func (c *AnalyticsCache) Set(ctx context.Context, userID uuid.UUID, key string, value []byte) error {
	fullKey, err := c.key(ctx, userID, key)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, fullKey, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write analytics cache: %w", err)
	}
	return nil
}

// Invalidate bumps the user's version.
func (c *AnalyticsCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Incr(ctx, c.versionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate analytics cache: %w", err)
	}
	return nil
}

func (c *AnalyticsCache) key(ctx context.Context, userID uuid.UUID, key string) (string, error) {
	version, err := c.client.Get(ctx, c.versionKey(userID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("failed to read analytics cache version: %w", err)
	}
	return fmt.Sprintf("%s%s:v%d:%s", c.prefix, userID, version, key), nil
}

func (c *AnalyticsCache) versionKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s%s:version", c.prefix, userID)
}
