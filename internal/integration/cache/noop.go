package cache

import (
	"context"

	"github.com/google/uuid"
)

// NoopAnalyticsCache never stores anything.
type NoopAnalyticsCache struct{}

func (NoopAnalyticsCache) Get(context.Context, uuid.UUID, string) ([]byte, bool, error) {
	return nil, false, nil
}

func (NoopAnalyticsCache) Set(context.Context, uuid.UUID, string, []byte) error { return nil }

func (NoopAnalyticsCache) Invalidate(context.Context, uuid.UUID) error { return nil }
