package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AnalyticsCache stores serialized analytics results per owner.
// A miss is reported as (nil, false, nil).
type AnalyticsCache interface {
	Get(ctx context.Context, userID uuid.UUID, key string) ([]byte, bool, error)
	Set(ctx context.Context, userID uuid.UUID, key string, value []byte) error

	// Invalidate drops every cached result for the owner.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// SchedulerLock serializes scheduler cycles across processes.
type SchedulerLock interface {
	// Acquire tries to take the named lock for at most ttl. ok is false when
	// another holder owns it. release must be called when ok is true.
	Acquire(ctx context.Context, name string, ttl time.Duration) (release func(), ok bool, err error)
}
