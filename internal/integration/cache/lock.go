package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-planner/backend/internal/application/adapter"
)

// releaseScript deletes the lock only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Lock implements adapter.SchedulerLock with SET NX PX.
type Lock struct {
	client *redis.Client
	prefix string
}

// NewLock creates a new Redis lock.
func NewLock(client *redis.Client) *Lock {
	return &Lock{
		client: client,
		prefix: "lock:",
	}
}

var _ adapter.SchedulerLock = (*Lock)(nil)

// Acquire tries to take the lock without blocking.
func (l *Lock) Acquire(ctx context.Context, name string, ttl time.Duration) (func(), bool, error) {
	key := l.prefix + name
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire lock %s: %w", name, err)
	}
	if !ok {
		return nil, false, nil
	}

	release := func() {
		// The caller's ctx may already be cancelled at shutdown.
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
			slog.WarnContext(ctx, "failed to release lock", "lock", name, "error", err)
		}
	}
	return release, true, nil
}

// LocalLock is an in-process adapter.SchedulerLock used when Redis is disabled.
type LocalLock struct {
	mu   sync.Mutex
	held map[string]bool
}

// NewLocalLock creates a new LocalLock.
func NewLocalLock() *LocalLock {
	return &LocalLock{held: map[string]bool{}}
}

var _ adapter.SchedulerLock = (*LocalLock)(nil)

// Acquire takes the named lock if it is free. ttl is ignored.
func (l *LocalLock) Acquire(_ context.Context, name string, _ time.Duration) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.held[name] {
		return nil, false, nil
	}
	l.held[name] = true

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, name)
			l.mu.Unlock()
		})
	}, true, nil
}
