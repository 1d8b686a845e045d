package cache_test

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-planner/backend/internal/integration/cache"
)

func newTestRedisClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}

func TestAnalyticsCache_SetGetInvalidate(t *testing.T) {
	client, mr := newTestRedisClient(t)
	c := cache.NewAnalyticsCache(client, time.Minute)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	_, ok, err := c.Get(ctx, alice, "summary:-:-:")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, alice, "summary:-:-:", []byte(`{"balance":"1"}`)))
	require.NoError(t, c.Set(ctx, bob, "summary:-:-:", []byte(`{"balance":"2"}`)))

	got, ok, err := c.Get(ctx, alice, "summary:-:-:")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"balance":"1"}`, string(got))
	assert.True(t, mr.Exists("analytics:"+alice.String()+":v0:summary:-:-:"))

	require.NoError(t, c.Invalidate(ctx, alice))

	_, ok, err = c.Get(ctx, alice, "summary:-:-:")
	require.NoError(t, err)
	assert.False(t, ok)

	// Other owners are unaffected.
	_, ok, err = c.Get(ctx, bob, "summary:-:-:")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAnalyticsCache_EntriesExpire(t *testing.T) {
	client, mr := newTestRedisClient(t)
	c := cache.NewAnalyticsCache(client, time.Minute)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, c.Set(ctx, userID, "monthly-trend:-:-:", []byte("[]")))
	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Get(ctx, userID, "monthly-trend:-:-:")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAnalyticsCache_ReportsRedisErrors(t *testing.T) {
	client, mr := newTestRedisClient(t)
	c := cache.NewAnalyticsCache(client, time.Minute)
	mr.Close()

	_, _, err := c.Get(context.Background(), uuid.New(), "summary:-:-:")
	assert.Error(t, err)
}

func TestLock_ExclusiveUntilReleased(t *testing.T) {
	client, _ := newTestRedisClient(t)
	ctx := context.Background()
	a, b := cache.NewLock(client), cache.NewLock(client)

	release, ok, err := a.Acquire(ctx, "recurring-scheduler", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = b.Acquire(ctx, "recurring-scheduler", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	release()

	releaseB, ok, err := b.Acquire(ctx, "recurring-scheduler", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	releaseB()
}

func TestLock_ReleaseKeepsForeignHolder(t *testing.T) {
	client, mr := newTestRedisClient(t)
	ctx := context.Background()
	l := cache.NewLock(client)

	release, ok, err := l.Acquire(ctx, "recurring-scheduler", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	// Our lease runs out and another process takes the lock.
	mr.FastForward(2 * time.Second)
	_, ok, err = l.Acquire(ctx, "recurring-scheduler", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	release()
	assert.True(t, mr.Exists("lock:recurring-scheduler"))
}

func TestLocalLock(t *testing.T) {
	l := cache.NewLocalLock()
	ctx := context.Background()

	release, ok, err := l.Acquire(ctx, "x", 0)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, _ = l.Acquire(ctx, "x", 0)
	assert.False(t, ok)

	release()
	release()

	_, ok, _ = l.Acquire(ctx, "x", 0)
	assert.True(t, ok)
}

func TestNoopAnalyticsCache(t *testing.T) {
	var c cache.NoopAnalyticsCache
	require.NoError(t, c.Set(context.Background(), uuid.New(), "k", []byte("v")))
	_, ok, err := c.Get(context.Background(), uuid.New(), "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
