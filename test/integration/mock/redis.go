package mock

import (
	"context"
	"sync"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisConnOnce sync.Once
var redisServer *miniredis.Miniredis
var redisConn *redis.Client

// NewRedis starts miniredis on first use and returns a client for it.
func NewRedis() *redis.Client {
	redisConnOnce.Do(func() {
		var err error
		redisServer, err = miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisConn = redis.NewClient(&redis.Options{Addr: redisServer.Addr()})
	})
	return redisConn
}

// ClearRedis drops every key.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}

// ExpireKeys moves the miniredis clock forward so keys with a TTL expire.
func ExpireKeys(d time.Duration) {
	if redisServer != nil {
		redisServer.FastForward(d)
	}
}
