// Package cache is the best effort key/value layer in front of the store.
// Failures are logged and reported as misses, never returned.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type Cache struct {
	log     *zap.SugaredLogger
	rdb     *redis.Client
	timeout time.Duration
}

func New(log *zap.SugaredLogger, rdb *redis.Client, operationTimeout time.Duration) *Cache {
	return &Cache{log: log, rdb: rdb, timeout: operationTimeout}
}

// Get reports whether key holds a value
func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	tcCtx, tcCancel := context.WithTimeout(ctx, c.timeout)
	defer tcCancel()

	get, err := c.rdb.Get(tcCtx, key).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return "", false
	case err != nil:
		c.log.Errorw("cache", "op", "get", "key", key, "ERROR", err)
		return "", false
	default:
		return get, true
	}
}

func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	tcCtx, tcCancel := context.WithTimeout(ctx, c.timeout)
	defer tcCancel()

	if err := c.rdb.Set(tcCtx, key, value, ttl).Err(); err != nil {
		c.log.Errorw("cache", "op", "set", "key", key, "ERROR", err)
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	tcCtx, tcCancel := context.WithTimeout(ctx, c.timeout)
	defer tcCancel()

	if err := c.rdb.Del(tcCtx, keys...).Err(); err != nil {
		c.log.Errorw("cache", "op", "delete", "keys", keys, "ERROR", err)
	}
}
