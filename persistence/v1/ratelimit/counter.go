// Package ratelimit counts requests per client in fixed, aligned windows.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// incr sets the window ttl only when the key is created, so a window never
// outlives its length no matter how busy the client is.
var incr = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

type Counter struct {
	rdb     *redis.Client
	window  time.Duration
	timeout time.Duration
}

func NewCounter(rdb *redis.Client, window, operationTimeout time.Duration) *Counter {
	return &Counter{rdb: rdb, window: window, timeout: operationTimeout}
}

// Key is the window key of identity at now
func (c *Counter) Key(identity string, now time.Time) string {
	seconds := int64(c.window / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	ts := now.Unix()
	return fmt.Sprintf("rl:%s:%d", identity, ts-ts%seconds)
}

// Incr counts one request of identity in the window holding now and returns the window count
func (c *Counter) Incr(ctx context.Context, identity string, now time.Time) (int64, error) {
	rCtx, rCancel := context.WithTimeout(ctx, c.timeout)
	defer rCancel()

	count, err := incr.Run(rCtx, c.rdb, []string{c.Key(identity, now)}, c.window.Milliseconds()).Int64()
	if err != nil {
		return 0, fmt.Errorf("rate limit incr: %w", err)
	}
	return count, nil
}
