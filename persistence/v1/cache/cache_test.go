package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCache(t *testing.T) {
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer rdb.Close()

	c := New(zap.NewNop().Sugar(), rdb, time.Second)
	ctx := context.Background()

	_, ok := c.Get(ctx, "notes:all")
	require.False(t, ok)

	c.Set(ctx, "notes:all", "[]", time.Minute)
	got, ok := c.Get(ctx, "notes:all")
	require.True(t, ok)
	require.Equal(t, "[]", got)
	require.Equal(t, time.Minute, s.TTL("notes:all"))

	s.FastForward(time.Minute)
	_, ok = c.Get(ctx, "notes:all")
	require.False(t, ok)

	c.Set(ctx, "note:1", "{}", time.Minute)
	c.Set(ctx, "note:2", "{}", time.Minute)
	c.Delete(ctx, "note:1", "note:2")
	require.False(t, s.Exists("note:1"))
	require.False(t, s.Exists("note:2"))
}

func TestCacheUnavailable(t *testing.T) {
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr(), MaxRetries: -1})
	defer rdb.Close()
	s.Close()

	c := New(zap.NewNop().Sugar(), rdb, 100*time.Millisecond)
	ctx := context.Background()

	c.Set(ctx, "k", "v", time.Minute)
	_, ok := c.Get(ctx, "k")
	require.False(t, ok)
	c.Delete(ctx, "k")
}
