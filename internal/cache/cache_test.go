package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCache(t *testing.T) {
	ctx := context.Background()
	c := &FakeCache{}
	require.Panics(t, func() { c.Get(ctx, "k") })
	require.Panics(t, func() { c.Set(ctx, "k", 1, 0) })
	require.Panics(t, func() { c.Del(ctx, "k") })
	require.NoError(t, c.Close())

	var deleted []string
	c.GetFn = func(ctx context.Context, key string) *redis.StringCmd {
		return redis.NewStringResult("v", nil)
	}
	c.SetFn = func(ctx context.Context, key string, val any, ttl time.Duration) *redis.StatusCmd {
		return redis.NewStatusResult("OK", nil)
	}
	c.DelFn = func(ctx context.Context, keys ...string) *redis.IntCmd {
		deleted = append(deleted, keys...)
		return redis.NewIntResult(int64(len(keys)), nil)
	}
	c.CloseFn = func() error { return errors.New("close") }

	require.Equal(t, "v", c.Get(ctx, "k").Val())
	require.Equal(t, "OK", c.Set(ctx, "k", 1, 0).Val())
	require.Equal(t, int64(2), c.Del(ctx, "a", "b").Val())
	require.Equal(t, []string{"a", "b"}, deleted)
	require.EqualError(t, c.Close(), "close")
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemoryCache()
	m.now = func() time.Time { return now }

	require.ErrorIs(t, m.Get(ctx, "missing").Err(), redis.Nil)

	require.NoError(t, m.Set(ctx, "bytes", []byte("raw"), 0).Err())
	require.NoError(t, m.Set(ctx, "num", 42, 0).Err())
	require.NoError(t, m.Set(ctx, "short", "v", time.Second).Err())
	require.Equal(t, "raw", m.Get(ctx, "bytes").Val())
	require.Equal(t, "42", m.Get(ctx, "num").Val())
	require.Equal(t, "v", m.Get(ctx, "short").Val())

	now = now.Add(time.Second)
	require.ErrorIs(t, m.Get(ctx, "short").Err(), redis.Nil)
	require.Equal(t, "raw", m.Get(ctx, "bytes").Val(), "keys without ttl never expire")

	require.Equal(t, int64(1), m.Del(ctx, "bytes", "missing").Val())
	require.ErrorIs(t, m.Get(ctx, "bytes").Err(), redis.Nil)
	require.NoError(t, m.Close())
}
