// Package cache wraps the key/value store used for short-lived lookups such
// as the authenticated user cache.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is the subset of the redis client the API relies on.
// A ttl <= 0 stores the key without expiry.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}

type FakeCache struct {
	GetFn   func(ctx context.Context, key string) *redis.StringCmd
	SetFn   func(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd
	DelFn   func(ctx context.Context, keys ...string) *redis.IntCmd
	CloseFn func() error
}

func (f *FakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.GetFn != nil {
		return f.GetFn(ctx, key)
	}
	panic("unexpected Get")
}

func (f *FakeCache) Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	if f.SetFn != nil {
		return f.SetFn(ctx, key, value, ttl)
	}
	panic("unexpected Set")
}

func (f *FakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.DelFn != nil {
		return f.DelFn(ctx, keys...)
	}
	panic("unexpected Del")
}

// Close is a no-op unless CloseFn is set.
func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}

// MemoryCache is an in-process Cache for tests and single-node development
// runs without redis. Expired keys are dropped lazily on read.
type MemoryCache struct {
	mu    sync.Mutex
	now   func() time.Time
	items map[string]memoryItem
}

type memoryItem struct {
	value   string
	expires time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{now: time.Now, items: map[string]memoryItem{}}
}

func (m *MemoryCache) Get(_ context.Context, key string) *redis.StringCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[key]
	if ok && !it.expires.IsZero() && !m.now().Before(it.expires) {
		delete(m.items, key)
		ok = false
	}
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(it.value, nil)
}

func (m *MemoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		s = fmt.Sprint(v)
	}
	it := memoryItem{value: s}
	if ttl > 0 {
		it.expires = m.now().Add(ttl)
	}
	m.mu.Lock()
	m.items[key] = it
	m.mu.Unlock()
	return redis.NewStatusResult("OK", nil)
}

func (m *MemoryCache) Del(_ context.Context, keys ...string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := m.items[k]; ok {
			delete(m.items, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (m *MemoryCache) Close() error { return nil }
