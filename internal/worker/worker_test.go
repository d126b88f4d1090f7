package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	p := NewPool(3)
	var mu sync.Mutex
	var wg sync.WaitGroup
	count := 0
	for i := 0; i < 5; i++ {
		wg.Add(1)
		require.NoError(t, p.Submit(context.Background(), func() {
			defer wg.Done()
			mu.Lock()
			count++
			mu.Unlock()
		}))
	}
	wg.Wait()
	p.Stop()
	require.Equal(t, 5, count)
}

func TestPoolBoundsConcurrency(t *testing.T) {
	p := NewPool(2)
	defer p.Stop()

	var running, peak int32
	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = Do(context.Background(), p, func() {
				n := atomic.AddInt32(&running, 1)
				for {
					old := atomic.LoadInt32(&peak)
					if n <= old || atomic.CompareAndSwapInt32(&peak, old, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				atomic.AddInt32(&running, -1)
			})
		}()
	}
	wg.Wait()
	require.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestSubmitAfterStop(t *testing.T) {
	p := NewPool(0)
	p.Stop()
	p.Stop()
	require.ErrorIs(t, p.Submit(context.Background(), func() {}), ErrStopped)
	require.ErrorIs(t, Do(context.Background(), p, func() {}), ErrStopped)
}

func TestSubmitContextCancelled(t *testing.T) {
	p := NewPool(1)
	defer p.Stop()

	release := make(chan struct{})
	require.NoError(t, p.Submit(context.Background(), func() { <-release }))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := p.Submit(ctx, func() {})
	close(release)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDoNilPool(t *testing.T) {
	ran := false
	require.NoError(t, Do(context.Background(), nil, func() { ran = true }))
	require.True(t, ran)
}
