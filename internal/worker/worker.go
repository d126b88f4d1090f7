// Package worker bounds how many CPU-heavy jobs (password hashing) run at once.
package worker

import (
	"context"
	"errors"
	"sync"
)

var ErrStopped = errors.New("worker pool stopped")

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a fixed-size worker pool.
type Pool interface {
	// Submit blocks until a worker takes t, ctx is done or the pool stops.
	Submit(ctx context.Context, t Task) error
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task), quit: make(chan struct{})}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.loop()
	}
	return p
}

type pool struct {
	jobs chan Task
	quit chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

func (p *pool) loop() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobs:
			if job != nil {
				job()
			}
		case <-p.quit:
			return
		}
	}
}

func (p *pool) Submit(ctx context.Context, t Task) error {
	select {
	case <-p.quit:
		return ErrStopped
	default:
	}
	select {
	case p.jobs <- t:
		return nil
	case <-p.quit:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop is idempotent and waits for running tasks to finish.
func (p *pool) Stop() {
	p.once.Do(func() { close(p.quit) })
	p.wg.Wait()
}

// Do runs fn on p and waits for it to return. A nil pool runs fn inline.
func Do(ctx context.Context, p Pool, fn func()) error {
	if p == nil {
		fn()
		return nil
	}
	done := make(chan struct{})
	if err := p.Submit(ctx, func() {
		defer close(done)
		fn()
	}); err != nil {
		return err
	}
	<-done
	return nil
}
