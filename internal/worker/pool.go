package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/baharkarakas/storefront-backend/internal/metrics"
)

// ErrStopped is returned for work offered after Stop.
var ErrStopped = errors.New("worker pool stopped")

type task func()

// Pool runs jobs on a fixed number of goroutines.
type Pool struct {
	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
	jobs    chan task
}

func NewPool(n int) *Pool {
	if n <= 0 {
		n = 1
	}
	p := &Pool{jobs: make(chan task, 1024)}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				metrics.WorkerQueueDepth.Set(float64(len(p.jobs)))
				job()
			}
		}()
	}
	return p
}

// Submit queues f without waiting for it to run.
func (p *Pool) Submit(f func()) error {
	return p.enqueue(context.Background(), f)
}

// Do enqueues f and waits until it has run. The context only bounds the
// wait for a queue slot; a started job always runs to completion.
func (p *Pool) Do(ctx context.Context, f func()) error {
	done := make(chan struct{})
	job := func() {
		defer close(done)
		f()
	}
	if err := p.enqueue(ctx, job); err != nil {
		return err
	}
	<-done
	return nil
}

func (p *Pool) enqueue(ctx context.Context, job task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrStopped
	}
	select {
	case p.jobs <- job:
		metrics.WorkerQueueDepth.Set(float64(len(p.jobs)))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop rejects new work, runs what is queued and waits for the workers.
// Calling it more than once is harmless.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}
