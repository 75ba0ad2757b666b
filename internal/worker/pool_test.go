package worker

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolDoWaitsForJob(t *testing.T) {
	p := NewPool(2)
	defer p.Stop()

	var n int64
	for i := 0; i < 20; i++ {
		require.NoError(t, p.Do(context.Background(), func() { atomic.AddInt64(&n, 1) }))
	}
	assert.Equal(t, int64(20), atomic.LoadInt64(&n))
}

func TestPoolStopDrainsSubmitted(t *testing.T) {
	p := NewPool(1)
	var n int64
	for i := 0; i < 10; i++ {
		require.NoError(t, p.Submit(func() { atomic.AddInt64(&n, 1) }))
	}
	p.Stop()
	assert.Equal(t, int64(10), atomic.LoadInt64(&n))
}

func TestPoolRejectsWorkAfterStop(t *testing.T) {
	p := NewPool(1)
	p.Stop()
	p.Stop()

	ran := false
	assert.NotPanics(t, func() {
		assert.ErrorIs(t, p.Do(context.Background(), func() { ran = true }), ErrStopped)
		assert.ErrorIs(t, p.Submit(func() { ran = true }), ErrStopped)
	})
	assert.False(t, ran)
}

func TestPoolDoCanceledBeforeEnqueue(t *testing.T) {
	p := &Pool{jobs: make(chan task)} // no workers, unbuffered
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.Do(ctx, func() { t.Fatal("must not run") })
	assert.ErrorIs(t, err, context.Canceled)
}
