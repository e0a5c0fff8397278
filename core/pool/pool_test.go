package pool

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

func TestPool_RunsAllJobs(t *testing.T) {
	p := New(4, zap.NewNop())
	var count atomic.Int64

	for i := 0; i < 100; i++ {
		p.Spawn(func() { count.Inc() })
	}

	assert.NoError(t, p.Wait())
	assert.Equal(t, int64(100), count.Load())
}

func TestPool_DefaultsToCPUCount(t *testing.T) {
	p := New(0, nil)
	assert.Positive(t, p.Workers())
}

func TestPool_SpawnDoesNotBlock(t *testing.T) {
	p := New(1, zap.NewNop())
	release := make(chan struct{})

	done := make(chan struct{})
	go func() {
		// both jobs block; with one worker the second must queue without blocking Spawn
		p.Spawn(func() { <-release })
		p.Spawn(func() { <-release })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Spawn blocked on a busy pool")
	}

	close(release)
	assert.NoError(t, p.Wait())
}

func TestPool_BoundsParallelism(t *testing.T) {
	p := New(2, zap.NewNop())
	var (
		mu      sync.Mutex
		running int
		peak    int
	)

	for i := 0; i < 20; i++ {
		p.Spawn(func() {
			mu.Lock()
			running++
			if running > peak {
				peak = running
			}
			mu.Unlock()

			time.Sleep(5 * time.Millisecond)

			mu.Lock()
			running--
			mu.Unlock()
		})
	}

	assert.NoError(t, p.Wait())
	assert.LessOrEqual(t, peak, 2)
}

func TestPool_RecoversPanics(t *testing.T) {
	p := New(2, zap.NewNop())
	var ran atomic.Bool

	p.Spawn(func() { panic("bad decoder") })
	p.Spawn(func() { ran.Store(true) })

	err := p.Wait()
	assert.ErrorContains(t, err, "bad decoder")
	assert.True(t, ran.Load())
}
