// Package pool runs fire-and-forget jobs on a bounded set of goroutines.
package pool

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Spawner accepts a unit of work for asynchronous execution.
// Spawn must not block on the work itself.
type Spawner interface {
	Spawn(job func())
}

// Pool executes at most Workers jobs at a time. Spawn never blocks; excess jobs
// wait for a slot on their own goroutine, so a burst of N jobs holds N parked
// goroutines until slots free up.
type Pool struct {
	group   errgroup.Group
	limiter *semaphore.Weighted
	workers int
	logger  *zap.Logger
}

// New creates a pool with the given parallelism. A non-positive value uses one
// worker per CPU.
func New(workers int, logger *zap.Logger) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pool{
		limiter: semaphore.NewWeighted(int64(workers)),
		workers: workers,
		logger:  logger,
	}
}

// Workers returns the maximum number of concurrently running jobs.
func (p *Pool) Workers() int {
	return p.workers
}

// Spawn schedules job. A panicking job is logged and does not take the process down.
func (p *Pool) Spawn(job func()) {
	p.group.Go(func() (err error) {
		if err := p.limiter.Acquire(context.Background(), 1); err != nil {
			return fmt.Errorf("failed to acquire worker: %w", err)
		}
		defer p.limiter.Release(1)

		defer func() {
			if r := recover(); r != nil {
				p.logger.Error("Job panicked", zap.Any("panic", r))
				err = fmt.Errorf("job panicked: %v", r)
			}
		}()

		job()
		return nil
	})
}

// Wait blocks until every spawned job has returned. It reports the first panic.
func (p *Pool) Wait() error {
	return p.group.Wait()
}
