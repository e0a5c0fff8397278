// Package progress tracks how many queued assets have finished loading.
package progress

import (
	"fmt"
	"sync"

	"go.uber.org/atomic"
)

// Progress is notified when assets are queued and hands out a Tracker per asset.
type Progress interface {
	// AddAssets registers n more assets as loading.
	AddAssets(n int)
	// CreateTracker returns the tracker that reports the outcome of one asset.
	CreateTracker() Tracker
}

// Tracker reports the outcome of a single asset. Exactly one method is called once.
type Tracker interface {
	Success()
	Fail(handleID uint64, assetType, name string, err error)
}

// None ignores all progress.
type None struct{}

// AddAssets does nothing.
func (None) AddAssets(int) {}

// CreateTracker returns a tracker that does nothing.
func (None) CreateTracker() Tracker { return None{} }

// Success does nothing.
func (None) Success() {}

// Fail does nothing.
func (None) Fail(uint64, string, string, error) {}

// Completion summarises a Counter.
type Completion int

const (
	// Loading means some assets are still in flight.
	Loading Completion = iota
	// Complete means every queued asset loaded successfully.
	Complete
	// Failed means at least one asset failed.
	Failed
)

func (c Completion) String() string {
	switch c {
	case Loading:
		return "loading"
	case Complete:
		return "complete"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("completion(%d)", int(c))
	}
}

// AssetError records one failed asset.
type AssetError struct {
	HandleID  uint64 `json:"handle_id"`
	AssetType string `json:"asset_type"`
	Name      string `json:"name"`
	Err       error  `json:"-"`
}

func (e AssetError) Error() string {
	return fmt.Sprintf("failed to load %s %q (handle %d): %v", e.AssetType, e.Name, e.HandleID, e.Err)
}

func (e AssetError) Unwrap() error {
	return e.Err
}

// Counter counts queued, finished and failed assets. It is safe for concurrent use
// and may be shared by many loads.
type Counter struct {
	assets   atomic.Int64
	finished atomic.Int64
	failed   atomic.Int64

	mu     sync.Mutex
	errors []AssetError
}

// NewCounter creates a zeroed counter.
func NewCounter() *Counter {
	return &Counter{}
}

// AddAssets registers n more assets as loading.
func (c *Counter) AddAssets(n int) {
	c.assets.Add(int64(n))
}

// CreateTracker returns a tracker reporting into c.
func (c *Counter) CreateTracker() Tracker {
	return &counterTracker{counter: c}
}

// NumAssets is the number of assets queued so far.
func (c *Counter) NumAssets() int {
	return int(c.assets.Load())
}

// NumFinished is the number of assets that loaded successfully.
func (c *Counter) NumFinished() int {
	return int(c.finished.Load())
}

// NumFailed is the number of assets that failed.
func (c *Counter) NumFailed() int {
	return int(c.failed.Load())
}

// NumLoading is the number of assets still in flight.
func (c *Counter) NumLoading() int {
	return c.NumAssets() - c.NumFinished() - c.NumFailed()
}

// Errors returns a copy of the recorded failures.
func (c *Counter) Errors() []AssetError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]AssetError(nil), c.errors...)
}

// Complete reports whether loading is done and whether it succeeded.
func (c *Counter) Complete() Completion {
	switch {
	case c.NumFailed() > 0:
		return Failed
	case c.NumFinished() == c.NumAssets():
		return Complete
	default:
		return Loading
	}
}

// IsComplete is true once every queued asset loaded successfully.
func (c *Counter) IsComplete() bool {
	return c.Complete() == Complete
}

type counterTracker struct {
	counter *Counter
	done    atomic.Bool
}

func (t *counterTracker) Success() {
	if t.done.Swap(true) {
		return
	}
	t.counter.finished.Inc()
}

func (t *counterTracker) Fail(handleID uint64, assetType, name string, err error) {
	if t.done.Swap(true) {
		return
	}
	t.counter.mu.Lock()
	t.counter.errors = append(t.counter.errors, AssetError{
		HandleID:  handleID,
		AssetType: assetType,
		Name:      name,
		Err:       err,
	})
	t.counter.mu.Unlock()
	t.counter.failed.Inc()
}
