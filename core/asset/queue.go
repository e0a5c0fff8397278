package asset

import (
	"sync"

	"asset-loader/core/format"
	"asset-loader/core/progress"
)

// Kind distinguishes first loads from hot reloads.
type Kind int

const (
	// NewAsset is the first load of a handle.
	NewAsset Kind = iota
	// HotReload replaces the data of an already loaded handle.
	HotReload
)

func (k Kind) String() string {
	if k == HotReload {
		return "hot_reload"
	}
	return "new_asset"
}

// Processed carries a finished import to the storage that owns Handle.
type Processed[A any] struct {
	Kind   Kind
	Value  format.Value[A]
	Err    error
	Handle Handle[A]
	Name   string
	// Tracker is nil for hot reloads.
	Tracker progress.Tracker
}

// Queue is a multi-producer FIFO of processed results.
type Queue[A any] struct {
	mu    sync.Mutex
	items []Processed[A]
}

// Push appends p. Safe to call from any goroutine.
func (q *Queue[A]) Push(p Processed[A]) {
	q.mu.Lock()
	q.items = append(q.items, p)
	q.mu.Unlock()
}

// Drain removes and returns everything queued so far, oldest first.
func (q *Queue[A]) Drain() []Processed[A] {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.items
	q.items = nil
	return items
}

// Len returns the number of queued results.
func (q *Queue[A]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
