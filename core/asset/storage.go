package asset

import (
	"context"
	"sync"

	"asset-loader/core/format"
	"asset-loader/core/pool"

	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// State describes a slot.
type State int

const (
	// Unknown means the handle was not allocated by this storage.
	Unknown State = iota
	// Pending means the slot is reserved but no result was applied yet.
	Pending
	// Loaded means data is available.
	Loaded
	// Failed means the last first-load result was an error.
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

type entry[A any] struct {
	state  State
	name   string
	data   A
	err    error
	reload format.Reload[A]
	// reloading is set while a hot reload for the entry is in flight.
	reloading bool
}

// Storage is the authoritative table for assets of type A.
type Storage[A any] struct {
	name      string
	nextID    atomic.Uint64
	processed Queue[A]
	logger    *zap.Logger

	mu      sync.RWMutex
	entries map[uint64]*entry[A]
	handles map[uint64]Handle[A]
}

// NewStorage creates an empty table. name identifies the asset type in logs.
func NewStorage[A any](name string, logger *zap.Logger) *Storage[A] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Storage[A]{
		name:    name,
		logger:  logger,
		entries: make(map[uint64]*entry[A]),
		handles: make(map[uint64]Handle[A]),
	}
}

// Name returns the asset type name.
func (s *Storage[A]) Name() string {
	return s.name
}

// Allocate reserves a slot without data.
func (s *Storage[A]) Allocate() Handle[A] {
	h := Handle[A]{slot: &slot{id: s.nextID.Inc()}}

	s.mu.Lock()
	s.entries[h.ID()] = &entry[A]{state: Pending}
	s.handles[h.ID()] = h
	s.mu.Unlock()

	return h
}

// Processed returns the result queue loaders push into.
func (s *Storage[A]) Processed() *Queue[A] {
	return &s.processed
}

// Lookup returns the handle for a slot id.
func (s *Storage[A]) Lookup(id uint64) (Handle[A], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.handles[id]
	return h, ok
}

// Get returns the data for h once loaded.
func (s *Storage[A]) Get(h Handle[A]) (A, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[h.ID()]
	if !ok || e.state != Loaded {
		var zero A
		return zero, false
	}
	return e.data, true
}

// State returns the slot state and, for failed slots, the error.
func (s *Storage[A]) State(h Handle[A]) (State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[h.ID()]
	if !ok {
		return Unknown, nil
	}
	return e.state, e.err
}

// Len returns the number of allocated slots.
func (s *Storage[A]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// ProcessAll applies every queued result. It must only be called by the storage
// owner; results are applied in queue order.
func (s *Storage[A]) ProcessAll() int {
	items := s.processed.Drain()
	for _, p := range items {
		s.apply(p)
	}
	return len(items)
}

func (s *Storage[A]) apply(p Processed[A]) {
	s.mu.Lock()
	e, ok := s.entries[p.Handle.ID()]
	if !ok {
		s.mu.Unlock()
		s.logger.Warn("Dropping result for unknown handle",
			zap.String("asset_type", s.name),
			zap.String("name", p.Name),
			zap.Uint64("handle", p.Handle.ID()),
		)
		return
	}

	switch {
	case p.Kind == HotReload && p.Err != nil:
		// keep serving the previous data
		e.reloading = false
	case p.Err != nil:
		e.state = Failed
		e.err = p.Err
		e.name = p.Name
	default:
		e.state = Loaded
		e.err = nil
		e.name = p.Name
		e.data = p.Value.Data
		e.reload = p.Value.Reload
		e.reloading = false
	}
	s.mu.Unlock()

	if p.Err != nil {
		s.logger.Error("Failed to load asset",
			zap.String("asset_type", s.name),
			zap.String("name", p.Name),
			zap.Uint64("handle", p.Handle.ID()),
			zap.Stringer("kind", p.Kind),
			zap.Error(p.Err),
		)
		if p.Tracker != nil {
			p.Tracker.Fail(p.Handle.ID(), s.name, p.Name, p.Err)
		}
		return
	}

	if p.Kind == HotReload {
		s.logger.Info("Reloaded asset",
			zap.String("asset_type", s.name),
			zap.String("name", p.Name),
			zap.Uint64("handle", p.Handle.ID()),
		)
	}
	if p.Tracker != nil {
		p.Tracker.Success()
	}
}

// HotReload re-imports every loaded asset whose reload record reports a change.
// Imports run on spawner and their results are queued; call ProcessAll to apply
// them. It returns the number of reloads started.
func (s *Storage[A]) HotReload(ctx context.Context, spawner pool.Spawner) int {
	type candidate struct {
		handle Handle[A]
		reload format.Reload[A]
	}

	s.mu.Lock()
	var candidates []candidate
	for id, e := range s.entries {
		if e.state != Loaded || e.reload == nil || e.reloading {
			continue
		}
		candidates = append(candidates, candidate{handle: s.handles[id], reload: e.reload})
	}
	s.mu.Unlock()

	started := 0
	for _, c := range candidates {
		if !c.reload.NeedsReload(ctx) {
			continue
		}

		s.mu.Lock()
		e := s.entries[c.handle.ID()]
		if e.reloading {
			s.mu.Unlock()
			continue
		}
		e.reloading = true
		s.mu.Unlock()

		started++
		spawner.Spawn(func() {
			value, err := c.reload.Reload(ctx)
			s.processed.Push(Processed[A]{
				Kind:   HotReload,
				Value:  value,
				Err:    format.Wrap(c.reload.Format(), err),
				Handle: c.handle,
				Name:   c.reload.Name(),
			})
		})
	}
	return started
}
