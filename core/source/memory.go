package source

import (
	"context"
	"fmt"
	"sync"
)

type memoryEntry struct {
	data     []byte
	modified int64
}

// Memory keeps assets in an in-process map. Every Put bumps the modification stamp.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	clock   int64
}

// NewMemory creates an empty memory source.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry)}
}

// Put stores a copy of data under path.
func (m *Memory) Put(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clock++
	m.entries[path] = memoryEntry{
		data:     append([]byte(nil), data...),
		modified: m.clock,
	}
}

// Load returns a copy of the bytes stored under path.
func (m *Memory) Load(_ context.Context, path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.entries[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	return append([]byte(nil), entry.data...), nil
}

// Modified returns the stamp of the last Put for path.
func (m *Memory) Modified(_ context.Context, path string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.entries[path]
	if !ok {
		return 0, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	return entry.modified, nil
}
