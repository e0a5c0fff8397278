package source

import (
	"fmt"
	"sort"
	"sync"
)

// DefaultID is the identifier of the default source.
const DefaultID = ""

// UnknownSourceError is the panic value raised when resolving an unregistered source.
type UnknownSourceError struct {
	ID string
}

func (e *UnknownSourceError) Error() string {
	return fmt.Sprintf("no such source %q, register it with AddSource before loading from it", e.ID)
}

// Registry maps source identifiers to backends. Entries are never removed.
type Registry struct {
	mu      sync.RWMutex
	sources map[string]Source
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: make(map[string]Source)}
}

// Register stores src under id, replacing any previous backend.
func (r *Registry) Register(id string, src Source) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[id] = src
}

// SetDefault registers src as the default source.
func (r *Registry) SetDefault(src Source) {
	r.Register(DefaultID, src)
}

// Lookup returns the backend registered under id.
func (r *Registry) Lookup(id string) (Source, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	src, ok := r.sources[id]
	return src, ok
}

// Resolve returns the backend registered under id and panics with
// *UnknownSourceError if there is none.
func (r *Registry) Resolve(id string) Source {
	src, ok := r.Lookup(id)
	if !ok {
		panic(&UnknownSourceError{ID: id})
	}
	return src
}

// IDs returns the registered identifiers in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.sources))
	for id := range r.sources {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DisplayName returns a human readable name for a source identifier.
func DisplayName(id string) string {
	if id == DefaultID {
		return "[default source]"
	}
	return id
}
