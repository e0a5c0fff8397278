package loader

import (
	"sync"

	"asset-loader/core/pool"
	"asset-loader/core/source"

	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Loader deduplicates load requests and dispatches imports onto a worker pool.
type Loader struct {
	hotReload atomic.Bool
	spawner   pool.Spawner
	sources   *source.Registry
	logger    *zap.Logger

	mu      sync.Mutex
	handles map[Key]any
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithHotReload overrides the initial hot-reload flag.
func WithHotReload(enabled bool) Option {
	return func(l *Loader) {
		l.hotReload.Store(enabled)
	}
}

// New creates a loader without sources. Hot reload starts enabled.
func New(spawner pool.Spawner, opts ...Option) *Loader {
	l := &Loader{
		spawner: spawner,
		sources: source.NewRegistry(),
		logger:  zap.NewNop(),
		handles: make(map[Key]any),
	}
	l.hotReload.Store(true)
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewWithDefaultSource creates a loader whose default source is src.
func NewWithDefaultSource(src source.Source, spawner pool.Spawner, opts ...Option) *Loader {
	l := New(spawner, opts...)
	l.SetDefaultSource(src)
	return l
}

// NewFromDirectory creates a loader reading from dir by default.
func NewFromDirectory(dir string, spawner pool.Spawner, opts ...Option) *Loader {
	return NewWithDefaultSource(source.NewDirectory(dir), spawner, opts...)
}

// AddSource registers src under id. Sources should be added before loads that
// reference them are issued.
func (l *Loader) AddSource(id string, src source.Source) {
	l.sources.Register(id, src)
}

// SetDefaultSource registers src under the empty id.
func (l *Loader) SetDefaultSource(src source.Source) {
	l.sources.SetDefault(src)
}

// HasSource reports whether id is registered.
func (l *Loader) HasSource(id string) bool {
	_, ok := l.sources.Lookup(id)
	return ok
}

// Sources lists registered source ids.
func (l *Loader) Sources() []string {
	return l.sources.IDs()
}

// SetHotReload controls whether formats are asked for reload records. It does
// not trigger reloading by itself; see asset.Storage.HotReload.
func (l *Loader) SetHotReload(enabled bool) {
	l.hotReload.Store(enabled)
}

// HotReload returns the current hot-reload flag.
func (l *Loader) HotReload() bool {
	return l.hotReload.Load()
}

// Cached returns the number of distinct requests remembered by the loader.
func (l *Loader) Cached() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.handles)
}
