package source

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Source when no data exists for the requested path.
var ErrNotFound = errors.New("asset source entry not found")

// Source reads raw asset bytes. Implementations must be safe for concurrent use.
type Source interface {
	// Load returns the bytes stored under path.
	Load(ctx context.Context, path string) ([]byte, error)
	// Modified returns a monotonically increasing modification stamp for path,
	// or 0 if the backend cannot tell.
	Modified(ctx context.Context, path string) (int64, error)
}
