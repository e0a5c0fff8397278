package format

import (
	"context"
	"fmt"

	"asset-loader/core/source"
)

// Format imports assets of type A configured by options of type O.
type Format[A, O any] interface {
	// Name identifies the format in logs and errors.
	Name() string
	// Import reads name from src and decodes it. When createReload is true the
	// format may attach a Reload record to the returned value.
	Import(ctx context.Context, name string, src source.Source, options O, createReload bool) (Value[A], error)
}

// Value is the result of a successful import.
type Value[A any] struct {
	Data A
	// Reload is nil when the asset cannot or should not be reloaded.
	Reload Reload[A]
}

// Data wraps data in a Value without reload information.
func Data[A any](data A) Value[A] {
	return Value[A]{Data: data}
}

// Reload re-imports an asset whose backing data changed.
type Reload[A any] interface {
	NeedsReload(ctx context.Context) bool
	Reload(ctx context.Context) (Value[A], error)
	// Name is the asset name that will be reloaded.
	Name() string
	// Format is the name of the format used to reload.
	Format() string
}

// Error reports that a format failed to produce an asset.
type Error struct {
	Format string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("format %s failed to import asset: %v", e.Format, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap attaches the format name to err. Nil stays nil.
func Wrap(format string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Format: format, Err: err}
}
