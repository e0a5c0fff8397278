package format

import (
	"context"
	"fmt"

	"asset-loader/core/source"
)

// Decoder decodes a whole byte slice into an asset.
type Decoder[A, O any] interface {
	Name() string
	Decode(data []byte, options O) (A, error)
}

// FromDecoder lifts a Decoder into a Format that reads a single file.
func FromDecoder[A, O any](d Decoder[A, O]) Format[A, O] {
	return fileFormat[A, O]{decoder: d}
}

type fileFormat[A, O any] struct {
	decoder Decoder[A, O]
}

func (f fileFormat[A, O]) Name() string {
	return f.decoder.Name()
}

func (f fileFormat[A, O]) Import(ctx context.Context, name string, src source.Source, options O, createReload bool) (Value[A], error) {
	var modified int64
	if createReload {
		// a missing stamp only disables reloading
		modified, _ = src.Modified(ctx, name)
	}

	data, err := src.Load(ctx, name)
	if err != nil {
		return Value[A]{}, fmt.Errorf("failed to load bytes for %s: %w", name, err)
	}

	asset, err := f.decoder.Decode(data, options)
	if err != nil {
		return Value[A]{}, fmt.Errorf("failed to decode %s: %w", name, err)
	}

	value := Value[A]{Data: asset}
	if createReload {
		value.Reload = &SingleFile[A, O]{
			format:   f,
			modified: modified,
			options:  options,
			path:     name,
			source:   src,
		}
	}
	return value, nil
}

// SingleFile reloads an asset backed by one source path once its modification
// stamp moves past the one observed at import time.
type SingleFile[A, O any] struct {
	format   Format[A, O]
	modified int64
	options  O
	path     string
	source   source.Source
}

// NeedsReload is false when the original stamp was unknown.
func (r *SingleFile[A, O]) NeedsReload(ctx context.Context) bool {
	if r.modified == 0 {
		return false
	}
	current, err := r.source.Modified(ctx, r.path)
	if err != nil {
		return false
	}
	return current > r.modified
}

// Reload imports the asset again, producing a fresh reload record.
func (r *SingleFile[A, O]) Reload(ctx context.Context) (Value[A], error) {
	return r.format.Import(ctx, r.path, r.source, r.options, true)
}

func (r *SingleFile[A, O]) Name() string {
	return r.path
}

func (r *SingleFile[A, O]) Format() string {
	return r.format.Name()
}
