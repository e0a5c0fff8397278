package loader

import (
	"context"
	"fmt"
	"reflect"

	"asset-loader/core/asset"
	"asset-loader/core/format"
	"asset-loader/core/progress"
	"asset-loader/core/source"

	"go.uber.org/zap"
)

// DataName is the name recorded for assets created by LoadFromData.
const DataName = "<Data>"

// Recovery substitutes data or an error when an import fails.
type Recovery[A any] func(err error) (A, error)

// Load loads name from the default source.
func Load[A, O any](l *Loader, name string, f format.Format[A, O], options O, p progress.Progress, storage *asset.Storage[A]) asset.Handle[A] {
	return LoadFromOrElse(l, name, f, options, source.DefaultID, p, storage, nil)
}

// LoadOrElse loads name from the default source, running orElse if the import fails.
func LoadOrElse[A, O any](l *Loader, name string, f format.Format[A, O], options O, p progress.Progress, storage *asset.Storage[A], orElse Recovery[A]) asset.Handle[A] {
	return LoadFromOrElse(l, name, f, options, source.DefaultID, p, storage, orElse)
}

// LoadFrom loads name from the source registered as sourceID.
func LoadFrom[A, O any](l *Loader, name string, f format.Format[A, O], options O, sourceID string, p progress.Progress, storage *asset.Storage[A]) asset.Handle[A] {
	return LoadFromOrElse(l, name, f, options, sourceID, p, storage, nil)
}

// LoadFromOrElse loads name from the source registered as sourceID and returns
// its handle without waiting for the import. Repeated calls with the same name,
// source and asset type return the same handle and start no further work.
//
// The import runs on the loader's pool. If it fails and orElse is non-nil, orElse
// decides the outcome. The result is pushed onto storage.Processed().
//
// Panics with *source.UnknownSourceError if sourceID is not registered.
func LoadFromOrElse[A, O any](l *Loader, name string, f format.Format[A, O], options O, sourceID string, p progress.Progress, storage *asset.Storage[A], orElse Recovery[A]) asset.Handle[A] {
	src := l.sources.Resolve(sourceID)

	handle, admitted := admit(l, KeyFor[A](name, sourceID), storage)
	if !admitted {
		return handle
	}

	l.logger.Debug("Loading asset",
		zap.String("asset_type", storage.Name()),
		zap.String("name", name),
		zap.String("format", f.Name()),
		zap.String("source", source.DisplayName(sourceID)),
		zap.Uint64("handle", handle.ID()),
	)

	if p == nil {
		p = progress.None{}
	}
	p.AddAssets(1)
	tracker := p.CreateTracker()

	hotReload := l.HotReload()
	queue := storage.Processed()
	jobHandle := handle.Clone()

	l.spawner.Spawn(func() {
		value, err := importAsset(f, name, src, options, hotReload)
		if err != nil && orElse != nil {
			var data A
			data, err = orElse(err)
			value = format.Data(data)
		}

		queue.Push(asset.Processed[A]{
			Kind:    asset.NewAsset,
			Value:   value,
			Err:     format.Wrap(f.Name(), err),
			Handle:  jobHandle,
			Name:    name,
			Tracker: tracker,
		})
	})

	return handle
}

// LoadFromData queues already decoded data for storage and returns its handle.
// The result is pushed before LoadFromData returns; no job is spawned and the
// request is not deduplicated.
func LoadFromData[A any](l *Loader, data A, p progress.Progress, storage *asset.Storage[A]) asset.Handle[A] {
	if p == nil {
		p = progress.None{}
	}
	p.AddAssets(1)
	tracker := p.CreateTracker()

	handle := storage.Allocate()
	storage.Processed().Push(asset.Processed[A]{
		Kind:    asset.NewAsset,
		Value:   format.Data(data),
		Handle:  handle.Clone(),
		Name:    DataName,
		Tracker: tracker,
	})

	l.logger.Debug("Queued asset from data",
		zap.String("asset_type", storage.Name()),
		zap.Uint64("handle", handle.ID()),
	)
	return handle
}

// admit returns the cached handle for key, or allocates, caches and returns a new
// one. The bool is true only for the caller that must submit the job.
func admit[A any](l *Loader, key Key, storage *asset.Storage[A]) (asset.Handle[A], bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if cached, ok := l.handles[key]; ok {
		handle, ok := cached.(asset.Handle[A])
		if !ok {
			panic(&TypeMismatchError{
				Key:      key,
				Expected: reflect.TypeFor[asset.Handle[A]](),
				Actual:   reflect.TypeOf(cached),
			})
		}
		return handle.Clone(), false
	}

	handle := storage.Allocate()
	l.handles[key] = handle.Clone()
	return handle, true
}

// importAsset runs the format, turning a panic into an error so that every job
// still delivers a result.
func importAsset[A, O any](f format.Format[A, O], name string, src source.Source, options O, hotReload bool) (value format.Value[A], err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("import of %s panicked: %v", name, r)
		}
	}()
	return f.Import(context.Background(), name, src, options, hotReload)
}
