// Package loader coordinates asynchronous, deduplicated asset loading.
//
// A Loader owns a registry of sources, a worker pool and a cache of every handle
// it ever handed out. Loading an asset returns a Handle immediately; reading and
// decoding happen on the pool, and the outcome is pushed onto the target
// Storage's result queue for the storage owner to apply.
//
// # Deduplication
//
// Requests are keyed by (name, source id, asset type). The first request for a
// key allocates a handle and submits exactly one job; every later request for the
// same key receives a clone of that handle, whether the job is still running or
// long finished. Entries are never evicted.
//
// # Recovery
//
// LoadOrElse and LoadFromOrElse accept a Recovery that runs on the worker when
// the import fails and may substitute data or a different error. Whatever error
// remains is wrapped in *format.Error naming the format.
//
// # Programmer Errors
//
// Loading from an unregistered source panics with *source.UnknownSourceError.
// A cached handle of the wrong type panics with *TypeMismatchError.
//
// # Usage
//
//	l := loader.NewFromDirectory("./assets", pool.New(0, logg), loader.WithLogger(logg))
//	meshes := asset.NewStorage[Mesh]("Mesh", logg)
//	h := loader.Load(l, "meshes/a.json", format.NewJSON[Mesh](), format.JSONOptions{}, counter, meshes)
//	// later, on the storage owner's goroutine
//	meshes.ProcessAll()
package loader
