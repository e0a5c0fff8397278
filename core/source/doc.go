// Package source provides the byte-providing backends assets are loaded from.
//
// A Source hands out raw bytes for a path together with a modification stamp that
// formats use to decide whether a hot reload is due. Sources are registered under a
// string identifier in a Registry; the empty identifier names the default source.
//
// # Backends
//
//   - Directory: files below a root directory on the local filesystem.
//   - ObjectStore: objects in an S3/MinIO bucket (see core/storage).
//   - Database: blobs stored in the asset_blobs table (see core/database).
//   - Memory: an in-process map, mainly for tests and fixtures.
//
// # Usage
//
//	reg := source.NewRegistry()
//	reg.SetDefault(source.NewDirectory("./assets"))
//	reg.Register("remote", source.NewObjectStore(client, "assets", "bundled/"))
//
//	src := reg.Resolve("remote") // panics if "remote" was never registered
package source
