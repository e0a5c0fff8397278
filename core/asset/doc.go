// Package asset holds the authoritative asset table.
//
// Storage owns the finished assets of one type. Loaders never write into it
// directly: they reserve a slot with Allocate, which yields a Handle that is valid
// before any data exists, and later push a Processed message onto the storage's
// result queue. The storage owner drains that queue with ProcessAll on its own
// schedule, which installs data, remembers reload records and notifies progress
// trackers.
//
// # Handles
//
// A Handle is a cheap, comparable reference to a slot. Clones share the slot and
// compare equal.
//
// # Hot Reload
//
// HotReload scans reload records, re-imports assets whose backing data changed
// and queues the results like any other load.
package asset
