package loader

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"io"
	"reflect"
)

// Key identifies a load request by (path, source id, asset type). The type is
// kept as a reflect.Type so distinct types never share a key, even when their
// names print the same.
type Key struct {
	hash uint64
	typ  reflect.Type
}

// ComputeKey hashes path and source id and pairs the hash with typ. Fields are
// length-prefixed so that moving bytes between them always changes the hash.
func ComputeKey(path, sourceID string, typ reflect.Type) Key {
	h := fnv.New64a()
	writeField(h, path)
	writeField(h, sourceID)
	return Key{hash: h.Sum64(), typ: typ}
}

func writeField(h io.Writer, s string) {
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], uint64(len(s)))
	_, _ = h.Write(n[:])
	_, _ = h.Write([]byte(s))
}

// Type returns the asset type the key was computed for.
func (k Key) Type() reflect.Type {
	return k.typ
}

func (k Key) String() string {
	return fmt.Sprintf("%016x/%v", k.hash, k.typ)
}

// KeyFor computes the key for asset type A.
func KeyFor[A any](path, sourceID string) Key {
	return ComputeKey(path, sourceID, reflect.TypeFor[A]())
}
