package loader

import (
	"fmt"
	"reflect"
)

// TypeMismatchError is the panic value raised when a cached handle does not have
// the requested asset type. Keys carry the asset type, so this only happens when
// the handle table was corrupted.
type TypeMismatchError struct {
	Key      Key
	Expected reflect.Type
	Actual   reflect.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cached handle type mismatch for key %s: expected=%v actual=%v",
		e.Key, e.Expected, e.Actual)
}
