package asset

import "fmt"

type slot struct {
	id uint64
}

// Handle references a slot in a Storage. The zero Handle references nothing.
type Handle[A any] struct {
	slot *slot
}

// ID returns the slot identifier, or 0 for the zero Handle.
func (h Handle[A]) ID() uint64 {
	if h.slot == nil {
		return 0
	}
	return h.slot.id
}

// Clone returns a handle sharing the same slot.
func (h Handle[A]) Clone() Handle[A] {
	return Handle[A]{slot: h.slot}
}

// Equal reports whether both handles reference the same slot.
func (h Handle[A]) Equal(other Handle[A]) bool {
	return h.slot == other.slot
}

// IsValid is false for the zero Handle.
func (h Handle[A]) IsValid() bool {
	return h.slot != nil
}

func (h Handle[A]) String() string {
	return fmt.Sprintf("Handle(%d)", h.ID())
}
