package bounded

import (
	cerrors "github.com/cockroachdb/errors"

	"github.com/hearthware/heapless"
)

// Vector is an ordered sequence with a capacity fixed at construction. The
// backing array is allocated once by NewVector and never grows; Push reports
// heapless.ErrFull instead of reallocating. It is a plain value buffer with
// no internal synchronization.
type Vector[T any] struct {
	items []T
	count int
}

var _ heapless.Validatable = &Vector[int]{}

// NewVector creates an empty Vector that can hold up to capacity items.
// Capacity may be zero, producing a vector whose every Push fails. It must
// not be negative.
func NewVector[T any](capacity int) *Vector[T] {
	return &Vector[T]{
		items: make([]T, capacity),
	}
}

// Push appends item behind the last stored element. If the vector is already
// at capacity it returns an error matching heapless.ErrFull and the vector is
// left exactly as it was; the caller still holds item and can route it
// elsewhere.
func (v *Vector[T]) Push(item T) error {
	if v.count == len(v.items) {
		return cerrors.Wrapf(heapless.ErrFull, "vector is at its capacity of %d items", len(v.items))
	}

	v.items[v.count] = item
	v.count++
	return nil
}

// Len returns the number of items currently stored.
func (v *Vector[T]) Len() int {
	return v.count
}

// Cap returns the fixed capacity the vector was created with.
func (v *Vector[T]) Cap() int {
	return len(v.items)
}

// View returns the stored items in push order. The returned slice aliases the
// vector's backing array with its capacity clipped to its length, so callers
// cannot append into unused slots, but writes through it are visible to the
// vector- treat it as read-only.
func (v *Vector[T]) View() []T {
	return v.items[:v.count:v.count]
}

// Clear removes all items. Cleared slots are reset to the zero value so the
// vector does not pin references held by removed items.
func (v *Vector[T]) Clear() {
	var zero T
	for i := 0; i < v.count; i++ {
		v.items[i] = zero
	}
	v.count = 0
}

// Validate performs internal consistency checks. When the implementation is
// functioning correctly it should not be possible for this method to return
// an error.
func (v *Vector[T]) Validate() error {
	if v.count < 0 {
		return cerrors.Newf("item count %d is negative", v.count)
	}
	if v.count > len(v.items) {
		return cerrors.Newf("item count %d exceeds the capacity of %d", v.count, len(v.items))
	}
	return nil
}
