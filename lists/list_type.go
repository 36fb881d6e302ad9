package lists

import (
	"fmt"
	"iter"
)

var (
	ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")
)

// List is an owning, ordered container that can be filled from a sequence and
// iterated from either end.
type List[T any] interface {
	// Add appends one or more elements to the end of the list.
	Add(values ...T)

	// Get retrieves the element at the specified index
	// Returns an error if index is out of bounds
	Get(index int) (T, error)

	// Size returns the current number of elements in the list
	Size() int

	IsEmpty() bool

	// Values yields the elements front to back.
	Values() iter.Seq[T]

	// All yields index and element front to back.
	All() iter.Seq2[int, T]

	// Backward yields index and element back to front, like slices.Backward.
	Backward() iter.Seq2[int, T]

	// ToSlice converts the list to a native slice
	ToSlice() []T
}
