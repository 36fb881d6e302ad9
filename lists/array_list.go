package lists

import (
	"fmt"
	"iter"
	"slices"
)

// ArrayList is a List backed by a slice. It supports reads by position.
type ArrayList[T any] struct {
	data []T
}

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

// CollectArray builds an ArrayList from seq.
func CollectArray[T any](seq iter.Seq[T]) *ArrayList[T] {
	return &ArrayList[T]{data: slices.Collect(seq)}
}

func (al *ArrayList[T]) Add(values ...T) {
	al.data = append(al.data, values...)
}

func (al *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return al.data[index], nil
}

// At returns the element at index and panics if it is out of range, like a
// slice index expression.
func (al *ArrayList[T]) At(index int) T {
	return al.data[index]
}

func (al *ArrayList[T]) Set(index int, value T) error {
	if index < 0 || index >= len(al.data) {
		return ErrIndexOutOfBounds
	}
	al.data[index] = value
	return nil
}

func (al *ArrayList[T]) Size() int {
	return len(al.data)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return len(al.data) == 0
}

func (al *ArrayList[T]) ToSlice() []T {
	return slices.Clone(al.data)
}

func (al *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", al.data)
}

func (al *ArrayList[T]) Values() iter.Seq[T] {
	return slices.Values(al.data)
}

func (al *ArrayList[T]) All() iter.Seq2[int, T] {
	return slices.All(al.data)
}

func (al *ArrayList[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(al.data)
}
