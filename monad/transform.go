package monad

import (
	"cmp"
	"slices"

	"monadic/seqs"
)

// Transform yields fn(v) for every element v of m. The length is unchanged.
// On random access chains fn runs each time an element is read.
func Transform[T, R any](m Monad[T], fn func(T) R) Monad[R] {
	if m.at != nil {
		at := m.at
		return indexed(m.size, func(i int) R { return fn(at(i)) })
	}
	out := Monad[R]{seq: seqs.Map(m.All(), fn), size: m.size, once: m.once}
	if m.back != nil {
		out.back = seqs.Map(m.back, fn)
	}
	return out
}

// Enumerate pairs every element with its position, counting from 0.
func Enumerate[T any](m Monad[T]) Monad[Pair[int, T]] {
	if m.at != nil {
		at := m.at
		return indexed(m.size, func(i int) Pair[int, T] { return Pair[int, T]{V1: i, V2: at(i)} })
	}
	out := Monad[Pair[int, T]]{
		seq: func(yield func(Pair[int, T]) bool) {
			for i, v := range seqs.Enumerate(m.All()) {
				if !yield(Pair[int, T]{V1: i, V2: v}) {
					return
				}
			}
		},
		size: m.size,
		once: m.once,
	}
	if m.back != nil && m.size != nil {
		back, size := m.back, m.size
		out.back = func(yield func(Pair[int, T]) bool) {
			i := size() - 1
			for v := range back {
				if !yield(Pair[int, T]{V1: i, V2: v}) {
					return
				}
				i--
			}
		}
	}
	return out
}

// SortedFunc yields the elements of m ordered by compare. The whole upstream
// is read and sorted when traversal starts, not before.
func SortedFunc[T any](m Monad[T], compare func(a, b T) int) Monad[T] {
	all := m.All()
	return Monad[T]{
		seq: seqs.SortedFunc(all, compare),
		back: func(yield func(T) bool) {
			seqs.Backward(slices.Collect(seqs.SortedFunc(all, compare)))(yield)
		},
		size: m.size,
		once: m.once,
	}
}

// Sorted is SortedFunc with the natural order of T.
func Sorted[T cmp.Ordered](m Monad[T]) Monad[T] {
	return SortedFunc(m, cmp.Compare[T])
}
