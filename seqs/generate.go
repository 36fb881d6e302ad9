package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

func Range[I constraints.Integer](start, end, step I) iter.Seq[I] {
	return func(yield func(I) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

// Iota counts up from start without end. Bound it with Take or TakeWhile.
func Iota[I constraints.Integer](start I) iter.Seq[I] {
	return func(yield func(I) bool) {
		for i := start; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func Repeat[T any](value T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(value) {
				return
			}
		}
	}
}
