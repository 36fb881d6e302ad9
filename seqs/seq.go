package seqs

import (
	"iter"
	"slices"
)

// Filter applies predicate to each element of seq, yielding only those that satisfy the predicate.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Map applies transform to each element of seq, yielding the transformed elements.
func Map[T, R any](seq iter.Seq[T], transform func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// Values drops the keys of a Seq2.
func Values[K, V any](seq iter.Seq2[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}

// Reduce aggregates the elements of seq using the reducer function, starting from the initial value.
func Reduce[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) R {
	acc := initial
	for v := range seq {
		acc = reducer(acc, v)
	}
	return acc
}

// Peek performs the provided action on each element of the sequence without modifying it.
// It is useful for debugging (e.g., logging) or side effects.
func Peek[T any](seq iter.Seq[T], action func(T)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			action(v)
			if !yield(v) {
				return
			}
		}
	}
}

// SortedFunc collects seq when iteration starts and yields its elements ordered by compare.
// The sort is stable. Nothing is read from seq before the result is ranged over.
func SortedFunc[T any](seq iter.Seq[T], compare func(a, b T) int) iter.Seq[T] {
	return func(yield func(T) bool) {
		buf := slices.Collect(seq)
		slices.SortStableFunc(buf, compare)
		for _, v := range buf {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward yields the elements of s from last to first.
func Backward[S ~[]T, T any](s S) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(s[i]) {
				return
			}
		}
	}
}
