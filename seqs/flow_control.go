package seqs

import "iter"

// Take yields at most the first n elements of seq.
// It stops pulling from seq as soon as the n-th element has been yielded.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}
}

// Skip drops the first n elements of seq and yields the rest.
func Skip[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		skipped := 0
		for v := range seq {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// TakeWhile continues to yield elements from the sequence
// as long as the predicate returns true.
func TakeWhile[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !predicate(v) {
				return // Condition not met, terminate the stream
			}
			if !yield(v) {
				return
			}
		}
	}
}

// DropWhile skips elements from the sequence
// as long as the predicate returns true, then yields the rest.
func DropWhile[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		dropping := true
		for v := range seq {
			if dropping {
				if predicate(v) {
					continue
				}
				dropping = false
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Stride yields the elements at positions 0, n, 2n, ...
// A non-positive n yields nothing.
func Stride[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if i%n == 0 {
				if !yield(v) {
					return
				}
			}
			i++
		}
	}
}
