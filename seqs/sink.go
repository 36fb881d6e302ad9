package seqs

import "iter"

func First[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}

func Last[T any](seq iter.Seq[T]) (T, bool) {
	var last T
	found := false
	for v := range seq {
		last = v
		found = true
	}
	return last, found
}

func Count[T any](seq iter.Seq[T]) int {
	count := 0
	for range seq {
		count++
	}
	return count
}

// EqualFunc reports whether seq1 and seq2 have the same length and eq holds for
// every pair of elements at the same position. It stops at the first mismatch.
func EqualFunc[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2], eq func(T1, T2) bool) bool {
	next2, stop2 := iter.Pull(seq2)
	defer stop2()

	for v1 := range seq1 {
		v2, ok := next2()
		if !ok || !eq(v1, v2) {
			return false
		}
	}
	_, more := next2()
	return !more
}

func Equal[T comparable](seq1, seq2 iter.Seq[T]) bool {
	return EqualFunc(seq1, seq2, func(a, b T) bool { return a == b })
}
