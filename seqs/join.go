package seqs

import (
	"iter"
	"slices"
)

// Flatten yields the elements of every inner sequence in order.
func Flatten[T any](seq iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return FlatMap(seq, func(inner iter.Seq[T]) iter.Seq[T] { return inner })
}

// JoinWith is Flatten with sep yielded between consecutive inner sequences.
// No separator is yielded before the first or after the last inner sequence.
func JoinWith[T any](seq iter.Seq[iter.Seq[T]], sep T) iter.Seq[T] {
	return func(yield func(T) bool) {
		first := true
		for inner := range seq {
			if !first {
				if !yield(sep) {
					return
				}
			}
			first = false
			for v := range inner {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// LazySplit splits seq on every occurrence of delim, which is dropped.
//
// Consecutive delimiters produce empty segments, and a delimiter at either end
// produces an empty leading or trailing segment. An empty input produces no
// segments at all.
//
// Segments are read lazily from a single pull over seq: each segment can be
// ranged over once, and only until the outer sequence moves on. Whatever a
// consumer leaves unread is skipped when the next segment is requested.
func LazySplit[T comparable](seq iter.Seq[T], delim T) iter.Seq[iter.Seq[T]] {
	return func(yield func(iter.Seq[T]) bool) {
		next, stop := iter.Pull(seq)
		defer stop()

		pending, ok := next()
		if !ok {
			return
		}
		hasPending := true

		// pull returns the next upstream element, serving the one read ahead first.
		pull := func() (T, bool) {
			if hasPending {
				hasPending = false
				return pending, true
			}
			return next()
		}

		for {
			ended, exhausted := false, false
			segment := func(yieldElem func(T) bool) {
				for !ended {
					v, ok := pull()
					if !ok {
						ended, exhausted = true, true
						return
					}
					if v == delim {
						ended = true
						return
					}
					if !yieldElem(v) {
						return
					}
				}
			}

			if !yield(segment) {
				return
			}

			// skip what the consumer left unread
			for !ended {
				v, ok := pull()
				if !ok {
					ended, exhausted = true, true
				} else if v == delim {
					ended = true
				}
			}
			if exhausted {
				return
			}
		}
	}
}

// Split is LazySplit with every segment collected into its own slice, so the
// segments stay valid and the result is restartable when seq is.
func Split[T comparable](seq iter.Seq[T], delim T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for segment := range LazySplit(seq, delim) {
			if !yield(slices.AppendSeq(make([]T, 0), segment)) {
				return
			}
		}
	}
}
