package monad

import (
	"iter"
	"unicode/utf8"

	"golang.org/x/exp/constraints"

	"monadic/seqs"
)

// Indexable is a container that can be read by position.
type Indexable[T any] interface {
	Size() int
	At(i int) T
}

// Reversible is a container that can be iterated from both ends.
// Backward follows the slices.Backward convention of yielding index and value.
type Reversible[T any] interface {
	Values() iter.Seq[T]
	Backward() iter.Seq2[int, T]
}

// Owned wraps s as it is now. The Monad takes over the slice: the caller must
// not write to it afterwards. No element is copied.
func Owned[S ~[]T, T any](s S) Monad[T] {
	return indexed(
		func() int { return len(s) },
		func(i int) T { return s[i] },
	)
}

// Borrowed wraps the slice variable *s. Every traversal reads *s afresh, so
// writes and appends the caller makes between traversals are visible.
func Borrowed[S ~[]T, T any](s *S) Monad[T] {
	return indexed(
		func() int { return len(*s) },
		func(i int) T { return (*s)[i] },
	)
}

// Of wraps its arguments.
func Of[T any](vs ...T) Monad[T] {
	return Owned(vs)
}

// Empty returns a Monad with no elements.
func Empty[T any]() Monad[T] {
	return Owned[[]T](nil)
}

// FromSeq wraps seq as a forward sequence. seq must be restartable, as most
// iter.Seq values are; use Once for producers that are not.
func FromSeq[T any](seq iter.Seq[T]) Monad[T] {
	return Monad[T]{seq: seq}
}

// Once wraps a sequence that can only be traversed once. Starting a second
// traversal panics with a CapabilityError instead of silently yielding
// nothing, which catches chains such as a Join over single-pass inner
// sequences being traversed again.
func Once[T any](seq iter.Seq[T]) Monad[T] {
	used := false
	return Monad[T]{
		seq: func(yield func(T) bool) {
			if used {
				panic(&CapabilityError{Op: "Once", Need: CapMultiPass})
			}
			used = true
			seq(yield)
		},
		once: true,
	}
}

// FromChan wraps ch. Traversal receives until ch is closed or the consumer
// stops. Like every Once source it can be traversed a single time.
func FromChan[T any](ch <-chan T) Monad[T] {
	return Once(func(yield func(T) bool) {
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	})
}

// FromMap yields the entries of m as pairs, in map iteration order.
func FromMap[M ~map[K]V, K comparable, V any](m M) Monad[Pair[K, V]] {
	return Monad[Pair[K, V]]{
		seq: func(yield func(Pair[K, V]) bool) {
			for k, v := range m {
				if !yield(Pair[K, V]{V1: k, V2: v}) {
					return
				}
			}
		},
		size: func() int { return len(m) },
	}
}

// Runes yields the runes of s. The result is bidirectional.
func Runes(s string) Monad[rune] {
	return Monad[rune]{
		seq: func(yield func(rune) bool) {
			for _, r := range s {
				if !yield(r) {
					return
				}
			}
		},
		back: func(yield func(rune) bool) {
			for rest := s; rest != ""; {
				r, n := utf8.DecodeLastRuneInString(rest)
				if !yield(r) {
					return
				}
				rest = rest[:len(rest)-n]
			}
		},
	}
}

// FromIndexable wraps a random access container. Like Borrowed, it reads the
// container on every traversal.
func FromIndexable[T any](c Indexable[T]) Monad[T] {
	return indexed(c.Size, c.At)
}

// FromReversible wraps a bidirectional container. If c also has a
// Size() int method the result is sized.
func FromReversible[T any](c Reversible[T]) Monad[T] {
	m := Monad[T]{
		seq: func(yield func(T) bool) {
			c.Values()(yield)
		},
		back: func(yield func(T) bool) {
			seqs.Values(c.Backward())(yield)
		},
	}
	if s, ok := c.(interface{ Size() int }); ok {
		m.size = s.Size
	}
	return m
}

// Iota counts up from start forever. Bound it with Take or TakeWhile.
func Iota[I constraints.Integer](start I) Monad[I] {
	return FromSeq(seqs.Iota(start))
}

// Range yields start, start+1, ..., end-1.
func Range[I constraints.Integer](start, end I) Monad[I] {
	m := indexed(
		func() int {
			if end <= start {
				return 0
			}
			// widen first: end-start overflows I for narrow signed types
			return int(end) - int(start)
		},
		func(i int) I { return start + I(i) },
	)
	m.seq = seqs.Range(start, end, 1)
	return m
}

// Repeat yields v count times.
func Repeat[T any](v T, count int) Monad[T] {
	mustNonNegative("Repeat", count)
	m := indexed(
		func() int { return count },
		func(int) T { return v },
	)
	m.seq = seqs.Repeat(v, count)
	return m
}
