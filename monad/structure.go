package monad

import (
	"iter"
	"slices"

	"monadic/seqs"
)

// Zip pairs the elements of a and b positionally, stopping at the end of the
// shorter one.
func Zip[A, B any](a Monad[A], b Monad[B]) Monad[Pair[A, B]] {
	if a.at != nil && b.at != nil {
		sizeA, atA, sizeB, atB := a.size, a.at, b.size, b.at
		return indexed(
			func() int { return min(sizeA(), sizeB()) },
			func(i int) Pair[A, B] { return Pair[A, B]{V1: atA(i), V2: atB(i)} },
		)
	}
	out := Monad[Pair[A, B]]{seq: seqs.Zip(a.All(), b.All()), once: a.once || b.once}
	if a.size != nil && b.size != nil {
		sizeA, sizeB := a.size, b.size
		out.size = func() int { return min(sizeA(), sizeB()) }
	}
	return out
}

// Zip3 is Zip over three sequences.
func Zip3[A, B, C any](a Monad[A], b Monad[B], c Monad[C]) Monad[Triple[A, B, C]] {
	if a.at != nil && b.at != nil && c.at != nil {
		sizeA, sizeB, sizeC := a.size, b.size, c.size
		atA, atB, atC := a.at, b.at, c.at
		return indexed(
			func() int { return min(sizeA(), sizeB(), sizeC()) },
			func(i int) Triple[A, B, C] { return Triple[A, B, C]{V1: atA(i), V2: atB(i), V3: atC(i)} },
		)
	}
	out := Monad[Triple[A, B, C]]{
		seq:  seqs.Zip3(a.All(), b.All(), c.All()),
		once: a.once || b.once || c.once,
	}
	if a.size != nil && b.size != nil && c.size != nil {
		sizeA, sizeB, sizeC := a.size, b.size, c.size
		out.size = func() int { return min(sizeA(), sizeB(), sizeC()) }
	}
	return out
}

// ZipTransform yields fn(x, y) for every pair Zip(a, b) would yield.
func ZipTransform[A, B, R any](a Monad[A], b Monad[B], fn func(A, B) R) Monad[R] {
	return Transform(Zip(a, b), func(p Pair[A, B]) R { return fn(p.V1, p.V2) })
}

// CartesianProduct yields every pair (x, y) with x from a and y from b, with
// a in the outer loop. The length is len(a)*len(b). b is traversed once per
// element of a, so it panics with a CapabilityError unless b is multi-pass.
func CartesianProduct[A, B any](a Monad[A], b Monad[B]) Monad[Pair[A, B]] {
	b.require("CartesianProduct", CapMultiPass)
	if a.at != nil && b.at != nil {
		sizeA, atA, sizeB, atB := a.size, a.at, b.size, b.at
		return indexed(
			func() int { return sizeA() * sizeB() },
			func(i int) Pair[A, B] {
				n := sizeB()
				return Pair[A, B]{V1: atA(i / n), V2: atB(i % n)}
			},
		)
	}
	out := Monad[Pair[A, B]]{seq: seqs.CartesianProduct(a.All(), b.All()), once: a.once}
	if a.size != nil && b.size != nil {
		sizeA, sizeB := a.size, b.size
		out.size = func() int { return sizeA() * sizeB() }
	}
	return out
}

func innerSeq[T any](m Monad[T]) iter.Seq[T] {
	return m.All()
}

// Join flattens one level of nesting.
//
// The result is as restartable as m. If m yields the same single-pass inner
// Monad on every traversal, for example Of(FromChan(ch)), traversing the
// result a second time panics with a CapabilityError when that inner Monad is
// reached again. Chains such as LazySplit build fresh inner Monads on every
// traversal and are safe to repeat. Use View on m's inner sequences, or on
// the result, to replay them.
func Join[T any](m Monad[Monad[T]]) Monad[T] {
	return Monad[T]{seq: seqs.Flatten(seqs.Map(m.All(), innerSeq[T])), once: m.once}
}

// JoinWith is Join with sep placed between consecutive inner sequences. The
// same restriction on single-pass inner sequences applies.
func JoinWith[T any](m Monad[Monad[T]], sep T) Monad[T] {
	return Monad[T]{seq: seqs.JoinWith(seqs.Map(m.All(), innerSeq[T]), sep), once: m.once}
}

// Flatten is Join for a sequence of slices, such as the output of Chunk. It
// keeps the bidirectional capability of m.
func Flatten[T any](m Monad[[]T]) Monad[T] {
	out := Monad[T]{seq: seqs.Flatten(seqs.Map(m.All(), slices.Values[[]T])), once: m.once}
	if m.back != nil {
		out.back = seqs.Flatten(seqs.Map(m.back, seqs.Backward[[]T]))
	}
	return out
}

// FlattenWith is JoinWith for a sequence of slices.
func FlattenWith[T any](m Monad[[]T], sep T) Monad[T] {
	return Monad[T]{seq: seqs.JoinWith(seqs.Map(m.All(), slices.Values[[]T]), sep), once: m.once}
}

// LazySplit splits m on every occurrence of delim, which is dropped.
// Consecutive delimiters give empty segments, a delimiter at either end gives
// an empty first or last segment, and an empty m gives no segments.
//
// Segments are read straight from upstream: each can be traversed once, and
// only before the next segment is requested. Use Split when segments must be
// kept.
func LazySplit[T comparable](m Monad[T], delim T) Monad[Monad[T]] {
	return Monad[Monad[T]]{
		seq:  seqs.Map(seqs.LazySplit(m.All(), delim), Once[T]),
		once: m.once,
	}
}

// Split is LazySplit with every segment collected into a slice.
func Split[T comparable](m Monad[T], delim T) Monad[[]T] {
	return Monad[[]T]{seq: seqs.Split(m.All(), delim), once: m.once}
}
