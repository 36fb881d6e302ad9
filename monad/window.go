package monad

import "monadic/seqs"

// Adjacent yields every run of n consecutive elements, sliding by one. A
// source of length L gives max(0, L-n+1) windows. Each window is a fresh
// slice. It panics if n is not positive.
func Adjacent[T any](m Monad[T], n int) Monad[[]T] {
	return adjacent("Adjacent", m, n)
}

// Slide is Adjacent under its other common name.
func Slide[T any](m Monad[T], n int) Monad[[]T] {
	return adjacent("Slide", m, n)
}

// AdjacentTransform yields fn(window) for every window Adjacent(m, n) would yield.
func AdjacentTransform[T, R any](m Monad[T], n int, fn func([]T) R) Monad[R] {
	return Transform(adjacent("AdjacentTransform", m, n), fn)
}

// Pairwise yields every pair of neighbouring elements.
func Pairwise[T any](m Monad[T]) Monad[Pair[T, T]] {
	return AdjacentTransform(m, 2, func(w []T) Pair[T, T] { return Pair[T, T]{V1: w[0], V2: w[1]} })
}

func adjacent[T any](op string, m Monad[T], n int) Monad[[]T] {
	mustPositive(op, n)
	count := func(size int) int { return max(0, size-n+1) }
	if m.at != nil {
		size, at := m.size, m.at
		return indexed(
			func() int { return count(size()) },
			func(i int) []T { return collectRange(at, i, i+n) },
		)
	}
	out := Monad[[]T]{seq: seqs.Window(m.All(), n, 1), once: m.once}
	if m.size != nil {
		size := m.size
		out.size = func() int { return count(size()) }
	}
	return out
}

// Chunk splits m into consecutive groups of n elements. The last group holds
// the remainder and may be shorter. It panics if n is not positive.
func Chunk[T any](m Monad[T], n int) Monad[[]T] {
	mustPositive("Chunk", n)
	count := func(size int) int { return (size + n - 1) / n }
	if m.at != nil {
		size, at := m.size, m.at
		return indexed(
			func() int { return count(size()) },
			func(i int) []T { return collectRange(at, i*n, min((i+1)*n, size())) },
		)
	}
	out := Monad[[]T]{seq: seqs.Chunk(m.All(), n), once: m.once}
	if m.size != nil {
		size := m.size
		out.size = func() int { return count(size()) }
	}
	return out
}

// ChunkBy splits m into maximal runs in which pred(prev, cur) holds for every
// pair of neighbours. A run ends where pred first fails, so a strict "less"
// predicate yields strictly increasing runs: 1 2 2 3 becomes [1 2] [2 3].
func ChunkBy[T any](m Monad[T], pred func(prev, cur T) bool) Monad[[]T] {
	return Monad[[]T]{seq: seqs.ChunkBy(m.All(), pred), once: m.once}
}

func collectRange[T any](at func(int) T, lo, hi int) []T {
	out := make([]T, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, at(i))
	}
	return out
}
