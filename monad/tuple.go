package monad

import "monadic/seqs"

// Pair is the element type of Zip, Enumerate, CartesianProduct and FromMap.
type Pair[A, B any] = seqs.Pair[A, B]

// Triple is the element type of Zip3.
type Triple[A, B, C any] = seqs.Triple[A, B, C]

// Element0 projects the first field out of every tuple in m:
//
//	ids := monad.Element0[int](rows)
func Element0[E any, P interface{ Elem0() E }](m Monad[P]) Monad[E] {
	return Transform(m, func(p P) E { return p.Elem0() })
}

// Element1 projects the second field out of every tuple in m.
func Element1[E any, P interface{ Elem1() E }](m Monad[P]) Monad[E] {
	return Transform(m, func(p P) E { return p.Elem1() })
}

// Element2 projects the third field out of every tuple in m.
func Element2[E any, P interface{ Elem2() E }](m Monad[P]) Monad[E] {
	return Transform(m, func(p P) E { return p.Elem2() })
}

// Keys is Element0 for pairs.
func Keys[K, V any](m Monad[Pair[K, V]]) Monad[K] {
	return Element0[K](m)
}

// Values is Element1 for pairs.
func Values[K, V any](m Monad[Pair[K, V]]) Monad[V] {
	return Element1[V](m)
}
