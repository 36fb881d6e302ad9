package seqs

import "iter"

func FlatMap[S any, T any](source iter.Seq[S], f func(S) iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for s := range source {
			for t := range f(s) {
				if !yield(t) {
					return
				}
			}
		}
	}
}

func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Pair holds one element from each of two sequences.
type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

func (p Pair[T1, T2]) Elem0() T1 { return p.V1 }
func (p Pair[T1, T2]) Elem1() T2 { return p.V2 }

// Triple holds one element from each of three sequences.
type Triple[T1, T2, T3 any] struct {
	V1 T1
	V2 T2
	V3 T3
}

func (t Triple[T1, T2, T3]) Elem0() T1 { return t.V1 }
func (t Triple[T1, T2, T3]) Elem1() T2 { return t.V2 }
func (t Triple[T1, T2, T3]) Elem2() T3 { return t.V3 }

// Zip pairs the elements of seq1 and seq2 positionally.
// It stops as soon as either sequence is exhausted.
func Zip[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2]) iter.Seq[Pair[T1, T2]] {
	return func(yield func(Pair[T1, T2]) bool) {
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for v1 := range seq1 {
			v2, ok := next2()
			if !ok {
				return
			}
			if !yield(Pair[T1, T2]{v1, v2}) {
				return
			}
		}
	}
}

// Zip3 is Zip over three sequences.
func Zip3[T1, T2, T3 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2], seq3 iter.Seq[T3]) iter.Seq[Triple[T1, T2, T3]] {
	return func(yield func(Triple[T1, T2, T3]) bool) {
		next2, stop2 := iter.Pull(seq2)
		defer stop2()
		next3, stop3 := iter.Pull(seq3)
		defer stop3()

		for v1 := range seq1 {
			v2, ok := next2()
			if !ok {
				return
			}
			v3, ok := next3()
			if !ok {
				return
			}
			if !yield(Triple[T1, T2, T3]{v1, v2, v3}) {
				return
			}
		}
	}
}

func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for v := range seq {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}

// CartesianProduct yields every pair (a, b) with a from seq1 and b from seq2.
// seq1 is the outer loop. seq2 is ranged over once per element of seq1, so it must
// be restartable.
func CartesianProduct[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2]) iter.Seq[Pair[T1, T2]] {
	return func(yield func(Pair[T1, T2]) bool) {
		for v1 := range seq1 {
			for v2 := range seq2 {
				if !yield(Pair[T1, T2]{v1, v2}) {
					return
				}
			}
		}
	}
}
