package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func Sum[T Number](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

func Min[T constraints.Ordered](seq iter.Seq[T]) (T, bool) {
	var min T
	first := true
	for v := range seq {
		if first {
			min = v
			first = false
			continue
		}
		if v < min {
			min = v
		}
	}
	if first {
		var zero T
		return zero, false
	}
	return min, true
}

func Max[T constraints.Ordered](seq iter.Seq[T]) (T, bool) {
	var max T
	first := true
	for v := range seq {
		if first {
			max = v
			first = false
			continue
		}
		if v > max {
			max = v
		}
	}
	if first {
		var zero T
		return zero, false
	}
	return max, true
}
