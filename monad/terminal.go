package monad

import (
	"iter"
	"runtime"
	"slices"

	"golang.org/x/exp/constraints"

	"monadic/seqs"
)

// Appender is any container that grows by appending, such as lists.ArrayList
// or lists.LinkedList.
type Appender[T any] interface {
	Add(values ...T)
}

// Equal reports whether a and b have the same length and equal elements at
// every position. When both lengths are known and differ, nothing is read.
func Equal[T comparable](a, b Monad[T]) bool {
	if lengthsDiffer(a, b) {
		return false
	}
	return seqs.Equal(a.All(), b.All())
}

// NotEqualTo is the negation of Equal.
func NotEqualTo[T comparable](a, b Monad[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is Equal with eq deciding element equality.
func (m Monad[T]) EqualFunc(other Monad[T], eq func(a, b T) bool) bool {
	if lengthsDiffer(m, other) {
		return false
	}
	return seqs.EqualFunc(m.All(), other.All(), eq)
}

func lengthsDiffer[T any](a, b Monad[T]) bool {
	return a.size != nil && b.size != nil && a.size() != b.size()
}

// Distance returns the number of elements. Sized chains answer without
// traversal; the rest are counted.
func (m Monad[T]) Distance() int {
	if m.size != nil {
		return m.size()
	}
	return seqs.Count(m.All())
}

// ToSlice collects m into a new slice. The result is never nil.
func (m Monad[T]) ToSlice() []T {
	n := 0
	if m.size != nil {
		n = m.size()
	}
	return slices.AppendSeq(make([]T, 0, n), m.All())
}

// To hands the sequence to collect and returns what it builds:
//
//	set := monad.To(m, lists.CollectLinked[int])
func To[T, C any](m Monad[T], collect func(iter.Seq[T]) C) C {
	return collect(m.All())
}

// Into appends every element of m to dst and returns dst.
func Into[T any, A Appender[T]](m Monad[T], dst A) A {
	for v := range m.All() {
		dst.Add(v)
	}
	return dst
}

// ToMap collects pairs into a map. Later keys overwrite earlier ones.
func ToMap[K comparable, V any](m Monad[Pair[K, V]]) map[K]V {
	out := make(map[K]V)
	for p := range m.All() {
		out[p.V1] = p.V2
	}
	return out
}

// View returns a Monad over the current chain that can be traversed any
// number of times without rebuilding the chain. Multi-pass chains are
// returned as they are. Single-pass chains are remembered lazily: elements are
// pulled from upstream the first time a traversal reaches them and replayed
// afterwards, so nothing is read ahead of demand.
//
// The upstream pull is released once it is exhausted, or when the view
// becomes unreachable if no traversal ever reached the end.
func (m Monad[T]) View() Monad[T] {
	if !m.once {
		return m
	}
	r := &replay[T]{upstream: m.All()}
	return Monad[T]{seq: r.all}
}

type replay[T any] struct {
	upstream iter.Seq[T]
	cache    []T
	next     func() (T, bool)
	stop     func()
	done     bool
}

func (r *replay[T]) all(yield func(T) bool) {
	for i := 0; ; i++ {
		if i == len(r.cache) {
			v, ok := r.pull()
			if !ok {
				return
			}
			r.cache = append(r.cache, v)
		}
		if !yield(r.cache[i]) {
			return
		}
	}
}

func (r *replay[T]) pull() (T, bool) {
	var zero T
	if r.done {
		return zero, false
	}
	if r.next == nil {
		r.next, r.stop = iter.Pull(r.upstream)
		// stop does not refer back to r, so r can still be collected
		runtime.AddCleanup(r, func(stop func()) { stop() }, r.stop)
	}
	v, ok := r.next()
	if !ok {
		r.done = true
		r.stop()
		return zero, false
	}
	return v, true
}

// Reduce folds m into a single value, starting from initial.
func Reduce[T, R any](m Monad[T], initial R, fn func(R, T) R) R {
	return seqs.Reduce(m.All(), initial, fn)
}

// Sum adds up the elements of m.
func Sum[T seqs.Number](m Monad[T]) T {
	return seqs.Sum(m.All())
}

// Min returns the smallest element, or false if m is empty.
func Min[T constraints.Ordered](m Monad[T]) (T, bool) {
	return seqs.Min(m.All())
}

// Max returns the largest element, or false if m is empty.
func Max[T constraints.Ordered](m Monad[T]) (T, bool) {
	return seqs.Max(m.All())
}
