package monad

import "monadic/seqs"

// Filter keeps the elements for which pred is true, in order.
func (m Monad[T]) Filter(pred func(T) bool) Monad[T] {
	out := Monad[T]{seq: seqs.Filter(m.All(), pred), once: m.once}
	if m.back != nil {
		out.back = seqs.Filter(m.back, pred)
	}
	return out
}

// FilterNot keeps the elements for which pred is false.
func (m Monad[T]) FilterNot(pred func(T) bool) Monad[T] {
	return m.Filter(func(v T) bool { return !pred(v) })
}

// Take keeps the first n elements, or all of them if there are fewer.
// Upstream is not read past the n-th element.
func (m Monad[T]) Take(n int) Monad[T] {
	mustNonNegative("Take", n)
	if m.at != nil {
		size := m.size
		return indexed(func() int { return min(n, size()) }, m.at)
	}
	out := Monad[T]{seq: seqs.Take(m.All(), n), once: m.once}
	if m.size != nil {
		size := m.size
		out.size = func() int { return min(n, size()) }
		if m.back != nil {
			back := m.back
			out.back = func(yield func(T) bool) {
				seqs.Skip(back, size()-min(n, size()))(yield)
			}
		}
	}
	return out
}

// TakeWhile keeps the longest prefix whose elements satisfy pred. The first
// element that fails pred is read but not yielded, and nothing after it is read.
func (m Monad[T]) TakeWhile(pred func(T) bool) Monad[T] {
	return Monad[T]{seq: seqs.TakeWhile(m.All(), pred), once: m.once}
}

// Drop skips the first n elements, or all of them if there are fewer.
func (m Monad[T]) Drop(n int) Monad[T] {
	mustNonNegative("Drop", n)
	if m.at != nil {
		size, at := m.size, m.at
		return indexed(
			func() int { return max(0, size()-n) },
			func(i int) T { return at(i + n) },
		)
	}
	out := Monad[T]{seq: seqs.Skip(m.All(), n), once: m.once}
	if m.size != nil {
		size := m.size
		out.size = func() int { return max(0, size()-n) }
		if m.back != nil {
			back := m.back
			out.back = func(yield func(T) bool) {
				seqs.Take(back, max(0, size()-n))(yield)
			}
		}
	}
	return out
}

// DropWhile skips the longest prefix whose elements satisfy pred.
func (m Monad[T]) DropWhile(pred func(T) bool) Monad[T] {
	return Monad[T]{seq: seqs.DropWhile(m.All(), pred), once: m.once}
}

// Reverse traverses m from the end. It panics with a CapabilityError unless m
// is bidirectional.
func (m Monad[T]) Reverse() Monad[T] {
	m.require("Reverse", CapBidirectional)
	if m.at != nil {
		size, at := m.size, m.at
		return indexed(size, func(i int) T { return at(size() - 1 - i) })
	}
	return Monad[T]{seq: m.back, back: m.All(), size: m.size, once: m.once}
}

// AsConst returns a read-only view of m. Elements are handed out by value, so
// nothing reached through the result can write to the source's slots. Values
// that are themselves pointers, maps or slices still share what they refer to.
func (m Monad[T]) AsConst() Monad[T] {
	return Monad[T]{seq: m.seq, back: m.back, size: m.size, at: m.at, once: m.once}
}

// Stride keeps the elements at positions 0, n, 2n, ...
func (m Monad[T]) Stride(n int) Monad[T] {
	mustPositive("Stride", n)
	if m.at != nil {
		size, at := m.size, m.at
		return indexed(
			func() int { return (size() + n - 1) / n },
			func(i int) T { return at(i * n) },
		)
	}
	out := Monad[T]{seq: seqs.Stride(m.All(), n), once: m.once}
	if m.size != nil {
		size := m.size
		out.size = func() int { return (size() + n - 1) / n }
	}
	return out
}

// Concat yields m followed by other.
func (m Monad[T]) Concat(other Monad[T]) Monad[T] {
	if m.at != nil && other.at != nil {
		size1, at1, size2, at2 := m.size, m.at, other.size, other.at
		return indexed(
			func() int { return size1() + size2() },
			func(i int) T {
				if n := size1(); i >= n {
					return at2(i - n)
				}
				return at1(i)
			},
		)
	}
	out := Monad[T]{seq: seqs.Concat(m.All(), other.All()), once: m.once || other.once}
	if m.back != nil && other.back != nil {
		out.back = seqs.Concat(other.back, m.back)
	}
	if m.size != nil && other.size != nil {
		size1, size2 := m.size, other.size
		out.size = func() int { return size1() + size2() }
	}
	return out
}

// Inspect calls fn on every element as it passes through. Random access is
// dropped so that no element can bypass fn.
func (m Monad[T]) Inspect(fn func(T)) Monad[T] {
	out := Monad[T]{seq: seqs.Peek(m.All(), fn), size: m.size, once: m.once}
	if m.back != nil {
		out.back = seqs.Peek(m.back, fn)
	}
	return out
}
