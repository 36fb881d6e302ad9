package monad

import (
	"iter"

	"monadic/seqs"
)

// Monad is a lazily evaluated sequence of T plus the traversal capabilities
// the sequence supports. The zero value is an empty sequence.
type Monad[T any] struct {
	seq  iter.Seq[T]
	back iter.Seq[T] // nil unless bidirectional
	size func() int  // nil unless the length is known up front
	at   func(int) T // nil unless random access; implies size and back
	once bool
}

// indexed builds a random access Monad. size is read again at the start of
// every traversal, so sources whose length changes are seen as they are then.
func indexed[T any](size func() int, at func(int) T) Monad[T] {
	return Monad[T]{
		seq: func(yield func(T) bool) {
			n := size()
			for i := 0; i < n; i++ {
				if !yield(at(i)) {
					return
				}
			}
		},
		back: func(yield func(T) bool) {
			for i := size() - 1; i >= 0; i-- {
				if !yield(at(i)) {
					return
				}
			}
		},
		size: size,
		at:   at,
	}
}

func emptySeq[T any](func(T) bool) {}

// All returns the sequence in forward order.
func (m Monad[T]) All() iter.Seq[T] {
	if m.seq == nil {
		return emptySeq[T]
	}
	return m.seq
}

// Backward returns the sequence in reverse order.
// It panics if the Monad is not bidirectional.
func (m Monad[T]) Backward() iter.Seq[T] {
	m.require("Backward", CapBidirectional)
	return m.back
}

// Capabilities reports how m can be traversed.
func (m Monad[T]) Capabilities() Capability {
	var c Capability
	if !m.once {
		c |= CapMultiPass
	}
	if m.back != nil {
		c |= CapBidirectional
	}
	if m.size != nil {
		c |= CapSized
	}
	if m.at != nil {
		c |= CapRandomAccess
	}
	return c
}

// Supports reports whether m has every capability in c.
func (m Monad[T]) Supports(c Capability) bool {
	return m.Capabilities().Has(c)
}

func (m Monad[T]) require(op string, need Capability) {
	if have := m.Capabilities(); !have.Has(need) {
		panic(&CapabilityError{Op: op, Need: need, Have: have})
	}
}

// Len returns the length of m if it is known without traversal.
func (m Monad[T]) Len() (int, bool) {
	if m.size == nil {
		return 0, false
	}
	return m.size(), true
}

// At returns the i-th element. ok is false if m is not random access or i is
// out of range.
func (m Monad[T]) At(i int) (v T, ok bool) {
	if m.at == nil || i < 0 || i >= m.size() {
		return v, false
	}
	return m.at(i), true
}

// Front returns the first element, reading nothing past it.
func (m Monad[T]) Front() (T, bool) {
	return seqs.First(m.All())
}

// Back returns the last element. Without CapBidirectional it traverses the
// whole sequence.
func (m Monad[T]) Back() (T, bool) {
	if m.back != nil {
		return seqs.First(m.back)
	}
	return seqs.Last(m.All())
}
