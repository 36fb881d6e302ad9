package lists

import (
	"fmt"
	"iter"
	"strings"
)

type node[T any] struct {
	prev *node[T]
	next *node[T]
	val  T
}

// LinkedList is a doubly linked List. It can be walked from either end but
// has no cheap access by position.
type LinkedList[T any] struct {
	headSentinel *node[T]
	tailSentinel *node[T]
	size         int
}

func NewLinkedList[T any]() *LinkedList[T] {
	ll := &LinkedList[T]{
		headSentinel: &node[T]{},
		tailSentinel: &node[T]{},
		size:         0,
	}
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	return ll
}

// CollectLinked builds a LinkedList from seq.
func CollectLinked[T any](seq iter.Seq[T]) *LinkedList[T] {
	ll := NewLinkedList[T]()
	for v := range seq {
		ll.Add(v)
	}
	return ll
}

// insertAfter links newNode in after at.
func (ll *LinkedList[T]) insertAfter(at *node[T], newNode *node[T]) {
	newNode.prev = at
	newNode.next = at.next
	at.next.prev = newNode
	at.next = newNode
	ll.size++
}

// findNodeAt returns the node at index, which must be in range.
func (ll *LinkedList[T]) findNodeAt(index int) *node[T] {
	// start from whichever end is closer
	if index < ll.size/2 {
		current := ll.headSentinel.next
		for range index {
			current = current.next
		}
		return current
	}
	current := ll.tailSentinel.prev
	for i := ll.size - 1; i > index; i-- {
		current = current.prev
	}
	return current
}

func (ll *LinkedList[T]) Add(values ...T) {
	for _, v := range values {
		ll.insertAfter(ll.tailSentinel.prev, &node[T]{val: v})
	}
}

// AddFirst prepends value.
func (ll *LinkedList[T]) AddFirst(value T) {
	ll.insertAfter(ll.headSentinel, &node[T]{val: value})
}

func (ll *LinkedList[T]) Get(index int) (val T, err error) {
	if index < 0 || index >= ll.size {
		return val, ErrIndexOutOfBounds
	}
	return ll.findNodeAt(index).val, nil
}

func (ll *LinkedList[T]) Size() int {
	return ll.size
}

func (ll *LinkedList[T]) IsEmpty() bool {
	return ll.size == 0
}

func (ll *LinkedList[T]) ToSlice() []T {
	out := make([]T, 0, ll.size)
	for v := range ll.Values() {
		out = append(out, v)
	}
	return out
}

func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		current := ll.headSentinel.next
		for current != ll.tailSentinel {
			if !yield(current.val) {
				break
			}
			current = current.next
		}
	}
}

func (ll *LinkedList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		current := ll.headSentinel.next
		index := 0
		for current != ll.tailSentinel {
			if !yield(index, current.val) {
				break
			}
			current = current.next
			index++
		}
	}
}

func (ll *LinkedList[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		current := ll.tailSentinel.prev
		index := ll.size - 1
		for current != ll.headSentinel {
			if !yield(index, current.val) {
				break
			}
			current = current.prev
			index--
		}
	}
}

func (ll *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	i := 0
	for v := range ll.Values() {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%v", v)
		i++
	}
	sb.WriteString("]")
	return sb.String()
}
