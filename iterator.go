package slist

import "iter"

// A forward-only cursor into a list's chain. Values are returned by copy.
// Once exhausted, an iterator stays exhausted.
type Iterator[T any] struct {
	next *node[T]
}

// Returns the next value, or false when there are no more.
func (it *Iterator[T]) Next() (T, bool) {
	n := it.next
	if n == nil {
		var zero T
		return zero, false
	}
	it.next = n.next
	return n.value, true
}

// All drains the iterator. Breaking out of the range loop leaves the
// iterator positioned after the last value yielded.
func (it *Iterator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			value, ok := it.Next()
			if !ok || !yield(value) {
				return
			}
		}
	}
}
