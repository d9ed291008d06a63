package slist

// A single link in the chain. value is fixed at construction, only the
// tail's next is ever rewritten (by Push).
type node[T any] struct {
	value T
	next  *node[T]
}

func newNode[T any](value T, next *node[T]) *node[T] {
	return &node[T]{
		value: value,
		next:  next,
	}
}
