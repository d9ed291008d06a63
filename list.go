// A singly-linked list whose nodes are shared between the list and any
// live iterators.
package slist

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// List is not safe for concurrent use. The zero value is an empty list.
type List[T any] struct {
	head  *node[T]
	tail  *node[T]
	count int
}

func New[T any]() *List[T] {
	return &List[T]{}
}

// Number of elements in the list
func (l *List[T]) Count() int {
	return l.count
}

// Adds the value at the front of the list. The existing chain becomes the
// new head's next, it is never copied.
func (l *List[T]) Insert(value T) {
	head := l.head
	l.head = newNode(value, head)
	if head == nil {
		l.tail = l.head
	}
	l.count += 1
}

// Appends the value at the end of the list. This is the only operation
// which modifies a node after it has been linked in.
func (l *List[T]) Push(value T) {
	n := newNode[T](value, nil)
	if tail := l.tail; tail != nil {
		tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.count += 1
}

// Removes and returns the head value. Returns false if the list is empty.
// Iterators which already hold the removed node are unaffected.
func (l *List[T]) Pop() (T, bool) {
	head := l.head
	if head == nil {
		var zero T
		return zero, false
	}
	l.head = head.next
	if l.head == nil {
		l.tail = nil
	}
	l.count -= 1
	return head.value, true
}

// Returns the head value without removing it
func (l *List[T]) Peek() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Iter returns an iterator which starts at the current head and shares
// the chain with the list: values pushed before it passes the old tail
// are seen, popped nodes it already holds are still yielded.
func (l *List[T]) Iter() *Iterator[T] {
	return &Iterator[T]{next: l.head}
}

// Snapshot returns an iterator over a copy of the list as it is right now.
// Later mutations of the list are never observed.
func (l *List[T]) Snapshot() *Iterator[T] {
	var head, tail *node[T]
	for n := l.head; n != nil; n = n.next {
		c := newNode[T](n.value, nil)
		if tail == nil {
			head = c
		} else {
			tail.next = c
		}
		tail = c
	}
	return &Iterator[T]{next: head}
}

func (l *List[T]) All() iter.Seq[T] {
	return l.Iter().All()
}

// The values, head to tail
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.count)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// Writes one "node <value>" line per element, head to tail.
func (l *List[T]) Display(w io.Writer) error {
	return l.DisplayWith(w, Configure())
}

// A nil config behaves like Display.
func (l *List[T]) DisplayWith(w io.Writer, config *Configuration) error {
	if config == nil {
		config = Configure()
	}
	p := newPrinter(w, config)
	for n := l.head; n != nil; n = n.next {
		if err := p.line(n.value); err != nil {
			return err
		}
	}
	return nil
}

func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.value)
	}
	sb.WriteByte(']')
	return sb.String()
}
