package garlic

import (
	"fmt"
	"strings"
)

// region Node

// Node is one element of the ring. In a non-empty list every node has
// a non-nil successor, and following Next from any node comes back
// around to it after one full revolution.
type Node[T any] struct {
	Value T
	next  *Node[T]
}

// Next returns the node's successor in ring order. It is nil only on
// the old tail of a list that has been Reset.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// endregion

// region CircularLinkedList

// CircularLinkedList is a circular singly linked list. The zero value
// is an empty list ready to use.
//
// The tail is cached so Push never traverses. head and tail are either
// both nil or both set; when set, tail.next is head.
//
// One owner drives Push. Any number of iterators may read while no
// push is running, each from its own Iterator.
type CircularLinkedList[T any] struct {
	head *Node[T]
	tail *Node[T]
}

func New[T any]() *CircularLinkedList[T] {
	return &CircularLinkedList[T]{}
}

// Of builds a list by pushing values in order. Of[T]() is empty.
func Of[T any](values ...T) *CircularLinkedList[T] {
	l := New[T]()
	l.PushAll(values...)
	return l
}

// Len counts the nodes by walking one full revolution.
//
// Expensive: has to traverse the entire list.
func (l *CircularLinkedList[T]) Len() int {
	count := 0
	it := l.IterOnce()
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		count++
	}

	return count
}

func (l *CircularLinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

func (l *CircularLinkedList[T]) Head() *Node[T] {
	return l.head
}

func (l *CircularLinkedList[T]) Tail() *Node[T] {
	return l.tail
}

// Push appends value as the new tail. O(1).
func (l *CircularLinkedList[T]) Push(value T) {
	if l.tail == nil {
		n := &Node[T]{Value: value}
		n.next = n // ring of one

		l.head, l.tail = n, n
		return
	}

	n := &Node[T]{Value: value, next: l.head}
	l.tail.next = n
	l.tail = n
}

// PushAll pushes values in order.
func (l *CircularLinkedList[T]) PushAll(values ...T) {
	for _, v := range values {
		l.Push(v)
	}
}

// Iter returns an iterator that never ends, unless the list is empty.
func (l *CircularLinkedList[T]) Iter() *Iterator[T] {
	return &Iterator[T]{
		cursor: l.head,
		tail:   l.tail,
	}
}

// IterOnce returns an iterator that goes through the list once and
// stops at the tail element.
func (l *CircularLinkedList[T]) IterOnce() *Iterator[T] {
	return l.Iter().Once()
}

// Reset severs the ring and empties the list. The nodes stop linking
// to each other through the old tail, so a caller still holding a
// *Node keeps at most the chain from that node to the old tail alive,
// never the whole ring.
func (l *CircularLinkedList[T]) Reset() {
	if l.tail != nil {
		l.tail.next = nil
	}

	l.head, l.tail = nil, nil
}

// String renders one revolution in ring order, e.g. [1, 2, 3].
func (l *CircularLinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')

	it := l.IterOnce()
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		if sb.Len() > 1 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", n.Value)
	}

	sb.WriteByte(']')
	return sb.String()
}

// endregion
