package garlic

// region Iterator

// Iterator is a forward-only cursor over the ring. By default it never
// ends on a non-empty list; Once makes it stop after the tail.
//
// WARN: NOT CONCURRENT SAFE!! Share the list, not the iterator: every
// goroutine must advance its own Iterator.
type Iterator[T any] struct {
	cursor *Node[T]
	tail   *Node[T]
	stop   bool
}

// Once makes the iterator stop after one full revolution, head through
// tail. It returns the receiver for chaining.
func (it *Iterator[T]) Once() *Iterator[T] {
	it.stop = true
	return it
}

// Clone returns an independent iterator at the same position with the
// same mode. Only cursor state is copied; both walk the same ring.
func (it *Iterator[T]) Clone() *Iterator[T] {
	c := *it
	return &c
}

// Next returns the node under the cursor and advances. It returns
// nil, false once exhausted, which only happens after Once or on an
// empty list. The stop check compares node identity against the tail
// captured at creation, not values.
func (it *Iterator[T]) Next() (*Node[T], bool) {
	n := it.cursor
	if n == nil {
		return nil, false
	}

	if it.stop && n == it.tail {
		it.cursor = nil
	} else {
		it.cursor = n.next
	}

	return n, true
}

// Values projects the node sequence onto element values, copying each
// visited node's Value. Same order and same finiteness as the
// receiver.
func (it *Iterator[T]) Values() *ValueIterator[T] {
	return &ValueIterator[T]{it: it}
}

// ValuesFunc is Values with each element passed through clone, for
// element types where assignment is not a deep enough copy.
func (it *Iterator[T]) ValuesFunc(clone func(T) T) *ValueIterator[T] {
	return &ValueIterator[T]{it: it, clone: clone}
}

// endregion

// region ValueIterator

// ValueIterator is a lazy projection of an Iterator onto the element
// values.
type ValueIterator[T any] struct {
	it    *Iterator[T]
	clone func(T) T
}

func (vi *ValueIterator[T]) Next() (T, bool) {
	n, ok := vi.it.Next()
	if !ok {
		var zero T
		return zero, false
	}

	if vi.clone != nil {
		return vi.clone(n.Value), true
	}

	return n.Value, true
}

// Take collects up to n values into a slice, fewer if the sequence
// ends first.
func (vi *ValueIterator[T]) Take(n int) []T {
	values := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, ok := vi.Next()
		if !ok {
			break
		}

		values = append(values, v)
	}

	return values
}

// endregion
