// Package list implements a doubly linked list. An inserted element
// keeps its node identity, so callers may hold on to nodes and unlink
// them in constant time later.
package list

// Node is one element of a List. The zero distance neighbors are
// reachable through Next and Prev.
type Node[T any] struct {
	next, prev *Node[T]
	list       *List[T]

	// Value is the element stored in this node.
	Value T
}

// Next returns the following node, or nil at the back of the list.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the preceding node, or nil at the front of the list.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// List is a doubly linked list of elements of type T.
type List[T any] struct {
	head, tail *Node[T]
	// length stores the current inserted elements
	length int
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool {
	return l.length == 0
}

// Size returns the number of elements.
func (l *List[T]) Size() int {
	return l.length
}

// Front returns the first node, or nil on an empty list.
func (l *List[T]) Front() *Node[T] {
	return l.head
}

// Back returns the last node, or nil on an empty list.
func (l *List[T]) Back() *Node[T] {
	return l.tail
}

// PushFront inserts elem at the front and returns its node.
func (l *List[T]) PushFront(elem T) *Node[T] {
	n := &Node[T]{Value: elem, list: l, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.length++
	return n
}

// PushBack inserts elem at the back and returns its node.
func (l *List[T]) PushBack(elem T) *Node[T] {
	n := &Node[T]{Value: elem, list: l, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.length++
	return n
}

// PopFront removes and returns the first element. It panics on an
// empty list.
func (l *List[T]) PopFront() T {
	if l.head == nil {
		panic("list: pop from an empty list")
	}
	return l.Remove(l.head)
}

// PopBack removes and returns the last element. It panics on an empty
// list.
func (l *List[T]) PopBack() T {
	if l.tail == nil {
		panic("list: pop from an empty list")
	}
	return l.Remove(l.tail)
}

// InsertBefore places elem in front of the node at and returns the new
// node. It panics if at belongs to another list.
func (l *List[T]) InsertBefore(at *Node[T], elem T) *Node[T] {
	if at.list != l {
		panic("list: node belongs to a different list")
	}
	if at.prev == nil {
		return l.PushFront(elem)
	}
	n := &Node[T]{Value: elem, list: l, prev: at.prev, next: at}
	at.prev.next = n
	at.prev = n
	l.length++
	return n
}

// InsertAfter places elem behind the node at and returns the new node.
// It panics if at belongs to another list.
func (l *List[T]) InsertAfter(at *Node[T], elem T) *Node[T] {
	if at.list != l {
		panic("list: node belongs to a different list")
	}
	if at.next == nil {
		return l.PushBack(elem)
	}
	n := &Node[T]{Value: elem, list: l, prev: at, next: at.next}
	at.next.prev = n
	at.next = n
	l.length++
	return n
}

// Remove unlinks the node from the list and returns its element. It
// panics if the node belongs to another list or was already removed.
func (l *List[T]) Remove(n *Node[T]) T {
	if n.list != l {
		panic("list: node belongs to a different list")
	}
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.next, n.prev, n.list = nil, nil, nil
	l.length--
	return n.Value
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.next, n.prev, n.list = nil, nil, nil
		n = next
	}
	l.head, l.tail, l.length = nil, nil, 0
}

// Each calls 'fn' on every element from front to back.
// If 'fn' returns true, the iteration stops.
func (l *List[T]) Each(fn func(elem T) bool) {
	for n := l.head; n != nil; n = n.next {
		if stop := fn(n.Value); stop {
			// stop iteration
			return
		}
	}
}
