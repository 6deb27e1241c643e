// Package priorityqueue implements a binary heap. The element with the
// smallest value under the ordering function sits at the top.
package priorityqueue

import "github.com/collections-go/collections/shared"

// PriorityQueue is a binary min-heap of elements of type T.
type PriorityQueue[T any] struct {
	data []T
	less func(a, b T) bool
}

// New creates an empty priority queue over the natural ordering of T.
func New[T shared.Ordered]() *PriorityQueue[T] {
	return NewWith(func(a, b T) bool { return a < b })
}

// NewWith creates an empty priority queue with the given ordering
// function. The element for which less is true against all others is
// served first.
func NewWith[T any](less func(a, b T) bool) *PriorityQueue[T] {
	return &PriorityQueue[T]{less: less}
}

// Empty reports whether the queue holds no elements.
func (pq *PriorityQueue[T]) Empty() bool {
	return len(pq.data) == 0
}

// Size returns the number of elements.
func (pq *PriorityQueue[T]) Size() int {
	return len(pq.data)
}

// Push adds elem to the queue.
func (pq *PriorityQueue[T]) Push(elem T) {
	pq.data = append(pq.data, elem)
	pq.percolateUp(len(pq.data) - 1)
}

// Pop removes and returns the smallest element. It panics on an empty
// queue.
func (pq *PriorityQueue[T]) Pop() T {
	if len(pq.data) == 0 {
		panic("priorityqueue: pop from an empty queue")
	}
	top := pq.data[0]
	last := len(pq.data) - 1
	pq.data[0] = pq.data[last]
	var zero T
	pq.data[last] = zero
	pq.data = pq.data[:last]
	if last > 0 {
		pq.percolateDown(0)
	}
	return top
}

// Top returns the smallest element without removing it. It panics on
// an empty queue.
func (pq *PriorityQueue[T]) Top() T {
	if len(pq.data) == 0 {
		panic("priorityqueue: top of an empty queue")
	}
	return pq.data[0]
}

// Clear removes all elements.
func (pq *PriorityQueue[T]) Clear() {
	pq.data = nil
}

// percolateUp moves the element at pos towards the root until its
// parent is not greater.
func (pq *PriorityQueue[T]) percolateUp(pos int) {
	elem := pq.data[pos]
	for pos > 0 {
		parent := (pos - 1) / 2
		if !pq.less(elem, pq.data[parent]) {
			break
		}
		pq.data[pos] = pq.data[parent]
		pos = parent
	}
	pq.data[pos] = elem
}

// percolateDown moves the element at pos towards the leaves, always
// following the smaller child.
func (pq *PriorityQueue[T]) percolateDown(pos int) {
	elem := pq.data[pos]
	size := len(pq.data)
	for {
		child := 2*pos + 1
		if child >= size {
			break
		}
		if child+1 < size && pq.less(pq.data[child+1], pq.data[child]) {
			child++
		}
		if !pq.less(pq.data[child], elem) {
			break
		}
		pq.data[pos] = pq.data[child]
		pos = child
	}
	pq.data[pos] = elem
}
