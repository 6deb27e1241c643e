// Package queue implements a FIFO queue on top of a doubly linked
// list.
package queue

import "github.com/collections-go/collections/list"

// Queue is a first-in-first-out container of elements of type T.
type Queue[T any] struct {
	data *list.List[T]
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{data: list.New[T]()}
}

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool {
	return q.data.Empty()
}

// Size returns the number of elements.
func (q *Queue[T]) Size() int {
	return q.data.Size()
}

// Push appends elem at the back of the queue.
func (q *Queue[T]) Push(elem T) {
	q.data.PushBack(elem)
}

// Pop removes and returns the element at the front. It panics on an
// empty queue.
func (q *Queue[T]) Pop() T {
	return q.data.PopFront()
}

// Front returns the element at the front without removing it. It
// panics on an empty queue.
func (q *Queue[T]) Front() T {
	if q.data.Empty() {
		panic("queue: front of an empty queue")
	}
	return q.data.Front().Value
}

// Back returns the element at the back without removing it. It panics
// on an empty queue.
func (q *Queue[T]) Back() T {
	if q.data.Empty() {
		panic("queue: back of an empty queue")
	}
	return q.data.Back().Value
}

// Clear removes all elements.
func (q *Queue[T]) Clear() {
	q.data.Clear()
}
