// Package deque implements a double-ended queue on top of a doubly
// linked list, so pushes and pops at both ends run in constant time.
package deque

import "github.com/collections-go/collections/list"

// Deque is a double-ended queue of elements of type T.
type Deque[T any] struct {
	data *list.List[T]
}

// New creates an empty deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{data: list.New[T]()}
}

// Empty reports whether the deque holds no elements.
func (d *Deque[T]) Empty() bool {
	return d.data.Empty()
}

// Size returns the number of elements.
func (d *Deque[T]) Size() int {
	return d.data.Size()
}

// PushFront inserts elem at the front.
func (d *Deque[T]) PushFront(elem T) {
	d.data.PushFront(elem)
}

// PushBack inserts elem at the back.
func (d *Deque[T]) PushBack(elem T) {
	d.data.PushBack(elem)
}

// PopFront removes and returns the first element. It panics on an
// empty deque.
func (d *Deque[T]) PopFront() T {
	return d.data.PopFront()
}

// PopBack removes and returns the last element. It panics on an empty
// deque.
func (d *Deque[T]) PopBack() T {
	return d.data.PopBack()
}

// Front returns the first element without removing it. It panics on an
// empty deque.
func (d *Deque[T]) Front() T {
	if d.data.Empty() {
		panic("deque: front of an empty deque")
	}
	return d.data.Front().Value
}

// Back returns the last element without removing it. It panics on an
// empty deque.
func (d *Deque[T]) Back() T {
	if d.data.Empty() {
		panic("deque: back of an empty deque")
	}
	return d.data.Back().Value
}

// Clear removes all elements.
func (d *Deque[T]) Clear() {
	d.data.Clear()
}

// Each calls 'fn' on every element from front to back.
// If 'fn' returns true, the iteration stops.
func (d *Deque[T]) Each(fn func(elem T) bool) {
	d.data.Each(fn)
}
