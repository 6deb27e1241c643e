// Package stack implements a LIFO stack on top of a growable array.
package stack

import "github.com/collections-go/collections/vector"

// Stack is a last-in-first-out container of elements of type T.
type Stack[T any] struct {
	data *vector.Vector[T]
}

// New creates an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{data: vector.New[T]()}
}

// NewWithCapacity creates an empty stack with room for n elements.
func NewWithCapacity[T any](n int) *Stack[T] {
	return &Stack[T]{data: vector.NewWithCapacity[T](n)}
}

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool {
	return s.data.Empty()
}

// Size returns the number of elements.
func (s *Stack[T]) Size() int {
	return s.data.Size()
}

// Push places elem on top of the stack.
func (s *Stack[T]) Push(elem T) {
	s.data.Push(elem)
}

// Pop removes and returns the top element. It panics on an empty
// stack.
func (s *Stack[T]) Pop() T {
	if s.data.Empty() {
		panic("stack: pop from an empty stack")
	}
	return s.data.Pop()
}

// Top returns the top element without removing it. It panics on an
// empty stack.
func (s *Stack[T]) Top() T {
	if s.data.Empty() {
		panic("stack: top of an empty stack")
	}
	return s.data.Back()
}

// Clear removes all elements.
func (s *Stack[T]) Clear() {
	s.data.Clear()
}
