// Package vector implements a growable array that doubles its storage
// when it runs out of room.
package vector

import "fmt"

// Vector is a dynamic array of elements of type T. The zero value is an
// empty vector ready to use.
type Vector[T any] struct {
	data []T
}

// New creates an empty vector.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithCapacity creates an empty vector with room for n elements.
func NewWithCapacity[T any](n int) *Vector[T] {
	return &Vector[T]{data: make([]T, 0, n)}
}

//go:inline
func (v *Vector[T]) boundsCheck(i int) {
	if i < 0 || i >= len(v.data) {
		panic(fmt.Sprintf("vector: index %d out of range [0,%d)", i, len(v.data)))
	}
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return len(v.data) == 0
}

// Size returns the number of elements.
func (v *Vector[T]) Size() int {
	return len(v.data)
}

// Capacity returns the number of elements the vector can hold before it
// has to grow.
func (v *Vector[T]) Capacity() int {
	return cap(v.data)
}

// Push appends elem at the back, growing the storage if needed.
func (v *Vector[T]) Push(elem T) {
	v.data = append(v.data, elem)
}

// Pop removes and returns the last element. It panics on an empty
// vector.
func (v *Vector[T]) Pop() T {
	if len(v.data) == 0 {
		panic("vector: pop from an empty vector")
	}
	last := len(v.data) - 1
	elem := v.data[last]
	var zero T
	v.data[last] = zero
	v.data = v.data[:last]
	return elem
}

// At returns the element at index i. It panics if i is out of range.
func (v *Vector[T]) At(i int) T {
	v.boundsCheck(i)
	return v.data[i]
}

// Set overwrites the element at index i. It panics if i is out of
// range.
func (v *Vector[T]) Set(i int, elem T) {
	v.boundsCheck(i)
	v.data[i] = elem
}

// Front returns the first element. It panics on an empty vector.
func (v *Vector[T]) Front() T {
	if len(v.data) == 0 {
		panic("vector: front of an empty vector")
	}
	return v.data[0]
}

// Back returns the last element. It panics on an empty vector.
func (v *Vector[T]) Back() T {
	if len(v.data) == 0 {
		panic("vector: back of an empty vector")
	}
	return v.data[len(v.data)-1]
}

// Insert places elem before index i, shifting the tail one slot to the
// right. i == Size() appends. It panics if i is out of range.
func (v *Vector[T]) Insert(i int, elem T) {
	if i < 0 || i > len(v.data) {
		panic(fmt.Sprintf("vector: insert index %d out of range [0,%d]", i, len(v.data)))
	}
	var zero T
	v.data = append(v.data, zero)
	copy(v.data[i+1:], v.data[i:])
	v.data[i] = elem
}

// RemoveAt removes and returns the element at index i, shifting the
// tail one slot to the left. It panics if i is out of range.
func (v *Vector[T]) RemoveAt(i int) T {
	v.boundsCheck(i)
	elem := v.data[i]
	copy(v.data[i:], v.data[i+1:])
	var zero T
	v.data[len(v.data)-1] = zero
	v.data = v.data[:len(v.data)-1]
	return elem
}

// Reserve grows the storage so that at least n elements fit without a
// reallocation. If n is lower than that, the function has no effect.
func (v *Vector[T]) Reserve(n int) {
	if cap(v.data) >= n {
		return
	}
	data := make([]T, len(v.data), n)
	copy(data, v.data)
	v.data = data
}

// Shrink trims the storage down to the current size.
func (v *Vector[T]) Shrink() {
	if cap(v.data) == len(v.data) {
		return
	}
	data := make([]T, len(v.data))
	copy(data, v.data)
	v.data = data
}

// Clear removes all elements and releases the storage.
func (v *Vector[T]) Clear() {
	v.data = nil
}

// Each calls 'fn' on every element from front to back.
// If 'fn' returns true, the iteration stops.
func (v *Vector[T]) Each(fn func(elem T) bool) {
	for i := range v.data {
		if stop := fn(v.data[i]); stop {
			// stop iteration
			return
		}
	}
}
