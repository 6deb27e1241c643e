package hopscotch

// Iterator is a cursor over the slots of a Set in storage order,
// skipping free slots. Begin points at the first element, End one past
// the last slot. A single index based walk serves both directions.
//
// The cursor is only valid as long as the set is not mutated.
type Iterator[T comparable] struct {
	set *Set[T]
	idx int
}

// Begin returns a cursor on the first element in storage order, or End
// if the set is empty.
func (s *Set[T]) Begin() Iterator[T] {
	it := Iterator[T]{set: s, idx: -1}
	it.Next()
	return it
}

// End returns the one-past-last sentinel cursor.
func (s *Set[T]) End() Iterator[T] {
	return Iterator[T]{set: s, idx: int(s.capacity)}
}

// Next advances the cursor to the next occupied slot, or to End.
func (it *Iterator[T]) Next() {
	it.idx++
	for it.idx < int(it.set.capacity) && !it.set.cells[it.idx].isOccupied() {
		it.idx++
	}
	if it.idx > int(it.set.capacity) {
		it.idx = int(it.set.capacity)
	}
}

// Prev steps the cursor back to the previous occupied slot. Stepping
// back from the first element leaves the cursor invalid.
func (it *Iterator[T]) Prev() {
	it.idx--
	for it.idx >= 0 && !it.set.cells[it.idx].isOccupied() {
		it.idx--
	}
}

// Valid reports whether the cursor points at a live element.
func (it Iterator[T]) Valid() bool {
	return it.idx >= 0 && it.idx < int(it.set.capacity) && it.set.cells[it.idx].isOccupied()
}

// Value returns the element under the cursor. Dereferencing End or an
// otherwise invalid cursor panics.
func (it Iterator[T]) Value() T {
	if !it.Valid() {
		panic("hopscotch: dereferencing an invalid iterator")
	}
	return it.set.cells[it.idx].elem
}

// Equal reports whether both cursors point at the same slot of the
// same set.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.set == other.set && it.idx == other.idx
}
