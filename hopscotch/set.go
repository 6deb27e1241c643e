// Package hopscotch implements a hash set with open addressing, where
// collisions are kept within a bounded neighborhood of H consecutive
// slots after the hashed home slot. Every home slot carries a H bit
// wide hop bitmap of its occupants, so a lookup scans at most H cells
// and never probes further. Linear probing is only used while
// inserting, to find a free slot; if that slot lies outside the
// neighborhood, occupants closer to their own homes are displaced
// forward until the free slot is close enough. The capacity is always
// prime and all index arithmetic wraps around it.
package hopscotch

import "github.com/collections-go/collections/shared"

// Set is a hopscotch hash set of elements of type T.
//
// It is not safe for concurrent use; callers that share a Set across
// goroutines must serialize access themselves.
type Set[T comparable] struct {
	cells  []cell[T]
	hasher shared.HashFn[T]
	// length stores the current inserted elements
	length uintptr
	// capacity is the number of slots, always a prime number, so the
	// home index is the hash value reduced with mod instead of a mask.
	capacity uintptr
}

// New creates a ready to use hopscotch set with default settings.
func New[T comparable]() *Set[T] {
	return NewWithHasher[T](shared.GetHasher[T]())
}

// NewWithHasher same as `New` but with a given hash function.
func NewWithHasher[T comparable](hasher shared.HashFn[T]) *Set[T] {
	return &Set[T]{
		cells:    make([]cell[T], shared.DefaultCapacity),
		capacity: shared.DefaultCapacity,
		hasher:   hasher,
	}
}

// NewWithCapacity creates a set whose initial capacity is the smallest
// prime >= n, but never below DefaultCapacity.
func NewWithCapacity[T comparable](n int) *Set[T] {
	capacity := uintptr(n)
	if !shared.IsPrime(capacity) {
		capacity = shared.NextPrime(capacity)
	}
	if capacity < shared.DefaultCapacity {
		capacity = shared.DefaultCapacity
	}
	return &Set[T]{
		cells:    make([]cell[T], capacity),
		capacity: capacity,
		hasher:   shared.GetHasher[T](),
	}
}

// cyclicDistance returns how far pos lies after home when the index
// wraps at capacity, i.e. (pos - home) mod capacity.
//
//go:inline
func cyclicDistance(pos, home, capacity uintptr) uintptr {
	if pos >= home {
		return pos - home
	}
	return capacity - home + pos
}

//go:inline
func (s *Set[T]) home(elem T) uintptr {
	return s.hasher(elem) % s.capacity
}

// findPos linearly probes forward from the element's home slot until it
// hits either a free slot or a slot already holding elem, and returns
// that index. The scan is not bounded by the neighborhood; pulling a
// free slot found here into the neighborhood is moveElem's job.
func (s *Set[T]) findPos(elem T) uintptr {
	pos := s.home(elem)
	for s.cells[pos].isOccupied() && s.cells[pos].elem != elem {
		pos++
		if pos == s.capacity {
			pos = 0
		}
	}
	return pos
}

// lookup scans the hop bitmap of the element's home slot. It returns
// the slot index holding elem and its hop distance. The scan touches at
// most H cells, so it has a constant runtime.
//
//go:inline
func (s *Set[T]) lookup(elem T) (idx, dist uintptr, ok bool) {
	home := s.home(elem)
	hops := s.cells[home].hops()
	idx = home
	for hops != 0 {
		if (hops&1) == 1 && s.cells[idx].elem == elem {
			return idx, dist, true
		}
		hops >>= 1
		dist++
		idx++
		if idx == s.capacity {
			idx = 0
		}
	}
	return 0, 0, false
}

// Contains reports whether elem is in the set.
func (s *Set[T]) Contains(elem T) bool {
	_, _, ok := s.lookup(elem)
	return ok
}

// moveElem frees up room closer to a neighborhood by relocating an
// occupant of the window of H-1 slots preceding the free slot pos into
// pos. Candidates are examined starting with the window slot furthest
// from pos, and an occupant is only moved if its new distance to its
// own home slot stays below H. On success the vacated slot index is
// returned, which lies strictly before pos. If no occupant of the
// window may move, the second return value is false and nothing was
// changed.
func (s *Set[T]) moveElem(pos uintptr) (uintptr, bool) {
	start := pos + s.capacity - (neighborhood - 1)
	if start >= s.capacity {
		start -= s.capacity
	}

	for i := uintptr(0); i < neighborhood-1; i++ {
		c := start + i
		if c >= s.capacity {
			c -= s.capacity
		}
		// hop distance from the candidate home c to pos
		newDist := neighborhood - 1 - i

		hops := s.cells[c].hops()
		for j := uintptr(0); j < newDist && hops != 0; j++ {
			if (hops & 1) == 1 {
				old := c + j
				if old >= s.capacity {
					old -= s.capacity
				}

				// move the occupant forward into the free slot
				s.cells[pos].elem = s.cells[old].elem
				s.cells[pos].occupy()
				s.cells[old].release()

				// rewrite the home's bitmap for the new distance
				s.cells[c].setHop(j, false)
				s.cells[c].setHop(newDist, true)

				return old, true
			}
			hops >>= 1
		}
	}
	return 0, false
}

// Insert adds elem to the set. It returns false if elem was already
// present, or if the displacement search could not free a slot within
// the neighborhood of the element's home slot. In the latter case the
// set is left in a consistent state and no element is lost; the caller
// may Reserve a larger capacity and retry. A failed insert never forces
// a rehash on its own, so the cost of Insert stays bounded.
func (s *Set[T]) Insert(elem T) bool {
	if s.Contains(elem) {
		return false
	}
	if s.length >= uintptr(float64(s.capacity)*shared.MaxLoadFactor) {
		s.expand()
	}

	home := s.home(elem)
	pos := s.findPos(elem) // a free slot, duplicates were ruled out above

	for cyclicDistance(pos, home, s.capacity) >= neighborhood {
		var ok bool
		pos, ok = s.moveElem(pos)
		if !ok {
			return false
		}
	}

	s.cells[pos].elem = elem
	s.cells[pos].occupy()
	s.cells[home].setHop(cyclicDistance(pos, home, s.capacity), true)
	s.length++
	return true
}

// Remove removes elem from the set.
// Returns true, if the element was in the set. Freeing a slot can only
// shorten future displacement chains, so nothing needs to be relocated.
func (s *Set[T]) Remove(elem T) bool {
	idx, dist, ok := s.lookup(elem)
	if !ok {
		return false
	}

	home := s.home(elem)
	s.cells[home].setHop(dist, false)
	s.cells[idx].release()
	s.length--
	return true
}

//go:inline
func (s *Set[T]) expand() {
	s.rehash(shared.NextPrime(2 * s.capacity))
}

// rehash moves all elements into a fresh slot array of n slots. The hop
// bitmaps are rebuilt from scratch, because home slots are only valid
// for one capacity. A reinsertion can only fail if the growth policy
// did not provide enough room, which is a defect, not a recoverable
// condition.
func (s *Set[T]) rehash(n uintptr) {
	next := Set[T]{
		cells:    make([]cell[T], n),
		capacity: n,
		hasher:   s.hasher,
	}
	for i := range s.cells {
		if s.cells[i].isOccupied() {
			if !next.Insert(s.cells[i].elem) {
				panic("hopscotch: rehash could not reinsert an element")
			}
		}
	}
	s.cells = next.cells
	s.capacity = next.capacity
	s.length = next.length
}

// Reserve grows the set so that at least n elements fit without a
// further rehash. If n is lower than that, the function has no effect.
func (s *Set[T]) Reserve(n int) {
	need := shared.NextPrime(uintptr(float64(n) / shared.MaxLoadFactor))
	if need > s.capacity {
		s.rehash(need)
	}
}

// Clear removes all elements and shrinks the set back to its default
// capacity.
func (s *Set[T]) Clear() {
	s.cells = make([]cell[T], shared.DefaultCapacity)
	s.capacity = shared.DefaultCapacity
	s.length = 0
}

// Size returns the number of elements in the set.
func (s *Set[T]) Size() int {
	return int(s.length)
}

// Capacity returns the current number of slots, which is always prime.
func (s *Set[T]) Capacity() int {
	return int(s.capacity)
}

// Load returns the current load of the set.
func (s *Set[T]) Load() float32 {
	return float32(s.length) / float32(s.capacity)
}

// Copy returns a deep copy of this set. The elements are reinserted one
// by one instead of copying the slot array, because the hop bitmaps
// encode slot relative positions.
func (s *Set[T]) Copy() *Set[T] {
	next := &Set[T]{
		cells:    make([]cell[T], s.capacity),
		capacity: s.capacity,
		hasher:   s.hasher,
	}
	for i := range s.cells {
		if s.cells[i].isOccupied() {
			if !next.Insert(s.cells[i].elem) {
				panic("hopscotch: copy could not reinsert an element")
			}
		}
	}
	return next
}

// Each calls 'fn' on every element of the set in storage order.
// If 'fn' returns true, the iteration stops.
func (s *Set[T]) Each(fn func(elem T) bool) {
	for i := range s.cells {
		if s.cells[i].isOccupied() {
			if stop := fn(s.cells[i].elem); stop {
				// stop iteration
				return
			}
		}
	}
}
