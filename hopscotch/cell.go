package hopscotch

import "github.com/collections-go/collections/shared"

// cell is one storage slot. Its word packs two things: bit 0 tells
// whether this slot holds a live element, bits 1..H form the hop bitmap
// of the neighborhood that starts at this slot. Hop bit i is set iff
// the slot at cyclic distance i holds an element whose home is this
// slot, so the bitmap lives at the home slot and the occupancy flag at
// the occupant's slot.
type cell[T comparable] struct {
	hopInfo uint64
	elem    T
}

const (
	reservedBits = 1               // occupancy flag in front of the hop bitmap
	occupiedBit  = uint64(1)       // bit mask for the occupancy flag
	neighborhood = uintptr(shared.NeighborhoodSize)
)

// flip returns the opposite bit mask
//
//go:inline
func flip(a uint64) uint64 {
	a ^= 0xFFFFFFFFFFFFFFFF
	return a
}

// setHop sets or clears the hop bit for distance d
//
//go:inline
func (c *cell[T]) setHop(d uintptr, v bool) {
	mask := uint64(1) << (d + reservedBits)
	if v {
		c.hopInfo |= mask
	} else {
		c.hopInfo &= flip(mask)
	}
}

// getHop returns the hop bit for distance d
//
//go:inline
func (c *cell[T]) getHop(d uintptr) bool {
	return c.hopInfo&(uint64(1)<<(d+reservedBits)) != 0
}

// hops returns the hop bitmap with the occupancy flag shifted out
//
//go:inline
func (c *cell[T]) hops() uint64 {
	return c.hopInfo >> reservedBits
}

// isOccupied reports whether the slot holds a live element
//
//go:inline
func (c *cell[T]) isOccupied() bool {
	return (c.hopInfo & occupiedBit) != 0
}

// occupy marks the slot as holding a live element
//
//go:inline
func (c *cell[T]) occupy() {
	c.hopInfo |= occupiedBit
}

// release marks the slot as free
//
//go:inline
func (c *cell[T]) release() {
	c.hopInfo &= flip(occupiedBit)
}
