// Package shared holds the support code that the container packages
// have in common: the hash capability, prime math and tuning defaults.
package shared

const (
	// MaxLoadFactor is the fill ratio at which the hopscotch set grows.
	// Crossing it before an insert triggers a rehash to the next prime
	// of at least twice the current capacity. This value is a
	// trade-off of runtime and memory consumption.
	MaxLoadFactor = 0.8

	// DefaultCapacity is the initial (and post-Clear) number of slots.
	// It is prime, as every capacity of the set must be.
	DefaultCapacity = 101

	// NeighborhoodSize is H, the width of the hop bitmap. An element is
	// never stored further than H-1 slots (cyclically) from its home.
	NeighborhoodSize = 32
)
