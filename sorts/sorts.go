// Package sorts implements in-place comparison sorts over slices of
// ordered elements.
package sorts

import "github.com/collections-go/collections/shared"

// Partition rearranges s around its first element as the pivot: all
// elements smaller than the pivot end up on the left, all greater ones
// on the right. It returns the final index of the pivot. The slice must
// not be empty.
func Partition[T shared.Ordered](s []T) int {
	pivot := s[0]
	lo, hi := 0, len(s)
	for lo != hi {
		for {
			hi--
			if lo == hi || pivot >= s[hi] {
				break
			}
		}
		if lo == hi {
			break
		}
		s[lo] = s[hi]

		for {
			lo++
			if lo == hi || pivot <= s[lo] {
				break
			}
		}
		if lo != hi {
			s[hi] = s[lo]
		}
	}
	s[lo] = pivot
	return lo
}

// Quick sorts s in place in ascending order.
func Quick[T shared.Ordered](s []T) {
	if len(s) > 1 {
		mid := Partition(s)
		Quick(s[:mid])
		Quick(s[mid+1:])
	}
}

// Merge sorts s in place in ascending order. The sort is stable; a
// temporary buffer of half the slice length is allocated per merge
// level.
func Merge[T shared.Ordered](s []T) {
	if len(s) <= 1 {
		return
	}
	mid := len(s) / 2
	Merge(s[:mid])
	Merge(s[mid:])
	merge(s, mid)
}

// merge combines the sorted halves s[:mid] and s[mid:] in place.
func merge[T shared.Ordered](s []T, mid int) {
	buf := make([]T, mid)
	copy(buf, s[:mid])

	i, j, k := 0, mid, 0
	for i < len(buf) && j < len(s) {
		if s[j] < buf[i] {
			s[k] = s[j]
			j++
		} else {
			s[k] = buf[i]
			i++
		}
		k++
	}
	for i < len(buf) {
		s[k] = buf[i]
		i++
		k++
	}
	// the tail of the right half is already in place
}

// IsSorted reports whether s is in ascending order.
func IsSorted[T shared.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}
