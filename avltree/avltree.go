// Package avltree implements a self-balancing binary search tree. The
// heights of the two children of any node differ by at most one, which
// bounds every operation by O(log n).
package avltree

import "github.com/collections-go/collections/shared"

type node[T shared.Ordered] struct {
	left, right *node[T]
	// height of the subtree rooted here; a nil child counts as -1
	height int
	elem   T
}

//go:inline
func height[T shared.Ordered](n *node[T]) int {
	if n == nil {
		return -1
	}
	return n.height
}

//go:inline
func (n *node[T]) update() {
	n.height = shared.Max(height(n.left), height(n.right)) + 1
}

// rotateRight lifts the left child into the place of n.
func rotateRight[T shared.Ordered](n *node[T]) *node[T] {
	l := n.left
	n.left = l.right
	l.right = n
	n.update()
	l.update()
	return l
}

// rotateLeft lifts the right child into the place of n.
func rotateLeft[T shared.Ordered](n *node[T]) *node[T] {
	r := n.right
	n.right = r.left
	r.left = n
	n.update()
	r.update()
	return r
}

// balance restores the AVL condition at n after one insert or remove
// below it, using a single or double rotation.
func balance[T shared.Ordered](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	switch {
	case height(n.left)-height(n.right) > 1:
		if height(n.left.left) < height(n.left.right) {
			n.left = rotateLeft(n.left)
		}
		n = rotateRight(n)
	case height(n.right)-height(n.left) > 1:
		if height(n.right.right) < height(n.right.left) {
			n.right = rotateRight(n.right)
		}
		n = rotateLeft(n)
	default:
		n.update()
	}
	return n
}

// Tree is an AVL tree holding every element at most once.
type Tree[T shared.Ordered] struct {
	root *node[T]
	// length stores the current inserted elements
	length int
}

// New creates an empty tree.
func New[T shared.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Empty reports whether the tree holds no elements.
func (t *Tree[T]) Empty() bool {
	return t.length == 0
}

// Size returns the number of elements.
func (t *Tree[T]) Size() int {
	return t.length
}

// Height returns the height of the tree. An empty tree has height -1,
// a single element height 0.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

// Clear removes all elements.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.length = 0
}

// Contains reports whether elem is in the tree.
func (t *Tree[T]) Contains(elem T) bool {
	n := t.root
	for n != nil {
		switch {
		case elem < n.elem:
			n = n.left
		case elem > n.elem:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Min returns the smallest element, or false on an empty tree.
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.elem, true
}

// Max returns the largest element, or false on an empty tree.
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.elem, true
}

// Insert adds elem to the tree.
// Returns true, if the element is a new item in the tree.
func (t *Tree[T]) Insert(elem T) bool {
	var inserted bool
	t.root, inserted = insert(t.root, elem)
	if inserted {
		t.length++
	}
	return inserted
}

func insert[T shared.Ordered](n *node[T], elem T) (*node[T], bool) {
	if n == nil {
		return &node[T]{elem: elem}, true
	}
	var inserted bool
	switch {
	case elem < n.elem:
		n.left, inserted = insert(n.left, elem)
	case elem > n.elem:
		n.right, inserted = insert(n.right, elem)
	default:
		return n, false
	}
	return balance(n), inserted
}

// Remove removes elem from the tree.
// Returns true, if the element was in the tree.
func (t *Tree[T]) Remove(elem T) bool {
	var removed bool
	t.root, removed = remove(t.root, elem)
	if removed {
		t.length--
	}
	return removed
}

func remove[T shared.Ordered](n *node[T], elem T) (*node[T], bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	switch {
	case elem < n.elem:
		n.left, removed = remove(n.left, elem)
	case elem > n.elem:
		n.right, removed = remove(n.right, elem)
	default:
		removed = true
		if n.left != nil && n.right != nil {
			// replace with the in-order successor and remove that
			succ := n.right
			for succ.left != nil {
				succ = succ.left
			}
			n.elem = succ.elem
			n.right, _ = remove(n.right, succ.elem)
		} else if n.left != nil {
			n = n.left
		} else {
			n = n.right
		}
	}
	return balance(n), removed
}

// Each calls 'fn' on every element in ascending order.
// If 'fn' returns true, the iteration stops.
func (t *Tree[T]) Each(fn func(elem T) bool) {
	each(t.root, fn)
}

func each[T shared.Ordered](n *node[T], fn func(elem T) bool) bool {
	if n == nil {
		return false
	}
	if each(n.left, fn) {
		return true
	}
	if stop := fn(n.elem); stop {
		// stop iteration
		return true
	}
	return each(n.right, fn)
}
