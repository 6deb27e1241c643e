package avltree_test

import (
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/assert"

	"github.com/collections-go/collections/avltree"
)

func TestInsertContains(t *testing.T) {
	tr := avltree.New[int]()
	assert.True(t, tr.Empty())

	for i := 0; i < 100; i++ {
		assert.True(t, tr.Insert(i))
	}
	assert.Equal(t, 100, tr.Size())

	for i := 0; i < 100; i++ {
		assert.True(t, tr.Contains(i))
		assert.False(t, tr.Insert(i), "duplicate insert must fail")
	}
	assert.False(t, tr.Contains(100))
	assert.Equal(t, 100, tr.Size())
}

func TestBalancedHeight(t *testing.T) {
	tr := avltree.New[int]()
	// ascending inserts degenerate an unbalanced BST; the AVL tree
	// must stay logarithmic
	for i := 0; i < 1024; i++ {
		tr.Insert(i)
	}
	assert.LessOrEqual(t, tr.Height(), 14, "height of an AVL tree with 1024 elements")
}

func TestRemove(t *testing.T) {
	tr := avltree.New[int]()
	for i := 0; i < 100; i++ {
		tr.Insert(i)
	}

	for i := 0; i < 100; i += 2 {
		assert.True(t, tr.Remove(i))
	}
	assert.False(t, tr.Remove(2), "already removed")
	assert.Equal(t, 50, tr.Size())

	for i := 0; i < 100; i++ {
		assert.Equal(t, i%2 == 1, tr.Contains(i))
	}
}

func TestMinMax(t *testing.T) {
	tr := avltree.New[int]()

	_, ok := tr.Min()
	assert.False(t, ok)
	_, ok = tr.Max()
	assert.False(t, ok)

	for _, v := range []int{5, 1, 9, 3} {
		tr.Insert(v)
	}
	mn, _ := tr.Min()
	mx, _ := tr.Max()
	assert.Equal(t, 1, mn)
	assert.Equal(t, 9, mx)
}

func TestEachAscending(t *testing.T) {
	tr := avltree.New[int]()
	for _, v := range []int{5, 1, 4, 3, 9, 2} {
		tr.Insert(v)
	}

	var got []int
	tr.Each(func(elem int) bool {
		got = append(got, elem)
		return false
	})
	assert.Equal(t, []int{1, 2, 3, 4, 5, 9}, got)
}

// cross-check a random insert/remove sequence against google/btree
func TestCrossCheckBTree(t *testing.T) {
	mine := avltree.New[int]()
	ref := btree.NewG[int](2, func(a, b int) bool { return a < b })

	for i := 0; i < 10000; i++ {
		v := rand.Intn(2000)
		if rand.Intn(3) == 0 {
			_, wasIn := ref.Delete(v)
			assert.Equal(t, wasIn, mine.Remove(v))
		} else {
			_, wasIn := ref.ReplaceOrInsert(v)
			assert.Equal(t, !wasIn, mine.Insert(v))
		}
		assert.Equal(t, ref.Len(), mine.Size())
	}

	var fromRef []int
	ref.Ascend(func(item int) bool {
		fromRef = append(fromRef, item)
		return true
	})
	var fromMine []int
	mine.Each(func(elem int) bool {
		fromMine = append(fromMine, elem)
		return false
	})
	assert.Equal(t, fromRef, fromMine)
}

func TestClear(t *testing.T) {
	tr := avltree.New[int]()
	for i := 0; i < 10; i++ {
		tr.Insert(i)
	}
	tr.Clear()
	assert.True(t, tr.Empty())
	assert.Equal(t, -1, tr.Height())
	assert.False(t, tr.Contains(5))
	assert.True(t, tr.Insert(5))
}
