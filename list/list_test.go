package list_test

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/stretchr/testify/assert"

	"github.com/collections-go/collections/list"
)

func TestPushPop(t *testing.T) {
	l := list.New[int]()
	assert.True(t, l.Empty())

	l.PushBack(2)
	l.PushFront(1)
	l.PushBack(3) // 1 2 3

	assert.Equal(t, 3, l.Size())
	assert.Equal(t, 1, l.Front().Value)
	assert.Equal(t, 3, l.Back().Value)

	assert.Equal(t, 1, l.PopFront())
	assert.Equal(t, 3, l.PopBack())
	assert.Equal(t, 2, l.PopFront())
	assert.True(t, l.Empty())
}

func TestNodeNavigation(t *testing.T) {
	l := list.New[string]()
	a := l.PushBack("a")
	c := l.PushBack("c")
	b := l.InsertBefore(c, "b")

	assert.Equal(t, b, a.Next())
	assert.Equal(t, c, b.Next())
	assert.Equal(t, b, c.Prev())
	assert.Nil(t, a.Prev())
	assert.Nil(t, c.Next())

	d := l.InsertAfter(c, "d")
	assert.Equal(t, d, l.Back())
}

func TestRemoveNode(t *testing.T) {
	l := list.New[int]()
	n1 := l.PushBack(1)
	n2 := l.PushBack(2)
	n3 := l.PushBack(3)

	assert.Equal(t, 2, l.Remove(n2))
	assert.Equal(t, 2, l.Size())
	assert.Equal(t, n3, n1.Next())
	assert.Equal(t, n1, n3.Prev())

	assert.Equal(t, 1, l.Remove(n1))
	assert.Equal(t, 3, l.Remove(n3))
	assert.True(t, l.Empty())
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())
}

func TestForeignNodePanics(t *testing.T) {
	l1 := list.New[int]()
	l2 := list.New[int]()
	n := l1.PushBack(1)

	assert.Panics(t, func() { l2.Remove(n) })
	assert.Panics(t, func() { l2.InsertBefore(n, 2) })

	l1.Remove(n)
	assert.Panics(t, func() { l1.Remove(n) }, "double remove must panic")
}

// cross-check a random push/pop sequence against gods' doubly linked
// list
func TestCrossCheckGods(t *testing.T) {
	mine := list.New[int]()
	ref := doublylinkedlist.New()

	for i := 0; i < 2000; i++ {
		v := rand.Intn(1000)
		switch rand.Intn(4) {
		case 0:
			mine.PushFront(v)
			ref.Prepend(v)
		case 1:
			mine.PushBack(v)
			ref.Append(v)
		case 2:
			if mine.Size() > 0 {
				got := mine.PopFront()
				want, _ := ref.Get(0)
				assert.Equal(t, want, got)
				ref.Remove(0)
			}
		case 3:
			if mine.Size() > 0 {
				got := mine.PopBack()
				want, _ := ref.Get(ref.Size() - 1)
				assert.Equal(t, want, got)
				ref.Remove(ref.Size() - 1)
			}
		}
		assert.Equal(t, ref.Size(), mine.Size())
	}

	i := 0
	mine.Each(func(elem int) bool {
		want, _ := ref.Get(i)
		assert.Equal(t, want, elem)
		i++
		return false
	})
}

func TestClear(t *testing.T) {
	l := list.New[int]()
	for i := 0; i < 10; i++ {
		l.PushBack(i)
	}
	l.Clear()
	assert.True(t, l.Empty())
	assert.Nil(t, l.Front())

	l.PushBack(1)
	assert.Equal(t, 1, l.Size())
}
