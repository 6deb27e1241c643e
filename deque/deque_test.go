package deque_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/collections-go/collections/deque"
)

func TestBothEnds(t *testing.T) {
	d := deque.New[int]()
	assert.True(t, d.Empty())

	d.PushBack(2)
	d.PushFront(1)
	d.PushBack(3) // 1 2 3

	assert.Equal(t, 3, d.Size())
	assert.Equal(t, 1, d.Front())
	assert.Equal(t, 3, d.Back())

	assert.Equal(t, 3, d.PopBack())
	assert.Equal(t, 1, d.PopFront())
	assert.Equal(t, 2, d.Front())
	assert.Equal(t, 2, d.Back())
}

func TestAsSlidingWindow(t *testing.T) {
	d := deque.New[int]()
	for i := 0; i < 100; i++ {
		d.PushBack(i)
		if d.Size() > 10 {
			d.PopFront()
		}
	}
	assert.Equal(t, 10, d.Size())
	assert.Equal(t, 90, d.Front())
	assert.Equal(t, 99, d.Back())
}

func TestEachOrder(t *testing.T) {
	d := deque.New[int]()
	d.PushFront(2)
	d.PushFront(1)
	d.PushBack(3)

	var got []int
	d.Each(func(elem int) bool {
		got = append(got, elem)
		return false
	})
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestEmptyPanics(t *testing.T) {
	d := deque.New[int]()
	assert.Panics(t, func() { d.PopFront() })
	assert.Panics(t, func() { d.PopBack() })
	assert.Panics(t, func() { d.Front() })
	assert.Panics(t, func() { d.Back() })
}

func TestClear(t *testing.T) {
	d := deque.New[int]()
	d.PushBack(1)
	d.PushBack(2)
	d.Clear()
	assert.True(t, d.Empty())
}
