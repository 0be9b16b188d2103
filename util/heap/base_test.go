package heap

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Queue[int] = (*sortedQueue[int])(nil)

// sortedQueue keeps its items sorted, highest priority last.
type sortedQueue[T any] struct {
	Base[T]

	items []T
}

func newSortedQueue[T any](compare Comparer[T]) *sortedQueue[T] {
	out := &sortedQueue[T]{}
	out.Base = NewBase[T](out, compare)
	return out
}

func (me *sortedQueue[T]) Push(item T) {
	i, _ := slices.BinarySearchFunc(me.items, item, me.Comparer())
	me.items = slices.Insert(me.items, i, item)
}

func (me *sortedQueue[T]) TryPeek() (out T, exists bool) {
	if len(me.items) == 0 {
		return out, false
	}
	return me.items[len(me.items)-1], true
}

func (me *sortedQueue[T]) TryPop() (out T, exists bool) {
	out, exists = me.TryPeek()
	if exists {
		me.items = me.items[:len(me.items)-1]
	}
	return out, exists
}

func (me *sortedQueue[T]) Clear() {
	me.items = nil
}

func (me *sortedQueue[T]) Count() int {
	return len(me.items)
}

func (me *sortedQueue[T]) All() iter.Seq[T] {
	return slices.Values(me.items)
}

func TestBase(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		queue := newSortedQueue(Ordered[int]())

		_, err := queue.Peek()
		assert.Equal(t, ErrEmptyStructure, err)
		assert.EqualError(t, err, "cannot retrieve highest-priority item: structure is empty")

		_, err = queue.Pop()
		assert.Equal(t, ErrEmptyStructure, err)

		_, err = queue.Dequeue()
		assert.Equal(t, ErrEmptyStructure, err)

		_, ok := queue.TryDequeue()
		assert.False(t, ok)
	})

	t.Run("aliases", func(t *testing.T) {
		queue := newSortedQueue(Ordered[int]())

		queue.Enqueue(2)
		queue.Enqueue(5)
		queue.Push(1)
		assert.Equal(t, 3, queue.Count())

		item, err := queue.Peek()
		require.NoError(t, err)
		assert.Equal(t, 5, item)
		assert.Equal(t, 3, queue.Count())

		item, err = queue.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, 5, item)

		item, err = queue.Pop()
		require.NoError(t, err)
		assert.Equal(t, 2, item)

		item, ok := queue.TryDequeue()
		assert.True(t, ok)
		assert.Equal(t, 1, item)
		assert.Equal(t, 0, queue.Count())
	})

	t.Run("comparer", func(t *testing.T) {
		queue := newSortedQueue(Reverse(Ordered[int]()))
		assert.Positive(t, queue.Comparer()(1, 2))

		for _, item := range []int{3, 1, 2} {
			queue.Enqueue(item)
		}
		assert.Equal(t, []int{1, 2, 3}, slices.Collect(Drain[int](queue)))
	})
}

func TestDrain(t *testing.T) {
	heap, err := New(Args[int]{Items: []int{1, 5, 2, 4, 3}})
	require.NoError(t, err)

	var drained []int
	for item := range Drain[int](heap) {
		drained = append(drained, item)
		if len(drained) == 2 {
			break
		}
	}

	assert.Equal(t, []int{5, 4}, drained)
	assert.Equal(t, 3, heap.Count())
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(Drain[int](heap)))
}

func TestNaturalOrder(t *testing.T) {
	compare, err := NaturalOrder[version]()
	require.NoError(t, err)
	assert.Positive(t, compare(version{1, 1}, version{1, 0}))
	assert.Zero(t, compare(version{3, 4}, version{3, 4}))

	unordered, err := NaturalOrder[float64]()
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Nil(t, unordered)
}
