package heap

import (
	"cmp"
	"iter"

	"github.com/pkg/errors"

	"github.com/manuelroemer/NCommons-sub000/util"
)

const defaultCapacity = 4

var (
	_ Queue[int]      = (*BinaryHeap[int])(nil)
	_ Primitives[int] = (*BinaryHeap[int])(nil)
)

// BinaryHeap is an array-backed max-heap: the root is always an item that no other item has
// higher priority than. It is not safe for concurrent use.
type BinaryHeap[T any] struct {
	Base[T]

	store store[T]
}

type Args[T any] struct {
	// Capacity is the number of slots allocated up front. Defaults to 4.
	Capacity util.Optional[int]
	// Comparer orders the items. Defaults to the natural ordering of T.
	Comparer Comparer[T]
	// Items seeds the heap. The slice is copied.
	Items []T
}

// New creates a heap over an ordered type, where larger values have higher priority unless
// args.Comparer says otherwise.
func New[T cmp.Ordered](args Args[T]) (*BinaryHeap[T], error) {
	if args.Comparer == nil {
		args.Comparer = Ordered[T]()
	}
	return NewFunc(args)
}

// NewFunc creates a heap over any type. Without args.Comparer, T must implement Comparable[T].
func NewFunc[T any](args Args[T]) (*BinaryHeap[T], error) {
	compare := args.Comparer
	if compare == nil {
		natural, err := NaturalOrder[T]()
		if err != nil {
			return nil, err
		}
		compare = natural
	}

	capacity := args.Capacity.Or(defaultCapacity)
	if capacity < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "capacity must not be negative, got %d", capacity)
	}

	out := &BinaryHeap[T]{
		store: newStore(compare, max(capacity, len(args.Items))),
	}
	out.Base = NewBase[T](out, compare)

	if len(args.Items) > 0 {
		out.store.items = append(out.store.items, args.Items...)
		for i := len(args.Items)/2 - 1; i >= 0; i-- {
			out.siftDown(i)
		}
	}

	return out, nil
}

func (me *BinaryHeap[T]) Count() int {
	return me.store.Len()
}

func (me *BinaryHeap[T]) Capacity() int {
	return me.store.Cap()
}

// SetCapacity reallocates the backing array to exactly capacity slots. It fails with
// ErrInvalidArgument and leaves the heap untouched if capacity is negative or below Count.
func (me *BinaryHeap[T]) SetCapacity(capacity int) error {
	if capacity < 0 {
		return errors.Wrapf(ErrInvalidArgument, "capacity must not be negative, got %d", capacity)
	}
	if capacity < me.store.Len() {
		return errors.Wrapf(
			ErrInvalidArgument, "capacity %d is below the current count %d", capacity, me.store.Len(),
		)
	}

	me.store.Reserve(capacity)
	return nil
}

// Push adds item and sifts it up towards the root.
func (me *BinaryHeap[T]) Push(item T) {
	me.store.Append(item)

	current := me.store.Len() - 1
	for current > 0 {
		parent := (current - 1) / 2
		if !me.store.Higher(current, parent) {
			break
		}
		me.store.Swap(current, parent)
		current = parent
	}
}

func (me *BinaryHeap[T]) TryPeek() (out T, exists bool) {
	if me.store.Len() == 0 {
		return out, false
	}
	return me.store.items[0], true
}

// TryPop removes and returns the root. The last item takes its place and is sifted down.
func (me *BinaryHeap[T]) TryPop() (out T, exists bool) {
	if me.store.Len() == 0 {
		return out, false
	}

	out = me.store.items[0]
	last := me.store.RemoveLast()
	if me.store.Len() > 0 {
		me.store.items[0] = last
		me.siftDown(0)
	}

	return out, true
}

// PopAll removes every item and returns them in priority order.
func (me *BinaryHeap[T]) PopAll() []T {
	out := make([]T, 0, me.store.Len())
	for item, ok := me.TryPop(); ok; item, ok = me.TryPop() {
		out = append(out, item)
	}
	return out
}

// Clear removes every item. The capacity is kept.
func (me *BinaryHeap[T]) Clear() {
	me.store.Reset()
}

// All yields the items in backing-array order, which is not priority order. Modifying the heap
// while iterating is not detected.
func (me *BinaryHeap[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < me.store.Len(); i++ {
			if !yield(me.store.items[i]) {
				return
			}
		}
	}
}

func (me *BinaryHeap[T]) siftDown(current int) {
	n := me.store.Len()
	for {
		highest := current

		// on ties the left child wins
		if left := 2*current + 1; left < n && me.store.Higher(left, highest) {
			highest = left
		}
		if right := 2*current + 2; right < n && me.store.Higher(right, highest) {
			highest = right
		}

		if highest == current {
			return
		}
		me.store.Swap(current, highest)
		current = highest
	}
}
