package heap

// store is the growable backing array of a BinaryHeap. Length is len(items) and capacity is
// cap(items); reallocation is done by hand so that SetCapacity reserves exactly what it is asked
// for.
type store[T any] struct {
	comparer Comparer[T]
	items    []T
}

func newStore[T any](comparer Comparer[T], capacity int) store[T] {
	return store[T]{
		comparer: comparer,
		items:    make([]T, 0, capacity),
	}
}

func (me *store[T]) Len() int {
	return len(me.items)
}

func (me *store[T]) Cap() int {
	return cap(me.items)
}

func (me *store[T]) Swap(i, j int) {
	me.items[i], me.items[j] = me.items[j], me.items[i]
}

// Higher reports whether the item at i has strictly higher priority than the item at j.
func (me *store[T]) Higher(i, j int) bool {
	return me.comparer(me.items[i], me.items[j]) > 0
}

// Append adds item after the last live slot, doubling the capacity when full.
func (me *store[T]) Append(item T) {
	if len(me.items) == cap(me.items) {
		me.Reserve(max(2*cap(me.items), defaultCapacity))
	}
	me.items = me.items[:len(me.items)+1]
	me.items[len(me.items)-1] = item
}

// RemoveLast drops the last live slot and returns its item.
func (me *store[T]) RemoveLast() T {
	var zero T
	n := len(me.items)
	out := me.items[n-1]
	me.items[n-1] = zero // avoid memory leak
	me.items = me.items[:n-1]
	return out
}

// Reserve reallocates the backing array to exactly capacity slots. capacity must not be below Len.
func (me *store[T]) Reserve(capacity int) {
	if capacity == cap(me.items) {
		return
	}
	items := make([]T, len(me.items), capacity)
	copy(items, me.items)
	me.items = items
}

// Reset zeroes every live slot and sets the length to 0, keeping the allocation.
func (me *store[T]) Reset() {
	clear(me.items)
	me.items = me.items[:0]
}
