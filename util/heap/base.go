package heap

// Primitives are the non-failing operations a concrete heap has to provide. Base derives the
// rest of the Queue contract from them.
type Primitives[T any] interface {
	Push(item T)
	TryPeek() (T, bool)
	TryPop() (T, bool)
}

// Base implements the representation-independent part of Queue. Concrete heaps embed it and
// hand it a reference to themselves:
//
//	out := &MyHeap[T]{}
//	out.Base = NewBase[T](out, compare)
type Base[T any] struct {
	primitives Primitives[T]
	comparer   Comparer[T]
}

func NewBase[T any](primitives Primitives[T], compare Comparer[T]) Base[T] {
	return Base[T]{
		primitives: primitives,
		comparer:   compare,
	}
}

// Comparer returns the ordering fixed at construction.
func (me *Base[T]) Comparer() Comparer[T] {
	return me.comparer
}

// Peek returns the highest-priority item without removing it, or ErrEmptyStructure.
func (me *Base[T]) Peek() (T, error) {
	item, ok := me.primitives.TryPeek()
	if !ok {
		return item, ErrEmptyStructure
	}
	return item, nil
}

// Pop removes and returns the highest-priority item, or ErrEmptyStructure.
func (me *Base[T]) Pop() (T, error) {
	item, ok := me.primitives.TryPop()
	if !ok {
		return item, ErrEmptyStructure
	}
	return item, nil
}

func (me *Base[T]) Enqueue(item T) {
	me.primitives.Push(item)
}

func (me *Base[T]) Dequeue() (T, error) {
	return me.Pop()
}

func (me *Base[T]) TryDequeue() (T, bool) {
	return me.primitives.TryPop()
}
