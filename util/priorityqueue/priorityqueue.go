// Package priorityqueue exposes enqueue/dequeue vocabulary over any heap.Queue implementation.
//
// Unless told otherwise a PriorityQueue owns a fresh heap.BinaryHeap. A queue passed in through
// Args.Queue is only borrowed: the caller keeps responsibility for it and must not mutate it
// while the PriorityQueue is in use. Like the heaps it wraps, a PriorityQueue is not safe for
// concurrent use.
package priorityqueue

import (
	"cmp"
	"iter"
	"reflect"

	"github.com/pkg/errors"

	"github.com/manuelroemer/NCommons-sub000/util/heap"
)

var _ heap.Queue[int] = (*PriorityQueue[int])(nil)

type PriorityQueue[T any] struct {
	queue heap.Queue[T]
}

type Args[T any] struct {
	// Comparer orders the items of an owned heap. Ignored when Queue is set.
	Comparer heap.Comparer[T]
	// Queue is wrapped as is when set, and its comparer is adopted. A nil Queue, including a nil
	// pointer of a concrete queue type, counts as unset.
	Queue heap.Queue[T]
}

// New creates a queue over an ordered type; it cannot fail because cmp.Ordered types always have
// a natural ordering.
func New[T cmp.Ordered](args Args[T]) *PriorityQueue[T] {
	if !isAbsent(args.Queue) {
		return &PriorityQueue[T]{queue: args.Queue}
	}

	owned, err := heap.New(heap.Args[T]{Comparer: args.Comparer})
	if err != nil {
		// unreachable: the default capacity is valid and T is ordered
		panic(err)
	}
	return &PriorityQueue[T]{queue: owned}
}

// NewFunc creates a queue over any type. Without a Queue or Comparer, T must implement
// heap.Comparable[T].
func NewFunc[T any](args Args[T]) (*PriorityQueue[T], error) {
	if !isAbsent(args.Queue) {
		return &PriorityQueue[T]{queue: args.Queue}, nil
	}

	owned, err := heap.NewFunc(heap.Args[T]{Comparer: args.Comparer})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create priority queue")
	}
	return &PriorityQueue[T]{queue: owned}, nil
}

func (me *PriorityQueue[T]) Enqueue(item T) {
	me.queue.Enqueue(item)
}

func (me *PriorityQueue[T]) Peek() (T, error) {
	item, err := me.queue.Peek()
	return item, translateEmpty(err)
}

func (me *PriorityQueue[T]) TryPeek() (T, bool) {
	return me.queue.TryPeek()
}

func (me *PriorityQueue[T]) Dequeue() (T, error) {
	item, err := me.queue.Dequeue()
	return item, translateEmpty(err)
}

func (me *PriorityQueue[T]) TryDequeue() (T, bool) {
	return me.queue.TryDequeue()
}

// DequeueAll removes every item and returns them in priority order.
func (me *PriorityQueue[T]) DequeueAll() []T {
	out := make([]T, 0, me.queue.Count())
	for item := range heap.Drain[T](me.queue) {
		out = append(out, item)
	}
	return out
}

func (me *PriorityQueue[T]) Clear() {
	me.queue.Clear()
}

func (me *PriorityQueue[T]) Count() int {
	return me.queue.Count()
}

func (me *PriorityQueue[T]) Comparer() heap.Comparer[T] {
	return me.queue.Comparer()
}

// All yields every item in the order of the underlying queue, which need not be priority order.
func (me *PriorityQueue[T]) All() iter.Seq[T] {
	return me.queue.All()
}

func translateEmpty(err error) error {
	if err != nil && errors.Is(err, heap.ErrEmptyStructure) {
		return &EmptyQueueError{cause: err}
	}
	return err
}

func isAbsent[T any](queue heap.Queue[T]) bool {
	if queue == nil {
		return true
	}

	value := reflect.ValueOf(queue)
	switch value.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return value.IsNil()
	default:
		return false
	}
}
