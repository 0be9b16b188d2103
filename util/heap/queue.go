package heap

import (
	"cmp"
	"iter"

	"github.com/pkg/errors"
)

// Comparer orders two elements. a has higher priority than b iff compare(a, b) > 0.
type Comparer[T any] func(a, b T) int

// Comparable is implemented by types that carry their own natural ordering.
type Comparable[T any] interface {
	Compare(other T) int
}

// Queue is the contract shared by every priority queue in this module. The heap implementations
// and the priorityqueue wrapper both satisfy it, so either can stand in for the other.
type Queue[T any] interface {
	Enqueue(item T)
	Dequeue() (T, error)
	TryDequeue() (T, bool)
	Peek() (T, error)
	TryPeek() (T, bool)
	Clear()
	Count() int
	Comparer() Comparer[T]
	// All yields every contained element exactly once, in no particular order.
	All() iter.Seq[T]
}

// NaturalOrder returns the natural ordering of T, which exists when T implements Comparable[T].
func NaturalOrder[T any]() (Comparer[T], error) {
	var zero T
	if _, ok := any(zero).(Comparable[T]); !ok {
		return nil, errors.Wrapf(ErrInvalidArgument, "%T has no natural ordering", zero)
	}

	return func(a, b T) int {
		//nolint:forcetypeassert // checked above
		return any(a).(Comparable[T]).Compare(b)
	}, nil
}

// Ordered returns the natural ordering of an ordered type, under which larger values have higher
// priority.
func Ordered[T cmp.Ordered]() Comparer[T] {
	return cmp.Compare[T]
}

// Reverse inverts an ordering, e.g. to turn the default max-heap into a min-heap.
func Reverse[T any](compare Comparer[T]) Comparer[T] {
	return func(a, b T) int {
		return compare(b, a)
	}
}

// Drain pops elements from q in priority order until q is empty or the consumer stops.
func Drain[T any](q Queue[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := q.TryDequeue()
			if !ok || !yield(item) {
				return
			}
		}
	}
}
