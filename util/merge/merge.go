// Package merge combines several ascending sequences into one ascending sequence, using a
// priority queue of source cursors.
package merge

import (
	"iter"

	"github.com/manuelroemer/NCommons-sub000/util/heap"
	"github.com/manuelroemer/NCommons-sub000/util/priorityqueue"
)

// Sorted merges srcs, each ascending under compare, into one ascending sequence. Equal elements
// from different sources are emitted latest source first.
func Sorted[T any](compare heap.Comparer[T], srcs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		mux := newSourceMux(compare)
		defer mux.Stop()

		for _, src := range srcs {
			mux.AddSource(src)
		}

		for {
			item, hasNext := mux.Next()
			if !hasNext || !yield(item) {
				return
			}
		}
	}
}

// Unique is Sorted, except that runs of equal elements are collapsed into the first one emitted,
// i.e. the one from the latest source.
func Unique[T any](compare heap.Comparer[T], srcs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var (
			last      T
			lastIsSet bool
		)
		for item := range Sorted(compare, srcs...) {
			// don't emit elements that were already emitted
			if lastIsSet && compare(item, last) == 0 {
				continue
			}
			last, lastIsSet = item, true
			if !yield(item) {
				return
			}
		}
	}
}

type sourceCursor[T any] struct {
	current      T
	sourceNumber int
	next         func() (T, bool)
}

type sourceMux[T any] struct {
	queue       *priorityqueue.PriorityQueue[sourceCursor[T]]
	stops       []func()
	sourceCount int
}

func newSourceMux[T any](compare heap.Comparer[T]) sourceMux[T] {
	// The queue is a max-heap, so the lowest element gets the highest priority. Upon ties the
	// later source gets the higher priority.
	queue, err := priorityqueue.NewFunc(priorityqueue.Args[sourceCursor[T]]{
		Comparer: func(a, b sourceCursor[T]) int {
			if comp := compare(b.current, a.current); comp != 0 {
				return comp
			}
			return a.sourceNumber - b.sourceNumber
		},
	})
	if err != nil {
		// unreachable: a comparer is always given
		panic(err)
	}

	return sourceMux[T]{queue: queue}
}

func (me *sourceMux[T]) AddSource(src iter.Seq[T]) {
	next, stop := iter.Pull(src)
	me.stops = append(me.stops, stop)

	sourceNumber := me.sourceCount
	me.sourceCount++

	item, exists := next()
	if !exists {
		return
	}

	me.queue.Enqueue(sourceCursor[T]{
		current:      item,
		sourceNumber: sourceNumber,
		next:         next,
	})
}

func (me *sourceMux[T]) Next() (out T, hasNext bool) {
	cursor, ok := me.queue.TryDequeue()
	if !ok {
		return out, false
	}

	if item, exists := cursor.next(); exists {
		me.queue.Enqueue(sourceCursor[T]{
			current:      item,
			sourceNumber: cursor.sourceNumber,
			next:         cursor.next,
		})
	}

	return cursor.current, true
}

// Stop releases every pulled source.
func (me *sourceMux[T]) Stop() {
	for _, stop := range me.stops {
		stop()
	}
	me.stops = nil
}
