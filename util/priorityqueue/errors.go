package priorityqueue

import "github.com/manuelroemer/NCommons-sub000/util/heap"

// EmptyQueueError is returned by Peek and Dequeue on an empty queue. It wraps the error of the
// underlying queue, so errors.Is(err, heap.ErrEmptyStructure) holds.
type EmptyQueueError struct {
	cause error
}

func (me *EmptyQueueError) Error() string {
	return "cannot retrieve highest-priority item: priority queue is empty"
}

// Cause implements the causer interface of github.com/pkg/errors.
func (me *EmptyQueueError) Cause() error {
	return me.cause
}

func (me *EmptyQueueError) Unwrap() error {
	return me.cause
}

func (me *EmptyQueueError) Is(target error) bool {
	_, ok := target.(*EmptyQueueError)
	return ok
}

var _ error = (*EmptyQueueError)(nil)

// ErrEmptyQueue can be used with errors.Is to detect an EmptyQueueError.
var ErrEmptyQueue error = &EmptyQueueError{cause: heap.ErrEmptyStructure}
