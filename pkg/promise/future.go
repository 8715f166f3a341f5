package promise

import (
	"context"
	"time"
)

// Future is the standard-profile completion box, following the conventional
// asynchronous-handle contract: a cancelled box counts as failed, and
// re-cancelling a cancelled box reports success. Use NewFuture to create
// one; the zero value is not usable.
//
// Future satisfies the pollable handle contract of the poll package.
type Future[T any] struct {
	box[T]
}

// NewFuture returns a pending standard-profile box.
func NewFuture[T any]() *Future[T] {
	return &Future[T]{box: newBox[T](true, true)}
}

// Complete settles the box with a value. It reports whether this call
// performed the transition.
func (f *Future[T]) Complete(value T) bool {
	return f.complete(value)
}

// Fail settles the box with a cause. A nil cause is replaced with a stored
// placeholder. It reports whether this call performed the transition.
func (f *Future[T]) Fail(cause error) bool {
	return f.fail(cause)
}

// Cancel settles the box as cancelled. It reports true when this call
// performed the transition or the box was already cancelled; on a completed
// or failed box it reports false. The interrupt flag is accepted for
// contract compatibility and has no effect: a box owns no running work to
// interrupt.
func (f *Future[T]) Cancel(interrupt bool) bool {
	return f.cancel()
}

// Get blocks until the box settles or ctx is cancelled. A completed box
// yields the value; a failed box yields ErrExecutionFailed joined with the
// cause; a cancelled box yields ErrCancelled. A cancelled context yields the
// context error even when the box has already settled.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	return f.get(ctx)
}

// GetFor is the bounded Get: if the timeout elapses while the box is still
// pending it fails with ErrTimeout.
func (f *Future[T]) GetFor(ctx context.Context, timeout time.Duration) (T, error) {
	return f.getFor(ctx, timeout)
}

// GetNow returns without blocking: absent while the box is pending, the
// value once completed, ErrCompletionFailed joined with the cause once
// failed, ErrCancelled once cancelled. The context is accepted for interface
// consistency with pollable handles and is not used.
func (f *Future[T]) GetNow(ctx context.Context, absent T) (T, error) {
	return f.getNow(absent)
}

// State returns the current lifecycle state without blocking.
func (f *Future[T]) State() State {
	return f.snapshot()
}

// Done reports whether the box has settled in any terminal state.
func (f *Future[T]) Done() bool {
	return f.isDone()
}

// Completed reports whether the box settled with a value.
func (f *Future[T]) Completed() bool {
	return f.isCompleted()
}

// Failed reports whether the box settled with a failure. Under the standard
// profile a cancelled box counts as failed.
func (f *Future[T]) Failed() bool {
	return f.isFailed()
}

// Cancelled reports whether the box settled as cancelled.
func (f *Future[T]) Cancelled() bool {
	return f.isCancelled()
}

// Await blocks until the box settles or ctx is cancelled, without reading
// the outcome.
func (f *Future[T]) Await(ctx context.Context) error {
	return f.awaitSettled(ctx)
}

// AwaitFor is the bounded Await. It reports whether the box settled before
// the timeout elapsed.
func (f *Future[T]) AwaitFor(ctx context.Context, timeout time.Duration) (bool, error) {
	return f.awaitSettledFor(ctx, timeout)
}
