package promise

import (
	"context"
	"time"
)

// Promise is the strict-profile completion box: cancellation is its own
// outcome, never a failure. Use New to create one; the zero value is not
// usable.
type Promise[T any] struct {
	box[T]
}

// New returns a pending strict-profile box.
func New[T any]() *Promise[T] {
	return &Promise[T]{box: newBox[T](false, false)}
}

// Complete settles the box with a value. It reports whether this call
// performed the transition; on a settled box it reports false with no
// effect.
func (p *Promise[T]) Complete(value T) bool {
	return p.complete(value)
}

// Fail settles the box with a cause. A nil cause is replaced with a stored
// placeholder so a failed box always carries an error. It reports whether
// this call performed the transition.
func (p *Promise[T]) Fail(cause error) bool {
	return p.fail(cause)
}

// Cancel settles the box as cancelled. It reports whether this call
// performed the transition; cancelling an already-cancelled box reports
// false like any other late write.
func (p *Promise[T]) Cancel() bool {
	return p.cancel()
}

// Get blocks until the box settles or ctx is cancelled. A completed box
// yields the value; a failed box yields ErrExecutionFailed joined with the
// cause; a cancelled box yields ErrCancelled. A cancelled context yields the
// context error even when the box has already settled.
func (p *Promise[T]) Get(ctx context.Context) (T, error) {
	return p.get(ctx)
}

// GetFor is the bounded Get: if the timeout elapses while the box is still
// pending it fails with ErrTimeout.
func (p *Promise[T]) GetFor(ctx context.Context, timeout time.Duration) (T, error) {
	return p.getFor(ctx, timeout)
}

// GetNow returns without blocking: absent while the box is pending, the
// value once completed, ErrCompletionFailed joined with the cause once
// failed, ErrCancelled once cancelled. The context is accepted for interface
// consistency with pollable handles and is not used.
func (p *Promise[T]) GetNow(ctx context.Context, absent T) (T, error) {
	return p.getNow(absent)
}

// State returns the current lifecycle state without blocking.
func (p *Promise[T]) State() State {
	return p.snapshot()
}

// Done reports whether the box has settled in any terminal state.
func (p *Promise[T]) Done() bool {
	return p.isDone()
}

// Completed reports whether the box settled with a value.
func (p *Promise[T]) Completed() bool {
	return p.isCompleted()
}

// Failed reports whether the box settled with a failure. Under the strict
// profile a cancelled box is not failed.
func (p *Promise[T]) Failed() bool {
	return p.isFailed()
}

// Cancelled reports whether the box settled as cancelled.
func (p *Promise[T]) Cancelled() bool {
	return p.isCancelled()
}

// Await blocks until the box settles or ctx is cancelled, without reading
// the outcome.
func (p *Promise[T]) Await(ctx context.Context) error {
	return p.awaitSettled(ctx)
}

// AwaitFor is the bounded Await. It reports whether the box settled before
// the timeout elapsed.
func (p *Promise[T]) AwaitFor(ctx context.Context, timeout time.Duration) (bool, error) {
	return p.awaitSettledFor(ctx, timeout)
}
