package promise

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrymomot/taskkit/pkg/await"
)

// State is the lifecycle state of a completion box.
type State uint8

// A box is pending until it settles in exactly one terminal state.
const (
	StatePending State = iota
	StateCompleted
	StateFailed
	StateCancelled
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// box is the shared engine under both profiles. The state, payload, and
// channel close move together in one critical section, so concurrent writers
// race on a single swap: exactly one performs the transition, the rest see a
// settled box and report false.
type box[T any] struct {
	cancelIsFailure bool
	recancelOK      bool

	mu    sync.Mutex
	state State
	value T
	cause error
	done  chan struct{}
}

func newBox[T any](cancelIsFailure, recancelOK bool) box[T] {
	return box[T]{
		cancelIsFailure: cancelIsFailure,
		recancelOK:      recancelOK,
		done:            make(chan struct{}),
	}
}

func (b *box[T]) transition(to State, v T, cause error) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != StatePending {
		return false
	}
	b.state = to
	b.value = v
	b.cause = cause
	close(b.done)
	return true
}

func (b *box[T]) complete(v T) bool {
	return b.transition(StateCompleted, v, nil)
}

func (b *box[T]) fail(cause error) bool {
	if cause == nil {
		cause = errNoCause
	}
	var zero T
	return b.transition(StateFailed, zero, cause)
}

func (b *box[T]) cancel() bool {
	var zero T
	if b.transition(StateCancelled, zero, nil) {
		return true
	}
	return b.recancelOK && b.snapshot() == StateCancelled
}

func (b *box[T]) snapshot() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *box[T]) isDone() bool {
	return b.snapshot() != StatePending
}

func (b *box[T]) isCompleted() bool {
	return b.snapshot() == StateCompleted
}

func (b *box[T]) isCancelled() bool {
	return b.snapshot() == StateCancelled
}

func (b *box[T]) isFailed() bool {
	s := b.snapshot()
	return s == StateFailed || (b.cancelIsFailure && s == StateCancelled)
}

func (b *box[T]) signal() <-chan struct{} {
	return b.done
}

func (b *box[T]) awaitSettled(ctx context.Context) error {
	return await.Wait(ctx, b.isDone, b.signal)
}

func (b *box[T]) awaitSettledFor(ctx context.Context, timeout time.Duration) (bool, error) {
	return await.WaitFor(ctx, b.isDone, b.signal, timeout)
}

func (b *box[T]) get(ctx context.Context) (T, error) {
	if err := b.awaitSettled(ctx); err != nil {
		var zero T
		return zero, err
	}
	return b.settled(ErrExecutionFailed)
}

func (b *box[T]) getFor(ctx context.Context, timeout time.Duration) (T, error) {
	ok, err := b.awaitSettledFor(ctx, timeout)
	if err != nil {
		var zero T
		return zero, err
	}
	if !ok {
		var zero T
		return zero, ErrTimeout
	}
	return b.settled(ErrExecutionFailed)
}

func (b *box[T]) getNow(absent T) (T, error) {
	b.mu.Lock()
	state, v, cause := b.state, b.value, b.cause
	b.mu.Unlock()

	switch state {
	case StatePending:
		return absent, nil
	case StateCompleted:
		return v, nil
	case StateFailed:
		var zero T
		return zero, errors.Join(ErrCompletionFailed, cause)
	default:
		var zero T
		return zero, ErrCancelled
	}
}

// settled reads the terminal outcome; wrap is joined onto the cause of a
// failed box. Callers must only invoke it once the box is settled.
func (b *box[T]) settled(wrap error) (T, error) {
	b.mu.Lock()
	state, v, cause := b.state, b.value, b.cause
	b.mu.Unlock()

	switch state {
	case StateCompleted:
		return v, nil
	case StateFailed:
		var zero T
		return zero, errors.Join(wrap, cause)
	default:
		var zero T
		return zero, ErrCancelled
	}
}
