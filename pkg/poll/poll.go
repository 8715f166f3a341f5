package poll

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/taskkit/pkg/promise"
)

// Handle is a blocking-only asynchronous handle: it can report and change
// its state and hand out the outcome, but only through blocking reads.
type Handle[T any] interface {
	// Done reports whether the handle has settled, without blocking.
	Done() bool

	// Cancelled reports whether the handle settled as cancelled, without
	// blocking.
	Cancelled() bool

	// Cancel requests cancellation and reports whether it took effect.
	Cancel(interrupt bool) bool

	// Get blocks until the handle settles or ctx is cancelled.
	Get(ctx context.Context) (T, error)

	// GetFor is the bounded Get.
	GetFor(ctx context.Context, timeout time.Duration) (T, error)
}

// Pollable is a Handle that can additionally be read without blocking.
type Pollable[T any] interface {
	Handle[T]

	// GetNow never blocks: it returns absent while the handle is unsettled
	// and the settled outcome afterwards.
	GetNow(ctx context.Context, absent T) (T, error)
}

// Of returns a Pollable view of h. A handle that implements Pollable
// natively is returned as is; anything else is wrapped in an adapter that
// forwards the blocking surface verbatim and adds GetNow. A nil handle fails
// with ErrNilHandle.
func Of[T any](h Handle[T]) (Pollable[T], error) {
	if h == nil {
		return nil, ErrNilHandle
	}
	if p, ok := h.(Pollable[T]); ok {
		return p, nil
	}
	return &adapter[T]{h: h}, nil
}

type adapter[T any] struct {
	h Handle[T]
}

func (a *adapter[T]) Done() bool {
	return a.h.Done()
}

func (a *adapter[T]) Cancelled() bool {
	return a.h.Cancelled()
}

func (a *adapter[T]) Cancel(interrupt bool) bool {
	return a.h.Cancel(interrupt)
}

func (a *adapter[T]) Get(ctx context.Context) (T, error) {
	return a.h.Get(ctx)
}

func (a *adapter[T]) GetFor(ctx context.Context, timeout time.Duration) (T, error) {
	return a.h.GetFor(ctx, timeout)
}

// GetNow reads the settled outcome without blocking. While the handle is
// unsettled it returns absent. Once the handle reports done, the outcome is
// read through the wrapped Get, which returns immediately for a handle that
// honors its contract: a context error is surfaced alongside absent, a
// cancelled handle's error is re-raised verbatim, and any other failure is
// wrapped as a completion failure. The wrap preserves the full error chain
// of the wrapped Get, so sentinels attached by the blocking read remain
// matchable through errors.Is.
func (a *adapter[T]) GetNow(ctx context.Context, absent T) (T, error) {
	if !a.h.Done() {
		return absent, nil
	}
	v, err := a.h.Get(ctx)
	switch {
	case err == nil:
		return v, nil
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return absent, err
	case errors.Is(err, promise.ErrCancelled) || a.h.Cancelled():
		var zero T
		return zero, err
	case errors.Is(err, promise.ErrCompletionFailed):
		var zero T
		return zero, err
	default:
		var zero T
		return zero, errors.Join(promise.ErrCompletionFailed, err)
	}
}
