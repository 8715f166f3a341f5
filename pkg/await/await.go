package await

import (
	"context"
	"time"
)

// Awaitable blocks callers until a boolean condition becomes true.
//
// Implementations pair a non-blocking condition snapshot with a notification
// channel and delegate the waiting loop to Wait and WaitFor, so cancellation
// and timeout semantics are identical across the module.
type Awaitable interface {
	// Await blocks until the condition becomes true or ctx is cancelled.
	// It returns nil when the condition became true, or the context error.
	Await(ctx context.Context) error

	// AwaitFor blocks until the condition becomes true, the timeout elapses,
	// or ctx is cancelled. It reports whether the condition became true; a
	// timeout is not an error. A non-positive timeout never blocks.
	AwaitFor(ctx context.Context, timeout time.Duration) (bool, error)
}

// Wait blocks until ready reports true or ctx is cancelled.
//
// The cancellation check precedes the first condition check, so a caller
// arriving with a cancelled context fails even when the condition already
// holds. The signal func must return the current notification channel: one
// that is closed, or will be closed, whenever the condition may have flipped
// to true after the channel was handed out. It is re-fetched on every pass so
// conditions that replace their channel between episodes stay correct.
func Wait(ctx context.Context, ready func() bool, signal func() <-chan struct{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for {
		if ready() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-signal():
		}
	}
}

// WaitFor is the bounded form of Wait. It reports whether the condition
// became true before the timeout elapsed; elapsing is not an error. The timer
// is armed once against the absolute deadline, so wakeups that find the
// condition still false park again on the remaining time.
func WaitFor(ctx context.Context, ready func() bool, signal func() <-chan struct{}, timeout time.Duration) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if ready() {
		return true, nil
	}
	if timeout <= 0 {
		return false, nil
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-timer.C:
			return ready(), nil
		case <-signal():
			if ready() {
				return true, nil
			}
		}
	}
}
