package promise

import "errors"

var (
	// ErrTimeout is returned by GetFor when the timeout elapses before the
	// box settles. It is distinct from the context errors, so callers can
	// tell an elapsed timeout from their own cancellation.
	ErrTimeout = errors.New("promise: timed out waiting for completion")

	// ErrCancelled is returned by reads on a cancelled box.
	ErrCancelled = errors.New("promise: cancelled")

	// ErrExecutionFailed wraps the stored cause when a blocking read observes
	// a failed box.
	ErrExecutionFailed = errors.New("promise: execution failed")

	// ErrCompletionFailed wraps the stored cause when a non-blocking read
	// observes a failed box.
	ErrCompletionFailed = errors.New("promise: completion failed")

	// ErrNoFutures is returned by All and Any when called without futures.
	ErrNoFutures = errors.New("promise: no futures provided")

	// errNoCause is stored when Fail is called with a nil cause, so a failed
	// box always carries a non-nil error.
	errNoCause = errors.New("promise: failed with no cause")
)
