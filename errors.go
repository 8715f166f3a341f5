package taskkit

import "errors"

var (
	// ErrNilTask is returned when a runner is constructed without a task.
	ErrNilTask = errors.New("task cannot be nil")

	// ErrStopTimeout is returned by Stop when the stop timeout elapses
	// before the task goroutine finishes.
	ErrStopTimeout = errors.New("timed out waiting for task to stop")

	// ErrTaskPanicked is stored as the task's error when the task panics;
	// the recovered value is attached to the message.
	ErrTaskPanicked = errors.New("task panicked")

	// ErrParsingConfig is returned when the environment configuration
	// cannot be parsed.
	ErrParsingConfig = errors.New("failed to parse config")
)
