package taskkit

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/taskkit/pkg/spawn"
)

// RunnerOption configures a Runner at construction time.
type RunnerOption func(*runnerOptions)

type runnerOptions struct {
	spawner     *spawn.Spawner
	logger      *slog.Logger
	stopTimeout time.Duration
}

// WithSpawner replaces the provisioning policy for the task goroutine.
// A nil spawner keeps the default.
func WithSpawner(s *spawn.Spawner) RunnerOption {
	return func(o *runnerOptions) {
		if s != nil {
			o.spawner = s
		}
	}
}

// WithLogger enables lifecycle logging through l. A nil logger keeps the
// default, which discards everything.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(o *runnerOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStopTimeout bounds how long Stop waits for the task goroutine when the
// caller's context carries no deadline. Non-positive values keep Stop
// unbounded.
func WithStopTimeout(d time.Duration) RunnerOption {
	return func(o *runnerOptions) {
		if d > 0 {
			o.stopTimeout = d
		}
	}
}
