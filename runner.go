package taskkit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/taskkit/pkg/await"
	"github.com/dmitrymomot/taskkit/pkg/spawn"
)

// Task is the unit of work a Runner executes. It must honor ctx: Stop
// signals the task by cancelling it and then waits for the task to return.
// A panicking task does not take the process down; the panic is recovered
// and stored as the task's error.
type Task func(ctx context.Context) error

// Runner owns at most one background goroutine executing a Task. It is
// single use: once started it can never be started again, whether the task
// is still running or already stopped.
//
// Runner implements the await contract over "no task goroutine is currently
// running": it is ready before Start, busy while the task runs, and ready
// again once the goroutine has finished.
type Runner struct {
	id          uuid.UUID
	task        Task
	spawner     *spawn.Spawner
	log         *slog.Logger
	stopTimeout time.Duration

	mu      sync.Mutex
	started bool
	handle  *spawn.Handle
	cancel  context.CancelFunc
	taskErr error
}

// defaultSpawner numbers runner goroutines across all runners that do not
// bring their own policy.
var defaultSpawner = sync.OnceValue(func() *spawn.Spawner {
	s, err := spawn.NewDaemon("runner-", true)
	if err != nil {
		panic(err)
	}
	return s
})

// NewRunner returns a runner for task. The default provisioning policy is a
// shared daemon spawner naming goroutines "runner-1", "runner-2", and so on;
// lifecycle logging is discarded unless WithLogger is supplied.
func NewRunner(task Task, opts ...RunnerOption) (*Runner, error) {
	if task == nil {
		return nil, ErrNilTask
	}

	cfg := runnerOptions{
		spawner: defaultSpawner(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Runner{
		id:          uuid.New(),
		task:        task,
		spawner:     cfg.spawner,
		log:         cfg.logger,
		stopTimeout: cfg.stopTimeout,
	}, nil
}

// ID returns the runner's identity, included in its log events.
func (r *Runner) ID() uuid.UUID {
	return r.id
}

// Start launches the task goroutine and returns an awaitable that becomes
// ready once the task body has begun executing. The task's context is
// derived from ctx, additionally cancelled by Stop, and released once the
// task returns.
//
// Starting a runner twice is a programming error and panics, regardless of
// whether the first task is still running.
func (r *Runner) Start(ctx context.Context) await.Awaitable {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		panic("taskkit: runner already started, runners are single use")
	}
	r.started = true

	begun := await.NewLatch(1)
	taskCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	startedAt := time.Now()
	r.handle = r.spawner.Go(taskCtx, func(ctx context.Context) {
		// Releases the derived context once the task is done, whether or
		// not Stop is ever called.
		defer cancel()
		begun.CountDown()
		err := r.run(ctx)
		r.record(err, time.Since(startedAt))
	})

	r.log.Info("runner started",
		slog.String("runner_id", r.id.String()),
		slog.String("goroutine", r.handle.Name()))
	return begun
}

// Stop cancels the task's context and joins the task goroutine. It returns
// nil immediately when no goroutine was ever started or it already
// finished. A ctx cancelled while joining propagates the context error; the
// task keeps its cancellation signal regardless. When the runner carries a
// stop timeout and ctx has no deadline, the join is bounded and elapses
// with ErrStopTimeout.
func (r *Runner) Stop(ctx context.Context) error {
	r.mu.Lock()
	h, cancel := r.handle, r.cancel
	r.mu.Unlock()

	if h == nil || h.Finished() {
		return nil
	}

	r.log.Info("runner stopping", slog.String("runner_id", r.id.String()))
	cancel()

	bounded := false
	if r.stopTimeout > 0 {
		if _, ok := ctx.Deadline(); !ok {
			bounded = true
			var release context.CancelFunc
			ctx, release = context.WithTimeout(ctx, r.stopTimeout)
			defer release()
		}
	}
	if err := h.Await(ctx); err != nil {
		if bounded && errors.Is(err, context.DeadlineExceeded) {
			return ErrStopTimeout
		}
		return err
	}

	r.log.Info("runner stopped", slog.String("runner_id", r.id.String()))
	return nil
}

// Running reports whether the task goroutine is currently running.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.handle != nil && !r.handle.Finished()
}

// Err returns the error the task returned, once it has finished. It is nil
// while the task is still running and for a task that returned nil. A
// recovered task panic surfaces here as ErrTaskPanicked.
func (r *Runner) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.taskErr
}

// Await blocks until no task goroutine is running or ctx is cancelled. It
// returns immediately on a runner that was never started.
func (r *Runner) Await(ctx context.Context) error {
	return await.Wait(ctx, r.idle, r.signal)
}

// AwaitFor is the bounded Await. It reports whether the runner became idle
// before the timeout elapsed.
func (r *Runner) AwaitFor(ctx context.Context, timeout time.Duration) (bool, error) {
	return await.WaitFor(ctx, r.idle, r.signal, timeout)
}

func (r *Runner) idle() bool {
	return !r.Running()
}

func (r *Runner) signal() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.handle == nil {
		return closedChan
	}
	return r.handle.Done()
}

// run invokes the task, mapping a panic onto ErrTaskPanicked with the
// recovered value attached.
func (r *Runner) run(ctx context.Context) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrTaskPanicked, rec)
		}
	}()
	return r.task(ctx)
}

func (r *Runner) record(err error, elapsed time.Duration) {
	r.mu.Lock()
	r.taskErr = err
	r.mu.Unlock()

	switch {
	case err == nil:
		r.log.Info("task finished",
			slog.String("runner_id", r.id.String()),
			slog.Duration("elapsed", elapsed))
	case errors.Is(err, context.Canceled):
		r.log.Info("task stopped",
			slog.String("runner_id", r.id.String()),
			slog.Duration("elapsed", elapsed))
	case errors.Is(err, ErrTaskPanicked):
		r.log.Error("task panicked",
			slog.String("runner_id", r.id.String()),
			slog.String("error", err.Error()),
			slog.Duration("elapsed", elapsed))
	default:
		r.log.Error("task failed",
			slog.String("runner_id", r.id.String()),
			slog.String("error", err.Error()),
			slog.Duration("elapsed", elapsed))
	}
}

var closedChan = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()
