// Package taskkit manages the lifecycle of a single background task and
// provides the coordination primitives it is built from.
//
// The root package owns the Runner: it starts a caller-supplied task in a
// named goroutine, hands back an awaitable that fires once the task body has
// begun, and stops the task by cancelling its context and joining the
// goroutine. A runner is single use: once started it can never be started
// again.
//
// The primitives live under pkg and are usable on their own:
//
//   - pkg/await: the Awaitable contract, the shared waiting protocol, and a
//     countdown Latch.
//   - pkg/promise: single-assignment completion boxes in a strict and a
//     standard profile, plus launch and coordination helpers.
//   - pkg/poll: a non-blocking read for blocking-only asynchronous handles.
//   - pkg/spawn: named goroutine provisioning with join handles.
//
// # Usage
//
//	r, err := taskkit.NewRunner(func(ctx context.Context) error {
//		return serve(ctx) // runs until ctx is cancelled
//	})
//	if err != nil {
//		return err
//	}
//
//	begun := r.Start(context.Background())
//	if err := begun.Await(ctx); err != nil {
//		return err
//	}
//
//	// ... later
//	if err := r.Stop(ctx); err != nil {
//		return err // caller cancelled or stop timeout elapsed
//	}
//
// # Configuration
//
// Runner defaults can come from the environment through Config and
// LoadConfig (TASKKIT_STOP_TIMEOUT, TASKKIT_SPAWN_BASE_NAME,
// TASKKIT_SPAWN_NUMBERED); Config.Options maps them onto runner options.
// Lifecycle logging is off by default and opt-in via WithLogger.
package taskkit
