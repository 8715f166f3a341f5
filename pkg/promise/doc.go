// Package promise provides single-assignment completion boxes with type-safe
// results using generics.
//
// A box starts pending and moves exactly once into one of three terminal
// states: completed with a value, failed with a cause, or cancelled. The
// transition is arbitrated atomically, so among any number of concurrent
// writers exactly one wins and every later write reports false without
// effect. Readers can block until the box settles, block with a timeout, or
// poll without blocking.
//
// Two profiles share the same engine and differ only in how cancellation is
// classified:
//
//   - Promise (strict): cancellation is its own outcome. Failed reports false
//     for a cancelled box, and cancelling an already-cancelled box reports
//     false like any other late write.
//   - Future (standard): the conventional asynchronous-handle contract.
//     Failed reports true for a cancelled box, and cancelling an
//     already-cancelled box reports true.
//
// The profile is fixed by the constructor; there is no way to switch a box
// between profiles after creation.
//
// # Usage
//
//	p := promise.New[string]()
//
//	go func() {
//		v, err := produce()
//		if err != nil {
//			p.Fail(err)
//			return
//		}
//		p.Complete(v)
//	}()
//
//	v, err := p.Get(ctx)
//	if err != nil {
//		return err
//	}
//
// Functions can be launched directly into a Future:
//
//	f := promise.Go(ctx, func(ctx context.Context) (int, error) {
//		return compute(ctx)
//	})
//
//	n, err := f.Get(ctx)
//
// # Error Handling
//
// Blocking reads distinguish every outcome: a stored failure surfaces as
// ErrExecutionFailed joined with the original cause, cancellation as
// ErrCancelled, an elapsed GetFor timeout as ErrTimeout, and caller
// cancellation as the context's own error. Non-blocking GetNow wraps stored
// failures as ErrCompletionFailed instead, so callers can tell which path
// observed the failure. errors.Is matches both the sentinel and the original
// cause through the join.
//
// # Performance Considerations
//
// A box is a mutex, a channel, and a few words of state. Terminal-state
// queries take the mutex briefly and never block; blocked readers park on
// the channel and wake on the single close when the box settles.
package promise
