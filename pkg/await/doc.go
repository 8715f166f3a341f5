// Package await defines a minimal contract for blocking on a boolean
// condition with context-aware cancellation and bounded waits.
//
// The package centers on the Awaitable interface: Await blocks until the
// condition becomes true or the context is cancelled, and AwaitFor bounds the
// wait with a timeout, reporting whether the condition became true. Every
// implementation in this module (latches, completion boxes, join handles, the
// task runner) exposes the same two methods with the same semantics, so
// callers can coordinate on any of them interchangeably.
//
// # Waiting Protocol
//
// All implementations share one protocol, provided by Wait and WaitFor:
//
//   - Cancellation is checked before the condition. A caller arriving with an
//     already-cancelled context gets the context error even when the condition
//     already holds.
//   - A true condition returns without blocking.
//   - AwaitFor with a non-positive timeout and a false condition returns false
//     without blocking.
//   - Bounded waits arm a single timer against the absolute deadline; wakeups
//     that find the condition still false park again on the remaining time.
//
// # Usage
//
//	latch := await.NewLatch(2)
//
//	go func() {
//		prepare()
//		latch.CountDown()
//	}()
//	go func() {
//		warmup()
//		latch.CountDown()
//	}()
//
//	if err := latch.Await(ctx); err != nil {
//		return err // context cancelled or deadline exceeded
//	}
package await
