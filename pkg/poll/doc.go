// Package poll upgrades blocking-only asynchronous handles with a
// non-blocking read.
//
// A Handle exposes the conventional blocking surface: state queries, cancel,
// and blocking reads. A Pollable additionally answers GetNow, a read that
// never blocks and returns a caller-chosen absent value while the handle is
// unsettled. Of wraps any Handle into a Pollable; a handle that can already
// answer GetNow natively is passed through untouched.
//
// The adapter forwards every Handle method verbatim and derives GetNow from
// the state query plus one blocking read that is only issued once the handle
// reports done, so it returns immediately for a well-behaved handle.
//
// # Usage
//
//	p, err := poll.Of(handle)
//	if err != nil {
//		return err // nil handle
//	}
//
//	v, err := p.GetNow(ctx, fallback)
//	switch {
//	case err != nil:
//		return err // settled with failure or cancellation
//	case v == fallback:
//		// still running
//	default:
//		// settled with v
//	}
package poll
