// Package spawn provides a goroutine provisioning policy with stable,
// observable names and join handles.
//
// A Spawner stamps every goroutine it starts with a name derived from its
// base name, either the base name verbatim or base name plus a sequence
// number starting at 1. The name is attached as a pprof label, so it shows up
// in goroutine profiles and is inherited by nested goroutines the runtime
// way. Each Go call returns a Handle whose Await is a true join: it returns
// only after the goroutine has finished.
//
// Spawners come in two flavors. The default policy (New) tracks every
// goroutine it starts, and the Spawner's own Await joins them all. The
// daemon policy (NewDaemon) starts fire-and-forget goroutines that the
// Spawner does not track.
//
// # Usage
//
//	s, err := spawn.New("worker-", true)
//	if err != nil {
//		return err
//	}
//
//	h := s.Go(ctx, func(ctx context.Context) {
//		process(ctx) // runs as "worker-1"
//	})
//
//	if err := h.Await(ctx); err != nil {
//		return err // caller cancelled while joining
//	}
package spawn
