package spawn

import (
	"context"
	"time"

	"github.com/dmitrymomot/taskkit/pkg/await"
)

// Handle is the join handle for a single spawned goroutine. Its Await
// returns once the goroutine has finished, making it the goroutine-join form
// of the await contract.
type Handle struct {
	name string
	done chan struct{}
}

// Name returns the goroutine's name under the spawner's naming policy.
func (h *Handle) Name() string {
	return h.name
}

// Done returns a channel closed when the goroutine finishes, for callers
// that want to select on the join directly.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Finished reports whether the goroutine has finished, without blocking.
func (h *Handle) Finished() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Await joins the goroutine: it blocks until the goroutine has finished or
// ctx is cancelled.
func (h *Handle) Await(ctx context.Context) error {
	return await.Wait(ctx, h.Finished, h.signal)
}

// AwaitFor is the bounded join. It reports whether the goroutine finished
// before the timeout elapsed.
func (h *Handle) AwaitFor(ctx context.Context, timeout time.Duration) (bool, error) {
	return await.WaitFor(ctx, h.Finished, h.signal, timeout)
}

func (h *Handle) signal() <-chan struct{} {
	return h.done
}
