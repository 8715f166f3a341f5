package await

import (
	"context"
	"sync"
	"time"
)

// Latch is a single-use countdown gate. It starts at a fixed count, each
// CountDown moves it toward zero, and waiters are released once the count
// reaches zero. The count never goes back up.
type Latch struct {
	mu    sync.Mutex
	count int
	done  chan struct{}
}

// NewLatch returns a latch set to n. Counts below zero are clamped to zero;
// a latch at zero is born satisfied and never blocks.
func NewLatch(n int) *Latch {
	l := &Latch{count: max(n, 0), done: make(chan struct{})}
	if l.count == 0 {
		close(l.done)
	}
	return l
}

// CountDown decrements the latch. The transition to zero releases all
// current and future waiters. Calling CountDown on a satisfied latch is a
// no-op.
func (l *Latch) CountDown() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.count == 0 {
		return
	}
	l.count--
	if l.count == 0 {
		close(l.done)
	}
}

// Count returns the current count without blocking.
func (l *Latch) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

// Await blocks until the count reaches zero or ctx is cancelled.
func (l *Latch) Await(ctx context.Context) error {
	return Wait(ctx, l.satisfied, l.signal)
}

// AwaitFor blocks until the count reaches zero, the timeout elapses, or ctx
// is cancelled. It reports whether the count reached zero.
func (l *Latch) AwaitFor(ctx context.Context, timeout time.Duration) (bool, error) {
	return WaitFor(ctx, l.satisfied, l.signal, timeout)
}

func (l *Latch) satisfied() bool {
	return l.Count() == 0
}

func (l *Latch) signal() <-chan struct{} {
	return l.done
}
