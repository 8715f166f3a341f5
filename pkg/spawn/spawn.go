package spawn

import (
	"context"
	"runtime/pprof"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/taskkit/pkg/await"
)

// Spawner starts named goroutines under a fixed naming policy and, for the
// default flavor, tracks them so they can be joined as a group.
type Spawner struct {
	base     string
	numbered bool
	daemon   bool
	seq      atomic.Int64

	mu   sync.Mutex
	live int
	idle chan struct{}
}

// New returns a spawner whose goroutines are tracked: the Spawner's Await
// blocks until every goroutine it started has finished. With numbered set,
// goroutine names are baseName followed by a sequence number starting at 1;
// otherwise every goroutine gets baseName verbatim.
func New(baseName string, numbered bool) (*Spawner, error) {
	return newSpawner(baseName, numbered, false)
}

// NewDaemon returns a spawner whose goroutines are fire-and-forget: they are
// named and counted like tracked ones, but the Spawner's Await does not cover
// them. Callers join daemon goroutines through their individual handles.
func NewDaemon(baseName string, numbered bool) (*Spawner, error) {
	return newSpawner(baseName, numbered, true)
}

func newSpawner(base string, numbered, daemon bool) (*Spawner, error) {
	if base == "" {
		return nil, ErrNoBaseName
	}
	return &Spawner{base: base, numbered: numbered, daemon: daemon}, nil
}

// Go starts fn in its own goroutine under the spawner's naming policy and
// returns its join handle. The goroutine's name is attached as the
// "goroutine" pprof label on the context passed to fn; nested goroutines
// inherit it through the runtime.
func (s *Spawner) Go(ctx context.Context, fn func(context.Context)) *Handle {
	h := &Handle{name: s.next(), done: make(chan struct{})}
	if !s.daemon {
		s.track()
	}
	go func() {
		// Deferred LIFO: the handle closes before the goroutine leaves the
		// tracked count.
		if !s.daemon {
			defer s.untrack()
		}
		defer close(h.done)
		pprof.Do(ctx, pprof.Labels("goroutine", h.name), fn)
	}()
	return h
}

// Spawned returns how many goroutines this spawner has started.
func (s *Spawner) Spawned() int {
	return int(s.seq.Load())
}

// Await blocks until every tracked goroutine has finished or ctx is
// cancelled. For a daemon spawner nothing is tracked, so Await returns
// immediately.
func (s *Spawner) Await(ctx context.Context) error {
	return await.Wait(ctx, s.settled, s.signal)
}

// AwaitFor is the bounded form of Await. It reports whether all tracked
// goroutines finished before the timeout elapsed.
func (s *Spawner) AwaitFor(ctx context.Context, timeout time.Duration) (bool, error) {
	return await.WaitFor(ctx, s.settled, s.signal, timeout)
}

func (s *Spawner) next() string {
	n := s.seq.Add(1)
	if !s.numbered {
		return s.base
	}
	return s.base + strconv.FormatInt(n, 10)
}

func (s *Spawner) track() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.live == 0 {
		s.idle = make(chan struct{})
	}
	s.live++
}

func (s *Spawner) untrack() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live--
	if s.live == 0 {
		close(s.idle)
	}
}

func (s *Spawner) settled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live == 0
}

func (s *Spawner) signal() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.live == 0 {
		return closedChan
	}
	return s.idle
}

var closedChan = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()
