package promise

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Go runs fn in its own goroutine and returns a Future settled from its
// outcome: a nil error completes the future, a context error cancels it, any
// other error fails it. A context already cancelled at launch cancels the
// future without invoking fn.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := NewFuture[T]()
	if ctx.Err() != nil {
		f.cancel()
		return f
	}
	go func() {
		v, err := fn(ctx)
		settle(f, v, err)
	}()
	return f
}

// GoAll runs every fn in its own goroutine and returns a Future settled with
// the collected results in argument order. The first failure cancels the
// context passed to the remaining functions and settles the future from that
// failure; the future completes only when every function succeeded.
func GoAll[T any](ctx context.Context, fns ...func(context.Context) (T, error)) *Future[[]T] {
	f := NewFuture[[]T]()
	if ctx.Err() != nil {
		f.cancel()
		return f
	}
	go func() {
		g, gctx := errgroup.WithContext(ctx)
		results := make([]T, len(fns))
		for i, fn := range fns {
			g.Go(func() error {
				v, err := fn(gctx)
				if err != nil {
					return err
				}
				results[i] = v
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			var none []T
			settle(f, none, err)
			return
		}
		f.complete(results)
	}()
	return f
}

// settle maps a function outcome onto the box transitions.
func settle[T any](f *Future[T], v T, err error) {
	switch {
	case err == nil:
		f.complete(v)
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		f.cancel()
	default:
		f.fail(err)
	}
}

// All blocks until every future settles and returns their values in argument
// order. On the first failure it returns the error together with the values
// collected so far. An empty argument list fails with ErrNoFutures.
func All[T any](ctx context.Context, futures ...*Future[T]) ([]T, error) {
	if len(futures) == 0 {
		return nil, ErrNoFutures
	}
	results := make([]T, len(futures))
	for i, f := range futures {
		v, err := f.Get(ctx)
		if err != nil {
			return results, err
		}
		results[i] = v
	}
	return results, nil
}

// Any blocks until the first future settles and returns its index and
// outcome. Losing waiters are reaped when ctx ends. An empty argument list
// fails with ErrNoFutures.
func Any[T any](ctx context.Context, futures ...*Future[T]) (int, T, error) {
	var zero T
	if len(futures) == 0 {
		return -1, zero, ErrNoFutures
	}

	settled := make(chan int, 1)
	for i, f := range futures {
		go func() {
			select {
			case <-f.signal():
				select {
				case settled <- i:
				default:
				}
			case <-ctx.Done():
			}
		}()
	}

	select {
	case <-ctx.Done():
		return -1, zero, ctx.Err()
	case i := <-settled:
		v, err := futures[i].Get(ctx)
		return i, v, err
	}
}
