package await_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/taskkit/pkg/await"
)

func TestLatch(t *testing.T) {
	t.Parallel()

	t.Run("zero count is born satisfied", func(t *testing.T) {
		t.Parallel()

		l := await.NewLatch(0)
		assert.Equal(t, 0, l.Count())

		err := l.Await(context.Background())
		require.NoError(t, err)
	})

	t.Run("negative count clamps to zero", func(t *testing.T) {
		t.Parallel()

		l := await.NewLatch(-3)
		assert.Equal(t, 0, l.Count())

		ok, err := l.AwaitFor(context.Background(), 0)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("count down releases waiters at zero", func(t *testing.T) {
		t.Parallel()

		l := await.NewLatch(2)

		l.CountDown()
		assert.Equal(t, 1, l.Count())

		ok, err := l.AwaitFor(context.Background(), 10*time.Millisecond)
		require.NoError(t, err)
		assert.False(t, ok, "latch must stay closed above zero")

		l.CountDown()
		assert.Equal(t, 0, l.Count())

		err = l.Await(context.Background())
		require.NoError(t, err)
	})

	t.Run("count down at zero is a no-op", func(t *testing.T) {
		t.Parallel()

		l := await.NewLatch(1)
		l.CountDown()
		l.CountDown()
		assert.Equal(t, 0, l.Count())
	})

	t.Run("releases all concurrent waiters", func(t *testing.T) {
		t.Parallel()

		l := await.NewLatch(1)

		const waiters = 10
		var wg sync.WaitGroup
		errs := make([]error, waiters)
		for i := range waiters {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = l.Await(context.Background())
			}()
		}

		time.Sleep(10 * time.Millisecond)
		l.CountDown()
		wg.Wait()

		for _, err := range errs {
			require.NoError(t, err)
		}
	})

	t.Run("cancelled context wins over satisfied latch", func(t *testing.T) {
		t.Parallel()

		l := await.NewLatch(0)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := l.Await(ctx)
		require.ErrorIs(t, err, context.Canceled)

		ok, err := l.AwaitFor(ctx, time.Second)
		require.ErrorIs(t, err, context.Canceled)
		assert.False(t, ok)
	})

	t.Run("await is cancellable while blocked", func(t *testing.T) {
		t.Parallel()

		l := await.NewLatch(1)
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err := l.Await(ctx)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("bounded await succeeds once counted down", func(t *testing.T) {
		t.Parallel()

		l := await.NewLatch(1)
		go func() {
			time.Sleep(20 * time.Millisecond)
			l.CountDown()
		}()

		ok, err := l.AwaitFor(context.Background(), time.Second)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
