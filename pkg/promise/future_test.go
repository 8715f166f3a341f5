package promise_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/taskkit/pkg/promise"
)

func TestFutureLifecycle(t *testing.T) {
	t.Parallel()

	t.Run("starts pending", func(t *testing.T) {
		t.Parallel()

		f := promise.NewFuture[int]()
		assert.Equal(t, promise.StatePending, f.State())
		assert.False(t, f.Done())
		assert.False(t, f.Failed())
	})

	t.Run("first write wins and sticks", func(t *testing.T) {
		t.Parallel()

		f := promise.NewFuture[int]()
		assert.True(t, f.Complete(42))
		assert.False(t, f.Complete(7))

		v, err := f.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("cancellation counts as failed", func(t *testing.T) {
		t.Parallel()

		f := promise.NewFuture[int]()
		assert.True(t, f.Cancel(false))
		assert.True(t, f.Cancelled())
		assert.True(t, f.Failed(), "standard profile folds cancellation into failure")
		assert.False(t, f.Completed())

		_, err := f.Get(context.Background())
		require.ErrorIs(t, err, promise.ErrCancelled)
	})

	t.Run("re-cancel reports success", func(t *testing.T) {
		t.Parallel()

		f := promise.NewFuture[int]()
		assert.True(t, f.Cancel(false))
		assert.True(t, f.Cancel(false))
		assert.True(t, f.Cancel(true), "interrupt flag must not change the outcome")
	})

	t.Run("cancel after completion reports false", func(t *testing.T) {
		t.Parallel()

		f := promise.NewFuture[int]()
		assert.True(t, f.Complete(1))
		assert.False(t, f.Cancel(false))
		assert.False(t, f.Cancel(true))
		assert.True(t, f.Completed())
		assert.False(t, f.Cancelled())
	})

	t.Run("failure keeps its cause", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("boom")
		f := promise.NewFuture[string]()
		assert.True(t, f.Fail(cause))
		assert.True(t, f.Failed())
		assert.False(t, f.Cancelled())

		_, err := f.Get(context.Background())
		require.ErrorIs(t, err, promise.ErrExecutionFailed)
		require.ErrorIs(t, err, cause)

		_, err = f.GetNow(context.Background(), "")
		require.ErrorIs(t, err, promise.ErrCompletionFailed)
		require.ErrorIs(t, err, cause)
	})
}
