package taskkit_test

import (
	"context"
	"runtime/pprof"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/taskkit"
	"github.com/dmitrymomot/taskkit/pkg/spawn"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := taskkit.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 30*time.Second, cfg.StopTimeout)
		assert.Equal(t, "runner-", cfg.SpawnBaseName)
		assert.True(t, cfg.SpawnNumbered)
	})

	t.Run("reads the environment", func(t *testing.T) {
		t.Setenv("TASKKIT_STOP_TIMEOUT", "5s")
		t.Setenv("TASKKIT_SPAWN_BASE_NAME", "job-")
		t.Setenv("TASKKIT_SPAWN_NUMBERED", "false")

		cfg, err := taskkit.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 5*time.Second, cfg.StopTimeout)
		assert.Equal(t, "job-", cfg.SpawnBaseName)
		assert.False(t, cfg.SpawnNumbered)
	})

	t.Run("invalid values fail with a parse error", func(t *testing.T) {
		t.Setenv("TASKKIT_STOP_TIMEOUT", "bogus")

		_, err := taskkit.LoadConfig()
		require.ErrorIs(t, err, taskkit.ErrParsingConfig)
	})
}

func TestConfigOptions(t *testing.T) {
	t.Parallel()

	t.Run("maps onto runner behavior", func(t *testing.T) {
		t.Parallel()

		cfg := taskkit.Config{
			StopTimeout:   30 * time.Millisecond,
			SpawnBaseName: "cfg-",
			SpawnNumbered: true,
		}
		opts, err := cfg.Options()
		require.NoError(t, err)

		release := make(chan struct{})
		var label string
		r, err := taskkit.NewRunner(
			func(ctx context.Context) error {
				label, _ = pprof.Label(ctx, "goroutine")
				<-release
				return nil
			},
			opts...,
		)
		require.NoError(t, err)

		begun := r.Start(context.Background())
		require.NoError(t, begun.Await(context.Background()))

		require.ErrorIs(t, r.Stop(context.Background()), taskkit.ErrStopTimeout)

		close(release)
		require.NoError(t, r.Await(context.Background()))
		assert.Equal(t, "cfg-1", label)
	})

	t.Run("empty base name is rejected", func(t *testing.T) {
		t.Parallel()

		cfg := taskkit.Config{SpawnBaseName: ""}
		_, err := cfg.Options()
		require.ErrorIs(t, err, spawn.ErrNoBaseName)
	})
}
