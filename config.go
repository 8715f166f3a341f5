package taskkit

import (
	"errors"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/taskkit/pkg/spawn"
)

// Config carries the runner defaults that are tunable per environment.
type Config struct {
	// StopTimeout bounds Stop's join when the caller's context has no
	// deadline.
	StopTimeout time.Duration `env:"TASKKIT_STOP_TIMEOUT" envDefault:"30s"`

	// SpawnBaseName is the base name for task goroutines.
	SpawnBaseName string `env:"TASKKIT_SPAWN_BASE_NAME" envDefault:"runner-"`

	// SpawnNumbered appends a sequence number to goroutine names.
	SpawnNumbered bool `env:"TASKKIT_SPAWN_NUMBERED" envDefault:"true"`
}

var dotenvOnce sync.Once

// LoadConfig reads Config from the environment. A .env file in the working
// directory is loaded once per process before parsing; its absence is not an
// error.
func LoadConfig() (Config, error) {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// Options maps the config onto runner options: a daemon spawner under the
// configured naming policy and the configured stop timeout.
func (c Config) Options() ([]RunnerOption, error) {
	s, err := spawn.NewDaemon(c.SpawnBaseName, c.SpawnNumbered)
	if err != nil {
		return nil, err
	}
	return []RunnerOption{WithSpawner(s), WithStopTimeout(c.StopTimeout)}, nil
}
