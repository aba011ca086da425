// Package config loads application settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

// Config holds settings shared by the CLI commands. Command-line flags
// override these values.
type Config struct {
	Speed         float64       `env:"POCKETCUBE_SPEED" envDefault:"1"`
	FrameInterval time.Duration `env:"POCKETCUBE_FRAME_INTERVAL" envDefault:"16ms"`
	ScrambleMoves int           `env:"POCKETCUBE_SCRAMBLE_MOVES" envDefault:"25"`
	DBPath        string        `env:"POCKETCUBE_DB"`
	NoCache       bool          `env:"POCKETCUBE_NO_CACHE" envDefault:"false"`
}

// Load parses the environment. An unset POCKETCUBE_DB resolves to the
// default database path.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBPath == "" {
		path, err := storage.DefaultDBPath()
		if err != nil {
			return Config{}, err
		}
		cfg.DBPath = path
	}
	return cfg, nil
}

// Validate rejects values no command can run with.
func (c Config) Validate() error {
	var errs []error
	if !(c.Speed > 0) {
		errs = append(errs, fmt.Errorf("speed must be positive, got %v", c.Speed))
	}
	if c.FrameInterval <= 0 {
		errs = append(errs, fmt.Errorf("frame interval must be positive, got %s", c.FrameInterval))
	}
	if c.ScrambleMoves <= 0 {
		errs = append(errs, fmt.Errorf("scramble moves must be positive, got %d", c.ScrambleMoves))
	}
	return errors.Join(errs...)
}
