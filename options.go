package pocketcube

import (
	"io"
	"log"
	"time"
)

// Option configures Player behavior.
type Option func(*config)

type config struct {
	speed         float64
	frameInterval time.Duration
	logger        *log.Logger
}

func defaultConfig() *config {
	return &config{
		speed:         1,
		frameInterval: time.Second / 60,
		logger:        log.New(io.Discard, "", 0),
	}
}

// WithSpeed sets the animation speed multiplier. It must be positive;
// the value is checked when a move starts.
func WithSpeed(speed float64) Option {
	return func(c *config) {
		c.speed = speed
	}
}

// WithFrameInterval sets how much elapsed time Tick turns into one stepper
// step. Non-positive values are ignored.
func WithFrameInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.frameInterval = d
		}
	}
}

// WithLogger sets the logger for playback events.
// By default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
