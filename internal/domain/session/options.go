package session

import (
	"math/rand"
	"time"
)

// Option applies a configuration option to the Controller.
type Option func(*Controller)

// WithRandSource sets the shuffle source, e.g. a seeded source in tests.
func WithRandSource(src rand.Source) Option {
	return func(c *Controller) {
		if src != nil {
			c.rng = rand.New(src) //nolint:gosec // deterministic source is the point
		}
	}
}

// WithClock overrides the session timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}
