package reconcile

import (
	"time"

	kitlog "github.com/go-kit/log"
)

type Option func(*Controller)

func WithLogger(logger kitlog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithInterval sets the period of the refresh loop. Non-positive values
// keep the default.
func WithInterval(interval time.Duration) Option {
	return func(c *Controller) {
		if interval > 0 {
			c.interval = interval
		}
	}
}
