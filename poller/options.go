package poller

import (
	"time"

	kitlog "github.com/go-kit/log"
)

type Option func(*Poller)

// WithLoopback sets the address used to reach the local node.
func WithLoopback(host string) Option {
	return func(p *Poller) {
		p.loopback = host
	}
}

func WithRequestTimeout(timeout time.Duration) Option {
	return func(p *Poller) {
		p.timeout = timeout
	}
}

// WithMaxInFlight limits the number of concurrent status requests of a
// round. Zero or a negative value removes the limit.
func WithMaxInFlight(n int) Option {
	return func(p *Poller) {
		p.limit = n
	}
}

func WithLogger(logger kitlog.Logger) Option {
	return func(p *Poller) {
		p.logger = logger
	}
}
