package remote

import (
	"time"

	kitlog "github.com/go-kit/log"

	"github.com/maxpoletaev/kivimon/notify"
)

type Option func(*Invoker)

func WithHTTPClient(c HTTPClient) Option {
	return func(inv *Invoker) {
		inv.client = c
	}
}

func WithNotifier(n notify.Notifier) Option {
	return func(inv *Invoker) {
		inv.notifier = n
	}
}

func WithLogger(logger kitlog.Logger) Option {
	return func(inv *Invoker) {
		inv.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(inv *Invoker) {
		inv.now = now
	}
}
