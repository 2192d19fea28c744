package view

import kitlog "github.com/go-kit/log"

type Option func(*Board)

// WithBackups shows the backups switch. It should be set when backups are
// configured for the cluster.
func WithBackups(enabled bool) Option {
	return func(b *Board) {
		b.backups = enabled
	}
}

func WithLogger(logger kitlog.Logger) Option {
	return func(b *Board) {
		b.logger = logger
	}
}
