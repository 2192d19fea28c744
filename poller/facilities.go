package poller

import (
	"context"

	"github.com/maxpoletaev/kivimon/generation"
	"github.com/maxpoletaev/kivimon/nodestatus"
)

// StatusClient fetches the status report of a single host.
type StatusClient interface {
	GetState(ctx context.Context, host string) (nodestatus.Report, error)
}

// Sink receives the outcome of every status request together with the
// ticket it was issued with. It decides whether the outcome is still current.
type Sink interface {
	ApplyStatus(t generation.Ticket, r nodestatus.Report) generation.Verdict
	ApplyFailure(t generation.Ticket, err error) generation.Verdict
}
