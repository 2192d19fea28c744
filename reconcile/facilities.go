package reconcile

//go:generate mockgen -source=facilities.go -destination=facilities_mock_test.go -package=reconcile

import (
	"context"

	"github.com/maxpoletaev/kivimon/config"
	"github.com/maxpoletaev/kivimon/generation"
	"github.com/maxpoletaev/kivimon/poller"
	"github.com/maxpoletaev/kivimon/roster"
)

type Source interface {
	Load(ctx context.Context) (config.Cluster, error)
}

type Board interface {
	Rebuild(gen generation.Gen, r roster.Roster) error
	Roster() roster.Roster
}

type Poller interface {
	RefreshAll(ctx context.Context, r roster.Roster, gen generation.Gen) *poller.Round
}
