package view

//go:generate mockgen -source=facilities.go -destination=mock/facilities_mock.go -package=mock

import (
	"context"

	"github.com/maxpoletaev/kivimon/nodestatus"
)

// Actions are the administrative calls bound to node controls.
type Actions interface {
	Restart(ctx context.Context, host string) error
	Stop(ctx context.Context, host string) error
	Start(ctx context.Context, host string) error
	SetSwitch(ctx context.Context, host string, kind nodestatus.SwitchKind, enabled bool) error
	FetchLog(ctx context.Context, host string) (string, error)
	FetchDiagnostic(ctx context.Context, host, word string) (string, error)
}
