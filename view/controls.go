package view

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/maxpoletaev/kivimon/nodestatus"
)

var (
	// ErrReleased is returned by controls of a binding that was destroyed by a rebuild.
	ErrReleased = errors.New("control released")

	// ErrDisabled is returned when the control is not enabled for the current node status.
	ErrDisabled = errors.New("control disabled")

	// ErrNotConfirmed is returned when the user declined the action.
	ErrNotConfirmed = errors.New("action not confirmed")

	// ErrLocalNode is returned for controls that need a remote target.
	ErrLocalNode = errors.New("not available for the local node")
)

// PowerAction is the action bound to the power control.
type PowerAction uint8

const (
	PowerNone PowerAction = iota
	PowerRestart
	PowerStop
	PowerStart
)

func (a PowerAction) String() string {
	switch a {
	case PowerRestart:
		return "restart"
	case PowerStop:
		return "stop"
	case PowerStart:
		return "start"
	default:
		return "none"
	}
}

// Label is the text of the power control.
func (a PowerAction) Label() string {
	switch a {
	case PowerRestart:
		return "Restart"
	case PowerStop:
		return "Stop"
	case PowerStart:
		return "Start"
	default:
		return ""
	}
}

// Prompt is the confirmation question asked before the action runs.
func (a PowerAction) Prompt() string {
	return fmt.Sprintf("Are you sure you want to %s this server?", a)
}

func powerActionFor(switches nodestatus.Switches, clusterRunning bool) PowerAction {
	switch {
	case switches.Restarts:
		return PowerRestart
	case clusterRunning:
		return PowerStop
	default:
		return PowerStart
	}
}

// Confirmer asks the user to confirm an action on the host.
type Confirmer interface {
	Confirm(ctx context.Context, host, prompt string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(ctx context.Context, host, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, host, prompt string) bool {
	return f(ctx, host, prompt)
}

// Controls are the handles of a single node binding. Every handler targets
// the host the binding was created for.
type Controls struct {
	board *Board
	b     *binding
}

// Index returns the roster position of the node.
func (c *Controls) Index() int {
	return c.b.index
}

// Host returns the host the controls are bound to.
func (c *Controls) Host() string {
	return c.b.node.Host
}

func (c *Controls) check(enabled func(b *binding) bool) error {
	if c.b.released {
		return ErrReleased
	}

	if !enabled(c.b) {
		return ErrDisabled
	}

	return nil
}

// Power runs the action currently bound to the power control once the user
// confirms it.
func (c *Controls) Power(ctx context.Context, confirm Confirmer) error {
	c.board.mut.RLock()
	err := c.check(func(b *binding) bool { return b.powerOn })
	action := c.board.powerAction(c.b)
	c.board.mut.RUnlock()

	if err != nil {
		return err
	}

	host := c.Host()
	if !confirm.Confirm(ctx, host, action.Prompt()) {
		return ErrNotConfirmed
	}

	switch action {
	case PowerRestart:
		return c.board.actions.Restart(ctx, host)
	case PowerStop:
		return c.board.actions.Stop(ctx, host)
	case PowerStart:
		return c.board.actions.Start(ctx, host)
	default:
		return ErrDisabled
	}
}

// SetSwitch turns a node switch on or off. On success the switch is shown in
// the new position until the next status report says otherwise.
func (c *Controls) SetSwitch(ctx context.Context, kind nodestatus.SwitchKind, enabled bool) error {
	c.board.mut.RLock()
	err := c.check(func(b *binding) bool { return b.switchesOn })
	backups := c.board.backups
	c.board.mut.RUnlock()

	if err != nil {
		return err
	}

	if kind == nodestatus.SwitchBackups && !backups {
		return ErrDisabled
	}

	if err := c.board.actions.SetSwitch(ctx, c.Host(), kind, enabled); err != nil {
		return err
	}

	c.board.mut.Lock()
	defer c.board.mut.Unlock()

	if !c.b.released {
		switch kind {
		case nodestatus.SwitchRestarts:
			c.b.switches.Restarts = enabled
		case nodestatus.SwitchCleanup:
			c.b.switches.Cleanup = enabled
		case nodestatus.SwitchBackups:
			c.b.switches.Backups = enabled
		}
	}

	return nil
}

// Log fetches the log of a remote node.
func (c *Controls) Log(ctx context.Context) (string, error) {
	c.board.mut.RLock()
	err := c.check(func(b *binding) bool { return b.logOn })
	local := c.b.node.Local
	c.board.mut.RUnlock()

	if local && !errors.Is(err, ErrReleased) {
		return "", ErrLocalNode
	}

	if err != nil {
		return "", err
	}

	return c.board.actions.FetchLog(ctx, c.Host())
}

// Diagnostic runs a four-letter diagnostic command on a running node.
func (c *Controls) Diagnostic(ctx context.Context, word string) (string, error) {
	word, err := nodestatus.ParseDiagnosticWord(word)
	if err != nil {
		return "", err
	}

	c.board.mut.RLock()
	err = c.check(func(b *binding) bool { return b.diagOn })
	c.board.mut.RUnlock()

	if err != nil {
		return "", err
	}

	return c.board.actions.FetchDiagnostic(ctx, c.Host(), word)
}

// WindowURL returns the address of the dashboard served by the remote node:
// the host of current is replaced by the node host, keeping the port.
func (c *Controls) WindowURL(current *url.URL) (string, error) {
	c.board.mut.RLock()
	released := c.b.released
	local := c.b.node.Local
	c.board.mut.RUnlock()

	if released {
		return "", ErrReleased
	}

	if local {
		return "", ErrLocalNode
	}

	target := *current
	target.Host = c.Host()

	if port := current.Port(); port != "" {
		target.Host = net.JoinHostPort(c.Host(), port)
	}

	return target.String(), nil
}
