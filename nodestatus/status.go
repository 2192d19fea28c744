package nodestatus

import (
	"errors"
	"fmt"
)

// State is the serving state reported by a node.
type State int

const (
	StateLatent State = iota
	StateDown
	StateNotServing
	StateServing
)

func (s State) String() string {
	switch s {
	case StateLatent:
		return "latent"
	case StateDown:
		return "down"
	case StateNotServing:
		return "not_serving"
	case StateServing:
		return "serving"
	default:
		return "unknown"
	}
}

// IsRunning returns true if the node process is up, regardless of whether it
// serves requests.
func (s State) IsRunning() bool {
	return s == StateServing || s == StateNotServing
}

// Color returns the indicator color of the state.
func (s State) Color() Color {
	switch s {
	case StateServing:
		return ColorHealthy
	case StateNotServing:
		return ColorWarning
	case StateDown:
		return ColorError
	default:
		return ColorNeutral
	}
}

// Color is a CSS color of the node status indicator.
type Color string

const (
	ColorNeutral Color = "#FFF"
	ColorHealthy Color = "#0E0"
	ColorWarning Color = "#FF0"
	ColorError   Color = "#F00"
)

// SwitchKind names a per-node configuration switch.
type SwitchKind string

const (
	SwitchRestarts SwitchKind = "restarts"
	SwitchCleanup  SwitchKind = "cleanup"
	SwitchBackups  SwitchKind = "backups"
)

// AllSwitches lists switch kinds in display order.
var AllSwitches = []SwitchKind{SwitchRestarts, SwitchCleanup, SwitchBackups}

var ErrUnknownSwitch = errors.New("unknown switch")

// ParseSwitchKind validates a switch name.
func ParseSwitchKind(s string) (SwitchKind, error) {
	for _, kind := range AllSwitches {
		if string(kind) == s {
			return kind, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownSwitch, s)
}

var ErrBadDiagnostic = errors.New("bad diagnostic word")

// ParseDiagnosticWord validates a four-letter diagnostic command such as
// "ruok" or "stat". Only four lowercase ASCII letters are accepted.
func ParseDiagnosticWord(s string) (string, error) {
	if len(s) != 4 {
		return "", fmt.Errorf("%w: %q", ErrBadDiagnostic, s)
	}

	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return "", fmt.Errorf("%w: %q", ErrBadDiagnostic, s)
		}
	}

	return s, nil
}

// Switches is the state of the node switches.
type Switches struct {
	Restarts bool `json:"restarts"`
	Cleanup  bool `json:"cleanup"`
	Backups  bool `json:"backups"`
}

// Get returns the value of the given switch.
func (s Switches) Get(kind SwitchKind) bool {
	switch kind {
	case SwitchRestarts:
		return s.Restarts
	case SwitchCleanup:
		return s.Cleanup
	case SwitchBackups:
		return s.Backups
	default:
		return false
	}
}

// Report is the payload of a successful status response.
type Report struct {
	State       State    `json:"state"`
	Description string   `json:"description"`
	Switches    Switches `json:"switches"`
}
