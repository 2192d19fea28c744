package view

import (
	"github.com/maxpoletaev/kivimon/generation"
	"github.com/maxpoletaev/kivimon/nodestatus"
)

// Snapshot is a point-in-time copy of the board for rendering.
type Snapshot struct {
	Generation generation.Gen
	Nodes      []NodeView
}

// NodeView is the rendered state of a single node.
type NodeView struct {
	Index         int
	ID            int
	Host          string
	Tag           string
	Local         bool
	Reported      bool
	Failed        bool
	State         nodestatus.State
	Running       bool
	StatusMessage string
	Color         nodestatus.Color
	Power         PowerView
	Diagnostic    ControlView
	Log           ControlView
	Window        ControlView
	Switches      []SwitchView
}

type PowerView struct {
	Action  PowerAction
	Label   string
	Enabled bool
}

type ControlView struct {
	Visible bool
	Enabled bool
}

type SwitchView struct {
	Kind    nodestatus.SwitchKind
	Visible bool
	Enabled bool
	Checked bool
}

// Snapshot returns the current state of every binding.
func (b *Board) Snapshot() Snapshot {
	b.mut.RLock()
	defer b.mut.RUnlock()

	nodes := make([]NodeView, len(b.bindings))
	for i, bd := range b.bindings {
		nodes[i] = b.nodeView(bd)
	}

	return Snapshot{
		Generation: b.gen,
		Nodes:      nodes,
	}
}

func (b *Board) nodeView(bd *binding) NodeView {
	remote := !bd.node.Local

	switches := make([]SwitchView, len(nodestatus.AllSwitches))
	for i, kind := range nodestatus.AllSwitches {
		switches[i] = SwitchView{
			Kind:    kind,
			Visible: kind != nodestatus.SwitchBackups || b.backups,
			Enabled: bd.switchesOn,
			Checked: bd.switches.Get(kind),
		}
	}

	power := b.powerAction(bd)

	return NodeView{
		Index:         bd.index,
		ID:            bd.node.ID,
		Host:          bd.node.Host,
		Tag:           bd.node.Tag,
		Local:         bd.node.Local,
		Reported:      bd.reported,
		Failed:        bd.failed,
		State:         bd.state,
		Running:       bd.reported && !bd.failed && bd.state.IsRunning(),
		StatusMessage: bd.message,
		Color:         bd.color,
		Power: PowerView{
			Action:  power,
			Label:   power.Label(),
			Enabled: bd.powerOn,
		},
		Diagnostic: ControlView{Visible: true, Enabled: bd.diagOn},
		Log:        ControlView{Visible: remote, Enabled: remote && bd.logOn},
		Window:     ControlView{Visible: remote, Enabled: remote},
		Switches:   switches,
	}
}
