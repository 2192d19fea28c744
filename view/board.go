package view

import (
	"errors"
	"fmt"
	"sync"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/maxpoletaev/kivimon/generation"
	"github.com/maxpoletaev/kivimon/nodestatus"
	"github.com/maxpoletaev/kivimon/roster"
)

var (
	// ErrStaleGeneration is returned when a rebuild does not advance the generation.
	ErrStaleGeneration = errors.New("generation is not newer than the current one")

	// ErrNoSuchNode is returned when there is no binding at the given index.
	ErrNoSuchNode = errors.New("no such node")
)

type binding struct {
	index      int
	node       roster.NodeSpec
	state      nodestatus.State
	message    string
	color      nodestatus.Color
	switches   nodestatus.Switches
	reported   bool
	failed     bool
	appliedSeq uint64
	powerOn    bool
	diagOn     bool
	logOn      bool
	switchesOn bool
	released   bool
}

func newBinding(index int, node roster.NodeSpec) *binding {
	return &binding{
		index: index,
		node:  node,
		state: nodestatus.StateLatent,
		color: nodestatus.ColorNeutral,
	}
}

// Board holds one binding per roster entry, addressed by roster position. It
// also tracks the generation the bindings were built for, so that responses
// issued against an older roster are never applied.
type Board struct {
	mut            sync.RWMutex
	gen            generation.Gen
	roster         roster.Roster
	bindings       []*binding
	actions        Actions
	clusterRunning bool
	backups        bool
	logger         kitlog.Logger
}

func NewBoard(actions Actions, opts ...Option) *Board {
	b := &Board{
		actions: actions,
		logger:  kitlog.NewNopLogger(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Rebuild releases every binding of the current roster and binds a fresh
// view to each entry of the new one. All controls start disabled until the
// first status response arrives.
func (b *Board) Rebuild(gen generation.Gen, r roster.Roster) error {
	b.mut.Lock()
	defer b.mut.Unlock()

	if gen <= b.gen {
		return fmt.Errorf("%w: %d <= %d", ErrStaleGeneration, gen, b.gen)
	}

	released := len(b.bindings)
	for _, bd := range b.bindings {
		bd.released = true
	}

	bindings := make([]*binding, r.Len())
	for i, node := range r.Nodes() {
		bindings[i] = newBinding(i, node)
	}

	if localHost(b.roster) != localHost(r) {
		b.clusterRunning = false
	}

	b.gen = gen
	b.roster = r
	b.bindings = bindings

	level.Debug(b.logger).Log(
		"msg", "view rebuilt",
		"generation", gen,
		"released", released,
		"bound", len(bindings),
	)

	return nil
}

// Generation returns the generation of the current bindings.
func (b *Board) Generation() generation.Gen {
	b.mut.RLock()
	defer b.mut.RUnlock()

	return b.gen
}

// Roster returns the roster the current bindings were built from.
func (b *Board) Roster() roster.Roster {
	b.mut.RLock()
	defer b.mut.RUnlock()

	return b.roster
}

// Len returns the number of bindings.
func (b *Board) Len() int {
	b.mut.RLock()
	defer b.mut.RUnlock()

	return len(b.bindings)
}

// accept checks the ticket against the current generation and the last
// applied sequence of the node. Must be called with the write lock held.
func (b *Board) accept(t generation.Ticket) (*binding, generation.Verdict) {
	if t.Gen != b.gen || t.Index < 0 || t.Index >= len(b.bindings) {
		return nil, generation.Stale
	}

	bd := b.bindings[t.Index]
	if t.Seq <= bd.appliedSeq {
		return nil, generation.Superseded
	}

	bd.appliedSeq = t.Seq

	return bd, generation.Applied
}

// ApplyStatus updates the node view with a successful status report.
func (b *Board) ApplyStatus(t generation.Ticket, r nodestatus.Report) generation.Verdict {
	b.mut.Lock()
	defer b.mut.Unlock()

	bd, verdict := b.accept(t)
	if verdict != generation.Applied {
		return verdict
	}

	running := r.State.IsRunning()
	if bd.node.Local {
		b.clusterRunning = running
	}

	bd.reported = true
	bd.failed = false
	bd.state = r.State
	bd.message = r.Description
	bd.color = r.State.Color()
	bd.switches = r.Switches
	bd.powerOn = true
	bd.diagOn = running
	bd.logOn = !bd.node.Local
	bd.switchesOn = true

	return verdict
}

// ApplyFailure puts the node view into the error state. Views of other
// nodes are not touched.
func (b *Board) ApplyFailure(t generation.Ticket, err error) generation.Verdict {
	b.mut.Lock()
	defer b.mut.Unlock()

	bd, verdict := b.accept(t)
	if verdict != generation.Applied {
		return verdict
	}

	bd.failed = true
	bd.message = failureMessage(err)
	bd.color = nodestatus.ColorError
	bd.powerOn = false
	bd.diagOn = false
	bd.logOn = false
	bd.switchesOn = false

	return verdict
}

// Control returns the control handles of the node at the given index. The
// handles become inert once the board is rebuilt.
func (b *Board) Control(index int) (*Controls, error) {
	b.mut.RLock()
	defer b.mut.RUnlock()

	if index < 0 || index >= len(b.bindings) {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchNode, index)
	}

	return &Controls{board: b, b: b.bindings[index]}, nil
}

// ClusterRunning reports whether the local node was running according to its
// last applied status report.
func (b *Board) ClusterRunning() bool {
	b.mut.RLock()
	defer b.mut.RUnlock()

	return b.clusterRunning
}

func localHost(r roster.Roster) string {
	if _, node, ok := r.Local(); ok {
		return node.Host
	}

	return ""
}

// powerAction is the action currently bound to the power control of bd. It
// depends on the cluster state, so it is derived on every read instead of
// when the report of bd is applied. Must be called with the lock held.
func (b *Board) powerAction(bd *binding) PowerAction {
	if !bd.reported {
		return PowerNone
	}

	return powerActionFor(bd.switches, b.clusterRunning)
}

type userMessager interface {
	UserMessage() string
}

func failureMessage(err error) string {
	if err == nil {
		return ""
	}

	var um userMessager
	if errors.As(err, &um) {
		return um.UserMessage()
	}

	return err.Error()
}
