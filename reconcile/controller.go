package reconcile

import (
	"context"
	"fmt"
	"sync"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/maxpoletaev/kivimon/generation"
	"github.com/maxpoletaev/kivimon/metrics"
	"github.com/maxpoletaev/kivimon/poller"
	"github.com/maxpoletaev/kivimon/roster"
)

const defaultInterval = 5 * time.Second

// Controller runs refresh cycles: it reads the cluster configuration,
// rebuilds the board when the roster inputs changed and polls every node.
// Cycles are serialized, responses of a cycle may still be in flight when
// the next one starts.
type Controller struct {
	mut      sync.Mutex
	source   Source
	board    Board
	poller   Poller
	detector roster.Detector
	counter  generation.Counter
	logger   kitlog.Logger
	interval time.Duration
}

func New(source Source, board Board, poller Poller, opts ...Option) *Controller {
	c := &Controller{
		source:   source,
		board:    board,
		poller:   poller,
		logger:   kitlog.NewNopLogger(),
		interval: defaultInterval,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Generation returns the generation of the last rebuild, zero before the first one.
func (c *Controller) Generation() generation.Gen {
	return c.counter.Current()
}

func (c *Controller) Board() Board {
	return c.board
}

// Refresh runs a single cycle. A load error aborts the cycle. A parse or
// rebuild error leaves the board on its last good roster, which is still
// polled once a generation exists. The returned round can be awaited to
// observe the poll results.
func (c *Controller) Refresh(ctx context.Context) (*poller.Round, error) {
	c.mut.Lock()
	defer c.mut.Unlock()

	cluster, err := c.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	inputs := roster.Inputs{
		Spec: cluster.ServersSpec,
		Host: cluster.Hostname,
	}

	if c.detector.NeedsRebuild(inputs) {
		if err := c.rebuild(inputs); err != nil {
			if c.counter.Current() == 0 {
				return nil, err
			}

			return c.poller.RefreshAll(ctx, c.board.Roster(), c.counter.Current()), err
		}
	}

	return c.poller.RefreshAll(ctx, c.board.Roster(), c.counter.Current()), nil
}

func (c *Controller) rebuild(inputs roster.Inputs) error {
	r, err := roster.Parse(inputs.Spec, inputs.Host)
	if err != nil {
		return fmt.Errorf("failed to parse servers spec: %w", err)
	}

	gen := c.counter.Next()

	if err := c.board.Rebuild(gen, r); err != nil {
		return fmt.Errorf("failed to rebuild board: %w", err)
	}

	c.detector.Commit(inputs)

	metrics.RebuildsTotal.Inc()
	metrics.Generation.Set(float64(gen))

	if _, local, ok := r.Local(); ok && !local.Assigned() {
		level.Warn(c.logger).Log(
			"msg", "local host is not in the servers spec",
			"hostname", inputs.Host,
		)
	}

	level.Info(c.logger).Log(
		"msg", "roster rebuilt",
		"generation", gen,
		"nodes", r.Len(),
		"hostname", inputs.Host,
	)

	return nil
}

// RunLoop runs a cycle immediately and then on every tick until ctx is
// cancelled. Rounds are not awaited.
func (c *Controller) RunLoop(ctx context.Context) {
	level.Info(c.logger).Log(
		"msg", "refresh loop started",
		"interval", c.interval,
	)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		if _, err := c.Refresh(ctx); err != nil {
			level.Error(c.logger).Log(
				"msg", "refresh failed",
				"err", err,
			)
		}

		select {
		case <-ticker.C:
			// noop
		case <-ctx.Done():
			return
		}
	}
}
