package poller

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"

	"github.com/maxpoletaev/kivimon/generation"
	"github.com/maxpoletaev/kivimon/internal/multierror"
	"github.com/maxpoletaev/kivimon/metrics"
	"github.com/maxpoletaev/kivimon/roster"
)

const (
	defaultLoopback = "localhost"
	defaultTimeout  = 10 * time.Second
	defaultLimit    = 16
)

// Poller requests the status of every roster entry and hands the outcome
// to the sink. Responses are matched against the ticket taken when the
// request was issued, so results of an outdated roster never reach the view.
type Poller struct {
	client   StatusClient
	sink     Sink
	seq      generation.Sequencer
	logger   kitlog.Logger
	loopback string
	timeout  time.Duration
	limit    int
}

func New(client StatusClient, sink Sink, opts ...Option) *Poller {
	p := &Poller{
		client:   client,
		sink:     sink,
		logger:   kitlog.NewNopLogger(),
		loopback: defaultLoopback,
		timeout:  defaultTimeout,
		limit:    defaultLimit,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Stats counts the outcomes of a round.
type Stats struct {
	Applied    int
	Failed     int
	Stale      int
	Superseded int
}

// Round tracks the requests issued by a single RefreshAll call.
type Round struct {
	gen        generation.Gen
	done       chan struct{}
	errs       *multierror.Error[string]
	applied    atomic.Int64
	failed     atomic.Int64
	stale      atomic.Int64
	superseded atomic.Int64
}

// Generation returns the generation the requests were issued for.
func (r *Round) Generation() generation.Gen {
	return r.gen
}

// Done is closed once every request of the round has completed.
func (r *Round) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the round completes. The returned error combines the
// failures that were applied to the view, keyed by host.
func (r *Round) Wait() error {
	<-r.done
	return r.errs.Combined()
}

func (r *Round) Stats() Stats {
	return Stats{
		Applied:    int(r.applied.Load()),
		Failed:     int(r.failed.Load()),
		Stale:      int(r.stale.Load()),
		Superseded: int(r.superseded.Load()),
	}
}

func (r *Round) count(v generation.Verdict, failed bool) {
	switch v {
	case generation.Applied:
		if failed {
			r.failed.Add(1)
		} else {
			r.applied.Add(1)
		}
	case generation.Stale:
		r.stale.Add(1)
	case generation.Superseded:
		r.superseded.Add(1)
	}
}

type request struct {
	ticket generation.Ticket
	node   roster.NodeSpec
	addr   string
}

// RefreshAll issues one status request per roster entry and returns
// immediately. Tickets are taken before RefreshAll returns, so a rebuild
// that follows can never be mistaken for the one the requests belong to.
func (p *Poller) RefreshAll(ctx context.Context, r roster.Roster, gen generation.Gen) *Round {
	round := &Round{
		gen:  gen,
		done: make(chan struct{}),
		errs: multierror.New[string](),
	}

	nodes := r.Nodes()
	requests := make([]request, len(nodes))

	for i, node := range nodes {
		addr := node.Host
		if node.Local {
			addr = p.loopback
		}

		requests[i] = request{
			ticket: generation.Ticket{Gen: gen, Index: i, Seq: p.seq.Next()},
			node:   node,
			addr:   addr,
		}
	}

	level.Debug(p.logger).Log(
		"msg", "status round started",
		"generation", gen,
		"nodes", len(requests),
	)

	go func() {
		defer close(round.done)

		var g errgroup.Group
		if p.limit > 0 {
			g.SetLimit(p.limit)
		}

		for _, req := range requests {
			g.Go(func() error {
				p.poll(ctx, round, req)
				return nil
			})
		}

		_ = g.Wait()
	}()

	return round
}

func (p *Poller) poll(ctx context.Context, round *Round, req request) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	report, err := p.client.GetState(ctx, req.addr)
	metrics.PollDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		verdict := p.sink.ApplyFailure(req.ticket, err)
		round.count(verdict, true)
		p.observe(verdict, true)

		if verdict == generation.Applied {
			round.errs.Add(req.node.Host, fmt.Errorf("status of %s: %w", req.addr, err))

			level.Warn(p.logger).Log(
				"msg", "status request failed",
				"host", req.node.Host,
				"ticket", req.ticket,
				"err", err,
			)
		}

		return
	}

	verdict := p.sink.ApplyStatus(req.ticket, report)
	round.count(verdict, false)
	p.observe(verdict, false)

	if verdict != generation.Applied {
		level.Debug(p.logger).Log(
			"msg", "status response discarded",
			"host", req.node.Host,
			"ticket", req.ticket,
			"verdict", verdict,
		)
	}
}

func (p *Poller) observe(v generation.Verdict, failed bool) {
	result := v.String()
	if v == generation.Applied && failed {
		result = "failed"
	}

	metrics.PollsTotal.WithLabelValues(result).Inc()
}
