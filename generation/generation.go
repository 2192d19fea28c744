package generation

import (
	"fmt"
	"sync/atomic"
)

// Gen identifies a roster rebuild. Zero means no roster has been built yet.
type Gen uint64

// Counter hands out strictly increasing generations. Next is expected to be
// called by a single writer, Current may be read from any goroutine.
type Counter struct {
	value atomic.Uint64
}

// Next increments the counter by one and returns the new generation.
func (c *Counter) Next() Gen {
	return Gen(c.value.Add(1))
}

// Current returns the latest generation handed out by Next.
func (c *Counter) Current() Gen {
	return Gen(c.value.Load())
}

// Sequencer hands out strictly increasing request sequence numbers.
type Sequencer struct {
	value atomic.Uint64
}

func (s *Sequencer) Next() uint64 {
	return s.value.Add(1)
}

// Ticket is captured when a status request is issued and checked when its
// response arrives.
type Ticket struct {
	Gen   Gen
	Index int
	Seq   uint64
}

func (t Ticket) String() string {
	return fmt.Sprintf("gen=%d index=%d seq=%d", t.Gen, t.Index, t.Seq)
}

// Verdict is the outcome of presenting a ticket to the view.
type Verdict uint8

const (
	// Applied means the response was written to the view.
	Applied Verdict = iota + 1

	// Stale means a rebuild happened after the request was issued.
	Stale

	// Superseded means a newer response for the same node was already applied.
	Superseded
)

func (v Verdict) String() string {
	switch v {
	case Applied:
		return "applied"
	case Stale:
		return "stale"
	case Superseded:
		return "superseded"
	default:
		return ""
	}
}
