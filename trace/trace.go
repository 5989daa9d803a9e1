// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package trace records the activity of logicsim circuits.
//
// A Recorder is a logicsim.Hook. Once added to a circuit, it records drains,
// wire propagations, gate output changes and gate cache state changes:
//
//	c := logicsim.New()
//	rec := trace.NewRecorder(nil)
//	c.AcceptHook(rec)
//	// build and drain c
//	rec.WriteText(os.Stdout)
//
package trace

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
)

// Kind is the kind of a recorded event.
//
type Kind string

// Event kinds.
//
const (
	DrainStart    Kind = "drain"
	DrainEnd      Kind = "end"
	Wire          Kind = "wire"
	GateOutput    Kind = "gate"
	CacheDegraded Kind = "cache-off"
	CacheRestored Kind = "cache-on"
)

var kinds = map[*logicsim.HookPos]Kind{
	logicsim.HookPosDrainStart:    DrainStart,
	logicsim.HookPosDrainEnd:      DrainEnd,
	logicsim.HookPosWire:          Wire,
	logicsim.HookPosGateOutput:    GateOutput,
	logicsim.HookPosCacheDegraded: CacheDegraded,
	logicsim.HookPosCacheRestored: CacheRestored,
}

// An Event is a recorded hook invocation.
//
type Event struct {
	Kind Kind
	// ID of the drain the event belongs to. Empty for events raised while
	// building the circuit.
	Drain string
	// Wire or gate name. Empty for drain events.
	Name string
	// Wire or gate value.
	Value logicsim.State
	// Set for DrainStart and DrainEnd events.
	Result logicsim.DrainResult
	// Set for cache events.
	Cache logicsim.CacheStats
}

// A Filter decides if an event should be recorded.
//
type Filter func(e Event) bool

// Recorder records circuit events.
//
type Recorder struct {
	filter Filter
	drain  string
	events []Event
	counts map[string]uint64
}

// NewRecorder returns a new recorder. If filter is nil, all events are
// recorded.
//
func NewRecorder(filter Filter) *Recorder {
	if filter == nil {
		filter = func(Event) bool { return true }
	}
	return &Recorder{filter: filter, counts: make(map[string]uint64)}
}

// Func implements logicsim.Hook.
//
func (r *Recorder) Func(ctx logicsim.HookCtx) {
	k, ok := kinds[ctx.Pos]
	if !ok {
		return
	}
	c, _ := ctx.Domain.(*logicsim.Circuit)
	e := Event{Kind: k, Drain: r.drain}
	switch k {
	case DrainStart:
		e.Result = ctx.Item.(logicsim.DrainResult)
		e.Drain = e.Result.ID
		r.drain = e.Drain
	case DrainEnd:
		e.Result = ctx.Item.(logicsim.DrainResult)
		r.drain = ""
	case Wire:
		e.Name = wireName(c, ctx.Item.(logicsim.WireID))
		e.Value = ctx.Detail.(logicsim.State)
		r.counts[e.Name]++
	case GateOutput:
		e.Name = gateName(c, ctx.Item.(logicsim.GateID))
		e.Value = ctx.Detail.(logicsim.State)
	case CacheDegraded, CacheRestored:
		e.Name = gateName(c, ctx.Item.(logicsim.GateID))
		e.Cache = ctx.Detail.(logicsim.CacheStats)
	}
	if r.filter(e) {
		r.events = append(r.events, e)
	}
}

func wireName(c *logicsim.Circuit, id logicsim.WireID) string {
	if c != nil {
		if w, err := c.Wire(id); err == nil {
			return w.Name()
		}
	}
	return "w" + strconv.Itoa(int(id))
}

func gateName(c *logicsim.Circuit, id logicsim.GateID) string {
	if c != nil {
		if g, err := c.Gate(id); err == nil {
			return g.Name()
		}
	}
	return "g" + strconv.Itoa(int(id))
}

// Events returns the recorded events.
//
func (r *Recorder) Events() []Event { return r.events }

// WireCount returns how many times a wire has been propagated, including
// filtered out events.
//
func (r *Recorder) WireCount(name string) uint64 { return r.counts[name] }

// A WireStat is the propagation count of a wire.
//
type WireStat struct {
	Name  string
	Count uint64
}

// Busiest returns the n most propagated wires, most propagated first. Ties
// are sorted by name.
//
func (r *Recorder) Busiest(n int) []WireStat {
	ws := make([]WireStat, 0, len(r.counts))
	for k, v := range r.counts {
		ws = append(ws, WireStat{k, v})
	}
	sort.Slice(ws, func(i, j int) bool {
		if ws[i].Count != ws[j].Count {
			return ws[i].Count > ws[j].Count
		}
		return ws[i].Name < ws[j].Name
	})
	if n >= 0 && n < len(ws) {
		ws = ws[:n]
	}
	return ws
}

// Reset clears all recorded events and counters.
//
func (r *Recorder) Reset() {
	r.events = r.events[:0]
	r.drain = ""
	r.counts = make(map[string]uint64)
}

// WriteText writes the recorded events to w, one per line. Drains are
// numbered in order instead of being identified by their ID so that the
// output of identical runs is identical.
//
func (r *Recorder) WriteText(w io.Writer) error {
	var b strings.Builder
	n := 0
	for _, e := range r.events {
		switch e.Kind {
		case DrainStart:
			n++
			fmt.Fprintf(&b, "drain %d max_steps=%d\n", n, e.Result.MaxSteps)
		case DrainEnd:
			res := e.Result
			if res.Settled {
				fmt.Fprintf(&b, "settled steps=%d rounds=%d\n", res.Steps, res.Rounds)
			} else {
				fmt.Fprintf(&b, "unstable steps=%d rounds=%d pending=%d\n", res.Steps, res.Rounds, res.Pending)
			}
		case Wire:
			fmt.Fprintf(&b, "  wire %s = %v\n", e.Name, e.Value)
		case GateOutput:
			fmt.Fprintf(&b, "  gate %s -> %v\n", e.Name, e.Value)
		case CacheDegraded, CacheRestored:
			fmt.Fprintf(&b, "%s %s inputs=%d ceiling=%d\n", e.Kind, e.Name, e.Cache.Inputs, e.Cache.Ceiling)
		}
	}
	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "write trace")
}
