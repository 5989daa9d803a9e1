// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

// Scheduler holds the set of wires waiting to be propagated. Wires are
// processed in rounds: a round covers the wires pending when it starts, each
// at most once, and wires changed during a round are queued for the next one
// unless they are still pending in the current round.
//
type Scheduler struct {
	next  []WireID
	spare []WireID
	dirty []bool
}

func (s *Scheduler) grow(n int) {
	for len(s.dirty) < n {
		s.dirty = append(s.dirty, false)
	}
}

// mark queues w unless it is already pending.
func (s *Scheduler) mark(w WireID) bool {
	if s.dirty[w] {
		return false
	}
	s.dirty[w] = true
	s.next = append(s.next, w)
	return true
}

// Pending returns the number of wires waiting to be propagated.
//
func (s *Scheduler) Pending() int { return len(s.next) }

// DrainResult reports the outcome of a drain.
//
type DrainResult struct {
	ID       string // unique drain ID, for logs and traces
	Settled  bool   // false if the step limit was hit
	Steps    int    // wires processed
	Rounds   int
	Pending  int // wires left pending when the step limit was hit
	MaxSteps int
}

// Pending returns the number of wires waiting for the next drain.
//
func (c *Circuit) Pending() int { return c.sched.Pending() }

// MaxSteps returns the step limit of a drain for the current circuit size.
//
func (c *Circuit) MaxSteps() int {
	if c.maxSteps > 0 {
		return c.maxSteps
	}
	n := len(c.wires)
	if n < 1 {
		n = 1
	}
	return c.stepFactor * n
}

// Drain propagates pending wires until no more changes occur or the step limit
// is reached.
//
// Every pending wire pushes its value into each of its targets, one input at a
// time. Gates whose output changed update their output wire, which is then
// queued.
//
// If the step limit is reached, the drain stops, unprocessed wires stay
// pending and the result has Settled set to false. This happens with
// oscillating feedback loops. Calling Drain again resumes propagation.
//
func (c *Circuit) Drain() DrainResult {
	s := &c.sched
	r := DrainResult{ID: xid.New().String(), Settled: true, MaxSteps: c.MaxSteps()}
	c.InvokeHook(HookCtx{Domain: c, Pos: HookPosDrainStart, Item: r})
	c.log.Debug("drain start", "id", r.ID, "pending", len(s.next), "max_steps", r.MaxSteps)

	for len(s.next) > 0 {
		if r.Steps >= r.MaxSteps {
			r.Settled = false
			break
		}
		cur := s.next
		s.next = s.spare[:0]
		r.Rounds++
		for i, w := range cur {
			if r.Steps >= r.MaxSteps {
				// keep unprocessed wires first so that a later drain
				// resumes in order.
				rest := append(append([]WireID(nil), cur[i:]...), s.next...)
				s.next = rest
				r.Settled = false
				break
			}
			r.Steps++
			c.propagate(w)
		}
		s.spare = cur[:0]
		if !r.Settled {
			break
		}
	}
	r.Pending = len(s.next)

	if r.Settled {
		c.log.Debug("drain settled", "id", r.ID, "steps", r.Steps, "rounds", r.Rounds)
	} else {
		c.log.Warn("circuit did not settle", "id", r.ID, "steps", r.Steps, "rounds", r.Rounds, "pending", r.Pending)
	}
	c.InvokeHook(HookCtx{Domain: c, Pos: HookPosDrainEnd, Item: r})
	return r
}

// Settle is like Drain but returns an *UnstableError if the circuit did not
// settle.
//
func (c *Circuit) Settle() (DrainResult, error) {
	r := c.Drain()
	if !r.Settled {
		return r, errors.WithStack(&UnstableError{Result: r})
	}
	return r, nil
}

// propagate pushes the value of w into all its targets.
func (c *Circuit) propagate(w WireID) {
	c.sched.dirty[w] = false
	wire := c.wires[w]
	c.InvokeHook(HookCtx{Domain: c, Pos: HookPosWire, Item: w, Detail: wire.value})
	for _, t := range wire.targets {
		changed, err := c.gates[t.Gate].setInput(t.Port, wire.value)
		if err != nil {
			// targets are checked by AddTarget and detached by RemoveInput.
			c.log.Error("bad wire target", "wire", wire.name, "gate", c.gates[t.Gate].name, "err", err)
			continue
		}
		if changed {
			c.outputChanged(t.Gate)
		}
	}
}
