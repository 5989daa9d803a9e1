// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// DefaultCacheCeiling is the cache ceiling of gates created with NewGate.
//
const DefaultCacheCeiling = MaxCacheInputs

// A Gate computes a logic function of its inputs.
//
// Input values are stored with the port inversion applied. The output is
// updated on every input change and memoized per input combination.
//
type Gate struct {
	name     string
	kind     Kind
	inverted bool
	inputs   ports
	output   State
	cache    *Cache
	evals    uint64
	buf      []State
	owned    bool // added to a Circuit
}

// NewGate returns a gate of the given kind with no inputs. If inverted is
// true, the gate output is inverted (NAND, NOR, XNOR).
//
// NewGate panics if kind is not a valid Kind.
//
func NewGate(kind Kind, inverted bool) *Gate {
	return newGate(kind, inverted, DefaultCacheCeiling)
}

func newGate(kind Kind, inverted bool, ceiling int) *Gate {
	if !kind.Valid() {
		panic("logicsim: invalid gate kind " + kind.String())
	}
	return &Gate{
		kind:     kind,
		inverted: inverted,
		inputs:   ports{owner: nextOwner()},
		output:   Invalid,
		cache:    NewCache(ceiling),
	}
}

// Name returns the gate name. Gates created by NewGate have no name.
//
func (g *Gate) Name() string { return g.name }

// Kind returns the gate kind.
//
func (g *Gate) Kind() Kind { return g.kind }

// Inverted returns true if the gate output is inverted.
//
func (g *Gate) Inverted() bool { return g.inverted }

// NumInputs returns the number of input ports.
//
func (g *Gate) NumInputs() int { return g.inputs.count }

// AddInput adds an input port. Its initial value is Low.
//
// Gates that belong to a Circuit must be reshaped through the Circuit: for
// these, AddInput returns the zero PortHandle, which is never valid.
//
func (g *Gate) AddInput() PortHandle {
	if g.owned {
		return PortHandle{}
	}
	return g.addInput(false)
}

// AddInvertedInput adds an input port that inverts incoming values. Its
// initial value is Low. Like AddInput, it returns the zero PortHandle for
// gates that belong to a Circuit.
//
func (g *Gate) AddInvertedInput() PortHandle {
	if g.owned {
		return PortHandle{}
	}
	return g.addInput(true)
}

func (g *Gate) addInput(inverted bool) PortHandle {
	h := g.inputs.insert(Port{value: Low, inverted: inverted})
	g.register()
	return h
}

// RemoveInput removes an input port. Unknown or stale handles are ignored.
// It returns true if a port was removed. It never removes ports from a gate
// that belongs to a Circuit; use Circuit.RemoveInput instead.
//
func (g *Gate) RemoveInput(h PortHandle) bool {
	if g.owned {
		return false
	}
	return g.removeInput(h)
}

func (g *Gate) removeInput(h PortHandle) bool {
	if g.inputs.count == 0 || !g.inputs.remove(h) {
		return false
	}
	g.register()
	return true
}

// register assigns cache slots to inputs in insertion order and reloads the
// cache key.
func (g *Gate) register() {
	g.cache.Register(g.inputs.count)
	slot := 0
	g.inputs.each(func(_ PortHandle, p *Port) {
		p.slot = slot
		g.cache.Record(slot, p.value)
		slot++
	})
}

// Port returns the input port for handle h. The pointer is only valid until
// the next input is added.
//
func (g *Gate) Port(h PortHandle) (*Port, error) {
	p := g.inputs.get(h)
	if p == nil {
		return nil, usageError("port "+h.String(), ErrBadHandle)
	}
	return p, nil
}

// Input returns the value of an input port.
//
func (g *Gate) Input(h PortHandle) (State, error) {
	p, err := g.Port(h)
	if err != nil {
		return Invalid, err
	}
	return p.value, nil
}

// Inputs returns the handles of all input ports in slot order, which is the
// order they were added in.
//
func (g *Gate) Inputs() []PortHandle {
	hs := make([]PortHandle, 0, g.inputs.count)
	g.inputs.each(func(h PortHandle, _ *Port) {
		hs = append(hs, h)
	})
	return hs
}

// SetInput sets the value of an input port and evaluates the gate. It
// returns true if the gate output changed. Inputs of a gate that belongs to
// a Circuit are set through Circuit.SetInput or a wire; calling SetInput on
// such a gate returns ErrCircuitGate.
//
func (g *Gate) SetInput(h PortHandle, v State) (bool, error) {
	if g.owned {
		return false, usageError("set input "+g.name+"."+h.String(), ErrCircuitGate)
	}
	return g.setInput(h, v)
}

func (g *Gate) setInput(h PortHandle, v State) (bool, error) {
	p := g.inputs.get(h)
	if p == nil {
		return false, usageError("set input "+h.String(), ErrBadHandle)
	}
	p.set(v)
	g.cache.Record(p.slot, p.value)
	prev := g.output
	return g.Evaluate() != prev, nil
}

// Evaluate computes the gate output from its current inputs, using the cache
// when possible, and returns it.
//
func (g *Gate) Evaluate() State {
	out, ok := g.cache.Lookup()
	if !ok {
		g.buf = g.buf[:0]
		g.inputs.each(func(_ PortHandle, p *Port) {
			g.buf = append(g.buf, p.value)
		})
		out = g.kind.eval(g.buf)
		g.evals++
		g.cache.Store(out)
	}
	if g.inverted {
		out = out.Not()
	}
	g.output = out
	return out
}

// Output returns the output computed by the last evaluation.
//
func (g *Gate) Output() State { return g.output }

// Evaluations returns how many times the gate function has been computed,
// cache hits excluded.
//
func (g *Gate) Evaluations() uint64 { return g.evals }

// CacheStats returns a snapshot of the gate's cache.
//
func (g *Gate) CacheStats() CacheStats { return g.cache.Stats() }

func (g *Gate) String() string {
	var s string
	if g.inverted {
		s = "N"
	}
	s += g.kind.String()
	if g.name != "" {
		s = g.name + "(" + s + ")"
	}
	return s
}
