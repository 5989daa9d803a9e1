// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"log/slog"
	"strconv"
	"strings"
)

// GateSpec describes a gate to add to a circuit.
//
type GateSpec struct {
	// Gate name, for lookups and logs. Defaults to the lowercase kind name
	// followed by the gate ID, like "and3".
	Name string
	// Logic function.
	Kind Kind
	// Invert the gate output.
	Invert bool
	// Number of (non inverted) inputs to create. Negative values count as 0.
	Inputs int
}

// Circuit owns a set of gates and the wires connecting them, and propagates
// value changes between them.
//
// A Circuit is not safe for concurrent use. Independent circuits can be used
// from different goroutines.
//
type Circuit struct {
	HookableBase

	gates   []*Gate
	outs    []WireID // output wire of each gate, -1 if none
	wires   []*Wire
	drivers map[Target]WireID
	gnames  map[string]GateID
	wnames  map[string]WireID
	sched   Scheduler

	stepFactor int
	maxSteps   int
	ceiling    int
	log        *slog.Logger
}

// New returns an empty circuit.
//
func New(opts ...Option) *Circuit {
	c := &Circuit{
		drivers:    make(map[Target]WireID),
		gnames:     make(map[string]GateID),
		wnames:     make(map[string]WireID),
		stepFactor: DefaultStepFactor,
		ceiling:    DefaultCacheCeiling,
		log:        slog.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// NumGates returns the gate count.
//
func (c *Circuit) NumGates() int { return len(c.gates) }

// NumWires returns the wire count.
//
func (c *Circuit) NumWires() int { return len(c.wires) }

// AddGate adds a gate and returns its ID together with the handles of its
// inputs. The new gate is evaluated right away.
//
// AddGate panics if spec.Kind is not valid.
//
func (c *Circuit) AddGate(spec GateSpec) (GateID, []PortHandle) {
	g := newGate(spec.Kind, spec.Invert, c.ceiling)
	id := GateID(len(c.gates))
	g.name = spec.Name
	if g.name == "" {
		g.name = strings.ToLower(spec.Kind.String()) + strconv.Itoa(int(id))
	}
	hs := make([]PortHandle, max(spec.Inputs, 0))
	for i := range hs {
		hs[i] = g.addInput(false)
	}
	g.owned = true
	g.Evaluate()
	c.gates = append(c.gates, g)
	c.outs = append(c.outs, -1)
	if _, ok := c.gnames[g.name]; !ok {
		c.gnames[g.name] = id
	}
	if !g.cache.Valid() {
		c.cacheChanged(id, g)
	}
	return id, hs
}

// Gate returns the gate with the given ID. The returned gate is a read-only
// view: its mutators reject changes so that wiring stays consistent.
//
func (c *Circuit) Gate(id GateID) (*Gate, error) {
	if id < 0 || int(id) >= len(c.gates) {
		return nil, usageError("gate "+strconv.Itoa(int(id)), ErrUnknownGate)
	}
	return c.gates[id], nil
}

// GateByName returns the first gate added with the given name.
//
func (c *Circuit) GateByName(name string) (GateID, bool) {
	id, ok := c.gnames[name]
	return id, ok
}

// AddWire adds a wire. An empty name defaults to "w" followed by the wire ID.
//
func (c *Circuit) AddWire(name string) WireID {
	id := WireID(len(c.wires))
	if name == "" {
		name = "w" + strconv.Itoa(int(id))
	}
	c.wires = append(c.wires, newWire(name))
	c.sched.grow(len(c.wires))
	if _, ok := c.wnames[name]; !ok {
		c.wnames[name] = id
	}
	return id
}

// Wire returns the wire with the given ID.
//
func (c *Circuit) Wire(id WireID) (*Wire, error) {
	if id < 0 || int(id) >= len(c.wires) {
		return nil, usageError("wire "+strconv.Itoa(int(id)), ErrUnknownWire)
	}
	return c.wires[id], nil
}

// WireByName returns the first wire added with the given name.
//
func (c *Circuit) WireByName(name string) (WireID, bool) {
	id, ok := c.wnames[name]
	return id, ok
}

// OutputWire returns the wire driven by gate g, if any.
//
func (c *Circuit) OutputWire(g GateID) (WireID, bool) {
	if g < 0 || int(g) >= len(c.outs) || c.outs[g] < 0 {
		return -1, false
	}
	return c.outs[g], true
}

// Connect makes the output of gate g the source of wire w. The wire takes the
// current gate output and is scheduled for propagation.
//
// A gate drives at most one wire and a wire has at most one source.
//
func (c *Circuit) Connect(g GateID, w WireID) error {
	gate, err := c.Gate(g)
	if err != nil {
		return err
	}
	wire, err := c.Wire(w)
	if err != nil {
		return err
	}
	if c.outs[g] >= 0 {
		return usageError("connect "+gate.name+" to "+wire.name+": gate output already connected to "+c.wires[c.outs[g]].name, ErrMultipleDrivers)
	}
	if wire.hasDriver() {
		return usageError("connect "+gate.name+" to "+wire.name, ErrMultipleDrivers)
	}
	c.outs[g] = w
	wire.source = g
	wire.value = gate.output
	c.sched.mark(w)
	return nil
}

// AddTarget adds input h of gate g to the fan-out of wire w. The wire is
// scheduled for propagation so that the input picks up its value on the next
// drain.
//
func (c *Circuit) AddTarget(w WireID, g GateID, h PortHandle) error {
	wire, err := c.Wire(w)
	if err != nil {
		return err
	}
	gate, err := c.Gate(g)
	if err != nil {
		return err
	}
	if _, err = gate.Port(h); err != nil {
		return err
	}
	t := Target{Gate: g, Port: h}
	if d, ok := c.drivers[t]; ok {
		return usageError("target "+gate.name+"."+h.String()+" from "+wire.name+": already fed by "+c.wires[d].name, ErrMultipleDrivers)
	}
	wire.targets = append(wire.targets, t)
	c.drivers[t] = w
	c.sched.mark(w)
	return nil
}

// Drive sets the value of a wire that has no source gate and schedules it for
// propagation.
//
func (c *Circuit) Drive(w WireID, v State) error {
	wire, err := c.Wire(w)
	if err != nil {
		return err
	}
	if wire.source != NoGate {
		return usageError("drive "+wire.name, ErrDrivenWire)
	}
	wire.driven = true
	wire.value = v
	c.sched.mark(w)
	return nil
}

// Touch schedules wire w for propagation without changing its value.
//
func (c *Circuit) Touch(w WireID) error {
	wire, err := c.Wire(w)
	if err != nil {
		return err
	}
	if !wire.hasDriver() {
		return usageError("touch "+wire.name, ErrNoSource)
	}
	c.sched.mark(w)
	return nil
}

// SetInput sets a primary input of gate g, i.e. an input not fed by any wire.
// If the gate output changes, its output wire is scheduled for propagation.
//
func (c *Circuit) SetInput(g GateID, h PortHandle, v State) error {
	gate, err := c.Gate(g)
	if err != nil {
		return err
	}
	if w, ok := c.drivers[Target{g, h}]; ok {
		return usageError("set input "+gate.name+"."+h.String()+": fed by "+c.wires[w].name, ErrMultipleDrivers)
	}
	changed, err := gate.setInput(h, v)
	if err != nil {
		return err
	}
	if changed {
		c.outputChanged(g)
	}
	return nil
}

// AddInput adds an input to gate g.
//
func (c *Circuit) AddInput(g GateID) (PortHandle, error) {
	return c.addInput(g, false)
}

// AddInvertedInput adds an inverting input to gate g.
//
func (c *Circuit) AddInvertedInput(g GateID) (PortHandle, error) {
	return c.addInput(g, true)
}

func (c *Circuit) addInput(g GateID, inverted bool) (PortHandle, error) {
	gate, err := c.Gate(g)
	if err != nil {
		return PortHandle{}, err
	}
	valid := gate.cache.Valid()
	h := gate.addInput(inverted)
	c.reshaped(g, gate, valid)
	return h, nil
}

// RemoveInput removes input h from gate g and detaches it from the wire
// feeding it, if any. Removing an unknown or already removed input is a no-op.
//
func (c *Circuit) RemoveInput(g GateID, h PortHandle) error {
	gate, err := c.Gate(g)
	if err != nil {
		return err
	}
	valid := gate.cache.Valid()
	if !gate.removeInput(h) {
		return nil
	}
	t := Target{g, h}
	if w, ok := c.drivers[t]; ok {
		c.wires[w].removeTarget(t)
		delete(c.drivers, t)
	}
	c.reshaped(g, gate, valid)
	return nil
}

// reshaped re-evaluates a gate after its port set changed.
func (c *Circuit) reshaped(g GateID, gate *Gate, wasValid bool) {
	if gate.cache.Valid() != wasValid {
		c.cacheChanged(g, gate)
	}
	prev := gate.output
	if gate.Evaluate() != prev {
		c.outputChanged(g)
	}
}

func (c *Circuit) cacheChanged(g GateID, gate *Gate) {
	st := gate.cache.Stats()
	pos := HookPosCacheRestored
	if !st.Valid {
		pos = HookPosCacheDegraded
		c.log.Warn("gate cache disabled", "gate", gate.name, "inputs", st.Inputs, "ceiling", st.Ceiling)
	} else {
		c.log.Info("gate cache enabled", "gate", gate.name, "inputs", st.Inputs, "ceiling", st.Ceiling)
	}
	c.InvokeHook(HookCtx{Domain: c, Pos: pos, Item: g, Detail: st})
}

// outputChanged pushes the output of gate g onto its output wire.
func (c *Circuit) outputChanged(g GateID) {
	out := c.gates[g].output
	c.InvokeHook(HookCtx{Domain: c, Pos: HookPosGateOutput, Item: g, Detail: out})
	if w := c.outs[g]; w >= 0 {
		c.wires[w].value = out
		c.sched.mark(w)
	}
}

// Output returns the output of gate g.
//
func (c *Circuit) Output(g GateID) (State, error) {
	gate, err := c.Gate(g)
	if err != nil {
		return Invalid, err
	}
	return gate.output, nil
}

// Value returns the value of wire w.
//
func (c *Circuit) Value(w WireID) (State, error) {
	wire, err := c.Wire(w)
	if err != nil {
		return Invalid, err
	}
	return wire.value, nil
}

// Degraded returns the gates whose cache is disabled because they have more
// inputs than the cache ceiling.
//
func (c *Circuit) Degraded() []GateID {
	var ids []GateID
	for i, g := range c.gates {
		if !g.cache.Valid() {
			ids = append(ids, GateID(i))
		}
	}
	return ids
}
