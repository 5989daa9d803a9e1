// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logiclib

import (
	"strconv"
	"strings"

	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
)

// A MountFn builds a part into the circuit behind socket s. It should look up
// the part pins with s.Pin and add gates with s.Gate or sub-parts with
// s.Mount.
//
// For example, a Mux can be defined like this:
//
//	mux := &logiclib.PartSpec{
//		Name:    "MUX",
//		Inputs:  []string{"a", "b", "sel"},
//		Outputs: []string{"out"},
//		Mount: func(s *logiclib.Socket) {
//			s.Gate("a", logicsim.And, false, "sa", "a", "~sel")
//			s.Gate("b", logicsim.And, false, "sb", "b", "sel")
//			s.Gate("out", logicsim.Or, false, "out", "sa", "sb")
//		}}
//
type MountFn func(s *Socket)

// A PartSpec is the blueprint of a part built from gates.
//
type PartSpec struct {
	// Part name.
	Name string
	// Input pin names. Must be distinct. Use Bus to expand buses.
	Inputs []string
	// Output pin names. Must be distinct.
	Outputs []string
	// Mount function (see MountFn).
	Mount MountFn
}

// Place builds p into circuit c as an instance called name. Gates and
// internal wires are named after the instance, like "add.carry".
//
// Pins found in wires are connected to the given wires. The other input and
// output pins get new wires.
//
func (p *PartSpec) Place(c *logicsim.Circuit, name string, wires map[string]logicsim.WireID) (*Socket, error) {
	s := &Socket{c: c, name: name, m: make(map[string]logicsim.WireID), err: new(error)}
	for pin, w := range wires {
		if _, err := c.Wire(w); err != nil {
			return nil, errors.Wrapf(err, "place %s: pin %s", p.Name, pin)
		}
		s.m[pin] = w
	}
	for _, pin := range p.Inputs {
		s.PinOrNew(pin)
	}
	for _, pin := range p.Outputs {
		s.PinOrNew(pin)
	}
	p.Mount(s)
	if *s.err != nil {
		return nil, errors.Wrapf(*s.err, "place %s", p.Name)
	}
	return s, nil
}

// A Socket maps a part's pin names to wires in a circuit.
//
// Errors raised while mounting are sticky: once an error occurred, further
// calls to Gate and Mount are no-ops and Place returns the first error.
//
type Socket struct {
	c    *logicsim.Circuit
	name string
	m    map[string]logicsim.WireID
	err  *error
}

// Circuit returns the circuit the socket builds into.
//
func (s *Socket) Circuit() *logicsim.Circuit { return s.c }

func (s *Socket) path(n string) string {
	if s.name == "" {
		return n
	}
	return s.name + "." + n
}

func (s *Socket) fail(err error) {
	if *s.err == nil {
		*s.err = err
	}
}

// Pin returns the wire connected to the given pin name.
// This function panics if the pin does not exist.
//
func (s *Socket) Pin(name string) logicsim.WireID {
	w, ok := s.m[name]
	if !ok {
		panic("pin " + name + " does not exist")
	}
	return w
}

// PinOrNew returns the wire connected to the given pin name. If no such pin
// exists, a new wire is allocated.
//
func (s *Socket) PinOrNew(name string) logicsim.WireID {
	w, ok := s.m[name]
	if !ok {
		w = s.c.AddWire(s.path(name))
		s.m[name] = w
	}
	return w
}

// Bus returns the wires connected to bus name, i.e. pins name[0] to
// name[bits-1].
//
func (s *Socket) Bus(name string, bits int) []logicsim.WireID {
	ws := make([]logicsim.WireID, bits)
	for i := range ws {
		ws[i] = s.Pin(BusPin(name, i))
	}
	return ws
}

// Gate adds a gate driving pin out and reading from pins ins. A pin name
// prefixed with '~' is read through an inverted input. Pins that do not exist
// yet are allocated as internal wires.
//
func (s *Socket) Gate(name string, kind logicsim.Kind, invert bool, out string, ins ...string) logicsim.GateID {
	if *s.err != nil {
		return logicsim.NoGate
	}
	g, _ := s.c.AddGate(logicsim.GateSpec{Name: s.path(name), Kind: kind, Invert: invert})
	for _, in := range ins {
		var (
			h   logicsim.PortHandle
			err error
		)
		if strings.HasPrefix(in, "~") {
			in = in[1:]
			h, err = s.c.AddInvertedInput(g)
		} else {
			h, err = s.c.AddInput(g)
		}
		if err == nil {
			err = s.c.AddTarget(s.PinOrNew(in), g, h)
		}
		if err != nil {
			s.fail(errors.Wrapf(err, "gate %s", s.path(name)))
			return g
		}
	}
	if err := s.c.Connect(g, s.PinOrNew(out)); err != nil {
		s.fail(errors.Wrapf(err, "gate %s", s.path(name)))
	}
	return g
}

// Mount mounts sub-part p as an instance called name. conns maps pins of p
// to pins of s; pins of s that do not exist yet are allocated. Unmapped pins
// of p get new wires.
//
func (s *Socket) Mount(p *PartSpec, name string, conns map[string]string) {
	if *s.err != nil {
		return
	}
	sub := &Socket{c: s.c, name: s.path(name), m: make(map[string]logicsim.WireID), err: s.err}
	for k, v := range conns {
		sub.m[k] = s.PinOrNew(v)
	}
	for _, pin := range p.Inputs {
		sub.PinOrNew(pin)
	}
	for _, pin := range p.Outputs {
		sub.PinOrNew(pin)
	}
	p.Mount(sub)
}

// BusPin returns the name of pin i of bus name.
//
func BusPin(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}

// Bus expands bus names into pin names, i.e. Bus(2, "a", "b") returns
// a[0], a[1], b[0], b[1]. A bits value <= 0 yields no pins.
//
func Bus(bits int, names ...string) []string {
	b := make([]string, 0, len(names)*max(bits, 0))
	for _, n := range names {
		for j := 0; j < bits; j++ {
			b = append(b, BusPin(n, j))
		}
	}
	return b
}
