// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// GateID identifies a gate in a Circuit.
//
type GateID int

// WireID identifies a wire in a Circuit.
//
type WireID int

// NoGate is returned as the source of wires not driven by a gate.
//
const NoGate GateID = -1

// A Target is a gate input fed by a wire.
//
type Target struct {
	Gate GateID
	Port PortHandle
}

// A Wire carries one value from its driver to any number of gate inputs.
//
// A wire is driven either by the output of exactly one gate, or externally
// through Circuit.Drive. It starts Invalid.
//
type Wire struct {
	name    string
	value   State
	targets []Target
	source  GateID
	driven  bool // externally driven at least once
}

func newWire(name string) *Wire {
	return &Wire{name: name, value: Invalid, source: NoGate}
}

// Name returns the wire name.
//
func (w *Wire) Name() string { return w.name }

// Value returns the last value pushed onto the wire.
//
func (w *Wire) Value() State { return w.value }

// Source returns the gate driving the wire, or NoGate.
//
func (w *Wire) Source() GateID { return w.source }

// Targets returns a copy of the wire's fan-out list.
//
func (w *Wire) Targets() []Target {
	return append([]Target(nil), w.targets...)
}

func (w *Wire) hasDriver() bool { return w.source != NoGate || w.driven }

func (w *Wire) removeTarget(t Target) bool {
	for i := range w.targets {
		if w.targets[i] == t {
			w.targets = append(w.targets[:i], w.targets[i+1:]...)
			return true
		}
	}
	return false
}
