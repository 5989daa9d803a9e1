// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package logictest provides utility functions for testing circuits.
//
package logictest

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/logiclib"
)

// A Row is a line of a truth table. In and Out are in the order of the part
// inputs and outputs.
//
type Row struct {
	In  []logicsim.State
	Out []logicsim.State
}

// Bench is a part placed in a circuit on its own, with its input wires
// driven by the test.
//
type Bench struct {
	Circuit *logicsim.Circuit
	Part    *logiclib.PartSpec
	Socket  *logiclib.Socket
}

// NewBench places part in a new circuit created with the given options.
//
func NewBench(t testing.TB, part *logiclib.PartSpec, opts ...logicsim.Option) *Bench {
	t.Helper()
	c := logicsim.New(opts...)
	s, err := part.Place(c, "", nil)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return &Bench{Circuit: c, Part: part, Socket: s}
}

// Set drives the part inputs, in the order of Part.Inputs, and settles the
// circuit.
//
func (b *Bench) Set(t testing.TB, in ...logicsim.State) logicsim.DrainResult {
	t.Helper()
	if len(in) != len(b.Part.Inputs) {
		t.Fatalf("%s: got %d input values, need %d", b.Part.Name, len(in), len(b.Part.Inputs))
	}
	for i, n := range b.Part.Inputs {
		if err := b.Circuit.Drive(b.Socket.Pin(n), in[i]); err != nil {
			t.Fatalf("%+v", err)
		}
	}
	r, err := b.Circuit.Settle()
	if err != nil {
		t.Fatalf("%s: %v", b.Part.Name, err)
	}
	return r
}

// Get returns the value of output or input pin.
//
func (b *Bench) Get(t testing.TB, pin string) logicsim.State {
	t.Helper()
	v, err := b.Circuit.Value(b.Socket.Pin(pin))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return v
}

// Outputs returns the values of the part outputs.
//
func (b *Bench) Outputs(t testing.TB) []logicsim.State {
	t.Helper()
	out := make([]logicsim.State, len(b.Part.Outputs))
	for i, n := range b.Part.Outputs {
		out[i] = b.Get(t, n)
	}
	return out
}

// TruthTable places part in a new circuit and checks its outputs after each
// row of the table. Rows are applied in order, on the same circuit, so
// sequential parts like latches can be checked as well.
//
func TruthTable(t testing.TB, part *logiclib.PartSpec, table []Row, opts ...logicsim.Option) {
	t.Helper()
	b := NewBench(t, part, opts...)
	for i, row := range table {
		b.Set(t, row.In...)
		got := b.Outputs(t)
		for o, n := range part.Outputs {
			if o < len(row.Out) && got[o] != row.Out[o] {
				t.Errorf("%s row %d: %s => %s=%v, got %v", part.Name, i, pinValues(part.Inputs, row.In), n, row.Out[o], got[o])
			}
		}
	}
}

func pinValues(names []string, vs []logicsim.State) string {
	var b strings.Builder
	for i, n := range names {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n)
		b.WriteRune('=')
		b.WriteString(vs[i].String())
	}
	return b.String()
}

// CompareParts takes two parts and compares their outputs given the same
// inputs. Both parts must have the same Input/Output interface.
//
// Both parts are placed in the same circuit and share their input wires. Inputs
// are set to all Low, all High, then to random values for up to 4096
// iterations. If invalid is true, random values include Invalid.
//
func CompareParts(t testing.TB, part1, part2 *logiclib.PartSpec, invalid bool, opts ...logicsim.Option) {
	t.Helper()

	if len(part1.Inputs) != len(part2.Inputs) {
		t.Fatal("len(part1.Inputs) != len(part2.Inputs)")
	}
	if len(part1.Outputs) != len(part2.Outputs) {
		t.Fatal("len(part1.Outputs) != len(part2.Outputs)")
	}
	for i := range part1.Inputs {
		if part1.Inputs[i] != part2.Inputs[i] {
			t.Fatalf("part1.Inputs[i] = %q != part2.Inputs[i] = %q", part1.Inputs[i], part2.Inputs[i])
		}
	}
	for i := range part1.Outputs {
		if part1.Outputs[i] != part2.Outputs[i] {
			t.Fatalf("part1.Outputs[i] = %q != part2.Outputs[i] = %q", part1.Outputs[i], part2.Outputs[i])
		}
	}

	c := logicsim.New(opts...)
	s1, err := part1.Place(c, "p1", nil)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	shared := make(map[string]logicsim.WireID, len(part1.Inputs))
	for _, n := range part1.Inputs {
		shared[n] = s1.Pin(n)
	}
	s2, err := part2.Place(c, "p2", shared)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	states := []logicsim.State{logicsim.Low, logicsim.High, logicsim.Invalid}
	if !invalid {
		states = states[:2]
	}
	inputs := make([]logicsim.State, len(part1.Inputs))

	check := func() {
		t.Helper()
		for i, n := range part1.Inputs {
			if err := c.Drive(shared[n], inputs[i]); err != nil {
				t.Fatalf("%+v", err)
			}
		}
		if _, err := c.Settle(); err != nil {
			t.Fatal(err)
		}
		for _, o := range part1.Outputs {
			v1, _ := c.Value(s1.Pin(o))
			v2, _ := c.Value(s2.Pin(o))
			if v1 != v2 {
				t.Fatalf("\nExpected %s => %s=%v\nGot %v", pinValues(part1.Inputs, inputs), o, v1, v2)
			}
		}
	}

	iter := len(inputs)
	if iter > 12 {
		iter = 12
	}
	iter = 1 << uint(iter)

	start := time.Now()

	// try all 0
	for i := range inputs {
		inputs[i] = logicsim.Low
	}
	check()

	// try all 1
	for i := range inputs {
		inputs[i] = logicsim.High
	}
	check()

	for i := 0; i < iter; i++ {
		for in := range inputs {
			inputs[in] = states[rnd.Intn(len(states))]
		}
		check()
	}

	t.Logf("%d gates, %d wires. %d iterations in %v", c.NumGates(), c.NumWires(), iter+2, time.Since(start))
}
