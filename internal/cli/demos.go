// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"
	"io"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/logiclib"
)

type demo struct {
	name string
	help string
	run  func(w io.Writer, c *logicsim.Circuit) error
}

var demos = []demo{
	{"adder", "4 bits ripple carry adder", runAdder},
	{"latch", "gated D latch", runLatch},
	{"oscillator", "ring of 3 inverters, never settles", runOscillator},
	{"xor", "XOR gate made of NAND gates, with INVALID inputs", runXor},
}

func findDemo(name string) (demo, bool) {
	for _, d := range demos {
		if d.name == name {
			return d, true
		}
	}
	return demo{}, false
}

// set drives the given pins and settles the circuit.
func set(c *logicsim.Circuit, s *logiclib.Socket, pins []string, vs ...logicsim.State) (logicsim.DrainResult, error) {
	for i, p := range pins {
		if err := c.Drive(s.Pin(p), vs[i]); err != nil {
			return logicsim.DrainResult{}, err
		}
	}
	return c.Settle()
}

func get(c *logicsim.Circuit, s *logiclib.Socket, pin string) logicsim.State {
	v, _ := c.Value(s.Pin(pin))
	return v
}

func runXor(w io.Writer, c *logicsim.Circuit) error {
	s, err := logiclib.XorFromNand().Place(c, "xor", nil)
	if err != nil {
		return err
	}
	states := []logicsim.State{logicsim.Low, logicsim.High, logicsim.Invalid}
	for _, a := range states {
		for _, b := range states {
			r, err := set(c, s, []string{"a", "b"}, a, b)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "a=%-7v b=%-7v out=%-7v steps=%d\n", a, b, get(c, s, "out"), r.Steps)
		}
	}
	return nil
}

func runLatch(w io.Writer, c *logicsim.Circuit) error {
	s, err := logiclib.DLatch().Place(c, "latch", nil)
	if err != nil {
		return err
	}
	seq := [][2]logicsim.State{
		{logicsim.High, logicsim.High},
		{logicsim.Low, logicsim.Low},
		{logicsim.Low, logicsim.High},
		{logicsim.High, logicsim.Low},
	}
	for _, in := range seq {
		if _, err := set(c, s, []string{"d", "en"}, in[0], in[1]); err != nil {
			return err
		}
		fmt.Fprintf(w, "d=%-7v en=%-7v q=%-7v nq=%v\n", in[0], in[1], get(c, s, "q"), get(c, s, "nq"))
	}
	return nil
}

func runAdder(w io.Writer, c *logicsim.Circuit) error {
	const bits = 4
	s, err := logiclib.RippleAdder(bits).Place(c, "add", nil)
	if err != nil {
		return err
	}
	a, b := s.Bus("a", bits), s.Bus("b", bits)
	sum := append(s.Bus("s", bits), s.Pin("cout"))
	if err = c.Drive(s.Pin("cin"), logicsim.Low); err != nil {
		return err
	}
	for _, op := range [][2]uint64{{5, 9}, {15, 1}, {7, 7}, {3, 4}} {
		if err = logiclib.DriveUint64(c, a, op[0]); err != nil {
			return err
		}
		if err = logiclib.DriveUint64(c, b, op[1]); err != nil {
			return err
		}
		r, err := c.Settle()
		if err != nil {
			return err
		}
		v, ok := logiclib.Uint64(c, sum)
		if !ok {
			fmt.Fprintf(w, "%d + %d = INVALID\n", op[0], op[1])
			continue
		}
		fmt.Fprintf(w, "%d + %d = %d (steps=%d rounds=%d)\n", op[0], op[1], v, r.Steps, r.Rounds)
	}
	return nil
}

func runOscillator(w io.Writer, c *logicsim.Circuit) error {
	if _, err := logiclib.RingOscillator(3).Place(c, "ring", nil); err != nil {
		return err
	}
	r, err := c.Settle()
	if err != nil {
		fmt.Fprintf(w, "ring: did not settle after %d steps, %d wires pending\n", r.Steps, r.Pending)
		return err
	}
	fmt.Fprintln(w, "ring: settled")
	return nil
}
