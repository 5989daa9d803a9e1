// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logiclib

import (
	"strconv"

	"github.com/db47h/logicsim"
)

var srLatch = &PartSpec{
	Name:    "SRLatch",
	Inputs:  []string{"s", "r"},
	Outputs: []string{"q", "nq"},
	Mount: func(s *Socket) {
		s.Gate("q", logicsim.Or, true, "q", "r", "nq")
		s.Gate("nq", logicsim.Or, true, "nq", "s", "q")
	}}

// SRLatch returns a set/reset latch made of two cross-coupled NOR gates.
// Setting both s and r, then releasing them at once, makes it oscillate.
//
//	Inputs: s, r
//	Outputs: q, nq
//	Function: if s { q = 1 } else if r { q = 0 }
//	          nq = !q
//
func SRLatch() *PartSpec { return srLatch }

var dLatch = &PartSpec{
	Name:    "DLatch",
	Inputs:  []string{"d", "en"},
	Outputs: []string{"q", "nq"},
	Mount: func(s *Socket) {
		s.Gate("s", logicsim.And, false, "s", "d", "en")
		s.Gate("r", logicsim.And, false, "r", "~d", "en")
		s.Mount(srLatch, "sr", map[string]string{"s": "s", "r": "r", "q": "q", "nq": "nq"})
	}}

// DLatch returns a gated D latch.
//
//	Inputs: d, en
//	Outputs: q, nq
//	Function: if en { q = d }
//	          nq = !q
//
func DLatch() *PartSpec { return dLatch }

// RingOscillator returns a ring of inverters that never settles. The number
// of stages must be odd.
//
//	Inputs:
//	Outputs: out
//	Function: out = !out
//
func RingOscillator(stages int) *PartSpec {
	if stages < 1 || stages%2 == 0 {
		panic("logiclib: ring oscillator needs an odd number of stages")
	}
	return &PartSpec{
		Name:    "Ring" + strconv.Itoa(stages),
		Outputs: []string{pOut},
		Mount: func(s *Socket) {
			stage := func(i int) string {
				if i%stages == 0 {
					return pOut
				}
				return BusPin("w", i)
			}
			for i := 0; i < stages; i++ {
				s.Gate(BusPin("not", i), logicsim.Or, true, stage(i+1), stage(i))
			}
		}}
}
