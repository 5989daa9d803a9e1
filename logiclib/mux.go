// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logiclib

import "github.com/db47h/logicsim"

// Mux returns a multiplexer.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux() *PartSpec { return mux }

var mux = &PartSpec{
	Name:    "MUX",
	Inputs:  []string{pA, pB, pSel},
	Outputs: []string{pOut},
	Mount: func(s *Socket) {
		s.Gate("sa", logicsim.And, false, "sa", pA, "~"+pSel)
		s.Gate("sb", logicsim.And, false, "sb", pB, pSel)
		s.Gate(pOut, logicsim.Or, false, pOut, "sa", "sb")
	},
}

// DMux returns a demultiplexer.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
func DMux() *PartSpec { return dmux }

var dmux = &PartSpec{
	Name:    "DMUX",
	Inputs:  []string{pIn, pSel},
	Outputs: []string{pA, pB},
	Mount: func(s *Socket) {
		s.Gate(pA, logicsim.And, false, pA, pIn, "~"+pSel)
		s.Gate(pB, logicsim.And, false, pB, pIn, pSel)
	},
}
