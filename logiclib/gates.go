// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package logiclib provides a library of reusable parts for logicsim.
//
// Copyright 2018 Denis Bernard <db047h@gmail.com>
//
// This package is licensed under the MIT license. See license text in the LICENSE file.
//
package logiclib

import (
	"strconv"

	"github.com/db47h/logicsim"
)

// common pin names
const (
	pA   = "a"
	pB   = "b"
	pIn  = "in"
	pSel = "sel"
	pOut = "out"
)

func unary(name string, invert bool) *PartSpec {
	return &PartSpec{
		Name:    name,
		Inputs:  []string{pIn},
		Outputs: []string{pOut},
		Mount: func(s *Socket) {
			s.Gate(pOut, logicsim.Or, invert, pOut, pIn)
		},
	}
}

func binary(name string, kind logicsim.Kind, invert bool) *PartSpec {
	return &PartSpec{
		Name:    name,
		Inputs:  []string{pA, pB},
		Outputs: []string{pOut},
		Mount: func(s *Socket) {
			s.Gate(pOut, kind, invert, pOut, pA, pB)
		},
	}
}

var (
	notGate = unary("NOT", true)
	buffer  = unary("BUFFER", false)

	and  = binary("AND", logicsim.And, false)
	nand = binary("NAND", logicsim.And, true)
	or   = binary("OR", logicsim.Or, false)
	nor  = binary("NOR", logicsim.Or, true)
	xor  = binary("XOR", logicsim.Xor, false)
	xnor = binary("XNOR", logicsim.Xor, true)
)

// Not returns a NOT gate.
//
//	Inputs: in
//	Outputs: out
//	Function: out = !in
//
func Not() *PartSpec { return notGate }

// Buffer returns a buffer.
//
//	Inputs: in
//	Outputs: out
//	Function: out = in
//
func Buffer() *PartSpec { return buffer }

// And returns a AND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b
//
func And() *PartSpec { return and }

// Nand returns a NAND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a && b)
//
func Nand() *PartSpec { return nand }

// Or returns a OR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a || b
//
func Or() *PartSpec { return or }

// Nor returns a NOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a || b)
//
func Nor() *PartSpec { return nor }

// Xor returns a XOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a != b
//
func Xor() *PartSpec { return xor }

// Xnor returns a XNOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a == b
//
func Xnor() *PartSpec { return xnor }

var xorFromNand = &PartSpec{
	Name:    "XOR(NAND)",
	Inputs:  []string{pA, pB},
	Outputs: []string{pOut},
	Mount: func(s *Socket) {
		s.Gate("n1", logicsim.And, true, "n1", pA, pB)
		s.Gate("n2", logicsim.And, true, "n2", pA, "n1")
		s.Gate("n3", logicsim.And, true, "n3", pB, "n1")
		s.Gate(pOut, logicsim.And, true, pOut, "n2", "n3")
	},
}

// XorFromNand returns a XOR gate built from four NAND gates.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a != b
//
func XorFromNand() *PartSpec { return xorFromNand }

func nWay(name string, kind logicsim.Kind, ways int) *PartSpec {
	return &PartSpec{
		Name:    name + strconv.Itoa(ways) + "Way",
		Inputs:  Bus(ways, pIn),
		Outputs: []string{pOut},
		Mount: func(s *Socket) {
			s.Gate(pOut, kind, false, pOut, Bus(ways, pIn)...)
		},
	}
}

// AndNWay returns a N-Way AND gate. Gates with more than
// logicsim.MaxCacheInputs inputs are not memoized.
//
//	Inputs: in[n]
//	Outputs: out
//	Function: out = in[0] && in[1] && in[2] && ... && in[n-1]
//
func AndNWay(ways int) *PartSpec { return nWay("AND", logicsim.And, ways) }

// OrNWay returns a N-Way OR gate.
//
//	Inputs: in[n]
//	Outputs: out
//	Function: out = in[0] || in[1] || in[2] || ... || in[n-1]
//
func OrNWay(ways int) *PartSpec { return nWay("OR", logicsim.Or, ways) }
