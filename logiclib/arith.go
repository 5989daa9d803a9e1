// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logiclib

import (
	"strconv"

	"github.com/db47h/logicsim"
)

var hAdder = &PartSpec{
	Name:    "HalfAdder",
	Inputs:  []string{pA, pB},
	Outputs: []string{"s", "c"},
	Mount: func(s *Socket) {
		s.Gate("s", logicsim.Xor, false, "s", pA, pB)
		s.Gate("c", logicsim.And, false, "c", pA, pB)
	}}

// HalfAdder returns a half adder.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
func HalfAdder() *PartSpec { return hAdder }

var adder = &PartSpec{
	Name:    "FullAdder",
	Inputs:  []string{pA, pB, "cin"},
	Outputs: []string{"s", "cout"},
	Mount: func(s *Socket) {
		s.Mount(hAdder, "h0", map[string]string{pA: pA, pB: pB, "s": "s0", "c": "c0"})
		s.Mount(hAdder, "h1", map[string]string{pA: "s0", pB: "cin", "s": "s", "c": "c1"})
		s.Gate("cout", logicsim.Or, false, "cout", "c0", "c1")
	}}

// FullAdder returns a 3 bits adder.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdder() *PartSpec { return adder }

// RippleAdder returns a N-bits ripple carry adder. Bit 0 is the least
// significant bit.
//
//	Inputs: a[bits], b[bits], cin
//	Outputs: s[bits], cout
//	Function: s = a + b + cin
//	          cout = carry out of s
//
func RippleAdder(bits int) *PartSpec {
	if bits < 1 {
		panic("logiclib: adder width must be >= 1")
	}
	return &PartSpec{
		Name:    "Adder" + strconv.Itoa(bits),
		Inputs:  append(Bus(bits, pA, pB), "cin"),
		Outputs: append(Bus(bits, "s"), "cout"),
		Mount: func(s *Socket) {
			carry := "cin"
			for i := 0; i < bits; i++ {
				cout := BusPin("c", i)
				if i == bits-1 {
					cout = "cout"
				}
				s.Mount(adder, "fa"+strconv.Itoa(i), map[string]string{
					pA:     BusPin(pA, i),
					pB:     BusPin(pB, i),
					"cin":  carry,
					"s":    BusPin("s", i),
					"cout": cout,
				})
				carry = cout
			}
		}}
}
