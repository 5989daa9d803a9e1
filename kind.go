// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// Kind selects the logic function of a gate. Inverted outputs are a gate
// property, so NAND, NOR and XNOR are And, Or and Xor gates with an inverted
// output.
//
// A gate with no inputs always outputs Invalid.
//
type Kind uint8

// Gate kinds. The zero Kind is not a valid gate kind.
//
const (
	// And outputs Low if any input is Low, Invalid if any input is Invalid
	// and none is Low, High otherwise.
	And Kind = iota + 1
	// Or outputs High if any input is High, Invalid if any input is Invalid
	// and none is High, Low otherwise.
	Or
	// Xor outputs Invalid if any input is Invalid, otherwise High if an odd
	// number of inputs are High.
	Xor
)

// Valid returns true if k is one of the defined gate kinds.
//
func (k Kind) Valid() bool {
	return k >= And && k <= Xor
}

func (k Kind) String() string {
	switch k {
	case And:
		return "AND"
	case Or:
		return "OR"
	case Xor:
		return "XOR"
	}
	return "Kind(?)"
}

// eval computes the gate function over the input values. in must not be
// modified.
func (k Kind) eval(in []State) State {
	if len(in) == 0 {
		return Invalid
	}
	switch k {
	case And:
		r := High
		for _, v := range in {
			switch v {
			case Low:
				return Low
			case High:
			default:
				r = Invalid
			}
		}
		return r
	case Or:
		r := Low
		for _, v := range in {
			switch v {
			case High:
				return High
			case Low:
			default:
				r = Invalid
			}
		}
		return r
	case Xor:
		var odd bool
		for _, v := range in {
			switch v {
			case High:
				odd = !odd
			case Low:
			default:
				return Invalid
			}
		}
		return FromBool(odd)
	}
	panic("invalid gate kind " + k.String())
}
