// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// State is a three-valued logic signal.
//
// Invalid means "not driven yet" or "ambiguous". It is never silently
// treated as Low or High: every gate Kind documents how it handles it.
//
type State uint8

// Logic states. The zero value is Low.
//
const (
	Low State = iota
	High
	Invalid
)

// Not returns the inverse of s. Low and High are swapped, Invalid stays
// Invalid.
//
func (s State) Not() State {
	switch s {
	case Low:
		return High
	case High:
		return Low
	}
	return Invalid
}

// Bool returns true for High. The second return value is false if s is
// Invalid.
//
func (s State) Bool() (v bool, ok bool) {
	switch s {
	case Low:
		return false, true
	case High:
		return true, true
	}
	return false, false
}

// FromBool converts a boolean to Low or High.
//
func FromBool(b bool) State {
	if b {
		return High
	}
	return Low
}

func (s State) String() string {
	switch s {
	case Low:
		return "LOW"
	case High:
		return "HIGH"
	}
	return "INVALID"
}
