// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logiclib

import (
	"github.com/db47h/logicsim"
)

// Uint64 returns the value of the given wires as an uint64. Wire 0 is lsb.
// ok is false if any wire is Invalid.
//
func Uint64(c *logicsim.Circuit, wires []logicsim.WireID) (v uint64, ok bool) {
	ok = true
	for bit, w := range wires {
		s, err := c.Value(w)
		if err != nil {
			return 0, false
		}
		b, valid := s.Bool()
		ok = ok && valid
		if b {
			v |= 1 << uint(bit)
		}
	}
	return v, ok
}

// DriveUint64 drives the given wires with the bits of v. Wire 0 is lsb.
//
func DriveUint64(c *logicsim.Circuit, wires []logicsim.WireID, v uint64) error {
	for bit, w := range wires {
		if err := c.Drive(w, logicsim.FromBool(v&(1<<uint(bit)) != 0)); err != nil {
			return err
		}
	}
	return nil
}
