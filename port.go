// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"slices"
	"strconv"
	"sync/atomic"
)

// A Port is an input or output slot of a gate.
//
type Port struct {
	value    State
	inverted bool
	slot     int // cache bit position, reassigned when the port set changes
}

// Value returns the port's current value, inversion already applied.
//
func (p *Port) Value() State { return p.value }

// Inverted returns true if the port inverts incoming values.
//
func (p *Port) Inverted() bool { return p.inverted }

// Slot returns the cache slot assigned to the port.
//
func (p *Port) Slot() int { return p.slot }

func (p *Port) set(v State) {
	if p.inverted {
		v = v.Not()
	}
	p.value = v
}

// A PortHandle identifies an input port of a gate. Handles remain valid when
// other ports are added or removed. Once its port is removed, a handle is
// stale and will never designate another port.
//
// Handles also carry the identity of the gate that issued them, so that
// using a handle with another gate is detected.
//
// The zero PortHandle is never valid.
//
type PortHandle struct {
	owner uint32
	index uint32
	gen   uint32
}

func (h PortHandle) String() string {
	return "port#" + strconv.FormatUint(uint64(h.index), 10) + "." + strconv.FormatUint(uint64(h.gen), 10)
}

// lastOwner is the last arena owner ID issued. The first ID is 1.
var lastOwner uint32

func nextOwner() uint32 {
	return atomic.AddUint32(&lastOwner, 1)
}

type portEntry struct {
	port Port
	gen  uint32 // odd while in use
}

func (e *portEntry) alive() bool { return e.gen&1 == 1 }

// ports is a dense arena of input ports with a freelist. Generation tags
// detect the use of stale handles. Live entries are iterated in insertion
// order, regardless of freelist reuse.
//
type ports struct {
	owner   uint32
	entries []portEntry
	free    []uint32
	order   []uint32
	count   int
}

func (ps *ports) insert(p Port) PortHandle {
	var i uint32
	if n := len(ps.free); n > 0 {
		i = ps.free[n-1]
		ps.free = ps.free[:n-1]
	} else {
		i = uint32(len(ps.entries))
		ps.entries = append(ps.entries, portEntry{})
	}
	e := &ps.entries[i]
	e.gen++
	e.port = p
	ps.order = append(ps.order, i)
	ps.count++
	return PortHandle{owner: ps.owner, index: i, gen: e.gen}
}

func (ps *ports) get(h PortHandle) *Port {
	if h.owner != ps.owner || int(h.index) >= len(ps.entries) {
		return nil
	}
	e := &ps.entries[h.index]
	if !e.alive() || e.gen != h.gen {
		return nil
	}
	return &e.port
}

func (ps *ports) remove(h PortHandle) bool {
	if ps.get(h) == nil {
		return false
	}
	e := &ps.entries[h.index]
	e.gen++
	e.port = Port{}
	ps.free = append(ps.free, h.index)
	if j := slices.Index(ps.order, h.index); j >= 0 {
		ps.order = slices.Delete(ps.order, j, j+1)
	}
	ps.count--
	return true
}

// each calls f for every live port in insertion order.
//
func (ps *ports) each(f func(h PortHandle, p *Port)) {
	for _, i := range ps.order {
		e := &ps.entries[i]
		f(PortHandle{owner: ps.owner, index: i, gen: e.gen}, &e.port)
	}
}
