// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// MaxCacheInputs is the largest cache ceiling. Each input takes two bits of
// a 64 bits key.
//
const MaxCacheInputs = 32

// invalidShift is the offset of the Invalid bit plane in a cache key.
const invalidShift = MaxCacheInputs

// A Cache memoizes the output of a gate for each input combination it has
// seen.
//
// The key packs two bit planes: bit n is set when input slot n is High, bit
// 32+n when it is Invalid. Low clears both, so that Low and Invalid inputs
// never share an entry.
//
// The cache is only valid while the number of registered inputs is within
// its ceiling. Registering more inputs disables it until the count drops
// back.
//
type Cache struct {
	key     uint64
	entries map[uint64]State
	valid   bool
	inputs  int
	ceiling int
	hits    uint64
	misses  uint64
}

// CacheStats is a snapshot of a cache's state.
//
type CacheStats struct {
	Valid   bool // false once the input count exceeded the ceiling
	Entries int
	Inputs  int
	Ceiling int
	Hits    uint64
	Misses  uint64
}

// NewCache returns an empty cache with the given ceiling. Out of range
// ceilings are clamped to [0, MaxCacheInputs].
//
func NewCache(ceiling int) *Cache {
	if ceiling < 0 {
		ceiling = 0
	}
	if ceiling > MaxCacheInputs {
		ceiling = MaxCacheInputs
	}
	return &Cache{
		entries: make(map[uint64]State),
		valid:   true,
		ceiling: ceiling,
	}
}

// Register resets the cache for count inputs with slots 0..count-1. Stored
// entries are always dropped since slot assignments may have shifted.
//
func (c *Cache) Register(count int) {
	c.key = 0
	c.inputs = count
	c.valid = count <= c.ceiling
	if len(c.entries) > 0 {
		c.entries = make(map[uint64]State)
	}
}

// Record updates the key for the given slot.
//
func (c *Cache) Record(slot int, v State) {
	if !c.valid || slot < 0 || slot >= c.inputs {
		return
	}
	hi, inv := uint64(1)<<uint(slot), uint64(1)<<uint(slot+invalidShift)
	c.key &^= hi | inv
	switch v {
	case High:
		c.key |= hi
	case Low:
	default:
		c.key |= inv
	}
}

// Lookup returns the output stored for the current key.
//
func (c *Cache) Lookup() (State, bool) {
	if !c.valid {
		return Invalid, false
	}
	s, ok := c.entries[c.key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return s, ok
}

// Store records out as the output for the current key.
//
func (c *Cache) Store(out State) {
	if !c.valid {
		return
	}
	c.entries[c.key] = out
}

// Valid returns true if memoization is enabled.
//
func (c *Cache) Valid() bool { return c.valid }

// Key returns the current input combination key.
//
func (c *Cache) Key() uint64 { return c.key }

// Len returns the number of stored entries.
//
func (c *Cache) Len() int { return len(c.entries) }

// Stats returns a snapshot of the cache state and counters.
//
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Valid:   c.valid,
		Entries: len(c.entries),
		Inputs:  c.inputs,
		Ceiling: c.ceiling,
		Hits:    c.hits,
		Misses:  c.misses,
	}
}
