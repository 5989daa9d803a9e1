// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim_test

import (
	"testing"

	ls "github.com/db47h/logicsim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_lookup(t *testing.T) {
	c := ls.NewCache(ls.MaxCacheInputs)
	c.Register(2)
	require.True(t, c.Valid())

	_, ok := c.Lookup()
	assert.False(t, ok)
	c.Store(ls.Low)

	c.Record(0, ls.High)
	assert.Equal(t, uint64(1), c.Key())
	_, ok = c.Lookup()
	assert.False(t, ok)
	c.Store(ls.High)

	c.Record(0, ls.Low)
	s, ok := c.Lookup()
	require.True(t, ok)
	assert.Equal(t, ls.Low, s)

	c.Record(0, ls.High)
	s, ok = c.Lookup()
	require.True(t, ok)
	assert.Equal(t, ls.High, s)

	st := c.Stats()
	assert.Equal(t, 2, st.Entries)
	assert.Equal(t, uint64(2), st.Hits)
	assert.Equal(t, uint64(2), st.Misses)
}

func TestCache_lowAndInvalidKeysDiffer(t *testing.T) {
	c := ls.NewCache(4)
	c.Register(3)
	c.Record(1, ls.Low)
	low := c.Key()
	c.Record(1, ls.Invalid)
	inv := c.Key()
	assert.NotEqual(t, low, inv)
	assert.Equal(t, uint64(1)<<(32+1), inv)

	c.Store(ls.Invalid)
	c.Record(1, ls.Low)
	_, ok := c.Lookup()
	assert.False(t, ok, "Low input must not hit the entry stored for Invalid")

	// a slot change clears both planes.
	c.Record(1, ls.High)
	assert.Equal(t, uint64(2), c.Key())
}

func TestCache_ceiling(t *testing.T) {
	c := ls.NewCache(3)
	c.Register(3)
	c.Record(2, ls.High)
	c.Store(ls.High)
	require.Equal(t, 1, c.Len())

	c.Register(4)
	assert.False(t, c.Valid())
	assert.Equal(t, 0, c.Len())
	c.Record(0, ls.High)
	assert.Equal(t, uint64(0), c.Key())
	c.Store(ls.High)
	assert.Equal(t, 0, c.Len())
	_, ok := c.Lookup()
	assert.False(t, ok)

	c.Register(3)
	assert.True(t, c.Valid())
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, uint64(0), c.Key())
}

func TestCache_registerClears(t *testing.T) {
	c := ls.NewCache(8)
	c.Register(2)
	c.Record(1, ls.High)
	c.Store(ls.Low)
	c.Register(2)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, uint64(0), c.Key())
	st := c.Stats()
	assert.Equal(t, 2, st.Inputs)
	assert.Equal(t, 8, st.Ceiling)
}

func TestCache_clampedCeiling(t *testing.T) {
	assert.Equal(t, ls.MaxCacheInputs, ls.NewCache(100).Stats().Ceiling)
	c := ls.NewCache(-1)
	assert.Equal(t, 0, c.Stats().Ceiling)
	c.Register(0)
	assert.True(t, c.Valid())
	c.Register(1)
	assert.False(t, c.Valid())
}
