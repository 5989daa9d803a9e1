// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim_test

import (
	"strings"
	"testing"

	ls "github.com/db47h/logicsim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	td := []struct {
		name string
		src  string
		cfg  ls.Config
		err  string
	}{
		{"empty", "", ls.DefaultConfig(), ""},
		{"partial", "max_steps: 50\n", ls.Config{StepFactor: ls.DefaultStepFactor, MaxSteps: 50, CacheCeiling: ls.DefaultCacheCeiling}, ""},
		{"full", "step_factor: 4\nmax_steps: 0\ncache_ceiling: 8\n", ls.Config{StepFactor: 4, CacheCeiling: 8}, ""},
		{"unknown field", "steps: 3\n", ls.Config{}, "field steps not found"},
		{"bad factor", "step_factor: 0\n", ls.Config{}, "step_factor must be >= 1"},
		{"bad ceiling", "cache_ceiling: 33\n", ls.Config{}, "cache_ceiling must be in [0, 32]"},
		{"negative max", "max_steps: -1\n", ls.Config{}, "max_steps must be >= 0"},
		{"syntax", "step_factor: [\n", ls.Config{}, "decode config"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			cfg, err := ls.LoadConfig(strings.NewReader(d.src))
			if d.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), d.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, d.cfg, cfg)
		})
	}
}

func TestConfig_options(t *testing.T) {
	cfg := ls.Config{StepFactor: 3, CacheCeiling: 1}
	c := ls.New(append(cfg.Options(), quiet)...)
	for i := 0; i < 4; i++ {
		c.AddWire("")
	}
	assert.Equal(t, 12, c.MaxSteps())
	g, _ := c.AddGate(ls.GateSpec{Kind: ls.And, Inputs: 2})
	assert.Equal(t, []ls.GateID{g}, c.Degraded())

	cfg.MaxSteps = 5
	c = ls.New(append(cfg.Options(), quiet)...)
	assert.Equal(t, 5, c.MaxSteps())
}

func TestOptions_ranges(t *testing.T) {
	c := ls.New(quiet, ls.WithStepFactor(0))
	assert.Equal(t, ls.DefaultStepFactor, c.MaxSteps(), "empty circuit counts as one wire")

	c = ls.New(quiet, ls.WithCacheCeiling(-4))
	g, _ := c.AddGate(ls.GateSpec{Kind: ls.Or, Inputs: 1})
	assert.Equal(t, []ls.GateID{g}, c.Degraded())

	c = ls.New(quiet, ls.WithCacheCeiling(1000))
	g, _ = c.AddGate(ls.GateSpec{Kind: ls.Or, Inputs: ls.MaxCacheInputs})
	gate, err := c.Gate(g)
	require.NoError(t, err)
	assert.Equal(t, ls.MaxCacheInputs, gate.CacheStats().Ceiling)
	assert.Empty(t, c.Degraded())

	c = ls.New(ls.WithLogger(nil))
	assert.NotPanics(t, func() { c.AddGate(ls.GateSpec{Kind: ls.Or, Inputs: ls.MaxCacheInputs + 1}) })
}
