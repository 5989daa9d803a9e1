// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultStepFactor is the default number of drain steps allowed per wire in
// a circuit.
//
const DefaultStepFactor = 10

// An Option configures a Circuit.
//
type Option func(c *Circuit)

// WithStepFactor sets the drain step limit to factor times the number of
// wires. Values < 1 are ignored.
//
func WithStepFactor(factor int) Option {
	return func(c *Circuit) {
		if factor > 0 {
			c.stepFactor = factor
		}
	}
}

// WithMaxSteps sets a fixed drain step limit, regardless of the circuit size.
// A value <= 0 restores the limit based on the step factor.
//
func WithMaxSteps(n int) Option {
	return func(c *Circuit) {
		c.maxSteps = n
	}
}

// WithCacheCeiling sets the cache ceiling of gates added to the circuit. It
// is clamped to [0, MaxCacheInputs]; 0 disables memoization for gates with
// inputs.
//
func WithCacheCeiling(n int) Option {
	return func(c *Circuit) {
		if n < 0 {
			n = 0
		}
		if n > MaxCacheInputs {
			n = MaxCacheInputs
		}
		c.ceiling = n
	}
}

// WithLogger sets the logger used by the circuit. The default is
// slog.Default().
//
func WithLogger(l *slog.Logger) Option {
	return func(c *Circuit) {
		if l != nil {
			c.log = l
		}
	}
}

// Config holds circuit settings loaded from a file.
//
type Config struct {
	// StepFactor is the number of drain steps allowed per wire.
	StepFactor int `yaml:"step_factor"`
	// MaxSteps, if > 0, overrides StepFactor with a fixed limit.
	MaxSteps int `yaml:"max_steps"`
	// CacheCeiling is the max number of gate inputs for which outputs are
	// memoized.
	CacheCeiling int `yaml:"cache_ceiling"`
}

// DefaultConfig returns the default configuration.
//
func DefaultConfig() Config {
	return Config{
		StepFactor:   DefaultStepFactor,
		CacheCeiling: DefaultCacheCeiling,
	}
}

// LoadConfig reads a YAML configuration. Missing fields keep their default
// value.
//
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that all settings are in range.
//
func (cfg Config) Validate() error {
	if cfg.StepFactor < 1 {
		return errors.Errorf("step_factor must be >= 1, got %d", cfg.StepFactor)
	}
	if cfg.MaxSteps < 0 {
		return errors.Errorf("max_steps must be >= 0, got %d", cfg.MaxSteps)
	}
	if cfg.CacheCeiling < 0 || cfg.CacheCeiling > MaxCacheInputs {
		return errors.Errorf("cache_ceiling must be in [0, %d], got %d", MaxCacheInputs, cfg.CacheCeiling)
	}
	return nil
}

// Options converts cfg to circuit options.
//
func (cfg Config) Options() []Option {
	return []Option{
		WithStepFactor(cfg.StepFactor),
		WithMaxSteps(cfg.MaxSteps),
		WithCacheCeiling(cfg.CacheCeiling),
	}
}
