// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "logicsim", cmd.Use)

	for _, name := range []string{"run", "list"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	for _, d := range demos {
		assert.Contains(t, out, d.name)
	}
}

func TestRun_adder(t *testing.T) {
	out, _, err := execute(t, "run", "adder")
	require.NoError(t, err)
	assert.Contains(t, out, "5 + 9 = 14")
	assert.Contains(t, out, "15 + 1 = 16")
	assert.Contains(t, out, "7 + 7 = 14")
	assert.Contains(t, out, "3 + 4 = 7")
}

func TestRun_xor(t *testing.T) {
	out, _, err := execute(t, "run", "xor")
	require.NoError(t, err)
	assert.Contains(t, out, "a=LOW     b=HIGH    out=HIGH")
	assert.Contains(t, out, "a=HIGH    b=HIGH    out=LOW")
	assert.Contains(t, out, "a=INVALID b=LOW     out=INVALID")
}

func TestRun_latch(t *testing.T) {
	out, _, err := execute(t, "run", "latch")
	require.NoError(t, err)
	assert.Equal(t, ""+
		"d=HIGH    en=HIGH    q=HIGH    nq=LOW\n"+
		"d=LOW     en=LOW     q=HIGH    nq=LOW\n"+
		"d=LOW     en=HIGH    q=LOW     nq=HIGH\n"+
		"d=HIGH    en=LOW     q=LOW     nq=HIGH\n", out)
}

func TestRun_oscillator(t *testing.T) {
	out, _, err := execute(t, "run", "oscillator", "--max-steps", "12", "--trace", "-")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "ring: did not settle after 12 steps")
	assert.Contains(t, out, "--- trace\n")
	assert.Contains(t, out, "\ndrain 1 max_steps=12\n")
	assert.Contains(t, out, "unstable steps=12")
}

func TestRun_verbose(t *testing.T) {
	_, errOut, err := execute(t, "run", "oscillator", "-v")
	require.Error(t, err)
	assert.Contains(t, errOut, "circuit did not settle")
	assert.Contains(t, errOut, "level=DEBUG")
}

func TestRun_config(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "logicsim.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("max_steps: 7\n"), 0o644))
	tr := filepath.Join(dir, "trace.txt")

	_, _, err := execute(t, "run", "oscillator", "--config", cfg, "--trace", tr)
	require.Error(t, err)
	b, err := os.ReadFile(tr)
	require.NoError(t, err)
	assert.Contains(t, string(b), "drain 1 max_steps=7\n")

	require.NoError(t, os.WriteFile(cfg, []byte("cache_ceiling: 99\n"), 0o644))
	_, _, err = execute(t, "run", "adder", "--config", cfg)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "cache_ceiling")
}

func TestRun_errors(t *testing.T) {
	_, _, err := execute(t, "run", "nope")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, _, err = execute(t, "run", "adder", "--max-steps", "-1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, _, err = execute(t, "run", "adder", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	assert.Equal(t, ExitSuccess, GetExitCode(nil))
}
