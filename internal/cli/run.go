// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/trace"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// RunOptions holds flags for the run command.
//
type RunOptions struct {
	*RootOptions
	MaxSteps int
	Trace    string
}

// NewRunCommand creates the run command.
//
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <demo>",
		Short: "Run a demo circuit",
		Long: `Build a demo circuit, drive its inputs and print its outputs.

Use "logicsim list" to get the list of demos.

Example:
  logicsim run adder
  logicsim run oscillator --max-steps 20 --trace -`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.MaxSteps, "max-steps", 0, "fixed drain step limit, overrides the configuration")
	cmd.Flags().StringVar(&opts.Trace, "trace", "", `write a trace of all drains to this file ("-" for stdout)`)

	return cmd
}

func runDemo(opts *RunOptions, name string, cmd *cobra.Command) error {
	d, ok := findDemo(name)
	if !ok {
		return WrapExitError(ExitCommandError, "unknown demo "+name, nil)
	}
	cfg, err := opts.config()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load configuration", err)
	}
	if cmd.Flags().Changed("max-steps") {
		cfg.MaxSteps = opts.MaxSteps
		if err = cfg.Validate(); err != nil {
			return WrapExitError(ExitCommandError, "invalid flags", err)
		}
	}

	log := opts.logger(cmd.ErrOrStderr())
	c := logicsim.New(append(cfg.Options(), logicsim.WithLogger(log))...)
	var rec *trace.Recorder
	if opts.Trace != "" {
		rec = trace.NewRecorder(nil)
		c.AcceptHook(rec)
	}

	log.Info("running demo", "demo", d.name)
	out := cmd.OutOrStdout()
	runErr := d.run(out, c)

	if rec != nil {
		if err = writeTrace(opts.Trace, out, rec); err != nil {
			return WrapExitError(ExitCommandError, "failed to write trace", err)
		}
	}
	if runErr != nil {
		var u *logicsim.UnstableError
		if errors.As(runErr, &u) {
			return WrapExitError(ExitFailure, d.name, runErr)
		}
		return WrapExitError(ExitCommandError, d.name, runErr)
	}
	return nil
}

func writeTrace(path string, stdout io.Writer, rec *trace.Recorder) error {
	if path == "-" {
		fmt.Fprintln(stdout, "--- trace")
		return rec.WriteText(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	if err = rec.WriteText(f); err != nil {
		f.Close()
		return err
	}
	return errors.WithStack(f.Close())
}
