// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package cli implements the logicsim command line.
//
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // A circuit did not settle
	ExitCommandError = 2 // Bad arguments or configuration
)

// ExitError is an error with a specific exit code.
//
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

// WrapExitError wraps err with an exit code.
//
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode returns the exit code for err. Errors other than *ExitError
// map to ExitFailure.
//
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *ExitError
	if errors.As(err, &e) {
		return e.Code
	}
	return ExitFailure
}

// RootOptions holds global flags for all commands.
//
type RootOptions struct {
	Verbose bool
	Config  string
}

// NewRootCommand creates the root command.
//
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "logicsim",
		Short: "Three-valued logic gate simulator",
		Long: `logicsim runs built-in demo circuits made of AND, OR and XOR gates
with LOW, HIGH and INVALID signal levels, and reports how they settle.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVarP(&opts.Config, "config", "c", "", "path to a YAML circuit configuration")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewListCommand(opts))

	return cmd
}

func (o *RootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (o *RootOptions) config() (logicsim.Config, error) {
	if o.Config == "" {
		return logicsim.DefaultConfig(), nil
	}
	f, err := os.Open(o.Config)
	if err != nil {
		return logicsim.Config{}, errors.WithStack(err)
	}
	defer f.Close()
	cfg, err := logicsim.LoadConfig(f)
	return cfg, errors.Wrap(err, o.Config)
}
