// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"fmt"

	"github.com/pkg/errors"
)

// Usage errors. They are returned wrapped in a *UsageError; use errors.Cause
// to compare against them.
//
var (
	ErrBadHandle       = errors.New("port handle does not belong to gate")
	ErrUnknownGate     = errors.New("unknown gate")
	ErrUnknownWire     = errors.New("unknown wire")
	ErrMultipleDrivers = errors.New("port or wire already has a driver")
	ErrDrivenWire      = errors.New("wire is driven by a gate")
	ErrNoSource        = errors.New("wire has no source")
	ErrCircuitGate     = errors.New("gate belongs to a circuit")
)

// A UsageError reports an operation that referenced something the circuit
// does not have, or that would break the single driver rule.
//
type UsageError struct {
	Op  string
	Err error
}

func (e *UsageError) Error() string { return e.Op + ": " + e.Err.Error() }

// Cause returns the underlying sentinel error.
//
func (e *UsageError) Cause() error { return e.Err }

// Unwrap returns the underlying sentinel error.
//
func (e *UsageError) Unwrap() error { return e.Err }

func usageError(op string, err error) error {
	return errors.WithStack(&UsageError{Op: op, Err: err})
}

// IsUsageError returns true if err is or wraps a *UsageError.
//
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

// An UnstableError is returned by Settle when a drain hit its step limit
// before the circuit settled.
//
type UnstableError struct {
	Result DrainResult
}

func (e *UnstableError) Error() string {
	return fmt.Sprintf("circuit did not settle after %d steps (%d wires pending)", e.Result.Steps, e.Result.Pending)
}
