// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
)

// Process exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	// exitNotFound is the exit code of `resolve` when no definition matches.
	exitNotFound = 2
)

// ExitError carries the exit code a RunE handler wants, so handlers never
// call os.Exit themselves.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// exitCode maps the error returned by the root command to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return exitFailure
}
