// Package errors provides CLI-facing error utilities: exit-code extraction
// and process termination.
package errors

import (
	"os"

	"github.com/cockroachdb/errors"

	"github.com/fmtrun/fmtrun/pkg/format"
)

// OsExit is a variable for testing, so we can mock os.Exit.
var OsExit = os.Exit

// exitCoder wraps an error and specifies an exit code.
type exitCoder struct {
	cause error
	code  int
}

func (e *exitCoder) Error() string {
	return e.cause.Error()
}

func (e *exitCoder) Unwrap() error {
	return e.cause
}

// ExitCode returns the exit code.
func (e *exitCoder) ExitCode() int {
	return e.code
}

// WithExitCode attaches an exit code to an error. The code can be
// retrieved later using GetExitCode.
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &exitCoder{
		cause: err,
		code:  code,
	}
}

// GetExitCode returns the exit code the process should terminate with for
// err: an explicitly attached code, the formatting tool's own exit code
// (also covers *exec.ExitError via its ExitCode method), or 1.
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	var execErr *format.ToolExecError
	if errors.As(err, &execErr) {
		return execErr.Code
	}
	return 1
}

// Exit terminates the process with code.
func Exit(code int) {
	OsExit(code)
}
