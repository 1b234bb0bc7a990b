package format

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrToolMissing indicates the formatting tool could not be resolved on
	// the toolchain. Use errors.As with *ToolMissingError to get the name.
	ErrToolMissing = errors.New("formatting tool not available on toolchain")

	// ErrNoExitCode indicates the tool process terminated without an exit
	// code. This can happen on Unix when the process is killed by a signal.
	ErrNoExitCode = errors.New("no result code received from formatting tool process")
)

// ToolMissingError reports that the named tool is not installed on the
// toolchain. No process is spawned when this error is returned.
type ToolMissingError struct {
	// Tool is the component name that failed to resolve.
	Tool string
}

func (e *ToolMissingError) Error() string {
	return fmt.Sprintf("formatting tool %q not available on toolchain", e.Tool)
}

func (e *ToolMissingError) Is(target error) bool {
	return target == ErrToolMissing
}

// ToolExecError reports that the tool ran but exited with a non-zero code.
// It carries the exit code and both captured output streams.
type ToolExecError struct {
	Code   int
	Stdout Stream
	Stderr Stream
}

func (e *ToolExecError) Error() string {
	return fmt.Sprintf("error executing formatting tool (code %d)\nstdout:\n%s\nstderr:\n%s",
		e.Code, e.Stdout, e.Stderr)
}
