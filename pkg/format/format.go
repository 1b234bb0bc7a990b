// Package format invokes the toolchain's source formatter against a single
// file and classifies the outcome.
//
// The formatting itself happens in the external tool, which rewrites the
// target file in place; this package only resolves the tool, runs it, and
// maps the exit status and captured streams to a structured error.
package format

import (
	"bytes"
	"os/exec"

	log "github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/fmtrun/fmtrun/pkg/toolchain"
)

// DefaultTool is the component resolved when no tool is configured.
const DefaultTool = "gofmt"

// rawResult is what the runner reports back before classification.
type rawResult struct {
	code    int
	hasCode bool
	stdout  []byte
	stderr  []byte
}

// runTool spawns the resolved tool with the target path as its only
// argument, waits for it, and captures both output streams. A function
// variable so tests can substitute a double without spawning a process.
var runTool = func(binaryPath, target string) (*rawResult, error) {
	cmd := exec.Command(binaryPath, target)

	// Stdin is opened as a pipe that is never written to or closed here;
	// os/exec closes it once Wait sees the child exit. A tool that blocks
	// reading stdin will hang the call.
	if _, err := cmd.StdinPipe(); err != nil {
		return nil, errors.Wrap(err, "open stdin pipe")
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			return &rawResult{
				code: code,
				// -1 means the process was killed by a signal.
				hasCode: code >= 0,
				stdout:  stdout.Bytes(),
				stderr:  stderr.Bytes(),
			}, nil
		}
		return nil, err
	}

	return &rawResult{
		code:    0,
		hasCode: true,
		stdout:  stdout.Bytes(),
		stderr:  stderr.Bytes(),
	}, nil
}

// Invoker performs one formatting invocation per FormatFile call. The zero
// value uses DefaultTool and the default toolchain locator; each call is
// fully self-contained, nothing is cached across calls.
type Invoker struct {
	// Tool is the component name resolved on the toolchain.
	Tool string

	// Locator resolves the tool name to an executable path.
	Locator toolchain.Locator
}

// FormatFile formats path with DefaultTool resolved from the host toolchain.
func FormatFile(path string) error {
	return (&Invoker{}).FormatFile(path)
}

// FormatFile runs the formatter against path and blocks until the tool
// exits. The tool is expected to rewrite the file in place on success; this
// function performs no file I/O of its own and does not check that path
// exists — a bad path surfaces as whatever the tool or the OS reports.
//
// Failures are returned as one of four kinds: *ToolMissingError when
// resolution fails (no process is spawned), *ToolExecError when the tool
// exits non-zero, ErrNoExitCode when the process dies without an exit code,
// or the wrapped OS error when spawning or waiting fails.
func (inv *Invoker) FormatFile(path string) error {
	tool := inv.Tool
	if tool == "" {
		tool = DefaultTool
	}
	locator := inv.Locator
	if locator == nil {
		locator = toolchain.Default()
	}

	binaryPath, ok := locator.FindInstalledComponent(tool)
	if !ok {
		return &ToolMissingError{Tool: tool}
	}
	log.Debug("resolved formatting tool", "tool", tool, "path", binaryPath)

	res, err := runTool(binaryPath, path)
	if err != nil {
		return errors.Wrap(err, "run formatting tool")
	}
	if !res.hasCode {
		return ErrNoExitCode
	}
	if res.code != 0 {
		return &ToolExecError{
			Code:   res.code,
			Stdout: NewStream(res.stdout),
			Stderr: NewStream(res.stderr),
		}
	}
	return nil
}
