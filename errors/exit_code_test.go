package errors

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"github.com/fmtrun/fmtrun/pkg/format"
)

func TestGetExitCodeNil(t *testing.T) {
	assert.Equal(t, 0, GetExitCode(nil))
}

func TestGetExitCodeDefault(t *testing.T) {
	assert.Equal(t, 1, GetExitCode(errors.New("boom")))
}

func TestGetExitCodeToolExecError(t *testing.T) {
	err := &format.ToolExecError{Code: 2}

	assert.Equal(t, 2, GetExitCode(err))
}

func TestGetExitCodeWrappedToolExecError(t *testing.T) {
	err := fmt.Errorf("format main.go: %w", &format.ToolExecError{Code: 3})

	assert.Equal(t, 3, GetExitCode(err))
}

func TestGetExitCodeToolMissing(t *testing.T) {
	err := &format.ToolMissingError{Tool: "gofmt"}

	assert.Equal(t, 1, GetExitCode(err))
}

func TestWithExitCode(t *testing.T) {
	cause := errors.New("boom")
	err := WithExitCode(cause, 7)

	assert.Equal(t, 7, GetExitCode(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "boom", err.Error())
}

func TestWithExitCodeNil(t *testing.T) {
	assert.NoError(t, WithExitCode(nil, 7))
}

func TestExitUsesOsExit(t *testing.T) {
	orig := OsExit
	defer func() { OsExit = orig }()

	var got int
	OsExit = func(code int) { got = code }

	Exit(3)

	assert.Equal(t, 3, got)
}
