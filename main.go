package main

import (
	"os"

	log "github.com/charmbracelet/log"

	"github.com/fmtrun/fmtrun/cmd"
	errUtils "github.com/fmtrun/fmtrun/errors"
)

func main() {
	// Use errUtils.OsExit to allow test interception.
	errUtils.OsExit(run())
}

// run executes the CLI and returns an exit code. The separation keeps
// deferred cleanup possible before os.Exit in main().
func run() int {
	if err := cmd.Execute(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		code := errUtils.GetExitCode(err)
		log.Debug("exiting", "code", code)
		return code
	}
	return 0
}
