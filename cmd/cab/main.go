// Command cab runs cabal with legacy commands rewritten to their new-style equivalents.
//
// Run "cab --cab-help" for the list of rewritten commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/mfridman/cab"
)

func main() {
	err := cab.Run(context.Background(), os.Args[1:], nil)
	if err == nil {
		return
	}
	code, report := exitCode(err)
	if report {
		fmt.Fprintf(os.Stderr, "cab: %v\n", err)
	}
	os.Exit(code)
}

// exitCode maps a Run error to a process exit status, following shell conventions for launch
// failures. report is false when cabal ran and already reported its own failure.
func exitCode(err error) (code int, report bool) {
	var exitErr *cab.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return 127, true
	}
	return 126, true
}
