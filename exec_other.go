//go:build !unix

package cab

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

func execBinary(ctx context.Context, binary string, args []string) error {
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return &ExitError{Code: ee.ExitCode(), Err: err}
		}
		return fmt.Errorf("exec %s: %w", binary, err)
	}
	return nil
}
