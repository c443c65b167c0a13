package cab

import "context"

// Binary is the executable cab hands the rewritten arguments to.
const Binary = "cabal"

// Execer runs binary with args, inheriting the current stdio, working directory and environment.
// args does not include the program name.
//
// On success a process-replacing Execer does not return.
type Execer interface {
	Exec(ctx context.Context, binary string, args []string) error
}

// ExecFunc is an adapter to allow the use of ordinary functions as an [Execer].
type ExecFunc func(ctx context.Context, binary string, args []string) error

// Exec calls f(ctx, binary, args).
func (f ExecFunc) Exec(ctx context.Context, binary string, args []string) error {
	return f(ctx, binary, args)
}

// ProcessExecer is the default [Execer]. On unix systems it replaces the current process image;
// elsewhere it runs the binary as a child process and reports its exit status as an [*ExitError].
type ProcessExecer struct{}

// Exec resolves binary on PATH and executes it.
func (ProcessExecer) Exec(ctx context.Context, binary string, args []string) error {
	return execBinary(ctx, binary, args)
}
