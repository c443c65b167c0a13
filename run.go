package cab

import (
	"context"
	"fmt"
	"io"
	"os"
)

// RunOptions specifies options for running cab.
type RunOptions struct {
	// Stdout receives the --help notice and the --cab-help usage text. If nil, [os.Stdout] is
	// used. cabal itself always inherits the process's standard streams.
	Stdout io.Writer

	// Execer runs cabal with the rewritten arguments. If nil, [ProcessExecer] is used.
	Execer Execer
}

// Run rewrites args, which must not include the program name, and hands the result to cabal.
//
// If --cab-help appears before the first recognized command, Run writes the usage text to Stdout
// and returns nil without running cabal. Otherwise it returns whatever the Execer returns; with the
// default Execer on unix systems, Run does not return on success.
//
// The options parameter may be nil, in which case default values are used. See [RunOptions] for
// more details.
func Run(ctx context.Context, args []string, options *RunOptions) error {
	options = checkAndSetRunOptions(options)

	forward, err := Rewrite(args, options.Stdout)
	if err != nil {
		if IsShowHelp(err) {
			_, err := fmt.Fprintf(options.Stdout, "%s\n\n", Usage())
			return err
		}
		return err
	}
	return options.Execer.Exec(ctx, Binary, forward)
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Execer == nil {
		opt.Execer = ProcessExecer{}
	}
	return opt
}
