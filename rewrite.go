package cab

import (
	"errors"
	"io"
	"slices"
)

const (
	helpFlag    = "--help"
	cabHelpFlag = "--cab-help"
)

// errCabHelp is the terminal signal returned by [Rewriter.Next] when --cab-help is seen.
var errCabHelp = NewError(ErrShowHelp, errors.New("cab help requested"))

// Rewriter produces the arguments to forward to cabal, one at a time. Arguments before the first
// recognized command are inspected; the first one found in the rewrite table is replaced and every
// argument after it is passed through as-is.
//
// A Rewriter is consumed once and is not safe for concurrent use.
type Rewriter struct {
	args    []string
	pos     int
	seenCmd bool
	done    bool

	// notice receives the --help notice.
	notice io.Writer
}

// NewRewriter returns a Rewriter over args, which must not include the program name. The --help
// notice is written to notice; if notice is nil it is discarded.
func NewRewriter(args []string, notice io.Writer) *Rewriter {
	if notice == nil {
		notice = io.Discard
	}
	return &Rewriter{
		args:   slices.Clone(args),
		notice: notice,
	}
}

// Next returns the next argument to forward. It returns io.EOF once all arguments have been
// produced. If --cab-help appears before the first recognized command, Next returns an error for
// which [IsShowHelp] reports true, and the Rewriter is exhausted from then on.
func (r *Rewriter) Next() (string, error) {
	if r.done || r.pos >= len(r.args) {
		return "", io.EOF
	}
	arg := r.args[r.pos]
	r.pos++

	if r.seenCmd {
		return arg, nil
	}
	switch arg {
	case helpFlag:
		// cabal still gets --help; the notice only explains the wrapper.
		_, _ = io.WriteString(r.notice, Notice+"\n")
		return arg, nil
	case cabHelpFlag:
		r.done = true
		return "", errCabHelp
	}
	if repl, ok := Lookup(arg); ok {
		r.seenCmd = true
		return repl, nil
	}
	return arg, nil
}

// SeenCommand reports whether a command has been rewritten. Once true, it stays true.
func (r *Rewriter) SeenCommand() bool {
	return r.seenCmd
}

// Rewrite drains a new Rewriter over args and returns the arguments to forward. If --cab-help is
// seen, it returns a nil slice and an error for which [IsShowHelp] reports true.
func Rewrite(args []string, notice io.Writer) ([]string, error) {
	r := NewRewriter(args, notice)
	out := make([]string, 0, len(args))
	for {
		arg, err := r.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		out = append(out, arg)
	}
}
