package cab

import (
	"fmt"
	"strings"

	"github.com/mfridman/cab/pkg/textutil"
)

// Notice is printed when --help is passed before a command, ahead of cabal's own help.
const Notice = `NOTICE ABOUT CAB:
  Cabal was invoked using cab, a wrapper script around
  Cabal. For cab-specific help, use --cab-help.
`

const usageWidth = 70

var usageParagraphs = []string{
	"cab for the most part has the exact same usage as Cabal, but it deliberately rewrites " +
		"certain commands so that they are understood as the 'new-style project' commands.",
	"Certain old-style commands cannot be invoked through cab (as running `cab test' will always be " +
		"treated as `cabal new-test' and not `cabal test') but any command which does not have a " +
		"new-style equivalent (such as `check') will be run identically.",
}

// Usage returns the full cab help text shown for --cab-help.
func Usage() string {
	var b strings.Builder

	b.WriteString("Command line Cabal wrapper for new-style builds\n\n")
	b.WriteString("  Usage: cab [GLOBAL_FLAGS] [COMMAND [FLAGS]]\n\n")

	for _, p := range usageParagraphs {
		for _, line := range textutil.Wrap(p, usageWidth) {
			b.WriteString(line)
			b.WriteRune('\n')
		}
		b.WriteRune('\n')
	}

	b.WriteString("Commands which differ from Cabal:\n")
	maxNameLen := 0
	for _, r := range rules {
		if len(r.Command) > maxNameLen {
			maxNameLen = len(r.Command)
		}
	}
	for _, r := range rules {
		padding := strings.Repeat(" ", maxNameLen-len(r.Command)+1)
		fmt.Fprintf(&b, "    cab %s%s=> cabal %s\n", r.Command, padding, r.Replacement)
	}

	return strings.TrimRight(b.String(), "\n")
}
