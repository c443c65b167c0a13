package cab

import "slices"

// Rule maps a legacy cabal command to its new-style replacement.
type Rule struct {
	Command     string
	Replacement string
}

// TODO: the old usage text also promised conf, update, install and exec. Decide whether they
// belong here; until then they are forwarded unchanged.
var rules = []Rule{
	{Command: "build", Replacement: "new-build"},
	{Command: "configure", Replacement: "new-configure"},
	{Command: "repl", Replacement: "new-repl"},
	{Command: "run", Replacement: "new-run"},
	{Command: "test", Replacement: "new-test"},
	{Command: "bench", Replacement: "new-bench"},
	{Command: "freeze", Replacement: "new-freeze"},
	{Command: "haddock", Replacement: "new-haddock"},
}

var replacements = func() map[string]string {
	m := make(map[string]string, len(rules))
	for _, r := range rules {
		m[r.Command] = r.Replacement
	}
	return m
}()

// Rules returns the rewrite rules in the order they are listed in the usage text.
func Rules() []Rule {
	return slices.Clone(rules)
}

// Lookup returns the new-style replacement for arg. The match is exact and case-sensitive.
func Lookup(arg string) (string, bool) {
	r, ok := replacements[arg]
	return r, ok
}
