// Package cab rewrites command-line arguments meant for cabal so that legacy commands run as their
// new-style project equivalents, then hands the result to cabal.
//
// Only the first recognized command is rewritten; every argument after it is forwarded untouched.
// Two tokens are intercepted before that point: --help, which prints a short notice and is still
// forwarded so cabal shows its own help, and --cab-help, which prints the cab usage text and stops
// without running cabal.
package cab
