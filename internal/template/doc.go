// Package template compiles a raw command string into an ordered sequence of
// literal/placeholder segments and renders concrete commands from it.
//
// Compilation happens once per run; rendering happens once per job. The
// compiled Template is immutable and shared across all workers without
// synchronization.
//
// Placeholder matching is deterministic, not longest-match: at each position
// the optional index token is tested first, then each wordlist identifier in
// registration order, and the first match consumes. If "foo" is registered
// before "foobar" and the command contains "foobar", the match on "foo"
// consumes first and "bar" remains as literal text. Overlapping identifiers
// therefore behave predictably, if occasionally surprisingly; the precedence
// is part of the tool's contract.
package template
