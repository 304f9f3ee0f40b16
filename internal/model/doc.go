// Package model defines the domain types and value objects for the
// fanout CLI.
//
// This package contains pure data structures with no external dependencies.
// The entities (Wordlist, identifier validation rules) represent the inputs
// to a run: named, ordered, immutable lists of substitution values that a
// command template draws from.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
