package model

import (
	"fmt"
	"regexp"
)

// Wordlist is a named, ordered list of substitution values, typically loaded
// from a file with one value per line.
//
// A Wordlist is immutable once loaded: the runner shares a single copy across
// all workers without synchronization, so nothing may append to or modify
// Values after construction.
type Wordlist struct {
	// Identifier is the token that marks substitution points for this
	// wordlist inside a command template. Identifiers are alphanumeric
	// and unique within a run.
	Identifier string

	// Values is the ordered sequence of substitution values. A usable
	// wordlist has at least one value; emptiness is rejected during
	// pre-run validation, not here.
	Values []string
}

// Len returns the number of values in the wordlist. This is the radix that
// the wordlist contributes to the combination space.
func (w Wordlist) Len() int {
	return len(w.Values)
}

// identifierRegex validates template identifiers: one or more alphanumeric
// characters. Identifiers must be matchable as literal substrings of the
// command, so shell metacharacters and whitespace are excluded.
var identifierRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// ValidateIdentifier checks whether the given string is a valid wordlist or
// index-token identifier. Valid identifiers are non-empty and contain only
// alphanumeric characters.
func ValidateIdentifier(identifier string) error {
	if identifier == "" {
		return fmt.Errorf("identifier must not be empty")
	}
	if !identifierRegex.MatchString(identifier) {
		return fmt.Errorf("invalid identifier %q: must contain only alphanumeric characters", identifier)
	}
	return nil
}

// ExitCode defines the CLI exit codes. These codes allow scripts and CI
// systems to programmatically determine the outcome of a run.
//
// Note that per-job command failures deliberately do NOT influence the exit
// code: the process exits with ExitSuccess as long as dispatch itself
// completed, even if every job's command failed. Only configuration and
// wordlist load errors produce a non-zero exit.
type ExitCode int

const (
	// ExitSuccess indicates the run completed (individual jobs may still
	// have failed; their diagnostics go to stderr).
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitConfigError indicates invalid configuration: a malformed file
	// spec, a duplicate or missing identifier, an identifier that does not
	// appear in the command, or an out-of-range --show index.
	ExitConfigError ExitCode = 2

	// ExitWordlistError indicates a wordlist file could not be read or
	// contained no values.
	ExitWordlistError ExitCode = 3
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
