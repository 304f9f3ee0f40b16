package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidateIdentifier_Valid verifies that plain alphanumeric identifiers
// are accepted, including single characters and mixed case.
func TestValidateIdentifier_Valid(t *testing.T) {
	valid := []string{"FUZZ", "w1", "a", "0", "WordList2"}

	for _, id := range valid {
		assert.NoError(t, ValidateIdentifier(id), "identifier %q should be valid", id)
	}
}

// TestValidateIdentifier_Invalid verifies that empty identifiers and
// identifiers containing non-alphanumeric characters are rejected.
// Identifiers must be matchable as literal substrings of a shell command,
// so whitespace and metacharacters are disallowed.
func TestValidateIdentifier_Invalid(t *testing.T) {
	invalid := []string{"", "has space", "dash-ed", "under_score", "a$b", "café"}

	for _, id := range invalid {
		assert.Error(t, ValidateIdentifier(id), "identifier %q should be rejected", id)
	}
}

// TestWordlist_Len verifies that Len reports the number of values,
// which is the radix the wordlist contributes to the combination space.
func TestWordlist_Len(t *testing.T) {
	w := Wordlist{Identifier: "FUZZ", Values: []string{"a", "b", "c"}}
	assert.Equal(t, 3, w.Len())

	assert.Equal(t, 0, Wordlist{Identifier: "EMPTY"}.Len())
}

// TestCLIError_Error verifies the error message format with and without
// an underlying error.
func TestCLIError_Error(t *testing.T) {
	plain := NewCLIError(ExitConfigError, "identifier 'FUZZ' is not in command")
	assert.Equal(t, "identifier 'FUZZ' is not in command", plain.Error())

	underlying := fmt.Errorf("open words.txt: no such file or directory")
	wrapped := WrapCLIError(ExitWordlistError, "could not read words.txt", underlying)
	assert.Equal(t, "could not read words.txt: open words.txt: no such file or directory", wrapped.Error())
}

// TestCLIError_Unwrap verifies that errors.Is can see through a CLIError
// to the underlying error, per Go's error wrapping convention.
func TestCLIError_Unwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	wrapped := WrapCLIError(ExitGeneralError, "something failed", sentinel)

	require.ErrorIs(t, wrapped, sentinel)
	assert.Equal(t, ExitGeneralError, wrapped.Code)
}
