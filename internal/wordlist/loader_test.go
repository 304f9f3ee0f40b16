package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/fanout/internal/model"
)

// writeFile creates a wordlist file under t.TempDir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestParseFileSpec_Basic verifies the documented "path:identifier" form.
func TestParseFileSpec_Basic(t *testing.T) {
	spec, err := ParseFileSpec("words.txt:FUZZ")
	require.NoError(t, err)

	assert.Equal(t, "words.txt", spec.Path)
	assert.Equal(t, "FUZZ", spec.Identifier)
}

// TestParseFileSpec_FirstColonWins verifies the split point: everything
// after the first colon belongs to the identifier. Identifier validity
// itself is checked later, during pre-run validation.
func TestParseFileSpec_FirstColonWins(t *testing.T) {
	spec, err := ParseFileSpec("a:b:c")
	require.NoError(t, err)

	assert.Equal(t, "a", spec.Path)
	assert.Equal(t, "b:c", spec.Identifier)
}

// TestParseFileSpec_MissingParts verifies that specs without an identifier
// or without a path are rejected as configuration errors.
func TestParseFileSpec_MissingParts(t *testing.T) {
	for _, arg := range []string{"words.txt", "words.txt:", ":FUZZ", ""} {
		_, err := ParseFileSpec(arg)
		require.Error(t, err, "spec %q should be rejected", arg)

		var cliErr *model.CLIError
		require.True(t, errors.As(err, &cliErr))
		assert.Equal(t, model.ExitConfigError, cliErr.Code)
	}
}

// TestLoad_Lines verifies basic line splitting with a trailing newline:
// the trailing newline terminates the last value rather than adding an
// empty one.
func TestLoad_Lines(t *testing.T) {
	path := writeFile(t, "words.txt", "alpha\nbeta\ngamma\n")

	lines, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, lines)
}

// TestLoad_KeepsInteriorEmptyLines verifies that values are opaque: an
// empty line in the middle of the file is a legitimate (empty) substitution
// value and is not dropped.
func TestLoad_KeepsInteriorEmptyLines(t *testing.T) {
	path := writeFile(t, "words.txt", "a\n\nb\n")

	lines, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "", "b"}, lines)
}

// TestLoad_NoTransformation verifies that surrounding whitespace and
// non-ASCII content survive loading untouched.
func TestLoad_NoTransformation(t *testing.T) {
	path := writeFile(t, "words.txt", "  padded  \nnaïve\n")

	lines, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"  padded  ", "naïve"}, lines)
}

// TestLoad_MissingFile verifies that an unreadable wordlist is a fatal
// wordlist error carrying ExitWordlistError.
func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitWordlistError, cliErr.Code)
}

// TestLoad_EmptyFile verifies that an empty file loads as zero values.
// Rejecting zero-length wordlists happens during pre-run validation, where
// the error message can name the identifier.
func TestLoad_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.txt", "")

	lines, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, lines)
}
