package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mmr-tortoise/fanout/internal/model"
)

// FileSpec pairs a wordlist file path with the identifier it substitutes
// for, as given on the command line via -f/--file.
type FileSpec struct {
	Path       string
	Identifier string
}

// ParseFileSpec parses a "path:identifier" argument. The split happens at
// the first colon, so the identifier may not contain colons but the example
// form "words.txt:FUZZ" always parses the way it reads. Paths containing
// colons need the jobfile surface instead.
func ParseFileSpec(arg string) (FileSpec, error) {
	path, identifier, found := strings.Cut(arg, ":")
	if !found || identifier == "" {
		return FileSpec{}, model.NewCLIError(
			model.ExitConfigError,
			fmt.Sprintf("missing identifier in file spec %q, example: '-f %s:FUZZ'", arg, arg),
		)
	}
	if path == "" {
		return FileSpec{}, model.NewCLIError(
			model.ExitConfigError,
			fmt.Sprintf("missing file path in file spec %q", arg),
		)
	}
	return FileSpec{Path: path, Identifier: identifier}, nil
}

// Load reads a wordlist file into its ordered sequence of lines. Each line
// is one substitution value; a trailing newline does not produce an empty
// final value, but empty lines elsewhere are kept as empty values.
//
// Read failures are wrapped with ExitWordlistError — they abort the run
// before any job executes.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitWordlistError,
			fmt.Sprintf("could not read wordlist %q", path),
			err,
		)
	}
	defer func() { _ = f.Close() }()

	// bufio.Scanner's default 64KiB line limit is too small for wordlists
	// carrying long payloads; allow lines up to 1MiB.
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, model.WrapCLIError(
			model.ExitWordlistError,
			fmt.Sprintf("could not read wordlist %q", path),
			err,
		)
	}

	return lines, nil
}
