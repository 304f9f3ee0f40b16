package template

import (
	"strconv"
	"strings"

	"github.com/mmr-tortoise/fanout/internal/model"
)

// SegmentKind identifies what, if anything, follows a segment's literal text
// in the rendered command.
type SegmentKind int

const (
	// KindNone marks the final trailing segment: literal text with no
	// placeholder after it. Only the last segment of a template has this kind.
	KindNone SegmentKind = iota

	// KindWordlist marks a segment whose literal text is followed by a value
	// drawn from the wordlist at Segment.Wordlist.
	KindWordlist

	// KindIndex marks a segment whose literal text is followed by the job's
	// own linear index, rendered in decimal.
	KindIndex
)

// Segment is one unit of a compiled template: a literal prefix paired with
// the placeholder that follows it (or no placeholder, for the trailing
// segment).
type Segment struct {
	// Literal is the verbatim command text preceding the placeholder.
	// May be empty when two placeholders are adjacent.
	Literal string

	// Kind selects what is substituted after Literal.
	Kind SegmentKind

	// Wordlist is the declaration-order position of the wordlist to draw
	// from. Only meaningful when Kind is KindWordlist.
	Wordlist int
}

// Template is the compiled form of a command string. It is immutable after
// Compile returns and safe for concurrent use by any number of workers.
type Template struct {
	segments []Segment
}

// Segments returns the compiled segment sequence. The returned slice must be
// treated as read-only.
func (t Template) Segments() []Segment {
	return t.segments
}

// Compile scans the raw command left to right and splits it into segments.
//
// At each byte position the index token (if non-empty) is tested as a prefix
// first, then each wordlist identifier in declaration order; the first match
// flushes the pending literal into a segment and the scan resumes after the
// matched token. Bytes that match nothing accumulate into the pending
// literal. A final KindNone segment always holds the trailing literal, which
// may be empty.
//
// Compilation itself cannot fail. Callers are responsible for validating —
// before compiling in anger — that every registered identifier actually
// occurs in the command, otherwise a template that never substitutes anything
// would be silently accepted.
//
// The scan is byte-oriented. Identifiers are restricted to ASCII
// alphanumerics (see model.ValidateIdentifier), so a multi-byte rune in the
// command can never match partway through and passes through the literal
// buffer intact.
func Compile(command string, indexToken string, identifiers []string) Template {
	var segments []Segment
	var literal strings.Builder

	i := 0
	for i < len(command) {
		rest := command[i:]

		if indexToken != "" && strings.HasPrefix(rest, indexToken) {
			segments = append(segments, Segment{Literal: literal.String(), Kind: KindIndex})
			literal.Reset()
			i += len(indexToken)
			continue
		}

		matched := false
		for k, identifier := range identifiers {
			if strings.HasPrefix(rest, identifier) {
				segments = append(segments, Segment{Literal: literal.String(), Kind: KindWordlist, Wordlist: k})
				literal.Reset()
				i += len(identifier)
				matched = true
				break
			}
		}
		if !matched {
			literal.WriteByte(command[i])
			i++
		}
	}

	// The trailing literal always becomes a placeholder-free segment, even
	// when empty. Render relies on this to terminate cleanly.
	segments = append(segments, Segment{Literal: literal.String(), Kind: KindNone})

	return Template{segments: segments}
}

// Render produces the concrete command for one job. It concatenates, in
// segment order, each literal followed by the wordlist value at
// wordlists[k].Values[offsets[k]], the decimal job index, or nothing for the
// trailing segment.
//
// Render is pure and deterministic: the same (offsets, jobIndex) input yields
// byte-identical output on every call. offsets must be the tuple produced by
// the combination indexer for jobIndex, with one entry per wordlist.
func (t Template) Render(wordlists []model.Wordlist, offsets []int, jobIndex int) string {
	var out strings.Builder

	for _, seg := range t.segments {
		out.WriteString(seg.Literal)
		switch seg.Kind {
		case KindWordlist:
			out.WriteString(wordlists[seg.Wordlist].Values[offsets[seg.Wordlist]])
		case KindIndex:
			out.WriteString(strconv.Itoa(jobIndex))
		}
	}

	return out.String()
}
