package mapping

import (
	"strconv"
	"strings"

	"github.com/vintzvintz/soundboard/internal/diagnostic"
)

//go:generate go tool stringer -type=LineKind -output=linekind_string.go

// LineKind classifies one raw input line.
type LineKind int

const (
	// LineBlank is a line that is empty after stripping terminators.
	LineBlank LineKind = iota
	// LineComment is a line whose first non-blank character is '#'.
	LineComment
	// LineRecord is a candidate binding record.
	LineRecord
)

// Line is one line of the mappings file carried through the whole pipeline.
// Raw text is preserved verbatim so blank and comment lines round-trip, and
// so invalid records can be echoed back in diagnostics.
//
// The binding fields are meaningful only for Kind == LineRecord and only to
// the extent no parse error occurred; consumers must check Diags before
// trusting them.
type Line struct {
	// Number is the 1-based position in the source file, the stable
	// identity used in diagnostics.
	Number int

	// Raw is the source text without its line terminator.
	Raw string

	// Kind tags the line variant.
	Kind LineKind

	// Page is the page identifier (free-form short string).
	Page string
	// Slot is the button number.
	Slot int
	// Trigger is the lower-cased button event identifier.
	Trigger string
	// Action is the lower-cased action identifier.
	Action string
	// Params is the ordered list of action parameters.
	Params []string

	// Diags collects validation findings attached to this line.
	Diags diagnostic.Diagnostics
}

// Classify tags a raw line by its structural role. The input must already
// have its line terminator stripped; interior whitespace is preserved so
// comments round-trip verbatim.
func Classify(raw string, number int) Line {
	trimmed := strings.TrimSpace(raw)

	switch {
	case trimmed == "":
		return Line{Number: number, Raw: raw, Kind: LineBlank}
	case strings.HasPrefix(trimmed, "#"):
		return Line{Number: number, Raw: raw, Kind: LineComment}
	default:
		return Line{Number: number, Raw: raw, Kind: LineRecord}
	}
}

// IsValid reports whether the line is an error-free record. Only valid
// records participate in reconciliation.
func (l *Line) IsValid() bool {
	return l.Kind == LineRecord && l.Diags.IsValid()
}

// FileParams returns the parameters that reference asset files, i.e. those
// ending in the configured suffix.
func (l *Line) FileParams(rules Rules) []string {
	var files []string
	for _, p := range l.Params {
		if strings.HasSuffix(p, rules.AssetSuffix) {
			files = append(files, p)
		}
	}

	return files
}

// Canonical returns the normalized re-serialization of a record:
// trimmed fields, lower-cased trigger and action, comma-joined. Fields that
// themselves contain a comma are re-quoted so the canonical line parses
// back to the same record.
func (l *Line) Canonical() string {
	var b strings.Builder
	b.WriteString(canonicalField(l.Page))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(l.Slot))
	b.WriteByte(',')
	b.WriteString(l.Trigger)
	b.WriteByte(',')
	b.WriteString(l.Action)

	for _, p := range l.Params {
		b.WriteByte(',')
		b.WriteString(canonicalField(p))
	}

	return b.String()
}

func canonicalField(s string) string {
	if strings.Contains(s, ",") {
		return `"` + s + `"`
	}

	return s
}
