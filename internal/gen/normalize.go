package gen

import (
	"strings"

	"github.com/vintzvintz/soundboard/internal/mapping"
)

// Normalize strips the composer's own artifacts from a parsed line list so
// the generator can be re-run on its own output:
//
//   - the header block and its trailing blank line
//   - per-record annotation comments (missing file, unsafe characters,
//     duplicate assignment) and invalid-record error details
//   - the trailing unassigned-buttons summary block
//
// Quarantined "# INVALID:" lines are re-parsed from their embedded record
// text, so a record that has since become valid (say, the slot range grew)
// is resurrected, and one that is still broken is re-quarantined with fresh
// diagnostics instead of accumulating stale ones.
//
// Hand-written comments and blank lines are untouched.
func Normalize(lines []mapping.Line, rules mapping.Rules) []mapping.Line {
	out := make([]mapping.Line, 0, len(lines))
	inTrailer := false

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if line.Kind != mapping.LineComment {
			inTrailer = false
			out = append(out, line)
			continue
		}

		trimmed := strings.TrimSpace(line.Raw)

		if inTrailer && isTrailerEntry(trimmed) {
			continue
		}
		inTrailer = false

		switch {
		case trimmed == headerTitle || trimmed == headerFormat:
			// dropped, regenerated at the top
		case strings.HasPrefix(trimmed, headerGenPrefix):
			// drop the timestamp line and the blank separator after it
			if i+1 < len(lines) && lines[i+1].Kind == mapping.LineBlank {
				i++
			}
		case strings.HasPrefix(trimmed, warnMissingPrefix),
			strings.HasPrefix(trimmed, warnCharsPrefix),
			strings.HasPrefix(trimmed, warnDupPrefix),
			strings.HasPrefix(trimmed, errDetailPrefix):
			// stale annotations, recomputed from current state
		case strings.HasPrefix(trimmed, invalidPrefix):
			embedded := strings.TrimPrefix(trimmed, invalidPrefix)
			out = append(out, mapping.ParseLine(embedded, line.Number, rules))
		case isTrailerStart(lines, i):
			// drop the banner, title, closing banner, and the blank line
			// the composer put before the block
			if n := len(out); n > 0 && out[n-1].Kind == mapping.LineBlank {
				out = out[:n-1]
			}
			i += 2
			inTrailer = true
		default:
			out = append(out, line)
		}
	}

	return out
}

// isTrailerStart reports whether lines[i] begins the generated
// unassigned-buttons block: banner, title, banner.
func isTrailerStart(lines []mapping.Line, i int) bool {
	if i+2 >= len(lines) {
		return false
	}

	return strings.TrimSpace(lines[i].Raw) == banner &&
		strings.TrimSpace(lines[i+1].Raw) == unassignedTitle &&
		strings.TrimSpace(lines[i+2].Raw) == banner
}

// isTrailerEntry matches the per-page listing lines of the summary block.
func isTrailerEntry(trimmed string) bool {
	return strings.HasPrefix(trimmed, "# ") && strings.Contains(trimmed, ": buttons ")
}
