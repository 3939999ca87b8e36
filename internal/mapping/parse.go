package mapping

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// minFields is the smallest well-formed record: page, slot, trigger, action.
const minFields = 4

// ParseLine classifies one raw line and, for record candidates, tokenizes
// and validates it. The returned Line may carry errors; parsing never fails
// as a whole.
func ParseLine(raw string, number int, rules Rules) Line {
	line := Classify(raw, number)
	if line.Kind != LineRecord {
		return line
	}

	fields := splitFields(strings.TrimSpace(raw))
	if len(fields) < minFields {
		line.Diags.AddError(fmt.Sprintf("too few fields: expected at least %d, got %d", minFields, len(fields)))
		return line
	}

	line.Page = strings.TrimSpace(fields[0])

	slot, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		line.Diags.AddError(fmt.Sprintf("invalid button number: %q", fields[1]))
		return line
	}
	line.Slot = slot

	line.Trigger = strings.ToLower(strings.TrimSpace(fields[2]))
	line.Action = strings.ToLower(strings.TrimSpace(fields[3]))

	for _, f := range fields[minFields:] {
		line.Params = append(line.Params, strings.TrimSpace(f))
	}

	Validate(&line, rules)

	return line
}

// splitFields splits a record line on commas, honoring quoted spans.
// A '"' toggles quoting: commas inside a quoted span do not split, and the
// quote characters themselves are dropped. There is no escape for a literal
// quote.
func splitFields(s string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range s {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}

	fields = append(fields, current.String())

	return fields
}

// Parse reads a whole mappings file, yielding one Line per input line in
// order. Line numbers are 1-based.
func Parse(r io.Reader, rules Rules) ([]Line, error) {
	var lines []Line

	scanner := bufio.NewScanner(r)
	number := 0
	for scanner.Scan() {
		number++
		raw := strings.TrimRight(scanner.Text(), "\r")
		lines = append(lines, ParseLine(raw, number, rules))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mappings: %w", err)
	}

	return lines, nil
}

// LoadFile parses the mappings file at path. A missing file is not an
// error: the generator bootstraps an initial file from the asset directory
// alone, so absence maps to an empty line list.
func LoadFile(path string, rules Rules) ([]Line, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read mappings file %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, rules)
}
