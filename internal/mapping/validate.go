package mapping

import (
	"fmt"
	"sort"
	"strings"
)

// Validate checks a parsed record against the binding grammar and populates
// its diagnostics. All checks run independently so one pass surfaces every
// problem. Pure: no I/O, no state outside the line.
func Validate(line *Line, rules Rules) {
	if line.Kind != LineRecord {
		return
	}

	if len(line.Page) > rules.MaxPageNameLen {
		line.Diags.AddWarning(fmt.Sprintf("page name %q exceeds %d characters", line.Page, rules.MaxPageNameLen))
	}

	if unsafe := UnsafeChars(line.Page, rules); len(unsafe) > 0 {
		line.Diags.AddWarning(fmt.Sprintf("page name contains unsupported characters for LCD: [%s]", strings.Join(unsafe, " ")))
	}

	if !rules.ValidSlot(line.Slot) {
		line.Diags.AddError(fmt.Sprintf("invalid button number: %d (must be %d-%d)", line.Slot, rules.SlotMin, rules.SlotMax))
	}

	if !rules.ValidTrigger(line.Trigger) {
		line.Diags.AddError(fmt.Sprintf("invalid event: %q (must be one of: %s)", line.Trigger, strings.Join(rules.TriggerList(), ", ")))
	}

	spec, known := Actions[line.Action]
	if !known {
		line.Diags.AddError(fmt.Sprintf("invalid action: %q (must be one of: %s)", line.Action, strings.Join(ActionList(), ", ")))
		return
	}

	switch n := len(line.Params); {
	case n < spec.MinParams:
		line.Diags.AddError(fmt.Sprintf("action %q requires at least %d parameter(s) (%s), got %d", line.Action, spec.MinParams, spec.ParamDesc, n))
	case n > spec.MaxParams:
		line.Diags.AddError(fmt.Sprintf("action %q accepts at most %d parameter(s) (%s), got %d", line.Action, spec.MaxParams, spec.ParamDesc, n))
	}
}

// UnsafeChars returns the distinct characters of text outside the LCD-safe
// set (7-bit ASCII alphanumerics plus rules.SafePunct), sorted for stable
// diagnostics.
func UnsafeChars(text string, rules Rules) []string {
	seen := map[rune]struct{}{}
	for _, ch := range text {
		if isSafeChar(ch, rules) {
			continue
		}
		seen[ch] = struct{}{}
	}

	if len(seen) == 0 {
		return nil
	}

	out := make([]string, 0, len(seen))
	for ch := range seen {
		out = append(out, string(ch))
	}
	sort.Strings(out)

	return out
}

func isSafeChar(ch rune, rules Rules) bool {
	switch {
	case ch >= '0' && ch <= '9':
		return true
	case ch >= 'a' && ch <= 'z':
		return true
	case ch >= 'A' && ch <= 'Z':
		return true
	default:
		return strings.ContainsRune(rules.SafePunct, ch)
	}
}
