package gen

import (
	"fmt"
	"strings"
	"time"

	"github.com/vintzvintz/soundboard/internal/mapping"
	"github.com/vintzvintz/soundboard/internal/reconcile"
)

// Marker text for lines the composer generates itself. Normalize recognizes
// these exact forms when re-reading a generated file.
const (
	headerTitle     = "# Soundboard Mappings"
	headerFormat    = "# Format: page_id,button,event,action,file"
	headerGenPrefix = "# Generated by sbgen on "

	banner          = "# ============================================================================"
	unassignedTitle = "# Unassigned buttons per page"

	invalidPrefix     = "# INVALID: "
	errDetailPrefix   = "#   -> "
	warnMissingPrefix = "# WARNING: file not found: "
	warnCharsPrefix   = "# WARNING: unsupported LCD characters: "
	warnDupPrefix     = "# WARNING: duplicate assignment for "
)

// Synthesized orphan records always bind the plain press/play pair; the user
// reassigns page and button manually.
const (
	orphanTrigger = "press"
	orphanAction  = "play"
)

// timestampLayout is the human-readable generation timestamp format.
const timestampLayout = "2006-01-02 15:04:05"

// Compose builds the full regenerated mappings file. lines must be in
// original order and already validated; res carries the reconciliation
// findings for the same line list. The result is the complete file content,
// ready for a single write.
//
// Compose mutates res only by registering the slots it assigns to
// synthesized orphan records, so they count toward page capacity.
func Compose(lines []mapping.Line, res *reconcile.Result, rules mapping.Rules, now time.Time) []byte {
	out := make([]string, 0, len(lines)+16)

	out = append(out,
		headerTitle,
		headerFormat,
		headerGenPrefix+now.Format(timestampLayout),
		"",
	)

	// Unsafe-character warnings are emitted once per distinct filename per
	// run, no matter how many records reference it.
	warned := map[string]struct{}{}

	for i := range lines {
		line := &lines[i]
		switch line.Kind {
		case mapping.LineBlank:
			out = append(out, "")
		case mapping.LineComment:
			out = append(out, line.Raw)
		case mapping.LineRecord:
			out = composeRecord(out, line, res, rules, warned)
		}
	}

	out = composeOrphans(out, res, rules, warned)
	out = composeUnassigned(out, res, rules)

	return []byte(strings.Join(out, "\n") + "\n")
}

func composeRecord(out []string, line *mapping.Line, res *reconcile.Result, rules mapping.Rules, warned map[string]struct{}) []string {
	if !line.Diags.IsValid() {
		// Quarantine invalid records for the user to fix later.
		out = append(out, invalidPrefix+line.Raw)
		for _, e := range line.Diags.Errors {
			out = append(out, errDetailPrefix+e.Message)
		}
		return out
	}

	for _, f := range line.FileParams(rules) {
		if res.IsMissing(f) {
			out = append(out, warnMissingPrefix+f)
		}
		out = warnUnsafeName(out, f, rules, warned)
	}

	if res.IsDuplicate(line) {
		out = append(out, fmt.Sprintf("%s%s/%d/%s", warnDupPrefix, line.Page, line.Slot, line.Trigger))
	}

	return append(out, line.Canonical())
}

// composeOrphans appends one synthesized record per unreferenced asset file,
// cycling button numbers through the valid range. More orphans than slots
// wrap back to the first button; the user reassigns pages manually.
func composeOrphans(out []string, res *reconcile.Result, rules mapping.Rules, warned map[string]struct{}) []string {
	if len(res.Orphans) == 0 {
		return out
	}

	out = append(out,
		"",
		banner,
		fmt.Sprintf("# New unmapped files (page='%s', adjust page_id and button manually)", rules.OrphanPage),
		banner,
		"",
	)

	slot := rules.SlotMin
	for _, f := range res.Orphans {
		out = warnUnsafeName(out, f, rules, warned)
		out = append(out, fmt.Sprintf("%s,%d,%s,%s,%s", rules.OrphanPage, slot, orphanTrigger, orphanAction, f))
		res.AssignSlot(rules.OrphanPage, slot)

		slot++
		if slot > rules.SlotMax {
			slot = rules.SlotMin
		}
	}

	return out
}

func composeUnassigned(out []string, res *reconcile.Result, rules mapping.Rules) []string {
	type pageFree struct {
		page string
		free []int
	}

	var pages []pageFree
	for _, p := range res.Pages() {
		free := res.UnassignedSlots(p, rules)
		if len(free) > 0 {
			pages = append(pages, pageFree{page: p, free: free})
		}
	}

	if len(pages) == 0 {
		return out
	}

	out = append(out, "", banner, unassignedTitle, banner)
	for _, pf := range pages {
		nums := make([]string, len(pf.free))
		for i, n := range pf.free {
			nums[i] = fmt.Sprintf("%d", n)
		}
		out = append(out, fmt.Sprintf("# %s: buttons %s", pf.page, strings.Join(nums, ", ")))
	}

	return out
}

func warnUnsafeName(out []string, filename string, rules mapping.Rules, warned map[string]struct{}) []string {
	if _, done := warned[filename]; done {
		return out
	}

	if unsafe := mapping.UnsafeChars(filename, rules); len(unsafe) > 0 {
		out = append(out, warnCharsPrefix+"["+strings.Join(unsafe, " ")+"]")
		warned[filename] = struct{}{}
	}

	return out
}
