// Package reconcile cross-references the parsed mapping set against the
// on-disk asset inventory.
//
// Key capabilities:
//   - Missing references: files named by valid records but absent from disk
//   - Orphan assets: files on disk with no referencing valid record
//   - Duplicate (page, button, event) slot assignments
//   - Per-page unassigned-slot capacity
//
// All outputs are pure functions of the full record list and the inventory,
// recomputed once per run; there is no incremental update model.
package reconcile

import (
	"sort"

	"github.com/vintzvintz/soundboard/internal/mapping"
	"github.com/vintzvintz/soundboard/internal/scan"
)

// SlotKey is the uniqueness key of a binding. Two error-free records sharing
// a SlotKey is a run-level warning, not a parse error.
type SlotKey struct {
	Page    string
	Slot    int
	Trigger string
}

// Result holds the computed cross-references for one run.
type Result struct {
	// Referenced is the set of asset filenames appearing as parameters of
	// error-free records.
	Referenced map[string]struct{}

	// Missing lists referenced-but-absent filenames, sorted.
	Missing []string

	// Orphans lists present-but-unreferenced filenames, sorted.
	Orphans []string

	// Duplicates maps each SlotKey claimed by more than one valid record
	// to the claiming line numbers, in input order.
	Duplicates map[SlotKey][]int

	// PageSlots maps each page identifier to the set of slots assigned by
	// valid records.
	PageSlots map[string]map[int]struct{}
}

// Reconcile runs the cross-referencing pass. Only error-free records
// contribute; invalid records are already excluded from the model and their
// file parameters count as unreferenced.
func Reconcile(lines []mapping.Line, inv scan.Inventory, rules mapping.Rules) Result {
	res := Result{
		Referenced: map[string]struct{}{},
		Duplicates: map[SlotKey][]int{},
		PageSlots:  map[string]map[int]struct{}{},
	}

	claims := map[SlotKey][]int{}

	for i := range lines {
		line := &lines[i]
		if !line.IsValid() {
			continue
		}

		for _, f := range line.FileParams(rules) {
			res.Referenced[f] = struct{}{}
		}

		key := SlotKey{Page: line.Page, Slot: line.Slot, Trigger: line.Trigger}
		claims[key] = append(claims[key], line.Number)

		slots := res.PageSlots[line.Page]
		if slots == nil {
			slots = map[int]struct{}{}
			res.PageSlots[line.Page] = slots
		}
		slots[line.Slot] = struct{}{}
	}

	for key, numbers := range claims {
		if len(numbers) > 1 {
			res.Duplicates[key] = numbers
		}
	}

	for f := range res.Referenced {
		if !inv.Contains(f) {
			res.Missing = append(res.Missing, f)
		}
	}
	sort.Strings(res.Missing)

	for f := range inv {
		if _, ok := res.Referenced[f]; !ok {
			res.Orphans = append(res.Orphans, f)
		}
	}
	sort.Strings(res.Orphans)

	return res
}

// IsMissing reports whether filename is referenced but absent from disk.
func (r *Result) IsMissing(filename string) bool {
	for _, f := range r.Missing {
		if f == filename {
			return true
		}
	}

	return false
}

// IsDuplicate reports whether the record's SlotKey is claimed by more than
// one valid record.
func (r *Result) IsDuplicate(line *mapping.Line) bool {
	_, ok := r.Duplicates[SlotKey{Page: line.Page, Slot: line.Slot, Trigger: line.Trigger}]
	return ok
}

// DuplicateKeys returns the duplicate SlotKeys sorted by page, slot, trigger
// for stable reporting.
func (r *Result) DuplicateKeys() []SlotKey {
	keys := make([]SlotKey, 0, len(r.Duplicates))
	for k := range r.Duplicates {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Page != keys[j].Page {
			return keys[i].Page < keys[j].Page
		}
		if keys[i].Slot != keys[j].Slot {
			return keys[i].Slot < keys[j].Slot
		}
		return keys[i].Trigger < keys[j].Trigger
	})

	return keys
}

// Pages returns the page identifiers seen in valid records, sorted.
func (r *Result) Pages() []string {
	pages := make([]string, 0, len(r.PageSlots))
	for p := range r.PageSlots {
		pages = append(pages, p)
	}
	sort.Strings(pages)

	return pages
}

// UnassignedSlots returns the slot numbers of page with no binding, sorted.
// This is the page's remaining capacity.
func (r *Result) UnassignedSlots(page string, rules mapping.Rules) []int {
	assigned := r.PageSlots[page]

	var free []int
	for n := rules.SlotMin; n <= rules.SlotMax; n++ {
		if _, ok := assigned[n]; !ok {
			free = append(free, n)
		}
	}

	return free
}

// AssignSlot records an additional slot assignment on page, so synthesized
// records participate in capacity reporting like authored ones.
func (r *Result) AssignSlot(page string, slot int) {
	slots := r.PageSlots[page]
	if slots == nil {
		slots = map[int]struct{}{}
		r.PageSlots[page] = slots
	}
	slots[slot] = struct{}{}
}
