// Package sheet renders printable and browsable HTML views of the validated
// mapping model: one fixed 4x3 button grid per page, in three presentation
// variants (print, desktop, mobile).
//
// The renderer is a pure consumer: it never re-validates, and it silently
// drops any record without a filename parameter (stop bindings still
// register their page so an all-stop page renders as an empty grid).
package sheet

import (
	"strings"

	"github.com/vintzvintz/soundboard/internal/mapping"
)

// buttonRows is the physical grid layout, top row first. Button 1 sits at
// the bottom left of the device, so rows render in descending order.
var buttonRows = [4][3]int{
	{10, 11, 12},
	{7, 8, 9},
	{4, 5, 6},
	{1, 2, 3},
}

// Sheet is the page-grouped view of the valid mapping set.
type Sheet struct {
	// Labels maps page id -> button number -> display label.
	Labels map[string]map[int]string
	// Order lists page ids in first-seen order.
	Order []string
}

// Build groups valid records by page in first-seen order. The first record
// per button wins; labels are the filename parameter with the asset suffix
// stripped.
func Build(lines []mapping.Line, rules mapping.Rules) *Sheet {
	s := &Sheet{Labels: map[string]map[int]string{}}

	for i := range lines {
		line := &lines[i]
		if !line.IsValid() {
			continue
		}

		labels, seen := s.Labels[line.Page]
		if !seen {
			labels = map[int]string{}
			s.Labels[line.Page] = labels
			s.Order = append(s.Order, line.Page)
		}

		if len(line.Params) == 0 || line.Params[0] == "" {
			continue
		}
		if _, taken := labels[line.Slot]; taken {
			continue
		}

		labels[line.Slot] = displayLabel(line.Params[0], rules)
	}

	return s
}

func displayLabel(filename string, rules mapping.Rules) string {
	if strings.HasSuffix(strings.ToLower(filename), rules.AssetSuffix) {
		return filename[:len(filename)-len(rules.AssetSuffix)]
	}

	return filename
}
