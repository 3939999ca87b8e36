package mapping

import "sort"

// ActionSpec describes the parameter contract of one binding action.
type ActionSpec struct {
	// MinParams is the minimum number of parameters the action accepts.
	MinParams int
	// MaxParams is the maximum number of parameters the action accepts.
	MaxParams int
	// ParamDesc names the expected parameters in diagnostics.
	ParamDesc string
}

// Actions is the fixed table of recognized binding actions. The set is
// defined by the firmware's player and is not configurable.
var Actions = map[string]ActionSpec{
	"stop":      {MinParams: 0, MaxParams: 0, ParamDesc: "no parameters"},
	"play":      {MinParams: 1, MaxParams: 1, ParamDesc: "file"},
	"play_cut":  {MinParams: 1, MaxParams: 1, ParamDesc: "file"},
	"play_lock": {MinParams: 1, MaxParams: 1, ParamDesc: "file"},
}

// Rules holds the hardware value domains a record is validated against.
// DefaultRules matches the firmware; a run configuration may override
// individual values.
type Rules struct {
	// Triggers is the set of recognized button event identifiers.
	Triggers map[string]struct{}

	// SlotMin and SlotMax bound the closed range of valid button numbers.
	SlotMin int
	SlotMax int

	// MaxPageNameLen is the longest page identifier the LCD can display
	// without truncation. Longer names are a warning, not an error.
	MaxPageNameLen int

	// SafePunct lists the punctuation characters (beyond ASCII
	// alphanumerics) the LCD charset can render.
	SafePunct string

	// AssetSuffix is the filename suffix that marks a parameter as an
	// asset-file reference.
	AssetSuffix string

	// OrphanPage is the literal page identifier assigned to synthesized
	// records for unreferenced asset files.
	OrphanPage string
}

// DefaultRules returns the fixed firmware domains: events press, long_press
// and release, buttons 1-12, page names up to 31 characters.
func DefaultRules() Rules {
	return Rules{
		Triggers: map[string]struct{}{
			"press":      {},
			"long_press": {},
			"release":    {},
		},
		SlotMin:        1,
		SlotMax:        12,
		MaxPageNameLen: 31,
		SafePunct:      " _-.()",
		AssetSuffix:    ".wav",
		OrphanPage:     "new",
	}
}

// ValidSlot reports whether n is inside the valid button range.
func (r Rules) ValidSlot(n int) bool {
	return r.SlotMin <= n && n <= r.SlotMax
}

// ValidTrigger reports whether t is a recognized event identifier.
func (r Rules) ValidTrigger(t string) bool {
	_, ok := r.Triggers[t]
	return ok
}

// SlotCount returns the number of slots per page.
func (r Rules) SlotCount() int {
	return r.SlotMax - r.SlotMin + 1
}

// TriggerList returns the recognized triggers sorted for stable diagnostics.
func (r Rules) TriggerList() []string {
	return sortedKeys(r.Triggers)
}

// ActionList returns the recognized actions sorted for stable diagnostics.
func ActionList() []string {
	return sortedKeys(Actions)
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
