// Package scan builds the asset inventory: the set of sound files actually
// present in the soundboard directory. The scan is non-recursive and only
// stats directory entries; file contents are never read.
package scan

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Inventory is the set of asset filenames found on disk. Filenames are the
// join key with record parameters, so entries are bare names, not paths.
type Inventory map[string]struct{}

// Assets lists the files directly under dir whose name ends in suffix.
// A missing directory yields an empty inventory: the mapping file may be
// authored before any sounds exist.
func Assets(dir, suffix string) (Inventory, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Inventory{}, nil
		}
		return nil, fmt.Errorf("scanning asset directory %s: %w", dir, err)
	}

	inv := make(Inventory, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		inv[e.Name()] = struct{}{}
	}

	return inv, nil
}

// Contains reports whether name is present in the inventory.
func (inv Inventory) Contains(name string) bool {
	_, ok := inv[name]
	return ok
}

// Sorted returns the inventory as a lexicographically sorted slice. The
// underlying set has no order; every surfaced listing must be stable across
// runs.
func (inv Inventory) Sorted() []string {
	names := make([]string, 0, len(inv))
	for name := range inv {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
