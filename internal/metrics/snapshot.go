package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// snapshotLayout names snapshot files so lexical order is chronological.
const snapshotLayout = "20060102_150405"

// Snapshot is one persisted metrics data point.
type Snapshot struct {
	Timestamp string
	Values    map[string]string
}

// SaveSnapshot persists the metrics as key=value lines under dir and
// returns the snapshot filename.
func SaveSnapshot(dir string, now time.Time, values map[string]string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating metrics directory: %w", err)
	}

	ts := now.Format(snapshotLayout)
	name := "snapshot_" + ts + ".txt"

	var b strings.Builder
	b.WriteString("timestamp=" + ts + "\n")

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(k + "=" + values[k] + "\n")
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing snapshot: %w", err)
	}

	return name, nil
}

// LoadSnapshots returns up to limit recent snapshots, newest first.
// Unparseable files are skipped.
func LoadSnapshots(dir string, limit int) []Snapshot {
	matches, err := filepath.Glob(filepath.Join(dir, "snapshot_*.txt"))
	if err != nil || len(matches) == 0 {
		return nil
	}

	sort.Sort(sort.Reverse(sort.StringSlice(matches)))
	if len(matches) > limit {
		matches = matches[:limit]
	}

	var snaps []Snapshot
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		snap := Snapshot{Values: map[string]string{}}
		for _, line := range strings.Split(string(data), "\n") {
			key, value, found := strings.Cut(strings.TrimSpace(line), "=")
			if !found {
				continue
			}
			if key == "timestamp" {
				snap.Timestamp = value
				continue
			}
			snap.Values[key] = value
		}

		snaps = append(snaps, snap)
	}

	return snaps
}

// DisplayTime reformats a snapshot timestamp for the history table.
func (s Snapshot) DisplayTime() string {
	t, err := time.Parse(snapshotLayout, s.Timestamp)
	if err != nil {
		return s.Timestamp
	}

	return t.Format("20060102 15:04")
}
