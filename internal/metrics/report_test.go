package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const byFileSample = `-------------------------------------------------------------------------------
File                                    blank        comment           code
-------------------------------------------------------------------------------
internal/gen/composer.go                   30             20            180
internal/mapping/parse.go                  22             15            140
README.md                                  10              0             40
-------------------------------------------------------------------------------
SUM:                                       62             35            360
-------------------------------------------------------------------------------
`

func stubRunner(t *testing.T) CommandRunner {
	t.Helper()
	return func(name string, args ...string) (string, error) {
		switch {
		case name == "cloc" && len(args) == 3 && args[2] == "--by-file":
			return byFileSample, nil
		case name == "cloc":
			return clocSample, nil
		case name == "lizard":
			return lizardSample, nil
		}
		t.Fatalf("unexpected command: %s %v", name, args)
		return "", nil
	}
}

func newTestReporter(t *testing.T, out *strings.Builder) *Reporter {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "internal"), 0o755))

	return &Reporter{
		Root:        root,
		SnapshotDir: filepath.Join(root, ".metrics"),
		Out:         out,
		Run:         stubRunner(t),
		now:         func() time.Time { return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC) },
	}
}

func TestReport_Sections(t *testing.T) {
	var out strings.Builder
	r := newTestReporter(t, &out)

	require.NoError(t, r.Report())
	text := out.String()

	for _, section := range []string{
		"Soundboard Project - Code Metrics Report",
		"Lines of Code Summary (by Language)",
		"Top 15 Largest Files",
		"Top 10 Most Complex Functions",
		"High Complexity Functions (CCN > 15)",
		"Average Complexity by Directory",
		"Code Quality Metrics",
		"Metrics History",
	} {
		assert.Contains(t, text, section)
	}

	assert.Contains(t, text, "Generated: 2025-03-14 09:30:00")
	assert.Contains(t, text, "Total Code Lines:         692")
	assert.Contains(t, text, "Average CCN:              6.3")
}

func TestReport_LargestFilesSkipsNonGo(t *testing.T) {
	var out strings.Builder
	r := newTestReporter(t, &out)

	require.NoError(t, r.Report())

	assert.Contains(t, out.String(), "internal/gen/composer.go")
	assert.NotContains(t, out.String(), "README.md")
}

func TestReport_QualityChecks(t *testing.T) {
	var out strings.Builder
	r := newTestReporter(t, &out)

	require.NoError(t, r.Report())
	text := out.String()

	// 85 comment lines over 692 code lines is below the 20% target.
	assert.Contains(t, text, "Comment ratio:            12.3%")
	assert.Contains(t, text, "⚠ Comment ratio below 20%")
	assert.Contains(t, text, "✓ Average complexity acceptable (<=10)")
	assert.Contains(t, text, "✓ No functions with CCN > 15")
}

func TestReport_PerDirectory(t *testing.T) {
	var out strings.Builder
	r := newTestReporter(t, &out)
	require.NoError(t, os.MkdirAll(filepath.Join(r.Root, ".git"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(r.Root, "_examples"), 0o755))

	lizardDirs := map[string]bool{}
	inner := r.Run
	r.Run = func(name string, args ...string) (string, error) {
		if name == "lizard" && len(args) == 1 {
			lizardDirs[filepath.Base(args[0])] = true
		}
		return inner(name, args...)
	}

	require.NoError(t, r.Report())

	assert.True(t, lizardDirs["internal"])
	assert.False(t, lizardDirs[".git"], "hidden directories are skipped")
	assert.False(t, lizardDirs["_examples"], "underscore directories are skipped")
}

func TestReport_HistoryTable(t *testing.T) {
	var out strings.Builder
	r := newTestReporter(t, &out)
	when := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	r.now = func() time.Time { return when }

	require.NoError(t, r.Report())
	assert.NotContains(t, out.String(), "Recent History:", "a single snapshot has no history to show")

	out.Reset()
	when = when.Add(24 * time.Hour)
	require.NoError(t, r.Report())

	text := out.String()
	assert.Contains(t, text, "Recent History:")
	assert.Contains(t, text, "20250314 09:30")
	assert.Contains(t, text, "20250315 09:30")
}

func TestSaveSnapshot_SortedKeys(t *testing.T) {
	dir := t.TempDir()
	when := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	name, err := SaveSnapshot(dir, when, map[string]string{
		"total_code": "692",
		"avg_ccn":    "6.3",
		"high_count": "0",
	})
	require.NoError(t, err)
	assert.Equal(t, "snapshot_20250314_093000.txt", name)

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t,
		"timestamp=20250314_093000\navg_ccn=6.3\nhigh_count=0\ntotal_code=692\n",
		string(data))
}

func TestLoadSnapshots_NewestFirstWithLimit(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		_, err := SaveSnapshot(dir, base.AddDate(0, 0, i), map[string]string{"total_code": "1"})
		require.NoError(t, err)
	}

	snaps := LoadSnapshots(dir, 3)
	require.Len(t, snaps, 3)
	assert.Equal(t, "20250313_120000", snaps[0].Timestamp)
	assert.Equal(t, "20250311_120000", snaps[2].Timestamp)
	assert.Equal(t, "1", snaps[0].Values["total_code"])
}

func TestLoadSnapshots_MissingDir(t *testing.T) {
	assert.Empty(t, LoadSnapshots(filepath.Join(t.TempDir(), "nope"), 5))
}

func TestSnapshot_DisplayTime(t *testing.T) {
	assert.Equal(t, "20250314 09:30", Snapshot{Timestamp: "20250314_093000"}.DisplayTime())
	assert.Equal(t, "garbled", Snapshot{Timestamp: "garbled"}.DisplayTime())
}
