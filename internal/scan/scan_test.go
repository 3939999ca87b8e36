package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}

func TestAssets_FiltersBySuffix(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.wav")
	writeFile(t, dir, "b.wav")
	writeFile(t, dir, "notes.txt")
	writeFile(t, dir, "mappings.csv")

	inv, err := Assets(dir, ".wav")
	require.NoError(t, err)

	assert.Equal(t, []string{"a.wav", "b.wav"}, inv.Sorted())
	assert.True(t, inv.Contains("a.wav"))
	assert.False(t, inv.Contains("notes.txt"))
}

func TestAssets_NonRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "top.wav")
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, sub, "deep.wav")

	inv, err := Assets(dir, ".wav")
	require.NoError(t, err)

	assert.Equal(t, []string{"top.wav"}, inv.Sorted(), "subdirectories are not scanned")
}

func TestAssets_MissingDir(t *testing.T) {
	inv, err := Assets(filepath.Join(t.TempDir(), "nope"), ".wav")
	require.NoError(t, err)
	assert.Empty(t, inv)
}

func TestAssets_IgnoresDirsMatchingSuffix(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "weird.wav"), 0o755))

	inv, err := Assets(dir, ".wav")
	require.NoError(t, err)
	assert.Empty(t, inv)
}
