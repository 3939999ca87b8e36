package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vintzvintz/soundboard/internal/mapping"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "soundboard", cfg.Dir)
	assert.Equal(t, "mappings.csv", cfg.Input)
	assert.Equal(t, "mappings_generated.csv", cfg.Output)
	assert.Equal(t, "soundboard", cfg.SheetDir)
	assert.Equal(t, 1, cfg.Rules.SlotMin)
	assert.Equal(t, 12, cfg.Rules.SlotMax)
	assert.Equal(t, 31, cfg.Rules.MaxPageNameLen)
	assert.Equal(t, ".wav", cfg.Rules.AssetSuffix)
	assert.Equal(t, "new", cfg.Rules.OrphanPage)
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sbgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dir: sounds\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sounds", cfg.Dir)
	assert.Equal(t, "sounds", cfg.SheetDir, "sheet_dir defaults to dir")
}

func TestParse_PartialOverrides(t *testing.T) {
	cfg, err := Parse([]byte(`
input: custom.csv
rules:
  slot_max: 16
  orphan_page: inbox
`))
	require.NoError(t, err)

	assert.Equal(t, "custom.csv", cfg.Input)
	assert.Equal(t, "soundboard", cfg.Dir)
	assert.Equal(t, 16, cfg.Rules.SlotMax)
	assert.Equal(t, 1, cfg.Rules.SlotMin)
	assert.Equal(t, "inbox", cfg.Rules.OrphanPage)
}

func TestParse_InvalidSlotRange(t *testing.T) {
	_, err := Parse([]byte("rules:\n  slot_min: 9\n  slot_max: 4\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid slot range 9-4")
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("dir: [unterminated\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestMappingRules(t *testing.T) {
	cfg, err := Parse([]byte(`
rules:
  triggers: [tap, hold]
  slot_max: 8
`))
	require.NoError(t, err)

	rules := cfg.MappingRules()
	assert.True(t, rules.ValidTrigger("tap"))
	assert.False(t, rules.ValidTrigger("press"))
	assert.True(t, rules.ValidSlot(8))
	assert.False(t, rules.ValidSlot(9))
}

func TestMappingRules_DefaultsMatchFirmware(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	def := mapping.DefaultRules()
	got := cfg.MappingRules()
	assert.Equal(t, def.TriggerList(), got.TriggerList())
	assert.Equal(t, def.SlotMin, got.SlotMin)
	assert.Equal(t, def.SlotMax, got.SlotMax)
}
