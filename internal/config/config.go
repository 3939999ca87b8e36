// Package config loads the optional sbgen.yaml run configuration. Every
// value has a firmware-matching default, so the tool runs with no
// configuration file at all.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vintzvintz/soundboard/internal/mapping"
)

// DefaultFilename is the configuration file looked up in the working
// directory when no explicit path is given.
const DefaultFilename = "sbgen.yaml"

// Config is the root of the YAML run configuration.
type Config struct {
	// Dir is the soundboard directory holding the mappings file and the
	// sound assets (default "soundboard").
	Dir string `yaml:"dir,omitempty"`

	// Input is the mappings file name, relative to Dir (default
	// "mappings.csv").
	Input string `yaml:"input,omitempty"`

	// Output is the regenerated mappings file name, relative to Dir
	// (default "mappings_generated.csv").
	Output string `yaml:"output,omitempty"`

	// SheetDir is the output directory for the HTML mapping sheets,
	// relative to the working directory (default: Dir).
	SheetDir string `yaml:"sheet_dir,omitempty"`

	// Rules overrides individual hardware value domains. Unset values
	// keep the firmware defaults.
	Rules RulesConfig `yaml:"rules,omitempty"`
}

// RulesConfig mirrors mapping.Rules for YAML override purposes. Zero values
// mean "keep the default".
type RulesConfig struct {
	// Triggers replaces the recognized event identifiers.
	Triggers []string `yaml:"triggers,omitempty"`

	// SlotMin and SlotMax bound the valid button range.
	SlotMin int `yaml:"slot_min,omitempty"`
	SlotMax int `yaml:"slot_max,omitempty"`

	// MaxPageNameLen is the LCD display limit for page identifiers.
	MaxPageNameLen int `yaml:"max_page_name_length,omitempty"`

	// SafePunct lists punctuation allowed in labels beyond alphanumerics.
	SafePunct string `yaml:"safe_punctuation,omitempty"`

	// AssetSuffix marks parameters as asset-file references.
	AssetSuffix string `yaml:"asset_suffix,omitempty"`

	// OrphanPage is the page identifier for synthesized records.
	OrphanPage string `yaml:"orphan_page,omitempty"`
}

// Load reads the configuration file at path. A missing file is not an
// error: all defaults apply.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := &Config{}
			applyDefaults(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if cfg.Rules.SlotMin > cfg.Rules.SlotMax {
		return nil, fmt.Errorf("invalid slot range %d-%d", cfg.Rules.SlotMin, cfg.Rules.SlotMax)
	}

	return &cfg, nil
}

// applyDefaults fills in default values for unset fields.
func applyDefaults(cfg *Config) {
	if cfg.Dir == "" {
		cfg.Dir = "soundboard"
	}
	if cfg.Input == "" {
		cfg.Input = "mappings.csv"
	}
	if cfg.Output == "" {
		cfg.Output = "mappings_generated.csv"
	}
	if cfg.SheetDir == "" {
		cfg.SheetDir = cfg.Dir
	}

	def := mapping.DefaultRules()
	r := &cfg.Rules
	if len(r.Triggers) == 0 {
		r.Triggers = def.TriggerList()
	}
	if r.SlotMin == 0 {
		r.SlotMin = def.SlotMin
	}
	if r.SlotMax == 0 {
		r.SlotMax = def.SlotMax
	}
	if r.MaxPageNameLen == 0 {
		r.MaxPageNameLen = def.MaxPageNameLen
	}
	if r.SafePunct == "" {
		r.SafePunct = def.SafePunct
	}
	if r.AssetSuffix == "" {
		r.AssetSuffix = def.AssetSuffix
	}
	if r.OrphanPage == "" {
		r.OrphanPage = def.OrphanPage
	}
}

// MappingRules converts the configuration into the validation domains.
func (c *Config) MappingRules() mapping.Rules {
	triggers := make(map[string]struct{}, len(c.Rules.Triggers))
	for _, t := range c.Rules.Triggers {
		triggers[t] = struct{}{}
	}

	return mapping.Rules{
		Triggers:       triggers,
		SlotMin:        c.Rules.SlotMin,
		SlotMax:        c.Rules.SlotMax,
		MaxPageNameLen: c.Rules.MaxPageNameLen,
		SafePunct:      c.Rules.SafePunct,
		AssetSuffix:    c.Rules.AssetSuffix,
		OrphanPage:     c.Rules.OrphanPage,
	}
}
