package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vintzvintz/soundboard/internal/config"
	"github.com/vintzvintz/soundboard/internal/gen"
	"github.com/vintzvintz/soundboard/internal/mapping"
	"github.com/vintzvintz/soundboard/internal/reconcile"
	"github.com/vintzvintz/soundboard/internal/scan"
)

var (
	flagDir    string
	flagInput  string
	flagOutput string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate the mappings file from mappings.csv and the wav files on disk",
	Long: `Parses the existing mappings file, validates every binding, cross-references
the referenced files against the soundboard directory, and writes the
regenerated table:

  - valid bindings in canonical form, annotated where files are missing,
    filenames carry LCD-unsafe characters, or slots are double-assigned
  - invalid bindings commented out with their diagnostics
  - new bindings appended for every unmapped wav file
  - a closing summary of each page's unassigned buttons

The output is written atomically; the input file is never modified.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&flagDir, "dir", "", "soundboard directory (default from config)")
	generateCmd.Flags().StringVar(&flagInput, "input", "", "input mappings file name")
	generateCmd.Flags().StringVar(&flagOutput, "output", "", "output mappings file name")
}

// loadRun resolves configuration: sbgen.yaml (if any) overridden by flags.
func loadRun() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultFilename
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if flagDir != "" {
		cfg.Dir = flagDir
		cfg.SheetDir = flagDir
	}
	if flagInput != "" {
		cfg.Input = flagInput
	}
	if flagOutput != "" {
		cfg.Output = flagOutput
	}

	return cfg, nil
}

// loadModel parses the mappings file, strips prior generated artifacts, and
// reconciles against the asset inventory.
func loadModel(cfg *config.Config) ([]mapping.Line, reconcile.Result, scan.Inventory, error) {
	rules := cfg.MappingRules()

	inputPath := filepath.Join(cfg.Dir, cfg.Input)
	lines, err := mapping.LoadFile(inputPath, rules)
	if err != nil {
		return nil, reconcile.Result{}, nil, err
	}
	lines = gen.Normalize(lines, rules)

	inv, err := scan.Assets(cfg.Dir, rules.AssetSuffix)
	if err != nil {
		return nil, reconcile.Result{}, nil, err
	}

	res := reconcile.Reconcile(lines, inv, rules)

	return lines, res, inv, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadRun()
	if err != nil {
		return err
	}
	rules := cfg.MappingRules()

	lines, res, inv, err := loadModel(cfg)
	if err != nil {
		return err
	}

	logger.Info("reconciled mappings",
		zap.String("dir", cfg.Dir),
		zap.Int("wav_files", len(inv)),
		zap.Int("referenced", len(res.Referenced)),
		zap.Int("missing", len(res.Missing)),
		zap.Int("orphans", len(res.Orphans)),
		zap.Int("duplicate_slots", len(res.Duplicates)))

	logDiagnostics(lines)

	for _, f := range res.Missing {
		logger.Warn("referenced file not found", zap.String("file", f))
	}
	for _, key := range res.DuplicateKeys() {
		logger.Warn("duplicate slot assignment",
			zap.String("page", key.Page),
			zap.Int("button", key.Slot),
			zap.String("event", key.Trigger),
			zap.Ints("lines", res.Duplicates[key]))
	}

	out := gen.Compose(lines, &res, rules, time.Now())

	outputPath := filepath.Join(cfg.Dir, cfg.Output)
	if err := gen.WriteFile(outputPath, out); err != nil {
		return err
	}

	valid := 0
	for i := range lines {
		if lines[i].IsValid() {
			valid++
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated: %s\n", outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Existing mappings: %d\n", valid)
	fmt.Fprintf(cmd.OutOrStdout(), "New mappings added: %d\n", len(res.Orphans))

	if len(res.Missing) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\nACTION REQUIRED: %d referenced file(s) not found!\n", len(res.Missing))
	}
	if len(res.Orphans) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\nACTION REQUIRED: review new mappings and assign page and button numbers\n")
	}

	return nil
}

func logDiagnostics(lines []mapping.Line) {
	for i := range lines {
		line := &lines[i]
		for _, d := range line.Diags.Errors {
			logger.Warn("invalid mapping",
				zap.Int("line", line.Number),
				zap.String("text", line.Raw),
				zap.String("error", d.Message))
		}
		for _, d := range line.Diags.Warnings {
			logger.Warn("mapping warning",
				zap.Int("line", line.Number),
				zap.String("text", line.Raw),
				zap.String("warning", d.Message))
		}
	}
}
