package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vintzvintz/soundboard/internal/gen"
	"github.com/vintzvintz/soundboard/internal/sheet"
)

var flagSheetDir string

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Render HTML mapping sheets (print, desktop, mobile)",
	Long: `Renders the valid bindings as HTML button-grid sheets, one 4x3 grid per
page: an A4-landscape print variant, a desktop variant, and a single-column
mobile variant. Bindings without a sound file are skipped.`,
	RunE: runSheet,
}

func init() {
	sheetCmd.Flags().StringVar(&flagDir, "dir", "", "soundboard directory (default from config)")
	sheetCmd.Flags().StringVar(&flagInput, "input", "", "input mappings file name")
	sheetCmd.Flags().StringVar(&flagSheetDir, "out-dir", "", "output directory for the HTML files")
}

func runSheet(cmd *cobra.Command, args []string) error {
	cfg, err := loadRun()
	if err != nil {
		return err
	}
	if flagSheetDir != "" {
		cfg.SheetDir = flagSheetDir
	}
	rules := cfg.MappingRules()

	lines, _, _, err := loadModel(cfg)
	if err != nil {
		return err
	}

	model := sheet.Build(lines, rules)
	logger.Debug("built sheet model", zap.Int("pages", len(model.Order)))

	files, err := sheet.Generate(model)
	if err != nil {
		return err
	}

	for _, f := range files {
		path := filepath.Join(cfg.SheetDir, f.Name)
		if err := gen.WriteFile(path, f.Content); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Generated: %s\n", path)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Parsed %d page(s)\n", len(model.Order))

	return nil
}
