// Package main provides the sbgen CLI.
//
// sbgen maintains the soundboard's button-to-sound mapping table:
//   - Reconciles mappings.csv against the .wav files on disk
//   - Validates every binding and annotates problems in place
//   - Regenerates a canonical, self-describing mappings file
//   - Renders printable HTML mapping sheets
//   - Reports code metrics for the firmware tree
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sbgen",
	Short: "sbgen - soundboard mapping maintenance tool",
	Long: `sbgen reconciles the human-maintained soundboard mapping table against
the sound files actually present on disk.

Valid bindings pass through in canonical form, invalid ones are commented
out with inline diagnostics, unmapped sound files get fresh bindings, and
every page's remaining capacity is summarized at the end. The run never
fails on bad content: every problem becomes a visible, actionable comment
in the regenerated file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to sbgen.yaml (default: ./sbgen.yaml if present)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(sheetCmd)
	rootCmd.AddCommand(metricsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
