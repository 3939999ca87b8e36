package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vintzvintz/soundboard/internal/metrics"
)

var flagMetricsOut string

var metricsCmd = &cobra.Command{
	Use:   "metrics [path]",
	Short: "Generate a code metrics report (requires cloc and lizard)",
	Long: `Runs cloc and lizard over the given source tree (default: current
directory) and prints a sectioned report: SLOC summary, largest files,
most complex functions, per-directory averages, and quality thresholds.
Each run appends a snapshot to <path>/.metrics for trend history.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMetrics,
}

func init() {
	metricsCmd.Flags().StringVar(&flagMetricsOut, "output", "", "write the report to a file instead of stdout")
}

func runMetrics(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	if err := metrics.CheckTools(); err != nil {
		return err
	}

	reporter := metrics.Reporter{
		Root:   root,
		Out:    cmd.OutOrStdout(),
		Styled: stdoutIsTerminal(),
	}

	if flagMetricsOut != "" {
		f, err := os.Create(flagMetricsOut)
		if err != nil {
			return err
		}
		defer f.Close()
		reporter.Out = f
		reporter.Styled = false
	}

	return reporter.Report()
}

func stdoutIsTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}

	return fi.Mode()&os.ModeCharDevice != 0
}
