package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vintzvintz/soundboard/internal/diagnostic"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the mappings file without writing anything",
	Long: `Parses and validates the mappings file and cross-references it against the
wav files on disk, printing every finding with its line number. Exits with
a non-zero status when any binding has errors. No file is written.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&flagDir, "dir", "", "soundboard directory (default from config)")
	checkCmd.Flags().StringVar(&flagInput, "input", "", "input mappings file name")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadRun()
	if err != nil {
		return err
	}

	lines, res, inv, err := loadModel(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var report diagnostic.Diagnostics
	badRecords := 0

	for i := range lines {
		line := &lines[i]
		if line.Diags.HasErrors() {
			badRecords++
			fmt.Fprintf(out, "ERROR line %d: %s\n", line.Number, line.Raw)
			for _, d := range line.Diags.Errors {
				fmt.Fprintf(out, "  -> %s\n", d.Message)
			}
		}
		for _, d := range line.Diags.Warnings {
			fmt.Fprintf(out, "WARNING line %d: %s\n", line.Number, line.Raw)
			fmt.Fprintf(out, "  -> %s\n", d.Message)
		}
		report.Merge(line.Diags)
	}

	for _, f := range res.Missing {
		fmt.Fprintf(out, "WARNING: referenced file not found: %s\n", f)
	}
	for _, f := range res.Orphans {
		fmt.Fprintf(out, "WARNING: unmapped file: %s\n", f)
	}
	for _, key := range res.DuplicateKeys() {
		fmt.Fprintf(out, "WARNING: %s/%d/%s assigned on lines %v\n",
			key.Page, key.Slot, key.Trigger, res.Duplicates[key])
	}

	fmt.Fprintf(out, "\n%d wav file(s), %d referenced, %d record(s) with errors\n",
		len(inv), len(res.Referenced), badRecords)

	if report.HasErrors() {
		return fmt.Errorf("%d record(s) with errors: %w", badRecords, report.Error())
	}

	return nil
}
