package metrics

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Reporter drives the external tools and writes the formatted report.
type Reporter struct {
	// Root is the source tree to analyze.
	Root string
	// SnapshotDir stores the metrics history (default "<Root>/.metrics").
	SnapshotDir string
	// Out receives the report text.
	Out io.Writer
	// Styled enables lipgloss-colored section headers; disable when the
	// report goes to a file.
	Styled bool
	// Run executes the external tools; nil uses os/exec.
	Run CommandRunner

	now func() time.Time
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

const highCCNThreshold = 15

// Report runs the full metrics pipeline: cloc and lizard over Root,
// formatted sections to Out, and a snapshot appended to the history.
func (r *Reporter) Report() error {
	if r.Run == nil {
		r.Run = execRunner
	}
	if r.SnapshotDir == "" {
		r.SnapshotDir = filepath.Join(r.Root, ".metrics")
	}
	if r.now == nil {
		r.now = time.Now
	}

	r.header("Soundboard Project - Code Metrics Report")
	r.printf("Generated: %s\n", r.now().Format("2006-01-02 15:04:05"))
	r.printf("Project: %s\n", r.Root)

	clocOut, err := r.Run("cloc", r.Root, "--quiet")
	if err != nil {
		return err
	}
	cloc := ParseClocSummary(clocOut)

	r.header("Lines of Code Summary (by Language)")
	r.printf("%s\n", clocOut)

	if err := r.largestFiles(); err != nil {
		return err
	}

	lizardOut, err := r.Run("lizard", r.Root, "--sort", "cyclomatic_complexity")
	if err != nil {
		return err
	}
	funcs := ParseLizardFunctions(lizardOut)
	summary := ParseLizardSummary(lizardOut)

	r.topFunctions(funcs)
	high := r.highComplexity(funcs)
	if err := r.perDirectory(); err != nil {
		return err
	}
	r.quality(cloc, summary, len(high))

	return r.history(cloc, summary, len(high))
}

func (r *Reporter) largestFiles() error {
	out, err := r.Run("cloc", r.Root, "--quiet", "--by-file")
	if err != nil {
		return err
	}

	r.header("Top 15 Largest Files")
	count := 0
	for _, line := range splitLines(out) {
		if !strings.Contains(line, ".go") {
			continue
		}
		r.printf("%s\n", line)
		count++
		if count == 15 {
			break
		}
	}

	return nil
}

func (r *Reporter) topFunctions(funcs []LizardFunction) {
	r.header("Top 10 Most Complex Functions")
	r.printf("\n%-6s  %-4s  Function@Location\n", "NLOC", "CCN")
	r.printf("%s  %s  %s\n", dashes(6), dashes(4), dashes(60))

	for i, f := range funcs {
		if i == 10 {
			break
		}
		r.printf("%-6d  %-4d  %s\n", f.NLOC, f.CCN, f.Location)
	}
}

func (r *Reporter) highComplexity(funcs []LizardFunction) []LizardFunction {
	var high []LizardFunction
	for _, f := range funcs {
		if f.CCN > highCCNThreshold {
			high = append(high, f)
		}
	}

	r.header(fmt.Sprintf("High Complexity Functions (CCN > %d)", highCCNThreshold))
	r.printf("\n")

	if len(high) == 0 {
		r.printf("None - all functions have CCN <= %d\n", highCCNThreshold)
		return high
	}

	r.printf("%-6s  %-4s  Function\n", "NLOC", "CCN")
	r.printf("%s  %s  %s\n", dashes(6), dashes(4), dashes(60))
	for _, f := range high {
		r.printf("%-6d  %-4d  %s\n", f.NLOC, f.CCN, f.Location)
	}
	r.printf("\nTotal: %d functions\n", len(high))

	return high
}

// perDirectory reports average complexity for each immediate subdirectory
// that lizard finds functions in.
func (r *Reporter) perDirectory() error {
	entries, err := os.ReadDir(r.Root)
	if err != nil {
		return fmt.Errorf("reading project root: %w", err)
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") && !strings.HasPrefix(e.Name(), "_") {
			dirs = append(dirs, e.Name())
		}
	}
	sort.Strings(dirs)

	r.header("Average Complexity by Directory")
	r.printf("\n%-20s  %8s  %8s  %10s\n", "Directory", "Avg CCN", "Avg NLOC", "Functions")
	r.printf("%s  %s  %s  %s\n", dashes(20), dashes(8), dashes(8), dashes(10))

	for _, dir := range dirs {
		out, err := r.Run("lizard", filepath.Join(r.Root, dir))
		if err != nil {
			continue
		}

		summary := ParseLizardSummary(out)
		if summary.FunCount == 0 {
			continue
		}
		r.printf("%-20s  %8.1f  %8.1f  %10d\n", dir, summary.AvgCCN, summary.AvgNLOC, summary.FunCount)
	}

	return nil
}

func (r *Reporter) quality(cloc ClocSummary, summary LizardSummary, highCount int) {
	r.header("Code Quality Metrics")
	r.printf("\n")
	r.printf("Total Code Lines:         %d\n", cloc.Code)
	r.printf("Total Comment Lines:      %d\n", cloc.Comment)
	r.printf("Total Blank Lines:        %d\n", cloc.Blank)
	r.printf("Total Functions:          %d\n", summary.FunCount)
	r.printf("Average CCN:              %.1f\n", summary.AvgCCN)
	r.printf("High Complexity (>%d):    %d\n", highCCNThreshold, highCount)
	r.printf("\n")

	if cloc.Code > 0 {
		pct := float64(cloc.Comment) * 100 / float64(cloc.Code)
		r.printf("Comment ratio:            %.1f%%\n", pct)
		if pct < 20 {
			r.warn("Comment ratio below 20%")
		} else {
			r.success("Good comment ratio (>=20%)")
		}
	}

	if summary.AvgCCN > 10 {
		r.warn("Average complexity above 10")
	} else {
		r.success("Average complexity acceptable (<=10)")
	}

	switch {
	case highCount > 10:
		r.warn(fmt.Sprintf("%d functions with high complexity - consider refactoring", highCount))
	case highCount > 0:
		r.printf("Note: %d functions with CCN > %d (monitor these)\n", highCount, highCCNThreshold)
	default:
		r.success(fmt.Sprintf("No functions with CCN > %d", highCCNThreshold))
	}
}

func (r *Reporter) history(cloc ClocSummary, summary LizardSummary, highCount int) error {
	r.header("Metrics History")

	name, err := SaveSnapshot(r.SnapshotDir, r.now(), map[string]string{
		"total_code":      strconv.Itoa(cloc.Code),
		"total_comment":   strconv.Itoa(cloc.Comment),
		"total_functions": strconv.Itoa(summary.FunCount),
		"avg_ccn":         fmt.Sprintf("%.1f", summary.AvgCCN),
		"high_count":      strconv.Itoa(highCount),
	})
	if err != nil {
		return err
	}
	r.printf("\nSnapshot saved: %s\n", name)

	snaps := LoadSnapshots(r.SnapshotDir, 5)
	if len(snaps) < 2 {
		return nil
	}

	r.printf("\nRecent History:\n\n")
	r.printf("%-18s  %6s  %6s  %8s  %8s\n", "Date", "Code", "Funcs", "Avg CCN", "High CCN")
	r.printf("%s  %s  %s  %s  %s\n", dashes(18), dashes(6), dashes(6), dashes(8), dashes(8))

	for _, snap := range snaps {
		r.printf("%-18s  %6s  %6s  %8s  %8s\n",
			snap.DisplayTime(),
			snap.Values["total_code"],
			snap.Values["total_functions"],
			snap.Values["avg_ccn"],
			snap.Values["high_count"])
	}

	return nil
}

func (r *Reporter) header(text string) {
	underline := strings.Repeat("=", len(text))
	if r.Styled {
		text = headerStyle.Render(text)
	}
	r.printf("\n%s\n%s\n", text, underline)
}

func (r *Reporter) success(text string) {
	text = "✓ " + text
	if r.Styled {
		text = successStyle.Render(text)
	}
	r.printf("%s\n", text)
}

func (r *Reporter) warn(text string) {
	text = "⚠ " + text
	if r.Styled {
		text = warnStyle.Render(text)
	}
	r.printf("%s\n", text)
}

func (r *Reporter) printf(format string, args ...any) {
	fmt.Fprintf(r.Out, format, args...)
}

func dashes(n int) string {
	return strings.Repeat("-", n)
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}
