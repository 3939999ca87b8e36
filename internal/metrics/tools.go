package metrics

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// CommandRunner executes an external tool and returns its stdout. Split out
// so tests can feed canned output without the tools installed.
type CommandRunner func(name string, args ...string) (string, error)

func execRunner(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", fmt.Errorf("running %s: %w", name, err)
	}

	return string(out), nil
}

// CheckTools verifies cloc and lizard are on PATH.
func CheckTools() error {
	for _, tool := range []string{"cloc", "lizard"} {
		if _, err := exec.LookPath(tool); err != nil {
			return fmt.Errorf("%s is not installed: %w", tool, err)
		}
	}

	return nil
}

// ClocSummary holds the SUM line of a cloc run.
type ClocSummary struct {
	Files   int
	Blank   int
	Comment int
	Code    int
}

// ParseClocSummary extracts the summary metrics from cloc output. A missing
// SUM line (single-language trees print no SUM) yields zeros.
func ParseClocSummary(output string) ClocSummary {
	for _, line := range strings.Split(output, "\n") {
		if !strings.HasPrefix(line, "SUM:") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 5 {
			continue
		}

		return ClocSummary{
			Files:   atoiOrZero(parts[1]),
			Blank:   atoiOrZero(parts[2]),
			Comment: atoiOrZero(parts[3]),
			Code:    atoiOrZero(parts[4]),
		}
	}

	return ClocSummary{}
}

// LizardFunction is one function row of lizard output.
type LizardFunction struct {
	NLOC     int
	CCN      int
	Tokens   int
	Params   int
	Length   int
	Location string
}

// lizard function rows: "  NLOC  CCN  token  PARAM  length  location"
var lizardFuncRe = regexp.MustCompile(`^\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(.+)$`)

// ParseLizardFunctions extracts the per-function rows from lizard output,
// preserving the tool's order.
func ParseLizardFunctions(output string) []LizardFunction {
	var funcs []LizardFunction

	for _, line := range strings.Split(output, "\n") {
		m := lizardFuncRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		funcs = append(funcs, LizardFunction{
			NLOC:     atoiOrZero(m[1]),
			CCN:      atoiOrZero(m[2]),
			Tokens:   atoiOrZero(m[3]),
			Params:   atoiOrZero(m[4]),
			Length:   atoiOrZero(m[5]),
			Location: m[6],
		})
	}

	return funcs
}

// LizardSummary holds the totals line of a lizard run.
type LizardSummary struct {
	AvgNLOC   float64
	AvgCCN    float64
	AvgTokens float64
	FunCount  int
}

// ParseLizardSummary extracts the summary that follows the "Total nloc"
// header and its dashed separator.
func ParseLizardSummary(output string) LizardSummary {
	lines := strings.Split(output, "\n")
	for i := 1; i < len(lines)-1; i++ {
		if !strings.Contains(lines[i], "----") || !strings.Contains(lines[i-1], "Total nloc") {
			continue
		}

		parts := strings.Fields(lines[i+1])
		if len(parts) < 5 {
			continue
		}

		return LizardSummary{
			AvgNLOC:   atofOrZero(parts[1]),
			AvgCCN:    atofOrZero(parts[2]),
			AvgTokens: atofOrZero(parts[3]),
			FunCount:  atoiOrZero(parts[4]),
		}
	}

	return LizardSummary{}
}

func atoiOrZero(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func atofOrZero(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
