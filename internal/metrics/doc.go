// Package metrics generates a code-size and complexity report for a source
// tree by driving two external analysis tools, cloc and lizard, and
// formatting their output. It is pure glue: it has no dependency on the
// mapping engine and no analysis logic of its own beyond parsing the tools'
// textual output.
//
// Report sections:
//   - SLOC summary and largest files (cloc)
//   - Most complex functions and CCN>15 offenders (lizard)
//   - Per-directory average complexity
//   - Quality assessment against comment-ratio and complexity thresholds
//   - Snapshot history persisted under .metrics/
package metrics
