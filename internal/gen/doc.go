// Package gen deterministically re-serializes the reconciled mapping model
// into the regenerated mappings file.
//
// Composition rules, applied per original line in original order:
//   - blank lines and comments pass through verbatim
//   - valid records are re-emitted in canonical form, preceded by comment
//     annotations for missing files, unsafe filename characters, and
//     duplicate slot assignments
//   - invalid records are quarantined as "# INVALID:" comments with one
//     comment per error
//   - orphan asset files are appended as newly synthesized records
//   - a per-page unassigned-slot summary closes the file
//
// Annotations, the header block, and the trailing summary are the
// composer's own artifacts: Normalize strips them from input before
// recomposition so that re-running the generator on its own output is
// idempotent apart from the timestamp line.
//
// The full output is buffered in memory and written with a single atomic
// replace, so a failed run never leaves a truncated mappings file.
package gen
