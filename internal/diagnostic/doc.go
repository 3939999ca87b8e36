// Package diagnostic provides structured errors and warnings collected
// while validating and reconciling soundboard mappings.
//
// Key capabilities:
//   - Per-record error and warning accumulation
//   - Severity-tagged, human-readable messages
//   - Merge of record-level findings into a run-level report
package diagnostic
