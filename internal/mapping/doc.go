// Package mapping provides parsing, validation, and canonical
// re-serialization of the soundboard mappings file.
//
// The mappings file is a line-oriented text table that is a first-class,
// human-maintained artifact: comments and blank lines are semantic-free but
// must round-trip verbatim, so every input line is carried through the
// pipeline as a tagged Line value rather than being discarded at parse time.
//
// # Key capabilities
//
//   - Classify raw lines (blank | comment | record candidate)
//   - Tokenize record lines with quote-aware comma splitting
//   - Validate records against the binding grammar and hardware domains
//   - Collect errors and warnings per record without aborting the run
//   - Re-serialize valid records into canonical form
//
// # Record grammar
//
// One record per line, at least four comma-separated fields:
//
//	page_id,button,event,action[,param1,param2,...]
//
// A field span between a double quote and its matching closing quote is kept
// as a single field even if it contains commas. The quote character is a
// plain toggle; a literal quote cannot be embedded.
//
// # Validity
//
// A record with zero errors is valid and participates in reconciliation.
// Warnings (long or unsafe page names) flag display risks but never
// invalidate a record.
package mapping
