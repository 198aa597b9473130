// Package validation checks applicant documents before a fill is attempted.
// Three layers run per section: a JSON Schema derived from the section's
// mapping table, cross-field branch rules (yes/no gates, date ordering, entry
// caps), and per-field format checks keyed by widget kind.
package validation
