// Package attribution maps a solved critical path back to the events that
// produced it, and aggregates elapsed time per resource bucket.
//
// Breakdown walks the critical edge set and classifies each into a
// BoundBy bucket; Summarize folds a Breakdown into per-bucket totals. The
// split keeps the solver's Result separate from the code that turns it
// into a human-facing report.
package attribution
