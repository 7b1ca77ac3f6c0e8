// Package tracelog is the structured-logging boundary used by builder and
// syncresolver to log and continue past malformed-trace conditions instead
// of failing the whole build. It wraps github.com/rs/zerolog with the
// small set of fields those two packages need, so call sites read as
// domain events rather than formatted strings.
package tracelog

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is a zerolog.Logger configured for cpgraph's console output.
// Zero value is not usable; use New.
type Logger struct {
	zl zerolog.Logger
}

// New returns a Logger writing structured JSON lines to w. Passing nil uses
// os.Stderr.
func New(w *os.File) Logger {
	if w == nil {
		w = os.Stderr
	}
	return Logger{zl: zerolog.New(w).With().Timestamp().Logger()}
}

// Nop returns a Logger that discards everything, for tests and library
// callers that don't want cpgraph writing to stderr on their behalf.
func Nop() Logger {
	return Logger{zl: zerolog.Nop()}
}

// ClampedGap logs a negative-gap clamp: a computed delay came out negative
// due to sub-microsecond timestamp disorder and was clamped to zero.
func (l Logger) ClampedGap(eventIndex uint64, stream int64, gapNS int64) {
	l.zl.Warn().
		Uint64("event_idx", eventIndex).
		Int64("stream", stream).
		Int64("raw_gap_ns", gapNS).
		Msg("negative gap clamped to zero")
}

// OverlappingSiblings logs two sibling host events overlapping on one
// thread, a malformed-trace condition the builder tolerates.
func (l Logger) OverlappingSiblings(tid int64, a, b uint64) {
	l.zl.Warn().
		Int64("tid", tid).
		Uint64("event_a", a).
		Uint64("event_b", b).
		Msg("overlapping sibling events on one thread")
}

// DroppedCorrelation logs a runtime call or device kernel whose correlation
// partner could not be found.
func (l Logger) DroppedCorrelation(eventIndex uint64, correlation uint64) {
	l.zl.Warn().
		Uint64("event_idx", eventIndex).
		Uint64("correlation", correlation).
		Msg("dropped event: correlation target not found")
}

// AmbiguousCorrelation logs the tie-break when multiple runtime calls share
// a correlation ID.
func (l Logger) AmbiguousCorrelation(correlation uint64, chosenEvent uint64, candidates int) {
	l.zl.Warn().
		Uint64("correlation", correlation).
		Uint64("chosen_event", chosenEvent).
		Int("candidates", candidates).
		Msg("ambiguous correlation: chose latest-starting runtime call")
}

// RecordWithoutKernel logs an event-record call dropped because its
// stream has never seen a kernel.
func (l Logger) RecordWithoutKernel(eventIndex uint64, stream int64) {
	l.zl.Warn().
		Uint64("event_idx", eventIndex).
		Int64("stream", stream).
		Msg("dropped event-record: stream has no prior kernel")
}

// DuplicateSyncEdge logs a sync edge that was not added because a
// different edge already joins the same two nodes. Identical duplicates
// are collapsed by core.Graph.AddEdge without reaching this log.
func (l Logger) DuplicateSyncEdge(from, to uint64) {
	l.zl.Debug().
		Uint64("from_event", from).
		Uint64("to_event", to).
		Msg("sync edge skipped: another edge already joins these nodes")
}
