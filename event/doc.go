// Package event defines the input contract the critical-path graph core
// consumes: a flat, time-ordered table of trace events for a single rank.
//
// event does not parse trace files itself — that is the trace loader's job,
// kept out of this module per its scope. It only fixes the shape a loader
// must produce: a stable per-event index, a category drawn from a closed
// enum (so AMD/NVIDIA/other backends traverse identical downstream code),
// a start timestamp and duration in nanoseconds, thread/process/stream
// identifiers, and an optional correlation ID linking a host launch to its
// device kernel.
package event
