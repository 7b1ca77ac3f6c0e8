// Package syncresolver attaches cross-stream and device-to-host
// SYNC_DEPENDENCY edges to a graph already produced by builder.Build. It
// runs as a second pass because synchronization only makes sense once
// every kernel and launch edge already exists: identifying "the kernel
// most recently recorded on stream s" requires the full per-stream kernel
// timeline builder.Build just laid down.
//
// The event table's columns carry no explicit "this is an event-record
// call" flag — only index/name/category/ts/dur/pid/tid/stream/correlation.
// Resolve classifies runtime calls by name instead, matching the
// backend-agnostic substrings a loader would
// normalize host API names to ("EventRecord", "EventSynchronize",
// "StreamWaitEvent", "DeviceSynchronize"), and reuses the event's
// Correlation field to link a record call to the wait/sync call that
// later references the same device-event handle — the same one-tag-links-
// two-calls shape the builder already uses for launch correlation.
package syncresolver
