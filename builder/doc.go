// Package builder converts a parsed event table into a core.Graph: it
// windows the trace to one iteration, nests host events into a call-stack
// dependency structure, orders device kernels per stream, and connects
// host launches to the device kernels they started. It does not add
// cross-stream synchronization edges — that is syncresolver's job, run
// after Build returns.
//
// The public surface is a single orchestrator, Build, configured with
// functional Options: one function resolves options and applies
// the construction steps in a fixed, documented order so that repeated
// builds of the same trace with the same options produce isomorphic
// graphs.
package builder
