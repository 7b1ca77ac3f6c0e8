// Package core defines the critical-path event graph: Node, Edge, Graph,
// and the thread-safety primitives for building and querying it.
//
// A Graph is a directed acyclic graph over event start/end timestamps.
// Mutation (AddNode, AddEdge, MarkCriticalPath) takes a write lock; queries
// (Nodes, EdgeBetween, Summary-adjacent reads) take a read lock. This lets
// callers read a fully-built graph from multiple goroutines concurrently,
// as long as no rebuild is in flight — the locking is the structural
// enforcement of that rule, not a convenience.
//
// Edges only ever point forward in time. An attempt to add an edge whose
// target timestamp precedes its source timestamp, or to register a second
// node for an event index that already has two, is an invariant violation
// and panics: it signals a bug in the builder or resolver, not a malformed
// trace (malformed traces are tolerated with a logged warning one layer up,
// in builder and syncresolver).
package core
