// Package cpgraph computes the critical path through one training
// iteration of a GPU/accelerator performance trace.
//
// It builds a directed acyclic graph over host and device event
// boundaries, weights its edges with observed durations and delays,
// finds the longest source-to-sink path, and attributes that path's
// total time to the resource that bounded each segment.
//
// The work is organized as one subpackage per stage:
//
//	event/         the trace's flat input contract
//	core/          Node, Edge, Graph and the edge-category enum
//	builder/       constructs the graph from an event table
//	syncresolver/  adds cross-stream and host/device sync edges
//	longestpath/   solves the longest path and its tie-breaks
//	attribution/   classifies and totals critical-path time by bound_by
//	archive/       saves and reloads a built graph
//	tracepath/     composes the above into one Analyze/Save/Open call
//	cmd/cpgraph/   the command-line frontend
//
// See tracepath for the single entry point most callers want, and its
// ExampleAnalyze for a runnable use of it.
package cpgraph
