// Package longestpath computes the maximum-weight path through a
// core.Graph between a source and sink node — the critical path whose
// length equals the iteration's wall-clock time.
//
// Because every edge in the graph flows forward in time by construction
// (core.Graph.AddEdge panics on a backward edge), sorting all nodes by
// (timestamp, node index) already yields a valid topological order; no
// separate cycle-checking DFS pass is needed the way a general-purpose
// topological sort would do one.
package longestpath
