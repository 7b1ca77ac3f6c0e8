package longestpath

import "errors"

// ErrGraphDisconnected is returned when the iteration window is non-empty
// but no path exists from source to sink.
var ErrGraphDisconnected = errors.New("longestpath: no path from source to sink")

// ErrNodeNotFound is returned when source or sink does not name a node in
// the graph.
var ErrNodeNotFound = errors.New("longestpath: source or sink node not found")
