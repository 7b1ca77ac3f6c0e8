package longestpath

import (
	"sort"

	"github.com/traceforma/cpgraph/core"
)

// Result is the outcome of a longest-path solve: the critical path's node
// sequence (source to sink), its edge and event sets, and its total
// weight in nanoseconds.
type Result struct {
	Nodes  []core.NodeID
	Edges  map[core.EdgeKey]struct{}
	Events map[uint64]struct{}
	Length int64
}

// Solve computes the longest path from source to sink in g and records it
// on g via MarkCriticalPath. Returns ErrNodeNotFound if either endpoint
// doesn't exist, ErrGraphDisconnected if no path connects them.
//
// Complexity: O(V log V + E), dominated by the initial node sort; V and E
// are the node and edge counts of g.
func Solve(g *core.Graph, source, sink core.NodeID) (Result, error) {
	if _, ok := g.Node(source); !ok {
		return Result{}, ErrNodeNotFound
	}
	if _, ok := g.Node(sink); !ok {
		return Result{}, ErrNodeNotFound
	}

	nodes := g.Nodes()
	order := make([]core.NodeID, len(nodes))
	for i, n := range nodes {
		order[i] = n.Index
	}
	sort.Slice(order, func(i, j int) bool {
		ni, _ := g.Node(order[i])
		nj, _ := g.Node(order[j])
		if ni.TimestampNS != nj.TimestampNS {
			return ni.TimestampNS < nj.TimestampNS
		}
		return ni.Index < nj.Index
	})

	r := &runner{
		g:        g,
		dist:     make(map[core.NodeID]int64, len(nodes)),
		reached:  make(map[core.NodeID]bool, len(nodes)),
		bestEdge: make(map[core.NodeID]core.Edge, len(nodes)),
	}
	r.dist[source] = 0
	r.reached[source] = true

	for _, v := range order {
		if !r.reached[v] {
			continue
		}
		r.relax(v)
	}

	if !r.reached[sink] {
		return Result{}, ErrGraphDisconnected
	}

	return r.reconstruct(source, sink), nil
}

// runner holds the mutable state for a single Solve call.
type runner struct {
	g        *core.Graph
	dist     map[core.NodeID]int64
	reached  map[core.NodeID]bool
	bestEdge map[core.NodeID]core.Edge // predecessor edge on the best path into each node
}

// relax updates every node reachable from v via a single outgoing edge,
// applying the edge-category tie-break when two predecessors achieve the
// same distance.
func (r *runner) relax(v core.NodeID) {
	for _, w := range r.g.Outgoing(v) {
		edge, ok := r.g.EdgeBetween(v, w)
		if !ok {
			continue
		}
		candidate := r.dist[v] + edge.Weight

		switch {
		case !r.reached[w]:
			r.set(w, candidate, edge)
		case candidate > r.dist[w]:
			r.set(w, candidate, edge)
		case candidate == r.dist[w] && edge.Category.Priority() < r.bestEdge[w].Category.Priority():
			r.set(w, candidate, edge)
		}
	}
}

func (r *runner) set(w core.NodeID, dist int64, edge core.Edge) {
	r.dist[w] = dist
	r.bestEdge[w] = edge
	r.reached[w] = true
}

// reconstruct walks bestEdge back from sink to source and records the
// result on the graph.
func (r *runner) reconstruct(source, sink core.NodeID) Result {
	var nodes []core.NodeID
	edges := map[core.EdgeKey]struct{}{}
	events := map[uint64]struct{}{}

	cur := sink
	nodes = append(nodes, cur)
	for cur != source {
		edge := r.bestEdge[cur]
		key := core.EdgeKey{From: edge.From, To: edge.To}
		edges[key] = struct{}{}
		if ev, ok := r.g.EventForEdge(edge.From, edge.To); ok {
			events[ev] = struct{}{}
		}
		cur = edge.From
		nodes = append(nodes, cur)
	}

	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	r.g.MarkCriticalPath(nodes, edges, events)

	return Result{Nodes: nodes, Edges: edges, Events: events, Length: r.dist[sink]}
}
