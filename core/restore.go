package core

// Restore rebuilds a Graph from a node and edge list previously obtained
// from Nodes/Edges, as archive.Load does after reading nodes.tbl/edges.tbl
// back from disk. nodes must be in ascending Index order (Nodes already
// returns them that way) so that re-inserting them reproduces the
// original NodeIDs.
func Restore(nodes []Node, edges []Edge) (*Graph, error) {
	g := NewGraph()

	for _, n := range nodes {
		id := g.AddNode(n.EventIndex, n.IsStart, n.TimestampNS)
		if id != n.Index {
			return nil, ErrRestoreCorrupt
		}
	}

	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.Weight, e.Category, e.AttributedEvent); err != nil {
			return nil, err
		}
	}

	return g, nil
}
