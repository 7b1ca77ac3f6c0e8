package builder

import (
	"sort"

	"github.com/traceforma/cpgraph/core"
	"github.com/traceforma/cpgraph/event"
)

// Result is the graph Build produced, plus the source and sink nodes the
// longest-path solver should run between.
type Result struct {
	Graph  *core.Graph
	Source core.NodeID
	Sink   core.NodeID
}

// Build constructs a core.Graph from a flat event table.
//
// When sel is non-empty, the graph covers exactly one instance of the
// named user annotation; Source and Sink are that instance's start and end
// nodes. When sel is empty, the graph covers the whole trace; Source is
// node 0 and Sink is the last node added, in event-start order.
//
// Build adds OPERATOR_KERNEL edges for every included event, then runs the
// host-nesting, device-ordering, and launch-correlation passes in that
// order. It does not add SYNC_DEPENDENCY edges — run syncresolver.Resolve
// on the result for that.
//
// Complexity: O(n log n) in the number of included events.
func Build(events []event.Event, sel IterationSelector, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)

	t0, t1, enclosing, err := resolveWindow(events, sel)
	if err != nil {
		return Result{}, err
	}

	included := windowedEvents(events, t0, t1)
	if len(included) == 0 {
		return Result{}, ErrNoSuchIteration
	}
	sort.Slice(included, func(i, j int) bool {
		if included[i].TimestampNS != included[j].TimestampNS {
			return included[i].TimestampNS < included[j].TimestampNS
		}
		return included[i].Index < included[j].Index
	})

	g := core.NewGraph()

	for _, e := range included {
		startNode := g.AddNode(e.Index, true, e.TimestampNS)
		endNode := g.AddNode(e.Index, false, e.EndNS())
		if err := g.AddEdge(startNode, endNode, e.DurationNS, core.OperatorKernel, attributionFor(e.DurationNS, e.Index)); err != nil {
			return Result{}, err
		}
	}

	if err := nestHostEvents(g, included, t0, t1, cfg.logger); err != nil {
		return Result{}, err
	}
	if err := orderDeviceEvents(g, included, t0, t1, cfg.logger); err != nil {
		return Result{}, err
	}
	if err := connectLaunches(g, included, cfg, t0, t1); err != nil {
		return Result{}, err
	}

	var source, sink core.NodeID
	if enclosing != nil {
		s, e, ok := g.EventNodes(enclosing.Index)
		if !ok {
			return Result{}, ErrNoSuchIteration
		}
		source, sink = s, e
	} else {
		source = core.NodeID(0)
		sink = core.NodeID(g.NodeCount() - 1)
	}

	return Result{Graph: g, Source: source, Sink: sink}, nil
}
