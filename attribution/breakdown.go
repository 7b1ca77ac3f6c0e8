package attribution

import (
	"github.com/traceforma/cpgraph/core"
	"github.com/traceforma/cpgraph/event"
	"github.com/traceforma/cpgraph/longestpath"
)

// Breakdown produces one Row per critical edge, in path order (source to
// sink), classifying each into the resource bucket that bounded it.
// events is the parsed event table the graph was built from, used only
// to resolve human-readable names and categories for attributed events.
func Breakdown(g *core.Graph, res longestpath.Result, events []event.Event, opts ...Option) []Row {
	cfg := newConfig(opts...)

	byIndex := make(map[uint64]event.Event, len(events))
	for _, e := range events {
		byIndex[e.Index] = e
	}

	rows := make([]Row, 0, len(res.Nodes))
	for i := 0; i+1 < len(res.Nodes); i++ {
		u, v := res.Nodes[i], res.Nodes[i+1]
		edge, ok := g.EdgeBetween(u, v)
		if !ok {
			continue
		}

		var attributed event.Event
		if evIdx, ok := g.EventForEdge(u, v); ok {
			attributed = byIndex[evIdx]
		}

		rows = append(rows, Row{
			EventName: attributed.Name,
			Category:  edge.Category.String(),
			Weight:    edge.Weight,
			BoundBy:   classify(edge, attributed, cfg),
		})
	}

	return rows
}

// classify maps one critical edge onto the resource that bounded it.
// DEPENDENCY edges model host call-stack nesting overhead rather than a
// distinct resource, so they classify as CPUBound alongside host-side
// OPERATOR_KERNEL edges.
func classify(edge core.Edge, attributed event.Event, cfg config) BoundBy {
	switch edge.Category {
	case core.OperatorKernel:
		if attributed.Category.IsDevice() {
			return GPUKernel
		}
		if _, ok := cfg.dataLoadCategories[attributed.Category]; ok {
			return DataLoading
		}
		return CPUBound
	case core.KernelLaunchDelay:
		return LaunchDelay
	case core.KernelKernelDelay:
		return KernelKernel
	case core.SyncDependency:
		return SyncStall
	case core.Dependency:
		return CPUBound
	default:
		return CPUBound
	}
}
