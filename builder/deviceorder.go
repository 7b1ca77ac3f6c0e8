package builder

import (
	"sort"

	"github.com/traceforma/cpgraph/core"
	"github.com/traceforma/cpgraph/event"
	"github.com/traceforma/cpgraph/internal/tracelog"
)

// orderDeviceEvents connects consecutive device events on the same
// stream with KERNEL_KERNEL_DELAY edges: for each stream, sorted by
// start time, an edge runs from one event's end node to the next event's
// start node, attributed to the earlier event.
func orderDeviceEvents(g *core.Graph, events []event.Event, t0, t1 int64, logger tracelog.Logger) error {
	byStream := map[int64][]event.Event{}
	for _, e := range events {
		if !e.Category.IsDevice() {
			continue
		}
		byStream[e.Stream] = append(byStream[e.Stream], e)
	}

	for stream, evs := range byStream {
		sort.Slice(evs, func(i, j int) bool { return evs[i].TimestampNS < evs[j].TimestampNS })

		for i := 0; i+1 < len(evs); i++ {
			cur, next := evs[i], evs[i+1]

			_, curEnd, ok := g.EventNodes(cur.Index)
			if !ok {
				continue
			}
			nextStart, _, ok := g.EventNodes(next.Index)
			if !ok {
				continue
			}

			rawGap := next.TimestampNS - cur.EndNS()
			if rawGap < 0 {
				logger.ClampedGap(next.Index, stream, rawGap)
			}
			w := windowWeight(cur.EndNS(), next.TimestampNS, t0, t1)

			if err := g.AddEdge(curEnd, nextStart, w, core.KernelKernelDelay, attributionFor(w, cur.Index)); err != nil {
				return err
			}
		}
	}
	return nil
}
