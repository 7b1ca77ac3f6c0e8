package builder

import (
	"sort"

	"github.com/traceforma/cpgraph/core"
	"github.com/traceforma/cpgraph/event"
)

// connectLaunches emits KERNEL_LAUNCH_DELAY edges from each host runtime
// call's end node to the device event it launched, matched by correlation
// ID. When more than one runtime call shares a correlation ID — a
// malformed trace — the one with the latest start time wins, and the
// rest are logged and ignored. A device event with no matching runtime
// call is logged and left with no launch edge.
func connectLaunches(g *core.Graph, events []event.Event, cfg config, t0, t1 int64) error {
	runtimeByCorrelation := map[uint64][]event.Event{}
	for _, e := range events {
		if e.Category != event.CategoryRuntimeCall {
			continue
		}
		corr, ok := e.CorrelationID()
		if !ok {
			continue
		}
		runtimeByCorrelation[corr] = append(runtimeByCorrelation[corr], e)
	}

	for _, e := range events {
		if !e.Category.IsDevice() {
			continue
		}
		corr, ok := e.CorrelationID()
		if !ok {
			continue
		}

		candidates := runtimeByCorrelation[corr]
		if len(candidates) == 0 {
			cfg.logger.DroppedCorrelation(e.Index, corr)
			continue
		}

		launcher := candidates[0]
		if len(candidates) > 1 {
			sort.Slice(candidates, func(i, j int) bool { return candidates[i].TimestampNS < candidates[j].TimestampNS })
			launcher = candidates[len(candidates)-1]
			cfg.logger.AmbiguousCorrelation(corr, launcher.Index, len(candidates))
		}

		launchStart, launchEnd, ok := g.EventNodes(launcher.Index)
		if !ok {
			continue
		}
		kernelStart, _, ok := g.EventNodes(e.Index)
		if !ok {
			continue
		}

		rawGap := e.TimestampNS - launcher.EndNS()
		if rawGap < 0 {
			cfg.logger.ClampedGap(e.Index, e.Stream, rawGap)
		}
		w := windowWeight(launcher.EndNS(), e.TimestampNS, t0, t1)

		if err := g.AddEdge(launchEnd, kernelStart, w, core.KernelLaunchDelay, attributionFor(w, launcher.Index)); err != nil {
			return err
		}

		if cfg.zeroWeightLaunchEdge {
			if err := g.AddEdge(launchStart, kernelStart, 0, core.KernelLaunchDelay, nil); err != nil {
				return err
			}
		}
	}

	return nil
}
