package syncresolver

import (
	"errors"
	"sort"

	"github.com/traceforma/cpgraph/core"
	"github.com/traceforma/cpgraph/event"
)

// Resolve mutates g in place, adding SYNC_DEPENDENCY edges for every
// event-record/event-wait/device-synchronize call found in events.
// events must be the same slice (or a superset) used to build g, so that
// every referenced event already has nodes in g.
//
// Resolve is idempotent: running it twice over the same graph and events
// adds no new edges, since core.Graph.AddEdge collapses identical
// (weight, category) duplicates for a given (u,v) pair.
func Resolve(g *core.Graph, events []event.Event, opts ...Option) error {
	cfg := newConfig(opts...)

	sk := buildStreamKernels(events)
	recordLog := buildRecordLog(events, sk, cfg.logger)

	var syncCalls []event.Event
	for _, e := range events {
		kind := classify(e)
		if kind == syncKindHostSync || kind == syncKindStreamWait {
			syncCalls = append(syncCalls, e)
		}
	}
	sort.Slice(syncCalls, func(i, j int) bool { return syncCalls[i].TimestampNS < syncCalls[j].TimestampNS })

	for _, call := range syncCalls {
		switch classify(call) {
		case syncKindHostSync:
			if err := resolveHostSync(g, call, sk, recordLog); err != nil {
				return err
			}
		case syncKindStreamWait:
			if err := resolveStreamWait(g, call, sk, recordLog, cfg); err != nil {
				return err
			}
		}
	}

	return nil
}

// resolveHostSync handles event-synchronize(h) and device-synchronize
// calls. A device-wide sync drains every stream's most recently completed
// kernel; an event-synchronize drains only the one kernel its correlation
// references.
func resolveHostSync(g *core.Graph, call event.Event, sk streamKernels, recordLog map[uint64]recordEntry) error {
	_, callEnd, ok := g.EventNodes(call.Index)
	if !ok {
		return nil
	}

	if isDeviceWideSync(call) {
		for stream := range sk {
			kernel, ok := sk.lastKernelBefore(stream, call.TimestampNS)
			if !ok {
				continue
			}
			_, kernelEnd, ok := g.EventNodes(kernel.Index)
			if !ok {
				continue
			}
			if err := g.AddEdge(kernelEnd, callEnd, 0, core.SyncDependency, nil); err != nil {
				return err
			}
		}
		return nil
	}

	corr, ok := call.CorrelationID()
	if !ok {
		return nil
	}
	entry, ok := recordLog[corr]
	if !ok {
		return nil
	}
	_, kernelEnd, ok := g.EventNodes(entry.kernel.Index)
	if !ok {
		return nil
	}
	return g.AddEdge(kernelEnd, callEnd, 0, core.SyncDependency, nil)
}

// resolveStreamWait handles stream-wait-event(h) calls: the kernel
// recorded on the source stream must complete before the first kernel
// issued on the waiting stream after the wait.
func resolveStreamWait(g *core.Graph, call event.Event, sk streamKernels, recordLog map[uint64]recordEntry, cfg config) error {
	corr, ok := call.CorrelationID()
	if !ok {
		return nil
	}
	entry, ok := recordLog[corr]
	if !ok {
		return nil
	}

	waitingStream := call.Stream
	firstAfter, ok := sk.firstKernelAfter(waitingStream, call.TimestampNS)
	if !ok {
		return nil
	}

	_, recordedEnd, ok := g.EventNodes(entry.kernel.Index)
	if !ok {
		return nil
	}
	waitStart, _, ok := g.EventNodes(firstAfter.Index)
	if !ok {
		return nil
	}

	err := g.AddEdge(recordedEnd, waitStart, 0, core.SyncDependency, nil)
	if errors.Is(err, core.ErrEdgeConflict) {
		cfg.logger.DuplicateSyncEdge(entry.kernel.Index, firstAfter.Index)
		return nil
	}
	return err
}
