package syncresolver

import (
	"sort"

	"github.com/traceforma/cpgraph/event"
	"github.com/traceforma/cpgraph/internal/tracelog"
)

// recordEntry is what the record log tracks: which kernel, on which
// stream, a given event-record call stamped.
type recordEntry struct {
	kernel event.Event
	stream int64
}

// streamKernels indexes device kernels by stream, sorted by start time, so
// "last kernel on stream s with end ≤ t" and "first kernel on stream d
// with start ≥ t" are both a forward scan of one sorted slice.
type streamKernels map[int64][]event.Event

func buildStreamKernels(events []event.Event) streamKernels {
	out := streamKernels{}
	for _, e := range events {
		if !e.Category.IsDevice() {
			continue
		}
		out[e.Stream] = append(out[e.Stream], e)
	}
	for s := range out {
		sort.Slice(out[s], func(i, j int) bool { return out[s][i].TimestampNS < out[s][j].TimestampNS })
	}
	return out
}

// lastKernelBefore returns the kernel on stream s with the latest end time
// ≤ t, and whether one exists.
func (sk streamKernels) lastKernelBefore(stream int64, t int64) (event.Event, bool) {
	kernels := sk[stream]
	var best event.Event
	found := false
	for _, k := range kernels {
		if k.EndNS() > t {
			break
		}
		best = k
		found = true
	}
	return best, found
}

// firstKernelAfter returns the earliest kernel on stream d with start ≥ t,
// and whether one exists.
func (sk streamKernels) firstKernelAfter(stream int64, t int64) (event.Event, bool) {
	kernels := sk[stream]
	for _, k := range kernels {
		if k.TimestampNS >= t {
			return k, true
		}
	}
	return event.Event{}, false
}

// buildRecordLog scans events for each event-record call, finding the
// kernel it stamps on its named stream — never on whatever
// stream the host thread happens to be touching elsewhere, which is the
// regression-tested "critical correctness rule". The result is keyed by
// the record call's correlation ID, the handle a later wait/sync call
// references to mean "the device event that record call stamped".
func buildRecordLog(events []event.Event, sk streamKernels, logger tracelog.Logger) map[uint64]recordEntry {
	var recordCalls []event.Event
	for _, e := range events {
		if classify(e) == syncKindRecord {
			recordCalls = append(recordCalls, e)
		}
	}
	sort.Slice(recordCalls, func(i, j int) bool { return recordCalls[i].TimestampNS < recordCalls[j].TimestampNS })

	log := make(map[uint64]recordEntry, len(recordCalls))
	for _, r := range recordCalls {
		corr, ok := r.CorrelationID()
		if !ok {
			continue
		}
		kernel, ok := sk.lastKernelBefore(r.Stream, r.TimestampNS)
		if !ok {
			logger.RecordWithoutKernel(r.Index, r.Stream)
			continue
		}
		log[corr] = recordEntry{kernel: kernel, stream: r.Stream}
	}
	return log
}
