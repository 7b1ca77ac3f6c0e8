package syncresolver

import (
	"strings"

	"github.com/traceforma/cpgraph/event"
)

type syncKind uint8

const (
	syncKindNone syncKind = iota
	syncKindRecord
	syncKindHostSync   // event-synchronize(h) or device-synchronize
	syncKindStreamWait // stream-wait-event(h)
)

func classify(e event.Event) syncKind {
	if e.Category != event.CategoryRuntimeCall && e.Category != event.CategoryDeviceSync {
		return syncKindNone
	}
	name := e.Name
	switch {
	case containsFold(name, "EventRecord"):
		return syncKindRecord
	case containsFold(name, "StreamWaitEvent"), containsFold(name, "WaitEvent"):
		return syncKindStreamWait
	case containsFold(name, "EventSynchronize"), containsFold(name, "DeviceSynchronize"), containsFold(name, "StreamSynchronize"):
		return syncKindHostSync
	default:
		return syncKindNone
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// isDeviceWideSync reports whether a host-sync call drains every stream
// (cudaDeviceSynchronize) rather than one specific recorded event
// (cudaEventSynchronize), judged by name since the event table carries no
// dedicated flag for it.
func isDeviceWideSync(e event.Event) bool {
	return containsFold(e.Name, "DeviceSynchronize")
}
