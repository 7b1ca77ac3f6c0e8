package builder

import (
	"sort"

	"github.com/traceforma/cpgraph/event"
)

// resolveWindow finds the [t0, t1) timestamp window Build should restrict
// itself to, per sel. When sel is empty, the window spans the whole trace
// and enclosing is nil. When sel names an annotation, enclosing is the
// matching instance's event, and the window is exactly its span.
func resolveWindow(events []event.Event, sel IterationSelector) (t0, t1 int64, enclosing *event.Event, err error) {
	if len(events) == 0 {
		return 0, 0, nil, ErrEmptyTrace
	}

	if sel.IsEmpty() {
		t0, t1 = events[0].TimestampNS, events[0].EndNS()
		for _, e := range events[1:] {
			if e.TimestampNS < t0 {
				t0 = e.TimestampNS
			}
			if e.EndNS() > t1 {
				t1 = e.EndNS()
			}
		}
		return t0, t1, nil, nil
	}

	var instances []event.Event
	for _, e := range events {
		if e.Category == event.CategoryUserAnnotation && e.Name == sel.Annotation {
			instances = append(instances, e)
		}
	}
	sort.Slice(instances, func(i, j int) bool { return instances[i].TimestampNS < instances[j].TimestampNS })

	if sel.Instance >= uint64(len(instances)) {
		return 0, 0, nil, ErrNoSuchIteration
	}

	found := instances[sel.Instance]
	return found.TimestampNS, found.EndNS(), &found, nil
}

// windowedEvents returns the events with at least one endpoint inside
// [t0, t1); edges that reach past the window are then clamped by
// windowWeight. Each event is judged by its own endpoints only: a device
// kernel lying wholly outside the window is excluded even when its
// launching call is inside (and the reverse), and an event that starts
// before t0 and ends at or after t1 is excluded as well.
func windowedEvents(events []event.Event, t0, t1 int64) []event.Event {
	out := make([]event.Event, 0, len(events))
	for _, e := range events {
		startsIn := e.TimestampNS >= t0 && e.TimestampNS < t1
		endsIn := e.EndNS() >= t0 && e.EndNS() < t1
		if startsIn || endsIn {
			out = append(out, e)
		}
	}
	return out
}
