package builder

import (
	"sort"

	"github.com/traceforma/cpgraph/core"
	"github.com/traceforma/cpgraph/event"
	"github.com/traceforma/cpgraph/internal/tracelog"
)

// isHostEvent reports whether e belongs on the host call-stack nesting
// pass rather than the device-ordering pass. Device kernels and device
// memory operations live on a stream, not a thread, and are handled by
// orderDeviceEvents instead.
func isHostEvent(e event.Event) bool {
	return !e.Category.IsDevice()
}

// frame is one open call on a thread's stack.
type frame struct {
	ev           event.Event
	lastChildEnd *event.Event
}

// nestHostEvents builds the DEPENDENCY edges for host-side call nesting:
// an edge from a parent's start node to each direct child's start node,
// an edge from a closed child's end node to the next sibling's start
// node, and — when a child closes — an edge from the child's end node to
// its parent's end node. Events are grouped and processed independently
// per (PID, TID) pair.
func nestHostEvents(g *core.Graph, events []event.Event, t0, t1 int64, logger tracelog.Logger) error {
	byThread := map[[2]int64][]event.Event{}
	for _, e := range events {
		if !isHostEvent(e) {
			continue
		}
		key := [2]int64{e.PID, e.TID}
		byThread[key] = append(byThread[key], e)
	}

	for key, evs := range byThread {
		sort.Slice(evs, func(i, j int) bool {
			if evs[i].TimestampNS != evs[j].TimestampNS {
				return evs[i].TimestampNS < evs[j].TimestampNS
			}
			return evs[i].EndNS() > evs[j].EndNS()
		})

		if err := nestThread(g, evs, key[1], t0, t1, logger); err != nil {
			return err
		}
	}
	return nil
}

func nestThread(g *core.Graph, evs []event.Event, tid int64, t0, t1 int64, logger tracelog.Logger) error {
	var stack []*frame
	var lastTopSibling *event.Event

	closeFrame := func(f *frame) error {
		_, fEnd, ok := g.EventNodes(f.ev.Index)
		if !ok {
			return nil
		}
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			_, parentEnd, ok := g.EventNodes(parent.ev.Index)
			if !ok {
				return nil
			}
			w := windowWeight(f.ev.EndNS(), parent.ev.EndNS(), t0, t1)
			if err := g.AddEdge(fEnd, parentEnd, w, core.Dependency, attributionFor(w, parent.ev.Index)); err != nil {
				return err
			}
			parent.lastChildEnd = &f.ev
		} else {
			lastTopSibling = &f.ev
		}
		return nil
	}

	for i := range evs {
		e := evs[i]

		for len(stack) > 0 && stack[len(stack)-1].ev.EndNS() <= e.TimestampNS {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if err := closeFrame(top); err != nil {
				return err
			}
		}

		eStart, _, ok := g.EventNodes(e.Index)
		if !ok {
			continue
		}

		if len(stack) > 0 {
			parent := stack[len(stack)-1]

			if parent.ev.EndNS() < e.EndNS() {
				logger.OverlappingSiblings(tid, parent.ev.Index, e.Index)
				continue
			}

			parentStart, _, ok := g.EventNodes(parent.ev.Index)
			if ok {
				w := windowWeight(parent.ev.TimestampNS, e.TimestampNS, t0, t1)
				if err := g.AddEdge(parentStart, eStart, w, core.Dependency, attributionFor(w, parent.ev.Index)); err != nil {
					return err
				}
			}

			if parent.lastChildEnd != nil && parent.lastChildEnd.EndNS() <= e.TimestampNS {
				_, childEnd, ok := g.EventNodes(parent.lastChildEnd.Index)
				if ok {
					w := windowWeight(parent.lastChildEnd.EndNS(), e.TimestampNS, t0, t1)
					if err := g.AddEdge(childEnd, eStart, w, core.Dependency, attributionFor(w, parent.ev.Index)); err != nil {
						return err
					}
				}
				parent.lastChildEnd = nil
			}
		} else if lastTopSibling != nil && lastTopSibling.EndNS() <= e.TimestampNS {
			_, siblingEnd, ok := g.EventNodes(lastTopSibling.Index)
			if ok {
				w := windowWeight(lastTopSibling.EndNS(), e.TimestampNS, t0, t1)
				if err := g.AddEdge(siblingEnd, eStart, w, core.Dependency, attributionFor(w, lastTopSibling.Index)); err != nil {
					return err
				}
			}
			lastTopSibling = nil
		}

		stack = append(stack, &frame{ev: e})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := closeFrame(top); err != nil {
			return err
		}
	}

	return nil
}
