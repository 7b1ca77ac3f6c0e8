package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations. Callers branch with errors.Is;
// messages are never matched by string.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEventAlreadyHasTwoNodes indicates AddNode was called a third time
	// for the same event index. This is a builder bug, not a trace defect.
	ErrEventAlreadyHasTwoNodes = errors.New("core: event already has start and end nodes")

	// ErrEdgeConflict indicates an edge already exists between the same
	// ordered pair of nodes with a different weight or category.
	ErrEdgeConflict = errors.New("core: conflicting edge already exists between nodes")

	// ErrBackwardEdge indicates an edge's target timestamp precedes its
	// source timestamp. Time only flows forward in this graph by
	// construction; this is always an implementation bug upstream.
	ErrBackwardEdge = errors.New("core: edge target precedes source in time")

	// ErrRestoreCorrupt indicates Restore was given a node list that would
	// not reproduce the NodeIDs it claims, i.e. a corrupted or reordered
	// nodes.tbl.
	ErrRestoreCorrupt = errors.New("core: restored node order does not match recorded indices")
)

// EdgeCategory tags the reason an Edge exists: which of the five ways two
// nodes in the graph can be related produced it. Category plus the
// optional attributed event forms a small tagged variant rather than a
// polymorphic edge hierarchy.
type EdgeCategory uint8

const (
	// OperatorKernel is the intra-event duration edge: start→end of one event.
	OperatorKernel EdgeCategory = iota
	// KernelLaunchDelay connects a host launch to the device kernel it started.
	KernelLaunchDelay
	// KernelKernelDelay connects the end of one kernel on a stream to the
	// start of the next kernel on the same stream.
	KernelKernelDelay
	// SyncDependency is a zero-weight cross-stream or device↔host dependency.
	SyncDependency
	// Dependency is an ordering edge between nested or sibling host events,
	// weighted by the time between the two endpoints it joins.
	Dependency
)

// String renders an EdgeCategory for logs, summaries, and overlay tags.
func (c EdgeCategory) String() string {
	switch c {
	case OperatorKernel:
		return "OPERATOR_KERNEL"
	case KernelLaunchDelay:
		return "KERNEL_LAUNCH_DELAY"
	case KernelKernelDelay:
		return "KERNEL_KERNEL_DELAY"
	case SyncDependency:
		return "SYNC_DEPENDENCY"
	case Dependency:
		return "DEPENDENCY"
	default:
		return fmt.Sprintf("EdgeCategory(%d)", uint8(c))
	}
}

// priority orders edge categories for the longest-path solver's
// deterministic tie-break: a lower value wins ties.
var priority = map[EdgeCategory]int{
	OperatorKernel:     0,
	KernelLaunchDelay:  1,
	KernelKernelDelay:  2,
	SyncDependency:     3,
	Dependency:         4,
}

// Priority returns c's tie-break priority; lower wins. Unknown categories
// sort last.
func (c EdgeCategory) Priority() int {
	if p, ok := priority[c]; ok {
		return p
	}
	return len(priority)
}

// NodeID indexes into Graph's node slice.
type NodeID int

// Node is a point in time corresponding to the start or end of exactly one
// event.
type Node struct {
	Index       NodeID
	EventIndex  uint64
	IsStart     bool
	TimestampNS int64
}

// EdgeKey identifies a directed edge by its ordered endpoints. At most one
// Edge exists per EdgeKey.
type EdgeKey struct {
	From NodeID
	To   NodeID
}

// Edge is a directed, weighted arc between two nodes.
type Edge struct {
	From     NodeID
	To       NodeID
	Weight   int64
	Category EdgeCategory
	// AttributedEvent is the event index responsible for this edge's weight.
	// Defined exactly on non-zero-weight edges, regardless of category; a
	// SyncDependency edge is always weight 0 and so is never attributed,
	// but a DEPENDENCY or KERNEL_LAUNCH_DELAY edge with positive weight is.
	AttributedEvent *uint64
}

// Key returns e's EdgeKey.
func (e Edge) Key() EdgeKey { return EdgeKey{From: e.From, To: e.To} }
