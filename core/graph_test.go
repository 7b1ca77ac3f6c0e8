package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traceforma/cpgraph/core"
)

func TestAddNode_TwoPerEvent(t *testing.T) {
	g := core.NewGraph()

	start := g.AddNode(7, true, 100)
	end := g.AddNode(7, false, 150)

	s, e, ok := g.EventNodes(7)
	require.True(t, ok)
	assert.Equal(t, start, s)
	assert.Equal(t, end, e)
	assert.Equal(t, 2, g.NodeCount())
}

func TestAddNode_ThirdCallPanics(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(1, true, 0)
	g.AddNode(1, false, 10)

	assert.PanicsWithValue(t, core.ErrEventAlreadyHasTwoNodes, func() {
		g.AddNode(1, true, 20)
	})
}

func TestAddEdge_OperatorKernelInvariant(t *testing.T) {
	g := core.NewGraph()
	s := g.AddNode(1, true, 100)
	e := g.AddNode(1, false, 132)
	ev := uint64(1)

	require.NoError(t, g.AddEdge(s, e, 32, core.OperatorKernel, &ev))

	edge, ok := g.EdgeBetween(s, e)
	require.True(t, ok)
	assert.Equal(t, int64(32), edge.Weight)
	assert.Equal(t, core.OperatorKernel, edge.Category)

	attributed, ok := g.EventForEdge(s, e)
	require.True(t, ok)
	assert.Equal(t, ev, attributed)
}

func TestAddEdge_DedupIdenticalEdge(t *testing.T) {
	g := core.NewGraph()
	u := g.AddNode(1, true, 0)
	v := g.AddNode(2, true, 0)

	require.NoError(t, g.AddEdge(u, v, 0, core.SyncDependency, nil))
	require.NoError(t, g.AddEdge(u, v, 0, core.SyncDependency, nil))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_ConflictReturnsError(t *testing.T) {
	g := core.NewGraph()
	u := g.AddNode(1, true, 0)
	v := g.AddNode(2, true, 0)

	require.NoError(t, g.AddEdge(u, v, 5, core.Dependency, nil))
	err := g.AddEdge(u, v, 6, core.Dependency, nil)
	assert.ErrorIs(t, err, core.ErrEdgeConflict)
}

func TestAddEdge_BackwardEdgePanics(t *testing.T) {
	g := core.NewGraph()
	u := g.AddNode(1, true, 100)
	v := g.AddNode(2, true, 50)

	assert.PanicsWithValue(t, core.ErrBackwardEdge, func() {
		_ = g.AddEdge(u, v, 0, core.SyncDependency, nil)
	})
}

func TestAdjacency(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode(1, true, 0)
	b := g.AddNode(2, true, 10)
	c := g.AddNode(3, true, 20)

	require.NoError(t, g.AddEdge(a, b, 10, core.Dependency, nil))
	require.NoError(t, g.AddEdge(b, c, 10, core.Dependency, nil))

	assert.ElementsMatch(t, []core.NodeID{b}, g.Outgoing(a))
	assert.ElementsMatch(t, []core.NodeID{a}, g.Incoming(b))
	assert.ElementsMatch(t, []core.NodeID{c}, g.Outgoing(b))
}

func TestCriticalPathMarking(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode(1, true, 0)
	b := g.AddNode(1, false, 10)

	g.MarkCriticalPath(
		[]core.NodeID{a, b},
		map[core.EdgeKey]struct{}{{From: a, To: b}: {}},
		map[uint64]struct{}{1: {}},
	)

	assert.True(t, g.IsCriticalEdge(a, b))
	assert.True(t, g.IsCriticalEvent(1))
	assert.Equal(t, []core.NodeID{a, b}, g.CriticalPathNodes())
}

func TestEdgeCategoryPriority(t *testing.T) {
	assert.Less(t, core.OperatorKernel.Priority(), core.KernelLaunchDelay.Priority())
	assert.Less(t, core.KernelLaunchDelay.Priority(), core.KernelKernelDelay.Priority())
	assert.Less(t, core.KernelKernelDelay.Priority(), core.SyncDependency.Priority())
	assert.Less(t, core.SyncDependency.Priority(), core.Dependency.Priority())
}
