package longestpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traceforma/cpgraph/core"
	"github.com/traceforma/cpgraph/longestpath"
)

func TestSolve_SimpleChain(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode(1, true, 0)
	b := g.AddNode(1, false, 10)
	c := g.AddNode(2, true, 10)
	d := g.AddNode(2, false, 25)

	require.NoError(t, g.AddEdge(a, b, 10, core.OperatorKernel, nil))
	require.NoError(t, g.AddEdge(b, c, 0, core.Dependency, nil))
	require.NoError(t, g.AddEdge(c, d, 15, core.OperatorKernel, nil))

	res, err := longestpath.Solve(g, a, d)
	require.NoError(t, err)
	assert.Equal(t, int64(25), res.Length)
	assert.Equal(t, []core.NodeID{a, b, c, d}, res.Nodes)
}

func TestSolve_TieBreakPrefersHigherPriorityCategory(t *testing.T) {
	g := core.NewGraph()
	s := g.AddNode(1, true, 0)
	mid := g.AddNode(2, true, 0)
	sink := g.AddNode(3, true, 10)

	require.NoError(t, g.AddEdge(s, mid, 0, core.Dependency, nil))
	require.NoError(t, g.AddEdge(s, sink, 10, core.KernelLaunchDelay, nil))
	require.NoError(t, g.AddEdge(mid, sink, 10, core.SyncDependency, nil))

	res, err := longestpath.Solve(g, s, sink)
	require.NoError(t, err)
	assert.Equal(t, int64(10), res.Length)

	edge, ok := g.EdgeBetween(s, sink)
	require.True(t, ok)
	assert.Equal(t, core.KernelLaunchDelay, edge.Category)
	assert.True(t, g.IsCriticalEdge(s, sink))
	assert.False(t, g.IsCriticalEdge(mid, sink))
}

func TestSolve_DisconnectedFails(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode(1, true, 0)
	b := g.AddNode(2, true, 5)

	_, err := longestpath.Solve(g, a, b)
	assert.ErrorIs(t, err, longestpath.ErrGraphDisconnected)
}

func TestSolve_UnknownNode(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode(1, true, 0)

	_, err := longestpath.Solve(g, a, core.NodeID(99))
	assert.ErrorIs(t, err, longestpath.ErrNodeNotFound)
}
