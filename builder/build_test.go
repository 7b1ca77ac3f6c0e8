package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traceforma/cpgraph/builder"
	"github.com/traceforma/cpgraph/core"
	"github.com/traceforma/cpgraph/event"
)

func ptr(v uint64) *uint64 { return &v }

func TestBuild_OperatorKernelInvariant(t *testing.T) {
	events := []event.Event{
		{Index: 1, Name: "matmul", Category: event.CategoryDeviceKernel, TimestampNS: 100, DurationNS: 50, Stream: 1},
	}

	res, err := builder.Build(events, builder.IterationSelector{})
	require.NoError(t, err)

	s, e, ok := res.Graph.EventNodes(1)
	require.True(t, ok)

	edge, ok := res.Graph.EdgeBetween(s, e)
	require.True(t, ok)
	assert.Equal(t, int64(50), edge.Weight)
	assert.Equal(t, core.OperatorKernel, edge.Category)
}

func TestBuild_HostNestingProducesDependencyEdge(t *testing.T) {
	events := []event.Event{
		{Index: 1, Name: "step", Category: event.CategoryHostOp, TimestampNS: 0, DurationNS: 100, PID: 1, TID: 1},
		{Index: 2, Name: "forward", Category: event.CategoryHostOp, TimestampNS: 10, DurationNS: 20, PID: 1, TID: 1},
	}

	res, err := builder.Build(events, builder.IterationSelector{})
	require.NoError(t, err)

	parentStart, _, ok := res.Graph.EventNodes(1)
	require.True(t, ok)
	childStart, _, ok := res.Graph.EventNodes(2)
	require.True(t, ok)

	edge, ok := res.Graph.EdgeBetween(parentStart, childStart)
	require.True(t, ok)
	assert.Equal(t, core.Dependency, edge.Category)
	assert.Equal(t, int64(10), edge.Weight)

	attributed, ok := res.Graph.EventForEdge(parentStart, childStart)
	require.True(t, ok, "a non-zero-weight DEPENDENCY edge is attributed")
	assert.Equal(t, uint64(1), attributed)
}

func TestBuild_LaunchDelayConnectsCorrelatedEvents(t *testing.T) {
	events := []event.Event{
		{Index: 1, Name: "cudaLaunchKernel", Category: event.CategoryRuntimeCall, TimestampNS: 0, DurationNS: 5, PID: 1, TID: 1, Correlation: ptr(42)},
		{Index: 2, Name: "matmul", Category: event.CategoryDeviceKernel, TimestampNS: 10, DurationNS: 20, Stream: 1, Correlation: ptr(42)},
	}

	res, err := builder.Build(events, builder.IterationSelector{})
	require.NoError(t, err)

	_, launchEnd, ok := res.Graph.EventNodes(1)
	require.True(t, ok)
	kernelStart, _, ok := res.Graph.EventNodes(2)
	require.True(t, ok)

	edge, ok := res.Graph.EdgeBetween(launchEnd, kernelStart)
	require.True(t, ok)
	assert.Equal(t, core.KernelLaunchDelay, edge.Category)
	assert.Equal(t, int64(5), edge.Weight)

	attributed, ok := res.Graph.EventForEdge(launchEnd, kernelStart)
	require.True(t, ok)
	assert.Equal(t, uint64(1), attributed)
}

func TestBuild_DeviceKernelKernelDelay(t *testing.T) {
	events := []event.Event{
		{Index: 1, Name: "k1", Category: event.CategoryDeviceKernel, TimestampNS: 0, DurationNS: 10, Stream: 1},
		{Index: 2, Name: "k2", Category: event.CategoryDeviceKernel, TimestampNS: 15, DurationNS: 10, Stream: 1},
	}

	res, err := builder.Build(events, builder.IterationSelector{})
	require.NoError(t, err)

	_, k1End, ok := res.Graph.EventNodes(1)
	require.True(t, ok)
	k2Start, _, ok := res.Graph.EventNodes(2)
	require.True(t, ok)

	edge, ok := res.Graph.EdgeBetween(k1End, k2Start)
	require.True(t, ok)
	assert.Equal(t, core.KernelKernelDelay, edge.Category)
	assert.Equal(t, int64(5), edge.Weight)
}

func TestBuild_NoSuchIterationOnUnknownAnnotation(t *testing.T) {
	events := []event.Event{
		{Index: 1, Name: "op", Category: event.CategoryHostOp, TimestampNS: 0, DurationNS: 10},
	}

	_, err := builder.Build(events, builder.IterationSelector{Annotation: "train_step", Instance: 0})
	assert.ErrorIs(t, err, builder.ErrNoSuchIteration)
}

func TestBuild_EmptyTrace(t *testing.T) {
	_, err := builder.Build(nil, builder.IterationSelector{})
	assert.ErrorIs(t, err, builder.ErrEmptyTrace)
}
