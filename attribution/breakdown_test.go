package attribution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traceforma/cpgraph/attribution"
	"github.com/traceforma/cpgraph/builder"
	"github.com/traceforma/cpgraph/event"
	"github.com/traceforma/cpgraph/longestpath"
)

func ptr(v uint64) *uint64 { return &v }

func TestBreakdown_ClassifiesEachCategory(t *testing.T) {
	corrID := ptr(9)
	evs := []event.Event{
		{Index: 0, Name: "forward", Category: event.CategoryHostOp, TimestampNS: 0, DurationNS: 30, PID: 1, TID: 1},
		{Index: 1, Name: "cudaLaunchKernel", Category: event.CategoryRuntimeCall, TimestampNS: 2, DurationNS: 2, PID: 1, TID: 1, Correlation: corrID},
		{Index: 2, Name: "matmul", Category: event.CategoryDeviceKernel, TimestampNS: 10, DurationNS: 15, Stream: 0, Correlation: corrID},
	}

	res, err := builder.Build(evs, builder.IterationSelector{})
	require.NoError(t, err)

	solved, err := longestpath.Solve(res.Graph, res.Source, res.Sink)
	require.NoError(t, err)

	rows := attribution.Breakdown(res.Graph, solved, evs)
	require.NotEmpty(t, rows)

	summary := attribution.Summarize(rows)
	require.Len(t, summary, 5)

	var gpuTotal int64
	for _, s := range summary {
		if s.BoundBy == attribution.GPUKernel {
			gpuTotal = s.TotalNS
		}
	}
	assert.Equal(t, int64(15), gpuTotal)
}

func TestBreakdown_DataLoadingBucketAppearsWhenConfigured(t *testing.T) {
	evs := []event.Event{
		{Index: 0, Name: "load_batch", Category: event.CategoryHostOp, TimestampNS: 0, DurationNS: 10, PID: 1, TID: 1},
	}

	res, err := builder.Build(evs, builder.IterationSelector{})
	require.NoError(t, err)

	solved, err := longestpath.Solve(res.Graph, res.Source, res.Sink)
	require.NoError(t, err)

	rows := attribution.Breakdown(res.Graph, solved, evs, attribution.WithDataLoadCategories(event.CategoryHostOp))
	summary := attribution.Summarize(rows)

	require.Len(t, summary, 6)
	assert.Equal(t, attribution.DataLoading, summary[5].BoundBy)
	assert.Equal(t, int64(10), summary[5].TotalNS)
}
