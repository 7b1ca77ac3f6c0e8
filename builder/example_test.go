package builder_test

import (
	"fmt"

	"github.com/traceforma/cpgraph/builder"
	"github.com/traceforma/cpgraph/event"
)

func ExampleBuild() {
	corrID := uint64(7)
	events := []event.Event{
		{Index: 0, Name: "cudaLaunchKernel", Category: event.CategoryRuntimeCall, TimestampNS: 0, DurationNS: 2, Correlation: &corrID},
		{Index: 1, Name: "add_kernel", Category: event.CategoryDeviceKernel, TimestampNS: 5, DurationNS: 10, Stream: 0, Correlation: &corrID},
	}

	res, err := builder.Build(events, builder.IterationSelector{})
	if err != nil {
		fmt.Println("build error:", err)
		return
	}

	fmt.Println(res.Graph.NodeCount(), res.Graph.EdgeCount())
	// Output: 4 3
}
