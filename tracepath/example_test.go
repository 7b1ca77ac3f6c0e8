package tracepath_test

import (
	"fmt"

	"github.com/traceforma/cpgraph/builder"
	"github.com/traceforma/cpgraph/event"
	"github.com/traceforma/cpgraph/tracepath"
)

func ExampleAnalyze() {
	events := []event.Event{
		{Index: 1, Name: "cudaLaunchKernel", Category: event.CategoryRuntimeCall, TimestampNS: 0, DurationNS: 5, Correlation: ptr(42)},
		{Index: 2, Name: "matmul", Category: event.CategoryDeviceKernel, TimestampNS: 10, DurationNS: 20, Stream: 1, Correlation: ptr(42)},
	}

	report, err := tracepath.Analyze(events, builder.IterationSelector{})
	if err != nil {
		panic(err)
	}

	fmt.Println(report.Path.Length)
	// Output: 30
}
