package archive_test

import (
	"bytes"
	"fmt"

	"github.com/traceforma/cpgraph/archive"
	"github.com/traceforma/cpgraph/core"
)

func Example() {
	g := core.NewGraph()
	a := g.AddNode(1, true, 0)
	b := g.AddNode(1, false, 10)
	ev := uint64(1)
	_ = g.AddEdge(a, b, 10, core.OperatorKernel, &ev)

	var buf bytes.Buffer
	_ = archive.Save(&buf, g, archive.Meta{Rank: 0, SourceFingerprint: "demo"})

	restored, meta, err := archive.Load(&buf)
	if err != nil {
		panic(err)
	}

	fmt.Println(restored.EdgeCount(), meta.SourceFingerprint)
	// Output: 1 demo
}
