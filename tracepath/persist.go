package tracepath

import (
	"fmt"
	"io"

	"github.com/traceforma/cpgraph/archive"
	"github.com/traceforma/cpgraph/core"
	"github.com/traceforma/cpgraph/longestpath"
)

// Save writes r's graph to w as an archive, recording r.Source/r.Sink in
// meta so that Open can re-solve the critical path without re-running the
// builder or resolver. Callers fill in the provenance fields of meta
// (Rank, SourceFingerprint, iteration selector) before calling Save;
// Save overwrites only SourceNode and SinkNode.
func Save(w io.Writer, r Report, meta archive.Meta) error {
	meta.SourceNode = int(r.Source)
	meta.SinkNode = int(r.Sink)
	return archive.Save(w, r.Graph, meta)
}

// Open reads an archive written by Save and re-solves its critical path,
// returning the same Path the original Report carried: saving, reloading,
// and re-solving a graph always yields an identical critical edge set. It
// does not recompute Breakdown/Summary, since those need the original
// event table, which an archive does not carry.
func Open(r io.Reader) (*core.Graph, longestpath.Result, archive.Meta, error) {
	g, meta, err := archive.Load(r)
	if err != nil {
		return nil, longestpath.Result{}, archive.Meta{}, fmt.Errorf("tracepath: load: %w", err)
	}

	path, err := longestpath.Solve(g, core.NodeID(meta.SourceNode), core.NodeID(meta.SinkNode))
	if err != nil {
		return nil, longestpath.Result{}, archive.Meta{}, fmt.Errorf("tracepath: solve: %w", err)
	}

	return g, path, meta, nil
}
