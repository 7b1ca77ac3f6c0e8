package tracepath

import (
	"fmt"

	"github.com/traceforma/cpgraph/attribution"
	"github.com/traceforma/cpgraph/builder"
	"github.com/traceforma/cpgraph/core"
	"github.com/traceforma/cpgraph/event"
	"github.com/traceforma/cpgraph/longestpath"
	"github.com/traceforma/cpgraph/syncresolver"
)

// Report is the full result of running one iteration's events through the
// builder, resolver, solver, and attribution stages.
type Report struct {
	Graph    *core.Graph
	Source   core.NodeID
	Sink     core.NodeID
	Path     longestpath.Result
	Breakdown []attribution.Row
	Summary   []attribution.SummaryRow
}

// Analyze runs the full pipeline — Builder, then Sync Resolver, then the
// longest-path Solver, then Attribution/Summary — over events, windowed
// by sel.
func Analyze(events []event.Event, sel builder.IterationSelector, opts ...Option) (Report, error) {
	cfg := newConfig(opts...)

	built, err := builder.Build(events, sel, cfg.builderOpts()...)
	if err != nil {
		return Report{}, fmt.Errorf("tracepath: build: %w", err)
	}

	if err := syncresolver.Resolve(built.Graph, events, cfg.resolverOpts()...); err != nil {
		return Report{}, fmt.Errorf("tracepath: resolve: %w", err)
	}

	path, err := longestpath.Solve(built.Graph, built.Source, built.Sink)
	if err != nil {
		return Report{}, fmt.Errorf("tracepath: solve: %w", err)
	}

	rows := attribution.Breakdown(built.Graph, path, events, cfg.attributionOpts()...)
	summary := attribution.Summarize(rows)

	return Report{
		Graph:     built.Graph,
		Source:    built.Source,
		Sink:      built.Sink,
		Path:      path,
		Breakdown: rows,
		Summary:   summary,
	}, nil
}
