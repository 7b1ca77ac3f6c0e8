package tracepath

import (
	"github.com/traceforma/cpgraph/attribution"
	"github.com/traceforma/cpgraph/builder"
	"github.com/traceforma/cpgraph/event"
	"github.com/traceforma/cpgraph/internal/tracelog"
	"github.com/traceforma/cpgraph/syncresolver"
)

// config holds Analyze's resolved options, split into the per-stage
// options each underlying package expects.
type config struct {
	logger               tracelog.Logger
	zeroWeightLaunchEdge bool
	dataLoadCategories   []event.Category
}

// Option configures Analyze.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{logger: tracelog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger routes every stage's malformed-trace diagnostics to l instead
// of discarding them.
func WithLogger(l tracelog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithZeroWeightLaunchEdge forwards to builder.WithZeroWeightLaunchEdge.
func WithZeroWeightLaunchEdge() Option {
	return func(c *config) { c.zeroWeightLaunchEdge = true }
}

// WithDataLoadCategories forwards to attribution.WithDataLoadCategories.
func WithDataLoadCategories(categories ...event.Category) Option {
	return func(c *config) { c.dataLoadCategories = append(c.dataLoadCategories, categories...) }
}

func (c config) builderOpts() []builder.Option {
	opts := []builder.Option{builder.WithLogger(c.logger)}
	if c.zeroWeightLaunchEdge {
		opts = append(opts, builder.WithZeroWeightLaunchEdge())
	}
	return opts
}

func (c config) resolverOpts() []syncresolver.Option {
	return []syncresolver.Option{syncresolver.WithLogger(c.logger)}
}

func (c config) attributionOpts() []attribution.Option {
	if len(c.dataLoadCategories) == 0 {
		return nil
	}
	return []attribution.Option{attribution.WithDataLoadCategories(c.dataLoadCategories...)}
}
