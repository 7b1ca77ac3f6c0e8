package builder

import (
	"github.com/traceforma/cpgraph/internal/tracelog"
)

// config holds Build's resolved options. It is unexported; callers only see
// Option and the With* constructors, following Go's functional-options
// convention of hiding the struct behind them.
type config struct {
	zeroWeightLaunchEdge bool
	logger               tracelog.Logger
}

// Option configures Build.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		logger: tracelog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithZeroWeightLaunchEdge additionally emits a zero-weight
// KERNEL_LAUNCH_DELAY edge from the launching runtime call's start node
// directly to the kernel's start node, alongside the ordinary end-to-start
// launch-delay edge. The solver uses it to let a kernel's critical-path
// predecessor be the launch itself rather than the launch's completion,
// when that produces a longer path. The edge carries no attribution, since
// edge_to_event_map is defined only on non-zero-weight edges.
func WithZeroWeightLaunchEdge() Option {
	return func(c *config) { c.zeroWeightLaunchEdge = true }
}

// WithLogger routes malformed-trace diagnostics to l instead of discarding
// them.
func WithLogger(l tracelog.Logger) Option {
	return func(c *config) { c.logger = l }
}
