package syncresolver

import "github.com/traceforma/cpgraph/internal/tracelog"

type config struct {
	logger tracelog.Logger
}

// Option configures Resolve.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{logger: tracelog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger routes malformed-trace diagnostics to l instead of discarding
// them.
func WithLogger(l tracelog.Logger) Option {
	return func(c *config) { c.logger = l }
}
