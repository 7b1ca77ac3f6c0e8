package attribution

import "github.com/traceforma/cpgraph/event"

type config struct {
	dataLoadCategories map[event.Category]struct{}
}

// Option configures Breakdown.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{dataLoadCategories: map[event.Category]struct{}{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithDataLoadCategories marks event categories that should classify as
// DataLoading rather than CPUBound when they're the attributed event of
// an OPERATOR_KERNEL edge not running on a device.
func WithDataLoadCategories(categories ...event.Category) Option {
	return func(c *config) {
		for _, cat := range categories {
			c.dataLoadCategories[cat] = struct{}{}
		}
	}
}
