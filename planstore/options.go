package planstore

import "github.com/arloliu/ndspace/types"

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for publish and fetch records.
func WithLogger(logger types.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics sets the collector for publish counts and KV latencies.
func WithMetrics(metrics types.PlanMetrics) Option {
	return func(s *Store) {
		if metrics != nil {
			s.metrics = metrics
		}
	}
}
