package parallel

import (
	"github.com/arloliu/ndspace/internal/hooks"
	"github.com/arloliu/ndspace/internal/logger"
	"github.com/arloliu/ndspace/internal/metrics"
	"github.com/arloliu/ndspace/types"
)

// DefaultCancelCheckInterval is the number of indices a worker visits
// between context checks when no interval is configured.
const DefaultCancelCheckInterval = 1024

// Option configures Region and ForEach.
type Option func(*options)

type options struct {
	logger              types.Logger
	metrics             types.MetricsCollector
	hooks               types.Hooks
	cancelCheckInterval int
}

func newOptions(opts []Option) *options {
	o := &options{
		logger:              logger.NewNop(),
		metrics:             metrics.NewNop(),
		hooks:               hooks.NewNop(),
		cancelCheckInterval: DefaultCancelCheckInterval,
	}
	for _, opt := range opts {
		opt(o)
	}
	o.hooks = hooks.Merge(o.hooks)

	return o
}

// WithLogger sets the logger used for region and slice lifecycle records.
//
// Example:
//
//	parallel.ForEach(ctx, plan, ndspace.RowMajor, fn, parallel.WithLogger(logging.NewSlogDefault()))
func WithLogger(l types.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics sets the collector that receives slice extents, iteration
// counts and region durations.
func WithMetrics(m types.MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithHooks sets slice lifecycle callbacks. Nil callbacks are ignored.
//
// Example:
//
//	parallel.ForEach(ctx, plan, ndspace.RowMajor, fn, parallel.WithHooks(ndspace.Hooks{
//	    OnSliceFinished: func(ctx context.Context, info ndspace.SliceInfo) error {
//	        log.Printf("worker %d visited %d indices", info.WorkerID, info.Iterations)
//	        return nil
//	    },
//	}))
func WithHooks(h types.Hooks) Option {
	return func(o *options) {
		o.hooks = h
	}
}

// WithCancelCheckInterval sets how many indices a worker visits between
// context cancellation checks. Values below 1 are ignored.
func WithCancelCheckInterval(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.cancelCheckInterval = n
		}
	}
}
