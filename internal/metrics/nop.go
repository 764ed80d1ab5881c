// Package metrics provides MetricsCollector implementations for parallel
// regions and the plan store.
package metrics

import "github.com/arloliu/ndspace/types"

// NopMetrics discards every observation.
type NopMetrics struct{}

var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a collector that records nothing.
//
// Example:
//
//	report, err := parallel.ForEach(ctx, plan, ndspace.RowMajor, fn, parallel.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RegionMetrics implementation

func (n *NopMetrics) RecordSlice(_ /* workerID */, _ /* extent */ int) {}

func (n *NopMetrics) RecordIterations(_ /* workerID */ int, _ /* count */ int64) {}

func (n *NopMetrics) RecordRegionDuration(_ /* duration */ float64, _ /* workers */ int) {}

func (n *NopMetrics) RecordRegionError(_ /* workerID */ int) {}

// PlanMetrics implementation

func (n *NopMetrics) RecordPlanPublished(_ /* name */ string, _ /* workers */ int) {}

func (n *NopMetrics) RecordKVOperationDuration(_ /* operation */ string, _ /* duration */ float64) {}
