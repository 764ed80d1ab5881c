package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// All methods are called from worker goroutines and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	RegionMetrics
	PlanMetrics
}

// RegionMetrics defines metrics for parallel region execution.
type RegionMetrics interface {
	// RecordSlice records the extent of the slice assigned to a worker (gauge metric).
	//
	// Parameters:
	//   - workerID: Worker identity in [0, workerCount)
	//   - extent: Number of indices along the split dimension
	RecordSlice(workerID int, extent int)

	// RecordIterations records the number of indices a worker visited.
	//
	// Parameters:
	//   - workerID: Worker identity in [0, workerCount)
	//   - count: Number of visited indices
	RecordIterations(workerID int, count int64)

	// RecordRegionDuration records the wall time of one parallel region.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	//   - workers: Number of workers in the region
	RecordRegionDuration(duration float64, workers int)

	// RecordRegionError records a region that ended with an error.
	RecordRegionError(workerID int)
}

// PlanMetrics defines metrics for partition plan distribution.
type PlanMetrics interface {
	// RecordPlanPublished records a plan written to the plan store.
	RecordPlanPublished(name string, workers int)

	// RecordKVOperationDuration records NATS KV operation latency.
	//
	// Parameters:
	//   - operation: Operation type ("get", "put", "delete")
	//   - duration: Time taken in seconds
	RecordKVOperationDuration(operation string, duration float64)
}
