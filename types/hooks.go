package types

import "context"

// SliceInfo describes the slice a worker is about to iterate or has finished iterating.
type SliceInfo struct {
	// WorkerID is the worker identity in [0, WorkerCount).
	WorkerID int

	// WorkerCount is the number of workers in the region.
	WorkerCount int

	// Dimension is the split dimension.
	Dimension int

	// Lo and Hi are the slice bounds along Dimension, half-open [Lo, Hi).
	Lo, Hi int

	// Iterations is the number of visited indices. Zero in OnSliceStarted.
	Iterations int64
}

// Hooks defines callbacks for parallel region lifecycle events.
//
// All hooks are optional and are called synchronously from the worker
// goroutine that owns the slice. A slow hook delays that worker only.
//
// Best practices for hook implementation:
//   - Complete quickly
//   - Respect context cancellation
//   - Be safe for concurrent calls from different workers
//
// Example:
//
//	hooks := &ndspace.Hooks{
//	    OnSliceFinished: func(ctx context.Context, info ndspace.SliceInfo) error {
//	        log.Printf("worker %d visited %d indices", info.WorkerID, info.Iterations)
//	        return nil
//	    },
//	}
type Hooks struct {
	// OnSliceStarted is called before a worker begins iterating its slice.
	OnSliceStarted func(ctx context.Context, info SliceInfo) error

	// OnSliceFinished is called after a worker completed its slice without error.
	OnSliceFinished func(ctx context.Context, info SliceInfo) error

	// OnError is called when a worker's per-element function returns an error.
	OnError func(ctx context.Context, workerID int, err error) error
}
