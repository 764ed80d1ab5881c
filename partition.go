package ndspace

import (
	"fmt"

	"github.com/arloliu/ndspace/strategy"
	"github.com/arloliu/ndspace/types"
)

// Split describes one worker's share of a static partition.
//
// It is consumed once to derive a sub-space and carries no lifecycle of its own.
type Split struct {
	// Dimension is the dimension to split, in [0, D).
	Dimension int

	// WorkerID is the worker identity, in [0, WorkerCount).
	WorkerID int

	// WorkerCount is the number of workers, >= 1.
	WorkerCount int
}

// Validate checks the split against a dimension count.
//
// Returns:
//   - error: ErrInvalidDimension or ErrInvalidWorker, nil if valid
func (sp Split) Validate(dims int) error {
	if sp.Dimension < 0 || sp.Dimension >= dims {
		return fmt.Errorf("dimension %d of %d: %w", sp.Dimension, dims, types.ErrInvalidDimension)
	}
	if sp.WorkerCount < 1 {
		return fmt.Errorf("worker count %d: %w", sp.WorkerCount, types.ErrInvalidWorker)
	}
	if sp.WorkerID < 0 || sp.WorkerID >= sp.WorkerCount {
		return fmt.Errorf("worker %d of %d: %w", sp.WorkerID, sp.WorkerCount, types.ErrInvalidWorker)
	}

	return nil
}

var defaultStrategy types.SplitStrategy = strategy.NewStatic()

// Partition derives the contiguous slice of s owned by one worker.
//
// Dimension dim is split into chunks of size/workerCount indices; worker i
// receives [start+chunk*i, start+chunk*(i+1)). The last worker keeps the
// original limit and therefore absorbs the remainder size%workerCount. All
// other dimensions are copied unchanged and s itself is never modified.
//
// The slices of all workers cover s exactly once, but they are not balanced:
// the last worker may hold up to workerCount-1 more indices than the others.
// Use PartitionWith and strategy.NewBalanced for an even split.
//
// Parameters:
//   - dim: Dimension to split, in [0, D)
//   - workerID: Worker identity, in [0, workerCount)
//   - workerCount: Number of workers, >= 1
//
// Returns:
//   - Space[I]: The worker's slice
//   - error: ErrInvalidDimension or ErrInvalidWorker for bad arguments
//
// Example:
//
//	s := ndspace.SpaceOf([2]int{1, 1}, [2]int{99, 99})
//	part, err := s.Partition(0, 0, 2) // [1,50)x[1,99)
func (s Space[I]) Partition(dim, workerID, workerCount int) (Space[I], error) {
	return s.PartitionWith(Split{Dimension: dim, WorkerID: workerID, WorkerCount: workerCount}, defaultStrategy)
}

// PartitionWith derives a worker's slice of s using the given split strategy.
//
// Returns:
//   - Space[I]: The worker's slice
//   - error: ErrStrategyRequired, ErrInvalidDimension or ErrInvalidWorker
func (s Space[I]) PartitionWith(split Split, strat types.SplitStrategy) (Space[I], error) {
	if strat == nil {
		return s, types.ErrStrategyRequired
	}
	if err := split.Validate(s.Dims()); err != nil {
		return s, err
	}

	d := split.Dimension
	lo, hi, err := strat.Bounds(s.start[d], s.limit[d], split.WorkerID, split.WorkerCount)
	if err != nil {
		return s, fmt.Errorf("%s split of dimension %d: %w", strat.Name(), d, err)
	}

	return s.withBounds(d, lo, hi), nil
}
