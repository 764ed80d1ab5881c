package strategy

import "github.com/arloliu/ndspace/types"

// StaticName is the configuration name of the Static strategy.
const StaticName = "static"

// Static implements the fixed-chunk split with the remainder absorbed by the last worker.
type Static struct{}

var _ types.SplitStrategy = (*Static)(nil)

// NewStatic creates a new static split strategy.
//
// Every worker receives size/workerCount elements (integer division). The last
// worker keeps the original upper bound and therefore also receives the
// remainder size%workerCount. Slices are gap-free and never overlap, but they
// are not balanced: the last worker may hold up to workerCount-1 extra elements.
//
// Returns:
//   - *Static: Initialized static strategy
//
// Example:
//
//	lo, hi, err := strategy.NewStatic().Bounds(1, 99, 0, 2) // lo=1, hi=50
func NewStatic() *Static {
	return &Static{}
}

// Name returns "static".
func (s *Static) Name() string {
	return StaticName
}

// Bounds returns the slice of [start, limit) owned by workerID.
//
// The algorithm:
//  1. chunk = (limit - start) / workerCount
//  2. lo = start + chunk*workerID
//  3. hi = start + chunk*(workerID+1), or limit for the last worker
//
// Parameters:
//   - start: Inclusive lower bound
//   - limit: Exclusive upper bound
//   - workerID: Worker identity in [0, workerCount)
//   - workerCount: Number of workers
//
// Returns:
//   - lo, hi: Half-open slice bounds
//   - error: types.ErrInvalidWorker for an out-of-range worker identity
func (s *Static) Bounds(start, limit, workerID, workerCount int) (int, int, error) {
	if err := checkWorker(workerID, workerCount); err != nil {
		return 0, 0, err
	}

	chunk := (limit - start) / workerCount
	lo := start + chunk*workerID
	if workerID == workerCount-1 {
		return lo, limit, nil
	}

	return lo, start + chunk*(workerID+1), nil
}
