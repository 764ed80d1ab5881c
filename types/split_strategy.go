package types

// SplitStrategy derives one worker's contiguous sub-range of a half-open range.
//
// Strategies implement different remainder policies:
//   - Static: remainder absorbed by the last worker (O(1), default)
//   - Balanced: remainder spread over the first workers (max imbalance of one)
//   - Custom: user-defined rules
//
// Strategy implementations must:
//   - Be deterministic (same input → same output)
//   - Cover [start, limit) exactly once across all worker IDs
//   - Return contiguous, ordered slices (worker i precedes worker i+1)
//   - Be stateless (safe for concurrent use)
type SplitStrategy interface {
	// Name returns a stable identifier used in configuration and plan fingerprints.
	Name() string

	// Bounds returns the half-open sub-range [lo, hi) owned by workerID.
	//
	// Parameters:
	//   - start: Inclusive lower bound of the range
	//   - limit: Exclusive upper bound of the range
	//   - workerID: Worker identity in [0, workerCount)
	//   - workerCount: Number of workers (>= 1)
	//
	// Returns:
	//   - lo, hi: Slice bounds
	//   - error: ErrInvalidWorker when the worker identity is out of range
	Bounds(start, limit, workerID, workerCount int) (lo, hi int, err error)
}
