package strategy

import "github.com/arloliu/ndspace/types"

// BalancedName is the configuration name of the Balanced strategy.
const BalancedName = "balanced"

// Balanced implements an even split where slice extents differ by at most one.
type Balanced struct{}

var _ types.SplitStrategy = (*Balanced)(nil)

// NewBalanced creates a new balanced split strategy.
//
// The first size%workerCount workers receive one extra element each, so no
// worker holds more than one element above any other.
//
// Returns:
//   - *Balanced: Initialized balanced strategy
func NewBalanced() *Balanced {
	return &Balanced{}
}

// Name returns "balanced".
func (b *Balanced) Name() string {
	return BalancedName
}

// Bounds returns the slice of [start, limit) owned by workerID.
//
// An inverted range (limit < start) yields empty slices: every worker
// receives [start, start) except the last, which keeps [start, limit).
func (b *Balanced) Bounds(start, limit, workerID, workerCount int) (int, int, error) {
	if err := checkWorker(workerID, workerCount); err != nil {
		return 0, 0, err
	}

	size := limit - start
	if size < 0 {
		if workerID == workerCount-1 {
			return start, limit, nil
		}

		return start, start, nil
	}

	quo, rem := size/workerCount, size%workerCount

	lo := start + workerID*quo + min(workerID, rem)
	hi := lo + quo
	if workerID < rem {
		hi++
	}

	return lo, hi, nil
}
