// Package ndspace describes and traverses dense N-dimensional index ranges and
// statically partitions one dimension of such a range across parallel workers.
//
// A Space is a half-open box [start, limit) whose dimension count is fixed by
// its index type ([2]int for 2-D, [3]int for 3-D, up to [8]int). A Range binds
// a space to a traversal Order and hands out cursors; Partition derives the
// disjoint, contiguous slice owned by one worker.
//
// # Quick Start
//
// Each worker of a fork-join region iterates only its slice:
//
//	space := ndspace.SpaceOf([2]int{1, 1}, [2]int{99, 99})
//
//	part, err := space.Partition(0, workerID, workerCount)
//	if err != nil {
//	    return err
//	}
//
//	for idx := range ndspace.NewRange(part, ndspace.RowMajor).All() {
//	    i, j := idx[0], idx[1]
//	    next[i][j] = (cur[i-1][j] + cur[i+1][j] + cur[i][j-1] + cur[i][j+1]) / 4
//	}
//
// The explicit cursor protocol is available as well:
//
//	r := ndspace.NewRange(part, ndspace.ColumnMajor)
//	end := r.End()
//	for c := r.Begin(); !c.Equal(end); _ = c.Advance() {
//	    use(c.Index())
//	}
//
// # Traversal Orders
//
// RowMajor varies the last dimension fastest; ColumnMajor varies the first
// dimension fastest. Both visit every index exactly once. A space with any
// zero-length dimension is visited zero times.
//
// # Partitioning
//
// Partition uses the static rule: every worker gets size/workerCount indices
// and the last worker absorbs the remainder. Plans (NewPlan) precompute all
// slices, verify coverage and fingerprint their inputs. Other remainder
// policies live in the strategy package.
//
// The parallel package runs plans on goroutines, and the planstore package
// distributes plans to worker processes through NATS JetStream.
package ndspace
