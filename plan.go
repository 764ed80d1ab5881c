package ndspace

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/xxh3"

	"github.com/arloliu/ndspace/types"
)

// Plan holds the precomputed slices of a space for every worker.
//
// A plan is immutable after construction and safe for concurrent reads, so
// one plan can be shared by all workers of a region.
type Plan[I Index] struct {
	space    Space[I]
	dim      int
	strategy types.SplitStrategy
	slices   []Space[I]
}

// NewPlan splits dimension dim of space across workers.
//
// Parameters:
//   - space: The global space
//   - dim: Dimension to split
//   - workers: Number of workers, >= 1
//   - opts: Optional configuration (WithStrategy)
//
// Returns:
//   - *Plan[I]: The computed plan
//   - error: ErrInvalidDimension, ErrInvalidWorker or ErrStrategyRequired
func NewPlan[I Index](space Space[I], dim, workers int, opts ...PlanOption) (*Plan[I], error) {
	o := planOptions{strategy: defaultStrategy}
	for _, opt := range opts {
		opt(&o)
	}
	if o.strategy == nil {
		return nil, types.ErrStrategyRequired
	}

	p := &Plan[I]{
		space:    space,
		dim:      dim,
		strategy: o.strategy,
		slices:   make([]Space[I], 0, max(workers, 0)),
	}

	for id := range max(workers, 1) {
		part, err := space.PartitionWith(Split{Dimension: dim, WorkerID: id, WorkerCount: workers}, o.strategy)
		if err != nil {
			return nil, err
		}
		p.slices = append(p.slices, part)
	}

	return p, nil
}

// Space returns the global space.
func (p *Plan[I]) Space() Space[I] {
	return p.space
}

// Dimension returns the split dimension.
func (p *Plan[I]) Dimension() int {
	return p.dim
}

// Workers returns the worker count.
func (p *Plan[I]) Workers() int {
	return len(p.slices)
}

// StrategyName returns the name of the split strategy.
func (p *Plan[I]) StrategyName() string {
	return p.strategy.Name()
}

// Slice returns the space owned by workerID.
func (p *Plan[I]) Slice(workerID int) (Space[I], error) {
	if workerID < 0 || workerID >= len(p.slices) {
		return Space[I]{}, fmt.Errorf("worker %d of %d: %w", workerID, len(p.slices), types.ErrInvalidWorker)
	}

	return p.slices[workerID], nil
}

// Slices returns a copy of all worker slices, ordered by worker ID.
func (p *Plan[I]) Slices() []Space[I] {
	out := make([]Space[I], len(p.slices))
	copy(out, p.slices)

	return out
}

// Imbalance returns the difference between the largest and smallest slice
// extent along the split dimension.
func (p *Plan[I]) Imbalance() int {
	lo, hi := p.slices[0].Extent(p.dim), p.slices[0].Extent(p.dim)
	for _, s := range p.slices[1:] {
		e := s.Extent(p.dim)
		lo = min(lo, e)
		hi = max(hi, e)
	}

	return hi - lo
}

// Verify checks that the slices tile the global space along the split
// dimension, in worker order, without gaps or overlaps, and leave every other
// dimension untouched.
//
// Returns:
//   - error: ErrPlanMismatch describing the first violation, nil if the plan is exact
func (p *Plan[I]) Verify() error {
	next := p.space.start[p.dim]
	for id, s := range p.slices {
		for d := 0; d < p.space.Dims(); d++ {
			if d == p.dim {
				continue
			}
			if s.Bounds(d) != p.space.Bounds(d) {
				return fmt.Errorf("worker %d changed dimension %d: %w", id, d, types.ErrPlanMismatch)
			}
		}

		b := s.Bounds(p.dim)
		if b.Start != next {
			return fmt.Errorf("worker %d starts at %d, expected %d: %w", id, b.Start, next, types.ErrPlanMismatch)
		}
		next = b.Limit
	}

	if want := p.space.limit[p.dim]; next != want {
		return fmt.Errorf("slices end at %d, expected %d: %w", next, want, types.ErrPlanMismatch)
	}

	return nil
}

// Fingerprint returns a 64-bit digest of the plan's inputs.
//
// Workers that build a plan independently from the same configuration obtain
// the same fingerprint, which lets them detect divergent inputs before
// computing on disjoint slices.
func (p *Plan[I]) Fingerprint() uint64 {
	dims := p.space.Dims()
	buf := make([]byte, 0, 8*(2*dims+3)+len(p.strategy.Name()))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(dims))
	for d := 0; d < dims; d++ {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(p.space.start[d]))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(p.space.limit[d]))
	}
	buf = binary.LittleEndian.AppendUint64(buf, uint64(p.dim))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(p.slices)))
	buf = append(buf, p.strategy.Name()...)

	return xxh3.Hash(buf)
}
