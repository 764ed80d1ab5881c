package planstore

import (
	"fmt"

	"github.com/arloliu/ndspace"
	"github.com/arloliu/ndspace/strategy"
	"github.com/arloliu/ndspace/types"
)

// PlanRecord is the stored form of a plan.
//
// Slices holds, per worker, the bounds along SplitDimension; every other
// dimension of a slice equals the global space.
type PlanRecord struct {
	Start          []int            `json:"start"`
	Limit          []int            `json:"limit"`
	SplitDimension int              `json:"splitDimension"`
	Workers        int              `json:"workers"`
	Strategy       string           `json:"strategy"`
	Fingerprint    uint64           `json:"fingerprint"`
	Slices         []ndspace.Bounds `json:"slices"`

	// Revision is the KV revision the record was read at. Not serialized.
	Revision uint64 `json:"-"`
}

// RecordOf converts a plan to its stored form.
func RecordOf[I ndspace.Index](plan *ndspace.Plan[I]) PlanRecord {
	space := plan.Space()

	rec := PlanRecord{
		Start:          make([]int, space.Dims()),
		Limit:          make([]int, space.Dims()),
		SplitDimension: plan.Dimension(),
		Workers:        plan.Workers(),
		Strategy:       plan.StrategyName(),
		Fingerprint:    plan.Fingerprint(),
		Slices:         make([]ndspace.Bounds, 0, plan.Workers()),
	}
	for d := range space.Dims() {
		b := space.Bounds(d)
		rec.Start[d], rec.Limit[d] = b.Start, b.Limit
	}
	for _, s := range plan.Slices() {
		rec.Slices = append(rec.Slices, s.Bounds(plan.Dimension()))
	}

	return rec
}

// Validate checks the record's internal consistency.
//
// Returns:
//   - error: ErrPlanMismatch if the shape is wrong or the slices do not
//     cover the split dimension contiguously
func (r *PlanRecord) Validate() error {
	dims := len(r.Start)
	if dims == 0 || dims > ndspace.MaxDims || len(r.Limit) != dims {
		return fmt.Errorf("record has %d start and %d limit bounds: %w", len(r.Start), len(r.Limit), types.ErrPlanMismatch)
	}
	if r.SplitDimension < 0 || r.SplitDimension >= dims {
		return fmt.Errorf("split dimension %d out of range: %w", r.SplitDimension, types.ErrPlanMismatch)
	}
	if r.Workers < 1 || len(r.Slices) != r.Workers {
		return fmt.Errorf("record has %d slices for %d workers: %w", len(r.Slices), r.Workers, types.ErrPlanMismatch)
	}

	next := r.Start[r.SplitDimension]
	for id, b := range r.Slices {
		if b.Start != next {
			return fmt.Errorf("slice %d starts at %d, want %d: %w", id, b.Start, next, types.ErrPlanMismatch)
		}
		next = b.Limit
	}
	if want := r.Limit[r.SplitDimension]; next != want {
		return fmt.Errorf("slices end at %d, want %d: %w", next, want, types.ErrPlanMismatch)
	}

	return nil
}

// Space rebuilds the global space of the record.
//
// Returns:
//   - error: ErrDimensionMismatch if I does not match the record's dimensions
func Space[I ndspace.Index](r *PlanRecord) (ndspace.Space[I], error) {
	if len(r.Start) != len(r.Limit) {
		return ndspace.Space[I]{}, fmt.Errorf("record bounds: %w", types.ErrPlanMismatch)
	}

	bounds := make([]ndspace.Bounds, len(r.Start))
	for d := range r.Start {
		bounds[d] = ndspace.Bounds{Start: r.Start[d], Limit: r.Limit[d]}
	}

	return ndspace.NewSpace[I](bounds...)
}

// Plan recomputes the plan described by r and checks it against the
// stored slices and fingerprint.
//
// Returns:
//   - *ndspace.Plan[I]: The recomputed plan
//   - error: ErrDimensionMismatch, ErrInvalidConfig for an unknown strategy,
//     or ErrPlanMismatch when the recomputed plan differs from the record
func Plan[I ndspace.Index](r *PlanRecord) (*ndspace.Plan[I], error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	space, err := Space[I](r)
	if err != nil {
		return nil, err
	}

	strat, err := strategy.ByName(r.Strategy)
	if err != nil {
		return nil, err
	}

	plan, err := ndspace.NewPlan(space, r.SplitDimension, r.Workers, ndspace.WithStrategy(strat))
	if err != nil {
		return nil, err
	}

	if plan.Fingerprint() != r.Fingerprint {
		return nil, fmt.Errorf("fingerprint %016x, record has %016x: %w", plan.Fingerprint(), r.Fingerprint, types.ErrPlanMismatch)
	}
	for id, s := range plan.Slices() {
		if s.Bounds(r.SplitDimension) != r.Slices[id] {
			return nil, fmt.Errorf("worker %d slice differs from record: %w", id, types.ErrPlanMismatch)
		}
	}

	return plan, nil
}

// SliceSpace returns the space assigned to workerID by the record.
func SliceSpace[I ndspace.Index](r *PlanRecord, workerID int) (ndspace.Space[I], error) {
	if err := r.Validate(); err != nil {
		return ndspace.Space[I]{}, err
	}
	if workerID < 0 || workerID >= r.Workers {
		return ndspace.Space[I]{}, fmt.Errorf("worker %d of %d: %w", workerID, r.Workers, types.ErrInvalidWorker)
	}

	global, err := Space[I](r)
	if err != nil {
		return ndspace.Space[I]{}, err
	}

	start, limit := global.Start(), global.Limit()
	b := r.Slices[workerID]
	start[r.SplitDimension] = b.Start
	limit[r.SplitDimension] = b.Limit

	return ndspace.SpaceOf(start, limit), nil
}
