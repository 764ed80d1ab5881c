package parallel

import (
	"context"
	"fmt"
	"time"

	"github.com/arloliu/ndspace"
	"github.com/arloliu/ndspace/strategy"
	"github.com/arloliu/ndspace/types"
)

// ForEach visits every index of plan's space exactly once, in parallel.
//
// One worker is started per plan slice. Each worker iterates its slice in
// the given order and calls fn for every index; fn runs concurrently across
// workers but sequentially within one worker. Cancellation of ctx, or an
// error from any worker, stops the other workers at their next check.
//
// Parameters:
//   - ctx: Parent context
//   - plan: Partition of the global space
//   - order: Traversal order inside each slice
//   - fn: Per-index body; its error stops the region
//   - opts: Logger, metrics, hooks and cancel check options
//
// Returns:
//   - *Report: Per-worker statistics, also populated when an error is returned
//   - error: The first worker error, wrapped with worker id and index
func ForEach[I ndspace.Index](
	ctx context.Context,
	plan *ndspace.Plan[I],
	order ndspace.Order,
	fn func(team Team, idx I) error,
	opts ...Option,
) (*Report, error) {
	if plan == nil {
		return nil, fmt.Errorf("nil plan: %w", types.ErrPlanMismatch)
	}

	o := newOptions(opts)
	report := newReport(plan.Workers())

	if plan.StrategyName() == strategy.StaticName && plan.Imbalance() > 1 {
		o.logger.Warn("uneven static split, last worker carries the remainder",
			"imbalance", plan.Imbalance(),
			"workers", plan.Workers(),
			"recommended", strategy.BalancedName,
		)
	}

	err := runRegion(ctx, plan.Workers(), func(ctx context.Context, team Team) error {
		slice, err := plan.Slice(team.ID)
		if err != nil {
			return err
		}

		return runSlice(ctx, team, plan.Dimension(), slice, order, fn, o, report)
	}, o)

	return report, err
}

func runSlice[I ndspace.Index](
	ctx context.Context,
	team Team,
	dim int,
	slice ndspace.Space[I],
	order ndspace.Order,
	fn func(team Team, idx I) error,
	o *options,
	report *Report,
) error {
	bounds := slice.Bounds(dim)
	info := types.SliceInfo{
		WorkerID:    team.ID,
		WorkerCount: team.Size,
		Dimension:   dim,
		Lo:          bounds.Start,
		Hi:          bounds.Limit,
	}

	o.metrics.RecordSlice(team.ID, max(bounds.Extent(), 0))
	o.logger.Debug("slice started", "worker", team.ID, "slice", slice.String())

	if err := o.hooks.OnSliceStarted(ctx, info); err != nil {
		return fmt.Errorf("slice started hook: %w", err)
	}

	started := time.Now()
	count, err := visit(ctx, team, slice, order, fn, o.cancelCheckInterval)
	info.Iterations = count

	report.store(WorkerStats{
		WorkerID:   team.ID,
		Lo:         bounds.Start,
		Hi:         bounds.Limit,
		Iterations: count,
		Duration:   time.Since(started),
		Err:        err,
	})
	o.metrics.RecordIterations(team.ID, count)

	if err != nil {
		if hookErr := o.hooks.OnError(ctx, team.ID, err); hookErr != nil {
			o.logger.Warn("error hook failed", "worker", team.ID, "error", hookErr)
		}

		return err
	}

	o.logger.Debug("slice finished", "worker", team.ID, "iterations", count)

	if err := o.hooks.OnSliceFinished(ctx, info); err != nil {
		return fmt.Errorf("slice finished hook: %w", err)
	}

	return nil
}

// visit walks slice with a cursor and checks ctx every interval indices.
func visit[I ndspace.Index](
	ctx context.Context,
	team Team,
	slice ndspace.Space[I],
	order ndspace.Order,
	fn func(team Team, idx I) error,
	interval int,
) (int64, error) {
	r := ndspace.NewRange(slice, order)
	end := r.End()

	var count int64
	for c := r.Begin(); !c.Equal(end); _ = c.Advance() {
		if count%int64(interval) == 0 {
			if err := ctx.Err(); err != nil {
				return count, err
			}
		}

		idx := c.Index()
		if err := fn(team, idx); err != nil {
			return count, fmt.Errorf("index %v: %w", idx, err)
		}
		count++
	}

	return count, nil
}
