package parallel

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/ndspace/types"
)

// Team identifies a worker inside a region.
type Team struct {
	// ID is the worker identity in [0, Size).
	ID int

	// Size is the number of workers in the region.
	Size int
}

// Region runs fn once per worker on its own goroutine and waits for all of them.
//
// The context passed to fn is cancelled as soon as any worker returns an
// error. Region returns the first such error, wrapped with the worker id.
//
// Parameters:
//   - ctx: Parent context
//   - workers: Team size, must be >= 1
//   - fn: Worker body
//   - opts: Logger and metrics options (hooks are used by ForEach only)
//
// Returns:
//   - error: ErrInvalidWorker for workers < 1, otherwise the first worker error
func Region(ctx context.Context, workers int, fn func(ctx context.Context, team Team) error, opts ...Option) error {
	return runRegion(ctx, workers, fn, newOptions(opts))
}

func runRegion(ctx context.Context, workers int, fn func(ctx context.Context, team Team) error, o *options) error {
	if workers < 1 {
		return fmt.Errorf("region needs at least one worker, got %d: %w", workers, types.ErrInvalidWorker)
	}

	started := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for id := range workers {
		team := Team{ID: id, Size: workers}
		g.Go(func() error {
			if err := fn(gctx, team); err != nil {
				o.metrics.RecordRegionError(team.ID)
				return fmt.Errorf("worker %d: %w", team.ID, err)
			}

			return nil
		})
	}

	err := g.Wait()
	elapsed := time.Since(started)
	o.metrics.RecordRegionDuration(elapsed.Seconds(), workers)

	if err != nil {
		o.logger.Error("region failed", "workers", workers, "elapsed", elapsed, "error", err)
		return err
	}
	o.logger.Debug("region finished", "workers", workers, "elapsed", elapsed)

	return nil
}
