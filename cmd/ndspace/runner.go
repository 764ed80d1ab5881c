package main

import (
	"context"
	"fmt"
	"io"

	"github.com/arloliu/ndspace"
	"github.com/arloliu/ndspace/planstore"
	"github.com/arloliu/ndspace/types"
)

// runner executes commands for a configuration whose dimension count is
// only known at run time.
type runner interface {
	describe(w io.Writer) error
	walk(w io.Writer, workerID, maxIndices int) error
	publish(ctx context.Context, store *planstore.Store, name string) (uint64, error)
}

type spaceRunner[I ndspace.Index] struct {
	cfg *ndspace.Config
}

func newRunner(cfg *ndspace.Config) (runner, error) {
	switch len(cfg.Start) {
	case 1:
		return spaceRunner[[1]int]{cfg: cfg}, nil
	case 2:
		return spaceRunner[[2]int]{cfg: cfg}, nil
	case 3:
		return spaceRunner[[3]int]{cfg: cfg}, nil
	case 4:
		return spaceRunner[[4]int]{cfg: cfg}, nil
	case 5:
		return spaceRunner[[5]int]{cfg: cfg}, nil
	case 6:
		return spaceRunner[[6]int]{cfg: cfg}, nil
	case 7:
		return spaceRunner[[7]int]{cfg: cfg}, nil
	case 8:
		return spaceRunner[[8]int]{cfg: cfg}, nil
	default:
		return nil, fmt.Errorf("%d dimensions: %w", len(cfg.Start), types.ErrInvalidConfig)
	}
}

func (r spaceRunner[I]) describe(w io.Writer) error {
	plan, err := ndspace.ConfigPlan[I](r.cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "space:       %s (%d indices)\n", plan.Space(), plan.Space().Len())
	fmt.Fprintf(w, "split:       dimension %d over %d workers (%s)\n", plan.Dimension(), plan.Workers(), plan.StrategyName())
	fmt.Fprintf(w, "imbalance:   %d\n", plan.Imbalance())
	fmt.Fprintf(w, "fingerprint: %016x\n", plan.Fingerprint())
	for id, s := range plan.Slices() {
		fmt.Fprintf(w, "worker %-4d %s (%d indices)\n", id, s, s.Len())
	}

	return plan.Verify()
}

func (r spaceRunner[I]) walk(w io.Writer, workerID, maxIndices int) error {
	plan, err := ndspace.ConfigPlan[I](r.cfg)
	if err != nil {
		return err
	}
	order, err := ndspace.ConfigOrder(r.cfg)
	if err != nil {
		return err
	}
	slice, err := plan.Slice(workerID)
	if err != nil {
		return err
	}

	n := 0
	for idx := range ndspace.NewRange(slice, order).All() {
		if maxIndices > 0 && n == maxIndices {
			fmt.Fprintf(w, "... %d more\n", slice.Len()-n)
			break
		}
		fmt.Fprintln(w, idx)
		n++
	}

	return nil
}

func (r spaceRunner[I]) publish(ctx context.Context, store *planstore.Store, name string) (uint64, error) {
	plan, err := ndspace.ConfigPlan[I](r.cfg)
	if err != nil {
		return 0, err
	}

	return planstore.PublishPlan(ctx, store, name, plan)
}
