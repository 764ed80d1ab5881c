package parallel

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ndspace"
	"github.com/arloliu/ndspace/internal/logger"
	"github.com/arloliu/ndspace/strategy"
	"github.com/arloliu/ndspace/types"
)

func newPlan[I ndspace.Index](t *testing.T, space ndspace.Space[I], dim, workers int, opts ...ndspace.PlanOption) *ndspace.Plan[I] {
	t.Helper()

	plan, err := ndspace.NewPlan(space, dim, workers, opts...)
	require.NoError(t, err)

	return plan
}

func TestForEach_CoversSpaceExactlyOnce(t *testing.T) {
	tests := []struct {
		name    string
		dim     int
		workers int
		order   ndspace.Order
		opts    []ndspace.PlanOption
	}{
		{name: "row-major split dim 0", dim: 0, workers: 3, order: ndspace.RowMajor},
		{name: "column-major split dim 1", dim: 1, workers: 4, order: ndspace.ColumnMajor},
		{name: "balanced split dim 2", dim: 2, workers: 5, order: ndspace.RowMajor,
			opts: []ndspace.PlanOption{ndspace.WithStrategy(strategy.NewBalanced())}},
		{name: "more workers than extent", dim: 0, workers: 9, order: ndspace.RowMajor},
	}

	space := ndspace.SpaceOf([3]int{1, 0, -2}, [3]int{6, 4, 5})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := newPlan(t, space, tt.dim, tt.workers, tt.opts...)

			var mu sync.Mutex
			visits := map[[3]int]int{}

			report, err := ForEach(t.Context(), plan, tt.order, func(_ Team, idx [3]int) error {
				mu.Lock()
				visits[idx]++
				mu.Unlock()

				return nil
			})
			require.NoError(t, err)
			require.Len(t, visits, space.Len())
			for idx, n := range visits {
				require.True(t, space.Contains(idx), "index %v outside space", idx)
				require.Equal(t, 1, n, "index %v visited %d times", idx, n)
			}

			require.Equal(t, int64(space.Len()), report.Total())
			require.Equal(t, tt.workers, report.Workers())
			require.Len(t, report.All(), tt.workers)
		})
	}
}

func TestForEach_WorkerSeesOnlyItsSlice(t *testing.T) {
	space := ndspace.SpaceOf([2]int{1, 1}, [2]int{99, 99})
	plan := newPlan(t, space, 0, 2)

	_, err := ForEach(t.Context(), plan, ndspace.RowMajor, func(team Team, idx [2]int) error {
		slice, err := plan.Slice(team.ID)
		if err != nil {
			return err
		}
		if !slice.Contains(idx) {
			return errors.New("index outside worker slice")
		}

		return nil
	})
	require.NoError(t, err)
}

func TestForEach_OrderWithinWorker(t *testing.T) {
	space := ndspace.SpaceOf([2]int{1, 1}, [2]int{4, 4})
	plan := newPlan(t, space, 0, 1)

	var got [][2]int
	_, err := ForEach(t.Context(), plan, ndspace.ColumnMajor, func(_ Team, idx [2]int) error {
		got = append(got, idx)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, [][2]int{
		{1, 1}, {2, 1}, {3, 1},
		{1, 2}, {2, 2}, {3, 2},
		{1, 3}, {2, 3}, {3, 3},
	}, got)
}

func TestForEach_Report(t *testing.T) {
	space := ndspace.SpaceOf([2]int{1, 1}, [2]int{99, 99})
	plan := newPlan(t, space, 0, 3)

	report, err := ForEach(t.Context(), plan, ndspace.RowMajor, func(Team, [2]int) error { return nil })
	require.NoError(t, err)

	w0, ok := report.Worker(0)
	require.True(t, ok)
	require.Equal(t, 1, w0.Lo)
	require.Equal(t, 33, w0.Hi)
	require.Equal(t, int64(32*98), w0.Iterations)
	require.NoError(t, w0.Err)

	w2, ok := report.Worker(2)
	require.True(t, ok)
	require.Equal(t, 65, w2.Lo)
	require.Equal(t, 99, w2.Hi)
	require.Equal(t, int64(34*98), w2.Iterations)

	_, ok = report.Worker(3)
	require.False(t, ok)
}

func TestForEach_ZeroLengthSpace(t *testing.T) {
	space := ndspace.SpaceOf([2]int{1, 5}, [2]int{9, 5})
	plan := newPlan(t, space, 0, 2)

	called := false
	report, err := ForEach(t.Context(), plan, ndspace.RowMajor, func(Team, [2]int) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	require.False(t, called)
	require.Equal(t, int64(0), report.Total())
}

func TestForEach_ErrorStopsRegion(t *testing.T) {
	errBad := errors.New("bad cell")
	space := ndspace.SpaceOf([1]int{0}, [1]int{1000})
	plan := newPlan(t, space, 0, 4)

	var hookMu sync.Mutex
	var hookWorkers []int

	report, err := ForEach(t.Context(), plan, ndspace.RowMajor, func(_ Team, idx [1]int) error {
		if idx[0] == 10 {
			return errBad
		}

		return nil
	},
		WithCancelCheckInterval(1),
		WithHooks(types.Hooks{
			OnError: func(_ context.Context, workerID int, _ error) error {
				hookMu.Lock()
				hookWorkers = append(hookWorkers, workerID)
				hookMu.Unlock()

				return nil
			},
		}),
	)
	require.ErrorIs(t, err, errBad)
	require.ErrorContains(t, err, "worker 0")
	require.ErrorContains(t, err, "index [10]")

	w0, ok := report.Worker(0)
	require.True(t, ok)
	require.Equal(t, int64(10), w0.Iterations)
	require.ErrorIs(t, w0.Err, errBad)
	require.Contains(t, hookWorkers, 0)
}

func TestForEach_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	plan := newPlan(t, ndspace.SpaceOf([1]int{0}, [1]int{100}), 0, 2)

	called := false
	_, err := ForEach(ctx, plan, ndspace.RowMajor, func(Team, [1]int) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, called)
}

func TestForEach_Hooks(t *testing.T) {
	plan := newPlan(t, ndspace.SpaceOf([2]int{0, 0}, [2]int{6, 2}), 0, 3)

	var mu sync.Mutex
	started := map[int]types.SliceInfo{}
	finished := map[int]types.SliceInfo{}

	_, err := ForEach(t.Context(), plan, ndspace.RowMajor, func(Team, [2]int) error { return nil },
		WithHooks(types.Hooks{
			OnSliceStarted: func(_ context.Context, info types.SliceInfo) error {
				mu.Lock()
				started[info.WorkerID] = info
				mu.Unlock()

				return nil
			},
			OnSliceFinished: func(_ context.Context, info types.SliceInfo) error {
				mu.Lock()
				finished[info.WorkerID] = info
				mu.Unlock()

				return nil
			},
		}),
	)
	require.NoError(t, err)
	require.Len(t, started, 3)
	require.Len(t, finished, 3)

	require.Equal(t, types.SliceInfo{WorkerID: 1, WorkerCount: 3, Dimension: 0, Lo: 2, Hi: 4}, started[1])
	require.Equal(t, int64(4), finished[1].Iterations)
}

func TestForEach_StartHookErrorAborts(t *testing.T) {
	errDenied := errors.New("denied")
	plan := newPlan(t, ndspace.SpaceOf([1]int{0}, [1]int{8}), 0, 2)

	_, err := ForEach(t.Context(), plan, ndspace.RowMajor, func(Team, [1]int) error { return nil },
		WithHooks(types.Hooks{
			OnSliceStarted: func(context.Context, types.SliceInfo) error { return errDenied },
		}),
	)
	require.ErrorIs(t, err, errDenied)
}

func TestForEach_WarnsOnUnevenStaticSplit(t *testing.T) {
	log := logger.NewTest(t)
	plan := newPlan(t, ndspace.SpaceOf([1]int{0}, [1]int{10}), 0, 4)

	_, err := ForEach(t.Context(), plan, ndspace.RowMajor, func(Team, [1]int) error { return nil }, WithLogger(log))
	require.NoError(t, err)
	require.True(t, log.Contains("uneven static split"))
	require.True(t, log.Contains("slice finished"))
}

func TestForEach_NilPlan(t *testing.T) {
	_, err := ForEach[[1]int](t.Context(), nil, ndspace.RowMajor, func(Team, [1]int) error { return nil })
	require.ErrorIs(t, err, types.ErrPlanMismatch)
}
