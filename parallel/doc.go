// Package parallel runs fork-join regions over partitioned index spaces.
//
// Region starts a fixed team of goroutines that each learn their worker id
// and the team size, then waits for all of them. ForEach builds on Region:
// every worker takes its slice from an ndspace.Plan and visits it through an
// ndspace.Range, so the workers together cover the global space exactly once.
//
// Basic usage:
//
//	space := ndspace.SpaceOf([2]int{1, 1}, [2]int{99, 99})
//	plan, err := ndspace.NewPlan(space, 0, runtime.GOMAXPROCS(0))
//	if err != nil {
//	    return err
//	}
//
//	report, err := parallel.ForEach(ctx, plan, ndspace.RowMajor,
//	    func(team parallel.Team, idx [2]int) error {
//	        grid[idx[0]][idx[1]] = stencil(idx)
//	        return nil
//	    },
//	    parallel.WithLogger(logger),
//	)
//	fmt.Println("visited", report.Total())
//
// The first failing worker cancels the context shared by the team; the
// others stop at their next cancellation check.
package parallel
