package parallel

import (
	"slices"
	"time"

	"github.com/puzpuzpuz/xsync/v4"
)

// WorkerStats describes what one worker did in a ForEach region.
type WorkerStats struct {
	// WorkerID is the worker identity.
	WorkerID int

	// Lo and Hi bound the worker's slice along the split dimension.
	Lo, Hi int

	// Iterations is the number of indices the worker visited.
	Iterations int64

	// Duration is the time the worker spent on its slice.
	Duration time.Duration

	// Err is the error that stopped the worker, if any.
	Err error
}

// Report collects per-worker statistics of a ForEach region.
//
// Workers store their stats concurrently; read the report after ForEach returns.
type Report struct {
	workers int
	stats   *xsync.Map[int, WorkerStats]
}

func newReport(workers int) *Report {
	return &Report{workers: workers, stats: xsync.NewMap[int, WorkerStats]()}
}

func (r *Report) store(s WorkerStats) {
	r.stats.Store(s.WorkerID, s)
}

// Workers returns the team size of the region.
func (r *Report) Workers() int {
	return r.workers
}

// Worker returns the stats of one worker.
//
// Returns:
//   - WorkerStats: Stats of the worker
//   - bool: false if the worker never reported (e.g. it was cancelled before starting)
func (r *Report) Worker(id int) (WorkerStats, bool) {
	return r.stats.Load(id)
}

// All returns the stats of every reporting worker ordered by worker id.
func (r *Report) All() []WorkerStats {
	out := make([]WorkerStats, 0, r.stats.Size())
	r.stats.Range(func(_ int, s WorkerStats) bool {
		out = append(out, s)
		return true
	})
	slices.SortFunc(out, func(a, b WorkerStats) int {
		return a.WorkerID - b.WorkerID
	})

	return out
}

// Total returns the number of indices visited by all workers.
func (r *Report) Total() int64 {
	var total int64
	r.stats.Range(func(_ int, s WorkerStats) bool {
		total += s.Iterations
		return true
	})

	return total
}
