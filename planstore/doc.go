// Package planstore shares partition plans between processes through a
// NATS JetStream KeyValue bucket.
//
// A coordinator publishes a plan under a name; each worker process then
// fetches only its own slice and iterates it locally:
//
//	store, err := planstore.New(ctx, js, planstore.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//
//	// coordinator
//	_, err = store.Publish(ctx, "heat-2d", planstore.RecordOf(plan))
//
//	// worker 3
//	slice, err := planstore.FetchSlice[[2]int](ctx, store, "heat-2d", 3)
//	for idx := range ndspace.NewRange(slice, ndspace.RowMajor).All() {
//	    ...
//	}
//
// Records carry the plan fingerprint so a worker can detect that its local
// view of the space disagrees with the published plan.
package planstore
