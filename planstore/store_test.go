package planstore

import (
	"sync"
	"testing"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/ndspace"
	"github.com/arloliu/ndspace/internal/logger"
	"github.com/arloliu/ndspace/internal/metrics"
	ndtest "github.com/arloliu/ndspace/testing"
	"github.com/arloliu/ndspace/types"
)

func newStore(t *testing.T, opts ...Option) (*Store, jetstream.JetStream) {
	t.Helper()

	_, nc := ndtest.StartEmbeddedNATS(t)
	js := ndtest.JetStream(t, nc)

	cfg := DefaultConfig()
	cfg.MemoryStorage = true

	store, err := New(t.Context(), js, cfg, opts...)
	require.NoError(t, err)

	return store, js
}

func TestNew(t *testing.T) {
	t.Run("requires JetStream", func(t *testing.T) {
		_, err := New(t.Context(), nil, DefaultConfig())
		require.ErrorIs(t, err, types.ErrJetStreamRequired)
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		_, nc := ndtest.StartEmbeddedNATS(t)
		cfg := DefaultConfig()
		cfg.History = 100

		_, err := New(t.Context(), ndtest.JetStream(t, nc), cfg)
		require.ErrorIs(t, err, types.ErrInvalidConfig)
	})

	t.Run("applies defaults", func(t *testing.T) {
		_, nc := ndtest.StartEmbeddedNATS(t)

		store, err := New(t.Context(), ndtest.JetStream(t, nc), Config{MemoryStorage: true})
		require.NoError(t, err)
		require.Equal(t, "ndspace-plans", store.Bucket())
	})

	t.Run("reopens existing bucket", func(t *testing.T) {
		store, js := newStore(t)
		_, err := PublishPlan(t.Context(), store, "grid", testPlan(t))
		require.NoError(t, err)

		cfg := DefaultConfig()
		cfg.MemoryStorage = true
		again, err := New(t.Context(), js, cfg)
		require.NoError(t, err)

		_, err = again.Get(t.Context(), "grid")
		require.NoError(t, err)
	})
}

func TestStore_PublishAndGet(t *testing.T) {
	log := logger.NewTest(t)
	store, _ := newStore(t, WithLogger(log))
	plan := testPlan(t)

	rev, err := PublishPlan(t.Context(), store, "grid", plan)
	require.NoError(t, err)
	require.NotZero(t, rev)
	require.True(t, log.Contains("plan published"))

	rec, err := store.Get(t.Context(), "grid")
	require.NoError(t, err)
	require.Equal(t, rev, rec.Revision)

	want := RecordOf(plan)
	want.Revision = rev
	require.Equal(t, want, rec)
}

func TestStore_PublishRejectsInvalidRecord(t *testing.T) {
	store, _ := newStore(t)
	rec := RecordOf(testPlan(t))
	rec.Slices[1].Start++

	_, err := store.Publish(t.Context(), "grid", rec)
	require.ErrorIs(t, err, types.ErrPlanMismatch)

	_, err = store.Get(t.Context(), "grid")
	require.ErrorIs(t, err, types.ErrPlanNotFound)
}

func TestStore_Slice(t *testing.T) {
	store, _ := newStore(t)
	_, err := PublishPlan(t.Context(), store, "grid", testPlan(t))
	require.NoError(t, err)

	b, err := store.Slice(t.Context(), "grid", 2)
	require.NoError(t, err)
	require.Equal(t, ndspace.Bounds{Start: 65, Limit: 99}, b)

	_, err = store.Slice(t.Context(), "grid", 3)
	require.ErrorIs(t, err, types.ErrInvalidWorker)

	_, err = store.Slice(t.Context(), "missing", 0)
	require.ErrorIs(t, err, types.ErrPlanNotFound)
}

func TestStore_WorkersCoverSpace(t *testing.T) {
	store, _ := newStore(t)
	plan := testPlan(t)
	_, err := PublishPlan(t.Context(), store, "grid", plan)
	require.NoError(t, err)

	var mu sync.Mutex
	visits := map[[2]int]int{}
	var wg sync.WaitGroup
	for id := range plan.Workers() {
		wg.Add(1)
		go func() {
			defer wg.Done()

			slice, err := FetchSlice[[2]int](t.Context(), store, "grid", id)
			if !assertNoError(t, err) {
				return
			}
			for idx := range ndspace.NewRange(slice, ndspace.RowMajor).All() {
				mu.Lock()
				visits[idx]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, visits, plan.Space().Len())
	for idx, n := range visits {
		require.Equal(t, 1, n, "index %v", idx)
	}
}

func TestStore_FetchPlan(t *testing.T) {
	store, _ := newStore(t)
	plan := testPlan(t)
	_, err := PublishPlan(t.Context(), store, "grid", plan)
	require.NoError(t, err)

	fetched, err := FetchPlan[[2]int](t.Context(), store, "grid")
	require.NoError(t, err)
	require.Equal(t, plan.Fingerprint(), fetched.Fingerprint())
	require.NoError(t, fetched.Verify())

	_, err = FetchPlan[[3]int](t.Context(), store, "grid")
	require.ErrorIs(t, err, types.ErrDimensionMismatch)
}

func TestStore_CorruptRecord(t *testing.T) {
	store, js := newStore(t)

	kv, err := js.KeyValue(t.Context(), store.Bucket())
	require.NoError(t, err)
	_, err = kv.Put(t.Context(), "plans.broken", []byte("not json"))
	require.NoError(t, err)

	_, err = store.Get(t.Context(), "broken")
	require.ErrorIs(t, err, types.ErrPlanMismatch)
}

func TestStore_DeleteAndNames(t *testing.T) {
	store, _ := newStore(t)

	names, err := store.Names(t.Context())
	require.NoError(t, err)
	require.Empty(t, names)

	for _, name := range []string{"heat", "grid"} {
		_, err := PublishPlan(t.Context(), store, name, testPlan(t))
		require.NoError(t, err)
	}

	names, err = store.Names(t.Context())
	require.NoError(t, err)
	require.Equal(t, []string{"grid", "heat"}, names)

	require.NoError(t, store.Delete(t.Context(), "grid"))
	require.NoError(t, store.Delete(t.Context(), "never-published"))

	_, err = store.Get(t.Context(), "grid")
	require.ErrorIs(t, err, types.ErrPlanNotFound)

	names, err = store.Names(t.Context())
	require.NoError(t, err)
	require.Equal(t, []string{"heat"}, names)
}

func TestStore_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	store, _ := newStore(t, WithMetrics(metrics.NewPrometheus(reg, "test")))

	_, err := PublishPlan(t.Context(), store, "grid", testPlan(t))
	require.NoError(t, err)
	_, err = store.Get(t.Context(), "grid")
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(reg, "test_plan_published_total")
	require.NoError(t, err)
	require.Equal(t, 1, count)

	count, err = testutil.GatherAndCount(reg, "test_plan_kv_operation_seconds")
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Replicas = 7
	require.ErrorIs(t, cfg.Validate(), types.ErrInvalidConfig)

	cfg = Config{}
	SetDefaults(&cfg)
	require.Equal(t, DefaultConfig(), cfg)
}

// assertNoError reports err from a non-test goroutine.
func assertNoError(t *testing.T, err error) bool {
	t.Helper()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return false
	}

	return true
}
