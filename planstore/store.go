package planstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arloliu/ndspace"
	"github.com/arloliu/ndspace/internal/kvutil"
	"github.com/arloliu/ndspace/internal/logger"
	"github.com/arloliu/ndspace/internal/metrics"
	"github.com/arloliu/ndspace/internal/natsutil"
	"github.com/arloliu/ndspace/types"
)

const (
	planKeyPrefix  = "plans."
	claimKeyPrefix = "claims."
)

// Plan names are single key tokens; "." separates key segments.
var validName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Store reads and writes plan records in a JetStream KV bucket.
//
// Plans live under "plans.<name>" and worker seats under
// "claims.<name>.<workerID>". Plan names may only contain letters, digits,
// '_' and '-'. A Store is safe for concurrent use.
type Store struct {
	kv  jetstream.KeyValue
	cfg Config

	// seats maps claim keys held by this store to their KV revision.
	seats *xsync.Map[string, uint64]

	logger  types.Logger
	metrics types.PlanMetrics
}

// New opens the plan bucket, creating it when it does not exist.
//
// Parameters:
//   - ctx: Context for bucket creation
//   - js: JetStream handle
//   - cfg: Bucket configuration (zero fields take DefaultConfig values)
//   - opts: Logger and metrics options
//
// Returns:
//   - *Store: The store
//   - error: ErrJetStreamRequired, ErrInvalidConfig or the bucket creation error
func New(ctx context.Context, js jetstream.JetStream, cfg Config, opts ...Option) (*Store, error) {
	if js == nil {
		return nil, types.ErrJetStreamRequired
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Store{
		cfg:     cfg,
		seats:   xsync.NewMap[string, uint64](),
		logger:  logger.NewNop(),
		metrics: metrics.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	kv, err := kvutil.EnsureBucket(ctx, js, cfg.kvConfig(), cfg.CreateAttempts, s.logger)
	if err != nil {
		return nil, fmt.Errorf("plan store: %w", err)
	}
	s.kv = kv

	s.logger.Debug("plan store ready", "bucket", cfg.Bucket)

	return s, nil
}

// Bucket returns the KV bucket name.
func (s *Store) Bucket() string {
	return s.cfg.Bucket
}

// Publish validates rec and stores it under name, replacing any earlier plan.
//
// Returns:
//   - uint64: KV revision of the stored record
//   - error: ErrInvalidConfig for a bad name, ErrPlanMismatch for an
//     inconsistent record, or the KV error
func (s *Store) Publish(ctx context.Context, name string, rec PlanRecord) (uint64, error) {
	if err := checkName(name); err != nil {
		return 0, err
	}
	if err := rec.Validate(); err != nil {
		return 0, err
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return 0, fmt.Errorf("marshal plan %s: %w", name, err)
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	started := time.Now()
	rev, err := s.kv.Put(ctx, planKey(name), data)
	s.metrics.RecordKVOperationDuration("put", time.Since(started).Seconds())
	if err != nil {
		return 0, wrapKVError("put plan "+name, err)
	}

	s.metrics.RecordPlanPublished(name, rec.Workers)
	s.logger.Info("plan published",
		"name", name,
		"revision", rev,
		"workers", rec.Workers,
		"strategy", rec.Strategy,
		"fingerprint", fmt.Sprintf("%016x", rec.Fingerprint),
	)

	return rev, nil
}

// PublishPlan stores plan under name.
func PublishPlan[I ndspace.Index](ctx context.Context, s *Store, name string, plan *ndspace.Plan[I]) (uint64, error) {
	return s.Publish(ctx, name, RecordOf(plan))
}

// Get fetches the record stored under name.
//
// Returns:
//   - PlanRecord: The record with Revision set
//   - error: ErrPlanNotFound when name is absent, ErrPlanMismatch for a corrupt record
func (s *Store) Get(ctx context.Context, name string) (PlanRecord, error) {
	if err := checkName(name); err != nil {
		return PlanRecord{}, err
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	started := time.Now()
	entry, err := s.kv.Get(ctx, planKey(name))
	s.metrics.RecordKVOperationDuration("get", time.Since(started).Seconds())
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return PlanRecord{}, fmt.Errorf("plan %s: %w", name, types.ErrPlanNotFound)
		}

		return PlanRecord{}, wrapKVError("get plan "+name, err)
	}

	var rec PlanRecord
	if err := json.Unmarshal(entry.Value(), &rec); err != nil {
		return PlanRecord{}, fmt.Errorf("decode plan %s: %w: %w", name, err, types.ErrPlanMismatch)
	}
	if err := rec.Validate(); err != nil {
		return PlanRecord{}, fmt.Errorf("plan %s: %w", name, err)
	}
	rec.Revision = entry.Revision()

	return rec, nil
}

// Slice returns workerID's bounds along the split dimension of plan name.
func (s *Store) Slice(ctx context.Context, name string, workerID int) (ndspace.Bounds, error) {
	rec, err := s.Get(ctx, name)
	if err != nil {
		return ndspace.Bounds{}, err
	}
	if workerID < 0 || workerID >= rec.Workers {
		return ndspace.Bounds{}, fmt.Errorf("plan %s has %d workers, got id %d: %w", name, rec.Workers, workerID, types.ErrInvalidWorker)
	}

	return rec.Slices[workerID], nil
}

// FetchSlice returns the full space workerID iterates in plan name.
func FetchSlice[I ndspace.Index](ctx context.Context, s *Store, name string, workerID int) (ndspace.Space[I], error) {
	rec, err := s.Get(ctx, name)
	if err != nil {
		return ndspace.Space[I]{}, err
	}

	return SliceSpace[I](&rec, workerID)
}

// FetchPlan fetches plan name and recomputes it locally.
//
// Returns:
//   - error: ErrPlanMismatch when the local computation disagrees with the record
func FetchPlan[I ndspace.Index](ctx context.Context, s *Store, name string) (*ndspace.Plan[I], error) {
	rec, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	return Plan[I](&rec)
}

// Delete removes plan name together with its worker seats. Deleting an
// absent plan is not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}

	claims, err := s.keys(ctx, claimKeyPrefix+name+".")
	if err != nil {
		return err
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	for _, key := range append(claims, planKey(name)) {
		started := time.Now()
		err := s.kv.Delete(ctx, key)
		s.metrics.RecordKVOperationDuration("delete", time.Since(started).Seconds())
		if err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
			return wrapKVError("delete "+key, err)
		}
	}

	for _, key := range claims {
		s.seats.Delete(key)
	}

	s.logger.Debug("plan deleted", "name", name, "claims", len(claims))

	return nil
}

// Names lists the stored plan names in lexical order.
func (s *Store) Names(ctx context.Context) ([]string, error) {
	keys, err := s.keys(ctx, planKeyPrefix)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, strings.TrimPrefix(key, planKeyPrefix))
	}

	return names, nil
}

// keys lists the live keys starting with prefix, sorted.
func (s *Store) keys(ctx context.Context, prefix string) ([]string, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	started := time.Now()
	all, err := s.kv.Keys(ctx)
	s.metrics.RecordKVOperationDuration("keys", time.Since(started).Seconds())
	if err != nil {
		if errors.Is(err, jetstream.ErrNoKeysFound) {
			return nil, nil
		}

		return nil, wrapKVError("list keys", err)
	}

	keys := make([]string, 0, len(all))
	for _, key := range all {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)

	return keys, nil
}

func (s *Store) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.OperationTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, s.cfg.OperationTimeout)
}

func checkName(name string) error {
	if !validName.MatchString(name) {
		return fmt.Errorf("plan name %q: %w", name, types.ErrInvalidConfig)
	}

	return nil
}

func planKey(name string) string {
	return planKeyPrefix + name
}

// wrapKVError adds op context and marks connectivity failures with
// ErrStoreUnavailable so callers can tell them apart from rejected requests.
func wrapKVError(op string, err error) error {
	if natsutil.IsConnectivityError(err) {
		return fmt.Errorf("%s: %w: %w", op, err, types.ErrStoreUnavailable)
	}

	return fmt.Errorf("%s: %w", op, err)
}
