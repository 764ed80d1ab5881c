package planstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/arloliu/ndspace/types"
)

// Claim reserves the lowest free worker seat of plan name.
//
// Seats are taken with an atomic KV create, so concurrent processes never
// receive the same worker id. The seat stays taken until Release or Delete.
//
// Returns:
//   - int: The claimed worker id in [0, workers)
//   - error: ErrPlanNotFound, ErrNoFreeWorker when every seat is taken, or the KV error
func (s *Store) Claim(ctx context.Context, name string) (int, error) {
	rec, err := s.Get(ctx, name)
	if err != nil {
		return 0, err
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	owner := []byte(time.Now().UTC().Format(time.RFC3339Nano))
	for id := range rec.Workers {
		key := claimKey(name, id)

		started := time.Now()
		rev, err := s.kv.Create(ctx, key, owner)
		s.metrics.RecordKVOperationDuration("create", time.Since(started).Seconds())
		if err == nil {
			s.seats.Store(key, rev)
			s.logger.Info("worker seat claimed", "plan", name, "worker", id)
			return id, nil
		}
		if !errors.Is(err, jetstream.ErrKeyExists) {
			return 0, wrapKVError("claim "+key, err)
		}

		s.logger.Debug("worker seat taken", "plan", name, "worker", id)
	}

	return 0, fmt.Errorf("plan %s has %d workers: %w", name, rec.Workers, types.ErrNoFreeWorker)
}

// Release frees a worker seat this store claimed with Claim.
//
// Seats held by other stores are left alone. The delete is conditional on the
// revision written by Claim, so a seat that was deleted and claimed again by
// someone else in the meantime is not freed either.
//
// Returns:
//   - error: ErrNotClaimed if this store does not hold the seat
func (s *Store) Release(ctx context.Context, name string, workerID int) error {
	if err := checkName(name); err != nil {
		return err
	}

	key := claimKey(name, workerID)
	rev, ok := s.seats.Load(key)
	if !ok {
		return fmt.Errorf("plan %s worker %d: %w", name, workerID, types.ErrNotClaimed)
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	started := time.Now()
	err := s.kv.Delete(ctx, key, jetstream.LastRevision(rev))
	s.metrics.RecordKVOperationDuration("delete", time.Since(started).Seconds())
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyExists) {
			s.seats.Delete(key)
			s.logger.Warn("worker seat lost before release", "plan", name, "worker", workerID)

			return fmt.Errorf("plan %s worker %d: %w", name, workerID, types.ErrNotClaimed)
		}

		return wrapKVError("release "+key, err)
	}
	s.seats.Delete(key)

	s.logger.Info("worker seat released", "plan", name, "worker", workerID)

	return nil
}

func claimKey(name string, workerID int) string {
	return claimKeyPrefix + name + "." + strconv.Itoa(workerID)
}
