// Package kvutil holds helpers around NATS JetStream KeyValue buckets.
package kvutil

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/arloliu/ndspace/types"
)

const (
	defaultAttempts = 3
	baseBackoff     = 10 * time.Millisecond
)

// EnsureBucket opens the bucket described by cfg, creating it if needed.
//
// Several processes may race to create the same bucket. A creation that
// loses the race falls back to opening the existing bucket; any other
// failure is retried with exponential backoff (10ms, 20ms, 40ms, ...).
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - js: JetStream handle
//   - cfg: Bucket configuration
//   - attempts: Maximum attempts (3 if <= 0)
//   - logger: Receives one warning per failed attempt (may be nil)
//
// Returns:
//   - jetstream.KeyValue: The bucket
//   - error: Last failure once all attempts are spent, or the context error
func EnsureBucket(
	ctx context.Context,
	js jetstream.JetStream,
	cfg jetstream.KeyValueConfig,
	attempts int,
	logger types.Logger,
) (jetstream.KeyValue, error) {
	if attempts <= 0 {
		attempts = defaultAttempts
	}

	var lastErr error
	for attempt := range attempts {
		kv, err := openOrCreate(ctx, js, cfg)
		if err == nil {
			return kv, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, fmt.Errorf("ensure bucket %s: %w", cfg.Bucket, ctx.Err())
		}

		if logger != nil {
			logger.Warn("KV bucket not ready, retrying",
				"bucket", cfg.Bucket,
				"attempt", attempt+1,
				"error", err,
			)
		}

		if attempt == attempts-1 {
			break
		}

		backoff := baseBackoff << uint(attempt) //nolint:gosec // attempt is small
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("ensure bucket %s: %w", cfg.Bucket, ctx.Err())
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("ensure bucket %s after %d attempts: %w", cfg.Bucket, attempts, lastErr)
}

func openOrCreate(ctx context.Context, js jetstream.JetStream, cfg jetstream.KeyValueConfig) (jetstream.KeyValue, error) {
	kv, err := js.CreateKeyValue(ctx, cfg)
	if err == nil {
		return kv, nil
	}
	if !errors.Is(err, jetstream.ErrBucketExists) {
		return nil, err
	}

	kv, err = js.KeyValue(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("open existing bucket: %w", err)
	}

	return kv, nil
}
