package planstore

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/arloliu/ndspace/types"
)

// Config configures the KV bucket backing a Store.
type Config struct {
	// Bucket is the KV bucket name.
	// Default: "ndspace-plans"
	Bucket string `yaml:"bucket"`

	// History is the number of revisions kept per plan name.
	// Default: 1
	History int `yaml:"history"`

	// Replicas is the JetStream replication factor.
	// Default: 1
	Replicas int `yaml:"replicas"`

	// MemoryStorage keeps the bucket in memory instead of on disk.
	MemoryStorage bool `yaml:"memoryStorage"`

	// OperationTimeout bounds every KV round trip.
	// Default: 5s
	OperationTimeout time.Duration `yaml:"operationTimeout"`

	// CreateAttempts is the number of bucket creation attempts.
	// Default: 3
	CreateAttempts int `yaml:"createAttempts"`
}

// DefaultConfig returns the default store configuration.
func DefaultConfig() Config {
	return Config{
		Bucket:           "ndspace-plans",
		History:          1,
		Replicas:         1,
		OperationTimeout: 5 * time.Second,
		CreateAttempts:   3,
	}
}

// SetDefaults fills zero fields of cfg with DefaultConfig values.
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Bucket == "" {
		cfg.Bucket = defaults.Bucket
	}
	if cfg.History == 0 {
		cfg.History = defaults.History
	}
	if cfg.Replicas == 0 {
		cfg.Replicas = defaults.Replicas
	}
	if cfg.OperationTimeout == 0 {
		cfg.OperationTimeout = defaults.OperationTimeout
	}
	if cfg.CreateAttempts == 0 {
		cfg.CreateAttempts = defaults.CreateAttempts
	}
}

// Validate checks the configuration after defaults are applied.
func (cfg *Config) Validate() error {
	if cfg.History < 1 || cfg.History > 64 {
		return fmt.Errorf("history must be in [1,64], got %d: %w", cfg.History, types.ErrInvalidConfig)
	}
	if cfg.Replicas < 1 || cfg.Replicas > 5 {
		return fmt.Errorf("replicas must be in [1,5], got %d: %w", cfg.Replicas, types.ErrInvalidConfig)
	}
	if cfg.OperationTimeout < 0 {
		return fmt.Errorf("operationTimeout must not be negative: %w", types.ErrInvalidConfig)
	}

	return nil
}

func (cfg *Config) kvConfig() jetstream.KeyValueConfig {
	storage := jetstream.FileStorage
	if cfg.MemoryStorage {
		storage = jetstream.MemoryStorage
	}

	return jetstream.KeyValueConfig{
		Bucket:      cfg.Bucket,
		Description: "ndspace partition plans",
		History:     uint8(cfg.History), //nolint:gosec // bounded by Validate
		Replicas:    cfg.Replicas,
		Storage:     storage,
	}
}
