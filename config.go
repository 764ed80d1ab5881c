package ndspace

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/ndspace/strategy"
	"github.com/arloliu/ndspace/types"
)

// Config describes a partitioned iteration: the global space, how it is
// split and in which order each worker visits its slice.
//
// Example YAML:
//
//	start: [1, 1]
//	limit: [99, 99]
//	splitDimension: 0
//	workers: 4
//	order: row-major
//	strategy: static
type Config struct {
	// Start holds the inclusive lower bound of every dimension.
	Start []int `yaml:"start"`

	// Limit holds the exclusive upper bound of every dimension.
	// Must have the same length as Start.
	Limit []int `yaml:"limit"`

	// SplitDimension is the dimension divided between workers.
	SplitDimension int `yaml:"splitDimension"`

	// Workers is the number of parallel workers.
	// Default: runtime.GOMAXPROCS(0)
	Workers int `yaml:"workers"`

	// Order is the traversal order inside each slice ("row-major" or "column-major").
	// Default: "row-major"
	Order string `yaml:"order"`

	// Strategy is the split strategy name ("static" or "balanced").
	// Default: "static"
	Strategy string `yaml:"strategy"`

	// CancelCheckInterval is how many indices a worker visits between
	// context cancellation checks.
	// Default: 1024
	CancelCheckInterval int `yaml:"cancelCheckInterval"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// The space bounds are left empty; they have no meaningful default.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		SplitDimension:      0,
		Workers:             runtime.GOMAXPROCS(0),
		Order:               RowMajor.String(),
		Strategy:            strategy.StaticName,
		CancelCheckInterval: 1024,
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Workers == 0 {
		cfg.Workers = defaults.Workers
	}
	if cfg.Order == "" {
		cfg.Order = defaults.Order
	}
	if cfg.Strategy == "" {
		cfg.Strategy = defaults.Strategy
	}
	if cfg.CancelCheckInterval == 0 {
		cfg.CancelCheckInterval = defaults.CancelCheckInterval
	}
}

// TestConfig returns a small 2-D configuration for tests.
//
// Returns:
//   - Config: [1,9)x[1,9) split on dimension 0 across 3 workers
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.Start = []int{1, 1}
	cfg.Limit = []int{9, 9}
	cfg.Workers = 3
	cfg.CancelCheckInterval = 4

	return cfg
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Hard Validation Rules:
//   - 1 <= len(Start) == len(Limit) <= MaxDims
//   - 0 <= SplitDimension < len(Start)
//   - Workers >= 1
//   - Order and Strategy name known values
//   - CancelCheckInterval >= 1
//
// Returns:
//   - error: Validation error wrapping ErrInvalidConfig, nil if valid
func (cfg *Config) Validate() error {
	dims := len(cfg.Start)
	if dims == 0 || dims > MaxDims {
		return fmt.Errorf("start has %d dimensions, must be 1..%d: %w", dims, MaxDims, types.ErrInvalidConfig)
	}
	if len(cfg.Limit) != dims {
		return fmt.Errorf("limit has %d dimensions, start has %d: %w", len(cfg.Limit), dims, types.ErrInvalidConfig)
	}
	if cfg.SplitDimension < 0 || cfg.SplitDimension >= dims {
		return fmt.Errorf("splitDimension %d out of range [0,%d): %w", cfg.SplitDimension, dims, types.ErrInvalidConfig)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d: %w", cfg.Workers, types.ErrInvalidConfig)
	}
	if _, err := ParseOrder(cfg.Order); err != nil {
		return fmt.Errorf("order: %w: %w", err, types.ErrInvalidConfig)
	}
	if _, err := strategy.ByName(cfg.Strategy); err != nil {
		return err
	}
	if cfg.CancelCheckInterval < 1 {
		return fmt.Errorf("cancelCheckInterval must be >= 1, got %d: %w", cfg.CancelCheckInterval, types.ErrInvalidConfig)
	}

	return nil
}

// ValidateWithWarnings logs warnings for valid but questionable values.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	for d := range cfg.Start {
		if d < len(cfg.Limit) && cfg.Limit[d] <= cfg.Start[d] {
			logger.Warn("dimension is empty, iteration will visit no index",
				"dimension", d,
				"start", cfg.Start[d],
				"limit", cfg.Limit[d],
			)
		}
	}

	if cfg.SplitDimension < 0 || cfg.SplitDimension >= len(cfg.Start) || cfg.SplitDimension >= len(cfg.Limit) {
		return
	}

	size := cfg.Limit[cfg.SplitDimension] - cfg.Start[cfg.SplitDimension]
	if size > 0 && size < cfg.Workers {
		logger.Warn("split dimension is smaller than worker count, some workers stay idle",
			"size", size,
			"workers", cfg.Workers,
		)
	}

	if cfg.Strategy == strategy.StaticName && cfg.Workers > 1 && size >= cfg.Workers {
		if rem := size % cfg.Workers; rem*2 >= size/cfg.Workers {
			logger.Warn("static split leaves a large remainder on the last worker",
				"remainder", rem,
				"chunk", size/cfg.Workers,
				"recommended", strategy.BalancedName,
			)
		}
	}
}

// ParseConfig decodes YAML configuration, applies defaults and validates it.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - Config: The decoded configuration
//   - error: Decoding or validation error
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads a YAML configuration file.
//
// Parameters:
//   - path: Path of the YAML file
//
// Returns:
//   - Config: The decoded, defaulted and validated configuration
//   - error: I/O, decoding or validation error
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	return ParseConfig(data)
}

// ConfigSpace builds the global space described by cfg.
//
// Returns:
//   - Space[I]: The global space
//   - error: ErrDimensionMismatch if the dimension count of I differs from the configuration
func ConfigSpace[I Index](cfg *Config) (Space[I], error) {
	if len(cfg.Start) != len(cfg.Limit) {
		return Space[I]{}, fmt.Errorf("limit has %d dimensions, start has %d: %w",
			len(cfg.Limit), len(cfg.Start), types.ErrInvalidConfig)
	}

	bounds := make([]Bounds, len(cfg.Start))
	for d := range cfg.Start {
		bounds[d] = Bounds{Start: cfg.Start[d], Limit: cfg.Limit[d]}
	}

	return NewSpace[I](bounds...)
}

// ConfigPlan builds the partition plan described by cfg.
//
// Returns:
//   - *Plan[I]: Plan over the configured space, dimension, workers and strategy
//   - error: Space construction or partition error
func ConfigPlan[I Index](cfg *Config) (*Plan[I], error) {
	space, err := ConfigSpace[I](cfg)
	if err != nil {
		return nil, err
	}

	strat, err := strategy.ByName(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	return NewPlan(space, cfg.SplitDimension, cfg.Workers, WithStrategy(strat))
}

// ConfigOrder returns the configured traversal order.
func ConfigOrder(cfg *Config) (Order, error) {
	return ParseOrder(cfg.Order)
}
