package types

import "errors"

// Sentinel errors for the ndspace library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap them with context using fmt.Errorf("%s: %w", msg, err).
//
// Error Naming Convention:
//   - Use descriptive names with Err prefix
//   - Group by component (Space, Partition, Cursor, Config, PlanStore)
//   - Use consistent messages across similar error types

// Space errors - construction errors returned when building a Space.
var (
	// ErrDimensionMismatch is returned when the number of bound pairs does not
	// match the dimension count of the index type.
	ErrDimensionMismatch = errors.New("dimension count mismatch")
)

// Partition errors - invalid-argument errors returned by static partitioning.
var (
	// ErrInvalidWorker is returned when workerCount < 1 or workerID is outside [0, workerCount).
	ErrInvalidWorker = errors.New("invalid worker identity")

	// ErrInvalidDimension is returned when the split dimension is outside [0, D).
	ErrInvalidDimension = errors.New("invalid split dimension")

	// ErrStrategyRequired is returned when a nil split strategy is supplied.
	ErrStrategyRequired = errors.New("split strategy is required")
)

// Cursor errors - contract violations by the driving loop.
var (
	// ErrCursorExhausted is returned when advancing a cursor that is already at its terminal position.
	ErrCursorExhausted = errors.New("cursor advanced past terminal position")
)

// Config errors - returned while loading or validating configuration.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidOrder is returned when a traversal order name cannot be parsed.
	ErrInvalidOrder = errors.New("invalid traversal order")
)

// Plan errors - returned by partition plans and the plan store.
var (
	// ErrPlanMismatch is returned when a plan's slices do not exactly cover the global space.
	ErrPlanMismatch = errors.New("partition plan does not cover space")

	// ErrPlanNotFound is returned when a named plan does not exist in the store.
	ErrPlanNotFound = errors.New("partition plan not found")

	// ErrJetStreamRequired is returned when the plan store is created without a JetStream context.
	ErrJetStreamRequired = errors.New("JetStream context is required")
)

// Plan store errors - worker seats and connectivity.
var (
	// ErrNoFreeWorker is returned when every worker seat of a plan is already claimed.
	ErrNoFreeWorker = errors.New("no free worker seat in plan")

	// ErrNotClaimed is returned when releasing a worker seat this store does not hold.
	ErrNotClaimed = errors.New("worker seat not claimed")

	// ErrStoreUnavailable is returned when the plan store cannot reach NATS.
	ErrStoreUnavailable = errors.New("plan store unavailable")
)
