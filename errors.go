package ndspace

import "github.com/arloliu/ndspace/types"

// Sentinel errors returned by ndspace.
var (
	// ErrDimensionMismatch is returned when the bound count differs from the dimension count.
	ErrDimensionMismatch = types.ErrDimensionMismatch

	// ErrInvalidWorker is returned when a worker identity or worker count is out of range.
	ErrInvalidWorker = types.ErrInvalidWorker

	// ErrInvalidDimension is returned when a split dimension is out of range.
	ErrInvalidDimension = types.ErrInvalidDimension

	// ErrStrategyRequired is returned when a nil split strategy is supplied.
	ErrStrategyRequired = types.ErrStrategyRequired

	// ErrCursorExhausted is returned when a cursor is advanced past its terminal position.
	ErrCursorExhausted = types.ErrCursorExhausted

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrInvalidOrder is returned for an unknown traversal order name.
	ErrInvalidOrder = types.ErrInvalidOrder

	// ErrPlanMismatch is returned when a plan does not tile its space.
	ErrPlanMismatch = types.ErrPlanMismatch
)
