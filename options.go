package ndspace

import "github.com/arloliu/ndspace/types"

// PlanOption configures a Plan.
type PlanOption func(*planOptions)

// planOptions holds optional Plan configuration.
type planOptions struct {
	strategy types.SplitStrategy
}

// WithStrategy sets the split strategy used to derive worker slices.
//
// Parameters:
//   - s: SplitStrategy implementation (strategy.NewStatic is the default)
//
// Returns:
//   - PlanOption: Functional option for NewPlan
//
// Example:
//
//	plan, err := ndspace.NewPlan(space, 0, 8, ndspace.WithStrategy(strategy.NewBalanced()))
func WithStrategy(s types.SplitStrategy) PlanOption {
	return func(o *planOptions) {
		o.strategy = s
	}
}
