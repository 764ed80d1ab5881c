package strategy

import (
	"fmt"

	"github.com/arloliu/ndspace/types"
)

// ByName returns the built-in strategy registered under name.
//
// An empty name selects Static.
//
// Returns:
//   - types.SplitStrategy: The strategy instance
//   - error: types.ErrInvalidConfig for unknown names
func ByName(name string) (types.SplitStrategy, error) {
	switch name {
	case "", StaticName:
		return NewStatic(), nil
	case BalancedName:
		return NewBalanced(), nil
	default:
		return nil, fmt.Errorf("unknown split strategy %q (must be one of: %s, %s): %w",
			name, StaticName, BalancedName, types.ErrInvalidConfig)
	}
}
