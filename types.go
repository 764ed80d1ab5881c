package ndspace

import "github.com/arloliu/ndspace/types"

// Re-export types from the types package.
//
// Internal packages depend on `types` rather than on the root package, which
// avoids import cycles while still offering ndspace.Logger, ndspace.Hooks, etc.
type (
	SplitStrategy    = types.SplitStrategy
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
	SliceInfo        = types.SliceInfo
)
