package planstore

import "github.com/arloliu/ndspace/types"

// Errors returned by the plan store, re-exported for callers that do not
// import the types package.
var (
	ErrPlanNotFound      = types.ErrPlanNotFound
	ErrPlanMismatch      = types.ErrPlanMismatch
	ErrJetStreamRequired = types.ErrJetStreamRequired
	ErrNoFreeWorker      = types.ErrNoFreeWorker
	ErrNotClaimed        = types.ErrNotClaimed
	ErrStoreUnavailable  = types.ErrStoreUnavailable
)
