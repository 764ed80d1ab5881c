// Package types defines the shared interfaces, descriptors and sentinel errors
// used across the ndspace packages.
//
// The root package re-exports these definitions through type aliases so that
// internal packages (metrics, hooks, strategy, planstore) can depend on types
// without importing the root package.
package types
