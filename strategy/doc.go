// Package strategy provides built-in split strategy implementations.
//
// Split strategies determine how one dimension of a space is divided into
// contiguous per-worker slices. The package includes two built-in strategies:
//
//   - Static: equal chunks of size/workerCount, remainder absorbed by the last worker (default)
//   - Balanced: remainder spread one element at a time over the first workers
//
// # Strategy Selection Guide
//
// Static:
//   - O(1) per worker, no remainder bookkeeping
//   - Last worker may hold up to workerCount-1 extra elements
//   - Use when size is large relative to workerCount, or divisible by it
//
// Balanced:
//   - Slice extents differ by at most one
//   - Use when size is small relative to workerCount and per-element cost is high
//
// Custom strategies can be implemented by satisfying the types.SplitStrategy interface.
package strategy
