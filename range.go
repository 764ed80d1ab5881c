package ndspace

import (
	"fmt"
	"iter"
)

// Range binds a Space to an Order and exposes begin/end cursors.
//
// A Range owns its space: cursors obtained from Begin and End point into it,
// so the Range must outlive them. Construct one per worker and reuse it for
// the duration of a parallel region.
type Range[I Index] struct {
	space Space[I]
	order Order
}

// NewRange creates a traversable range over space in the given order.
//
// Example:
//
//	r := ndspace.NewRange(space, ndspace.RowMajor)
//	end := r.End()
//	for c := r.Begin(); !c.Equal(end); _ = c.Advance() {
//	    idx := c.Index()
//	    // ...
//	}
func NewRange[I Index](space Space[I], order Order) *Range[I] {
	return &Range[I]{space: space, order: order}
}

// Space returns the bound space.
func (r *Range[I]) Space() Space[I] {
	return r.space
}

// Order returns the bound traversal order.
func (r *Range[I]) Order() Order {
	return r.order
}

// Len returns the number of indices the range visits.
func (r *Range[I]) Len() int {
	return r.space.Len()
}

// Begin returns a cursor at the first index.
func (r *Range[I]) Begin() Cursor[I] {
	return Cursor[I]{index: r.space.First(r.order), space: &r.space, order: r.order}
}

// End returns a cursor at the terminal position.
func (r *Range[I]) End() Cursor[I] {
	return Cursor[I]{index: r.space.Terminal(r.order), space: &r.space, order: r.order}
}

// All returns an iterator over every index of the range in traversal order.
//
// The yielded tuple is a copy; callers may keep or modify it.
func (r *Range[I]) All() iter.Seq[I] {
	return func(yield func(I) bool) {
		end := r.End()
		for c := r.Begin(); !c.Equal(end); _ = c.Advance() {
			if !yield(c.Index()) {
				return
			}
		}
	}
}

// ForEach calls fn for every index in traversal order and stops at the first error.
//
// Returns:
//   - error: fn's error wrapped with the failing index, nil otherwise
func (r *Range[I]) ForEach(fn func(I) error) error {
	for idx := range r.All() {
		if err := fn(idx); err != nil {
			return fmt.Errorf("index %v: %w", idx, err)
		}
	}

	return nil
}
