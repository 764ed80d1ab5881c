package ndspace

import (
	"fmt"
	"math"
	"strings"

	"github.com/arloliu/ndspace/types"
)

// MaxDims is the largest dimension count supported by Index.
const MaxDims = 8

// Index is the set of multi-index types a Space can be built over.
//
// The array length is the dimension count D, so D is fixed at compile time.
// A zero-dimensional space cannot be expressed.
type Index interface {
	~[1]int | ~[2]int | ~[3]int | ~[4]int | ~[5]int | ~[6]int | ~[7]int | ~[8]int
}

// Bounds is a half-open [Start, Limit) range along one dimension.
type Bounds struct {
	Start int `json:"start" yaml:"start"`
	Limit int `json:"limit" yaml:"limit"`
}

// Extent returns the number of integers in the range (0 for empty or inverted ranges).
func (b Bounds) Extent() int {
	return max(b.Limit-b.Start, 0)
}

// Space is an immutable dense N-dimensional index range.
//
// Every dimension d covers [start[d], limit[d]). The zero value is an empty
// space over the origin. Spaces are plain values: copying is cheap and
// concurrent reads need no synchronization. Two spaces are equal (==) iff all
// start and limit values match.
type Space[I Index] struct {
	start I
	limit I
}

// NewSpace builds a space from per-dimension bounds.
//
// Bounds are not checked for start <= limit: an empty or inverted range is
// permitted and yields a space with zero iterations.
//
// Parameters:
//   - bounds: One Bounds per dimension, dimension 0 first
//
// Returns:
//   - Space[I]: The constructed space
//   - error: ErrDimensionMismatch if len(bounds) differs from the dimension count of I
//
// Example:
//
//	s, err := ndspace.NewSpace[[2]int](
//	    ndspace.Bounds{Start: 1, Limit: 99},
//	    ndspace.Bounds{Start: 1, Limit: 99},
//	)
func NewSpace[I Index](bounds ...Bounds) (Space[I], error) {
	var s Space[I]
	if len(bounds) != len(s.start) {
		return s, fmt.Errorf("got %d bounds for a %d-dimensional space: %w",
			len(bounds), len(s.start), types.ErrDimensionMismatch)
	}

	for d, b := range bounds {
		s.start[d] = b.Start
		s.limit[d] = b.Limit
	}

	return s, nil
}

// SpaceOf builds a space from start and limit tuples.
func SpaceOf[I Index](start, limit I) Space[I] {
	return Space[I]{start: start, limit: limit}
}

// Dims returns the dimension count D.
func (s Space[I]) Dims() int {
	return len(s.start)
}

// Start returns the inclusive lower bounds.
func (s Space[I]) Start() I {
	return s.start
}

// Limit returns the exclusive upper bounds.
func (s Space[I]) Limit() I {
	return s.limit
}

// Bounds returns the range of dimension d.
//
// d must be in [0, Dims()).
func (s Space[I]) Bounds(d int) Bounds {
	return Bounds{Start: s.start[d], Limit: s.limit[d]}
}

// Extent returns the number of indices along dimension d.
func (s Space[I]) Extent(d int) int {
	return s.Bounds(d).Extent()
}

// Empty reports whether the space contains no index.
func (s Space[I]) Empty() bool {
	for d := 0; d < len(s.start); d++ {
		if s.start[d] >= s.limit[d] {
			return true
		}
	}

	return false
}

// Len returns the number of indices in the space, saturating at math.MaxInt.
func (s Space[I]) Len() int {
	if s.Empty() {
		return 0
	}

	n := 1
	for d := 0; d < len(s.start); d++ {
		e := s.Extent(d)
		if n > math.MaxInt/e {
			return math.MaxInt
		}
		n *= e
	}

	return n
}

// Contains reports whether idx lies inside the space.
func (s Space[I]) Contains(idx I) bool {
	for d := 0; d < len(s.start); d++ {
		if idx[d] < s.start[d] || idx[d] >= s.limit[d] {
			return false
		}
	}

	return true
}

// Equal reports whether both spaces have identical bounds.
func (s Space[I]) Equal(other Space[I]) bool {
	return s.start == other.start && s.limit == other.limit
}

// String formats the space as a product of half-open ranges, e.g. "[1,4)x[1,4)".
func (s Space[I]) String() string {
	var sb strings.Builder
	for d := 0; d < len(s.start); d++ {
		if d > 0 {
			sb.WriteByte('x')
		}
		fmt.Fprintf(&sb, "[%d,%d)", s.start[d], s.limit[d])
	}

	return sb.String()
}

// withBounds returns a copy of s with dimension d replaced by [lo, hi).
func (s Space[I]) withBounds(d, lo, hi int) Space[I] {
	s.start[d] = lo
	s.limit[d] = hi

	return s
}
