package ndspace

import (
	"fmt"
	"strings"

	"github.com/arloliu/ndspace/types"
)

// Order selects the sequence in which a Space's indices are visited.
//
// Both orders visit the same set of indices; they differ only in sequence.
type Order uint8

const (
	// RowMajor varies the last dimension fastest.
	RowMajor Order = iota

	// ColumnMajor varies the first dimension fastest.
	ColumnMajor
)

// String returns "row-major" or "column-major".
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	default:
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
}

// ParseOrder parses an order name.
//
// Accepted names (case-insensitive): "row-major", "rowmajor", "row", "c",
// "column-major", "columnmajor", "column", "fortran". An empty name selects RowMajor.
//
// Returns:
//   - Order: The parsed order
//   - error: ErrInvalidOrder for unknown names
func ParseOrder(name string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "row-major", "rowmajor", "row", "c":
		return RowMajor, nil
	case "column-major", "columnmajor", "column", "fortran":
		return ColumnMajor, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, types.ErrInvalidOrder)
	}
}

// axis maps a carry step (0 = fastest) to a dimension index.
func (o Order) axis(step, dims int) int {
	if o == ColumnMajor {
		return step
	}

	return dims - 1 - step
}

// First returns the first index visited under order o.
//
// For an empty space First equals Terminal, so a driving loop runs zero times.
func (s Space[I]) First(o Order) I {
	if s.Empty() {
		return s.limit
	}

	return s.start
}

// Terminal returns the one-past-last sentinel, which is the limit tuple for every order.
func (s Space[I]) Terminal(_ Order) I {
	return s.limit
}

// Next returns the successor of idx under order o.
//
// The fastest dimension is incremented; on overflow it is reset to its start
// and the carry moves to the next slower dimension. When the carry leaves the
// slowest dimension the whole tuple becomes Terminal. Calling Next on Terminal
// is undefined; Cursor guards against it.
func (s Space[I]) Next(o Order, idx I) I {
	dims := len(idx)
	for step := 0; step < dims; step++ {
		d := o.axis(step, dims)
		idx[d]++
		if idx[d] < s.limit[d] {
			return idx
		}
		idx[d] = s.start[d]
	}

	return s.limit
}
