package ndspace

import (
	"fmt"

	"github.com/arloliu/ndspace/types"
)

// Cursor is the mutable traversal state over a Space.
//
// A cursor holds a non-owning reference to its space: the Range (or the
// caller) must keep the space alive for the cursor's lifetime. Cursors are
// not safe for concurrent use; each worker drives its own.
type Cursor[I Index] struct {
	index I
	space *Space[I]
	order Order
}

// Index returns the current multi-index.
func (c *Cursor[I]) Index() I {
	return c.index
}

// Done reports whether the cursor is at the terminal position. A zero Cursor
// is always done.
func (c *Cursor[I]) Done() bool {
	if c.space == nil {
		return true
	}

	return c.index == c.space.Terminal(c.order)
}

// Advance moves the cursor to the successor of the current index.
//
// Returns:
//   - error: ErrCursorExhausted if the cursor is already at the terminal
//     position; the cursor is left unchanged
func (c *Cursor[I]) Advance() error {
	if c.space == nil {
		return fmt.Errorf("advance %v without a space: %w", c.index, types.ErrCursorExhausted)
	}
	if c.Done() {
		return fmt.Errorf("advance %v over %s: %w", c.index, c.space, types.ErrCursorExhausted)
	}
	c.index = c.space.Next(c.order, c.index)

	return nil
}

// Equal reports whether both cursors are at the same index of equal spaces.
//
// Cursors over different spaces are never equal, even at identical index values.
func (c *Cursor[I]) Equal(other Cursor[I]) bool {
	if c.index != other.index {
		return false
	}
	if c.space == nil || other.space == nil {
		return c.space == other.space
	}

	return c.space.Equal(*other.space)
}
