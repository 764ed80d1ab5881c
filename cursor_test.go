package ndspace

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursor_DrivingLoop(t *testing.T) {
	tests := []struct {
		name  string
		space Space[[2]int]
		want  int
	}{
		{name: "empty", space: SpaceOf([2]int{0, 0}, [2]int{0, 3}), want: 0},
		{name: "single element", space: SpaceOf([2]int{7, -1}, [2]int{8, 0}), want: 1},
		{name: "3x3", space: SpaceOf([2]int{1, 1}, [2]int{4, 4}), want: 9},
		{name: "5x2", space: SpaceOf([2]int{0, 10}, [2]int{5, 12}), want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, o := range []Order{RowMajor, ColumnMajor} {
				r := NewRange(tt.space, o)
				end := r.End()

				count := 0
				for c := r.Begin(); !c.Equal(end); _ = c.Advance() {
					require.True(t, tt.space.Contains(c.Index()))
					count++
				}
				require.Equal(t, tt.want, count, o.String())
			}
		})
	}
}

func TestCursor_Advance(t *testing.T) {
	t.Run("index is stable between advances", func(t *testing.T) {
		r := NewRange(SpaceOf([2]int{0, 0}, [2]int{2, 2}), RowMajor)
		c := r.Begin()

		require.Equal(t, [2]int{0, 0}, c.Index())
		require.Equal(t, [2]int{0, 0}, c.Index())
		require.NoError(t, c.Advance())
		require.Equal(t, [2]int{0, 1}, c.Index())
	})

	t.Run("advancing past terminal is reported", func(t *testing.T) {
		r := NewRange(SpaceOf([1]int{0}, [1]int{2}), RowMajor)
		c := r.Begin()

		require.NoError(t, c.Advance())
		require.NoError(t, c.Advance())
		require.True(t, c.Done())

		err := c.Advance()
		require.ErrorIs(t, err, ErrCursorExhausted)
		require.Equal(t, [1]int{2}, c.Index(), "cursor must stay at terminal")
	})

	t.Run("begin of empty space is already exhausted", func(t *testing.T) {
		r := NewRange(SpaceOf([2]int{0, 0}, [2]int{3, 0}), ColumnMajor)
		c := r.Begin()

		require.True(t, c.Done())
		require.True(t, errors.Is(c.Advance(), ErrCursorExhausted))
	})
}

func TestCursor_Equal(t *testing.T) {
	t.Run("same index same space", func(t *testing.T) {
		r := NewRange(SpaceOf([2]int{0, 0}, [2]int{3, 3}), RowMajor)
		a, b := r.Begin(), r.Begin()

		require.True(t, a.Equal(b))
		require.NoError(t, a.Advance())
		require.False(t, a.Equal(b))
	})

	t.Run("equal spaces from different ranges", func(t *testing.T) {
		s := SpaceOf([2]int{0, 0}, [2]int{3, 3})
		a := NewRange(s, RowMajor).End()
		b := NewRange(s, RowMajor).End()

		require.True(t, a.Equal(b))
	})

	t.Run("identical index over different spaces", func(t *testing.T) {
		a := NewRange(SpaceOf([2]int{0, 0}, [2]int{3, 3}), RowMajor).Begin()
		b := NewRange(SpaceOf([2]int{0, 0}, [2]int{4, 4}), RowMajor).Begin()

		require.Equal(t, a.Index(), b.Index())
		require.False(t, a.Equal(b))
	})
}

func TestCursor_ZeroValue(t *testing.T) {
	var c Cursor[[2]int]

	require.True(t, c.Done())
	require.ErrorIs(t, c.Advance(), ErrCursorExhausted)
	require.Equal(t, [2]int{}, c.Index())
	require.True(t, c.Equal(Cursor[[2]int]{}))
}
