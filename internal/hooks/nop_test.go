package hooks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ndspace/types"
)

func TestNewNop(t *testing.T) {
	hooks := NewNop()
	info := types.SliceInfo{WorkerID: 1, WorkerCount: 3, Dimension: 0, Lo: 33, Hi: 65}

	require.NotNil(t, hooks.OnSliceStarted)
	require.NotNil(t, hooks.OnSliceFinished)
	require.NotNil(t, hooks.OnError)

	require.NoError(t, hooks.OnSliceStarted(t.Context(), info))
	require.NoError(t, hooks.OnSliceFinished(t.Context(), info))
	require.NoError(t, hooks.OnError(t.Context(), 1, errors.New("boom")))
}

func TestMerge(t *testing.T) {
	errStop := errors.New("stop")
	var started []int

	merged := Merge(types.Hooks{
		OnSliceStarted: func(_ context.Context, info types.SliceInfo) error {
			started = append(started, info.WorkerID)
			return errStop
		},
	})

	require.NotNil(t, merged.OnSliceFinished)
	require.NotNil(t, merged.OnError)

	err := merged.OnSliceStarted(t.Context(), types.SliceInfo{WorkerID: 2})
	require.ErrorIs(t, err, errStop)
	require.Equal(t, []int{2}, started)
	require.NoError(t, merged.OnSliceFinished(t.Context(), types.SliceInfo{}))
	require.NoError(t, merged.OnError(t.Context(), 0, errStop))
}
