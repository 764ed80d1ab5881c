// Package hooks provides default slice lifecycle callbacks.
package hooks

import (
	"context"

	"github.com/arloliu/ndspace/types"
)

// NopHooks implements every hook as a no-op so callers never nil-check.
type NopHooks struct{}

var (
	_ func(context.Context, types.SliceInfo) error = (*NopHooks)(nil).OnSliceStarted
	_ func(context.Context, types.SliceInfo) error = (*NopHooks)(nil).OnSliceFinished
	_ func(context.Context, int, error) error      = (*NopHooks)(nil).OnError
)

// NewNop returns Hooks whose callbacks all return nil.
func NewNop() types.Hooks {
	h := &NopHooks{}

	return types.Hooks{
		OnSliceStarted:  h.OnSliceStarted,
		OnSliceFinished: h.OnSliceFinished,
		OnError:         h.OnError,
	}
}

// Merge returns hooks where every callback missing in h is replaced by a
// no-op.
func Merge(h types.Hooks) types.Hooks {
	nop := NewNop()
	if h.OnSliceStarted == nil {
		h.OnSliceStarted = nop.OnSliceStarted
	}
	if h.OnSliceFinished == nil {
		h.OnSliceFinished = nop.OnSliceFinished
	}
	if h.OnError == nil {
		h.OnError = nop.OnError
	}

	return h
}

func (h *NopHooks) OnSliceStarted(_ context.Context, _ types.SliceInfo) error {
	return nil
}

func (h *NopHooks) OnSliceFinished(_ context.Context, _ types.SliceInfo) error {
	return nil
}

func (h *NopHooks) OnError(_ context.Context, _ int, _ error) error {
	return nil
}
