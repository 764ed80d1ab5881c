// Package logger holds the in-process Logger implementations used by
// ndspace when no slog logger is supplied.
package logger

import "github.com/arloliu/ndspace/types"

// NopLogger drops every record.
//
// It is the default for parallel regions and the plan store.
//
// Example:
//
//	report, err := parallel.ForEach(ctx, plan, ndspace.RowMajor, fn, parallel.WithLogger(logger.NewNop()))
type NopLogger struct{}

var _ types.Logger = (*NopLogger)(nil)

// NewNop returns a logger that discards all records.
func NewNop() *NopLogger {
	return &NopLogger{}
}

func (n *NopLogger) Debug(_ /* msg */ string, _ /* keysAndValues */ ...any) {}

func (n *NopLogger) Info(_ /* msg */ string, _ /* keysAndValues */ ...any) {}

func (n *NopLogger) Warn(_ /* msg */ string, _ /* keysAndValues */ ...any) {}

func (n *NopLogger) Error(_ /* msg */ string, _ /* keysAndValues */ ...any) {}

// Fatal discards the record and does not exit.
func (n *NopLogger) Fatal(_ /* msg */ string, _ /* keysAndValues */ ...any) {}
