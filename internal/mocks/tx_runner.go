package mocks

import (
	"context"

	"github.com/mzhelnin/adboard-api/internal/store"
)

// MockTxRunner implements store.TxRunner without a database: the function
// runs with a nil transaction, which the mock stores ignore in WithTx.
type MockTxRunner struct {
	RunInTransactionFn func(ctx context.Context, fn store.TxFn) error
}

// Ensure MockTxRunner implements store.TxRunner interface
var _ store.TxRunner = (*MockTxRunner)(nil)

// RunInTransaction implements the TxRunner interface.
func (m *MockTxRunner) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	if m.RunInTransactionFn != nil {
		return m.RunInTransactionFn(ctx, fn)
	}
	return fn(ctx, nil)
}
