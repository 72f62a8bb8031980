package memory

import (
	"context"

	"tulika/internal/domain/repositories"
)

// TransactionManager is a no-op transaction manager. The map repositories
// take their own locks per call, which is enough for tests.
type TransactionManager struct{}

// NewTransactionManager creates a no-op transaction manager.
func NewTransactionManager() repositories.TransactionManager {
	return &TransactionManager{}
}

func (tm *TransactionManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}
