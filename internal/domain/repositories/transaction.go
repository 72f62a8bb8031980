package repositories

import (
	"context"
)

// TxFn is a function executed within a transaction
type TxFn func(ctx context.Context) error

// TransactionManager runs a function inside a single transaction. The
// transaction travels in the context so repositories join it automatically.
type TransactionManager interface {
	ExecTx(ctx context.Context, fn TxFn) error
}
