package repositories

import "context"

// TxFunc is the unit of work executed by a TransactionRunner. The provider it
// receives is bound to the running transaction; repositories taken from it
// see the transaction's writes and locks.
type TxFunc func(ctx context.Context, repos RepositoryProvider) error

// TransactionRunner runs a unit of work in a single database transaction.
// It commits when fn returns nil and rolls back otherwise. Unique-constraint,
// serialization and deadlock failures surface as apperrors.ErrConflict.
type TransactionRunner interface {
	RunInTx(ctx context.Context, fn TxFunc) error
}
