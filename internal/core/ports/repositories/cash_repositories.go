package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
)

// CashReader defines read operations over the cash ledger
type CashReader interface {
	// GetBalances aggregates the full ledger per method.
	GetBalances(ctx context.Context) (domain.Balances, error)

	// ListRecentTransactions returns up to limit entries ordered by date desc, id desc.
	ListRecentTransactions(ctx context.Context, limit int) ([]domain.CashTransaction, error)

	// SumByCategory totals entries dated in [from, to) per type and category.
	SumByCategory(ctx context.Context, from, to time.Time) ([]domain.CategoryTotal, error)
}

// CashWriter defines write operations over the cash ledger. Entries are never
// updated or deleted.
type CashWriter interface {
	// SaveCashTransaction appends an entry and sets its TransactionID.
	SaveCashTransaction(ctx context.Context, txn *domain.CashTransaction) error

	// LockLedger serializes ledger writers until the transaction ends, so a
	// balance read after it stays valid for the rest of the transaction.
	LockLedger(ctx context.Context) error
}

// CashRepositoryFacade combines all cash ledger repository interfaces
type CashRepositoryFacade interface {
	CashReader
	CashWriter
}
