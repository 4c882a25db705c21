package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	portsrepo "github.com/SscSPs/repair_shop_app/internal/core/ports/repositories"
	"github.com/SscSPs/repair_shop_app/internal/models"
	"github.com/SscSPs/repair_shop_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxCashRepository struct {
	BaseRepository
}

var _ portsrepo.CashRepositoryFacade = (*PgxCashRepository)(nil)

func (r *PgxCashRepository) GetBalances(ctx context.Context) (domain.Balances, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'Income' THEN amount ELSE -amount END) FILTER (WHERE method = 'Cash'), 0),
			COALESCE(SUM(CASE WHEN type = 'Income' THEN amount ELSE -amount END) FILTER (WHERE method = 'Terminal'), 0)
		FROM cash_transactions;
	`
	var cash, terminal decimal.Decimal
	if err := r.db.QueryRow(ctx, query).Scan(&cash, &terminal); err != nil {
		return domain.Balances{}, storeError("aggregate balances", err)
	}
	return domain.NewBalances(cash, terminal), nil
}

func (r *PgxCashRepository) ListRecentTransactions(ctx context.Context, limit int) ([]domain.CashTransaction, error) {
	query := `
		SELECT id, date, type, category, description, amount, method, related_entity, created_by
		FROM cash_transactions
		ORDER BY date DESC, id DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, storeError("list cash transactions", err)
	}
	defer rows.Close()

	var txns []domain.CashTransaction
	for rows.Next() {
		var m models.CashTransaction
		if err := rows.Scan(&m.TransactionID, &m.Date, &m.Type, &m.Category, &m.Description,
			&m.Amount, &m.Method, &m.RelatedEntity, &m.CreatedBy); err != nil {
			return nil, storeError("scan cash transaction", err)
		}
		txns = append(txns, mapping.ToDomainCashTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate cash transactions", err)
	}
	return txns, nil
}

func (r *PgxCashRepository) SumByCategory(ctx context.Context, from, to time.Time) ([]domain.CategoryTotal, error) {
	query := `
		SELECT type, category, SUM(amount)
		FROM cash_transactions
		WHERE date >= $1 AND date < $2
		GROUP BY type, category
		ORDER BY type, category;
	`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, storeError("sum cash by category", err)
	}
	defer rows.Close()

	var totals []domain.CategoryTotal
	for rows.Next() {
		var t domain.CategoryTotal
		var txType string
		if err := rows.Scan(&txType, &t.Category, &t.Total); err != nil {
			return nil, storeError("scan category total", err)
		}
		t.Type = domain.TransactionType(txType)
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate category totals", err)
	}
	return totals, nil
}

// SaveCashTransaction appends an entry. It takes the ledger lock so an append
// never interleaves with a reconciliation reading the balance.
func (r *PgxCashRepository) SaveCashTransaction(ctx context.Context, txn *domain.CashTransaction) error {
	if err := advisoryLock(ctx, r.db, ledgerLockKey); err != nil {
		return storeError("lock ledger", err)
	}
	m := mapping.ToModelCashTransaction(*txn)
	query := `
		INSERT INTO cash_transactions (date, type, category, description, amount, method, related_entity, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		m.Date, m.Type, m.Category, m.Description, m.Amount, m.Method, m.RelatedEntity, m.CreatedBy,
	).Scan(&txn.TransactionID)
	if err != nil {
		return storeError("append cash transaction", err)
	}
	return nil
}

func (r *PgxCashRepository) LockLedger(ctx context.Context) error {
	if err := advisoryLock(ctx, r.db, ledgerLockKey); err != nil {
		return storeError("lock ledger", err)
	}
	return nil
}
