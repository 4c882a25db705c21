package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CommissionReader defines read operations for salary logs
type CommissionReader interface {
	// CountCommissionsByOrderID returns how many salary logs exist for an order.
	CountCommissionsByOrderID(ctx context.Context, orderID int64) (int, error)

	// ListSalaryLogs returns logs enriched with order number and worker name, newest first.
	ListSalaryLogs(ctx context.Context, filter domain.SalaryLogFilter) ([]domain.SalaryLog, error)

	// SumCommissionsInRange totals logs dated in [from, to).
	SumCommissionsInRange(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}

// CommissionWriter defines write operations for salary logs
type CommissionWriter interface {
	// SaveSalaryLogs inserts logs, skipping any (order, worker) pair that
	// already exists, and returns the rows actually inserted.
	SaveSalaryLogs(ctx context.Context, logs []domain.SalaryLog) ([]domain.SalaryLog, error)

	// MarkCommissionsPaid flips the worker's unpaid logs to paid and returns
	// them. When logIDs is non-empty only those logs are considered.
	MarkCommissionsPaid(ctx context.Context, workerID int64, logIDs []int64, paidAt time.Time) ([]domain.SalaryLog, error)
}

// CommissionRepositoryFacade combines all salary log repository interfaces
type CommissionRepositoryFacade interface {
	CommissionReader
	CommissionWriter
}
