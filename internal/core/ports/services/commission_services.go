package services

import (
	"context"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	portsrepo "github.com/SscSPs/repair_shop_app/internal/core/ports/repositories"
	"github.com/SscSPs/repair_shop_app/internal/dto"
)

// CommissionAccrualSvc turns an order's line items into salary logs.
type CommissionAccrualSvc interface {
	// AccrueCommissions writes one salary log per resolved worker of the order
	// using repos, which must be bound to the caller's transaction. It is a
	// no-op for orders that already have logs.
	AccrueCommissions(ctx context.Context, repos portsrepo.RepositoryProvider, orderID int64) ([]domain.SalaryLog, error)
}

// CommissionSvcFacade combines accrual with salary log reads and payouts.
type CommissionSvcFacade interface {
	CommissionAccrualSvc

	ListSalaryLogs(ctx context.Context, filter domain.SalaryLogFilter) ([]domain.SalaryLog, error)

	// PayoutWorker marks unpaid logs paid and books one Salary expense.
	PayoutWorker(ctx context.Context, req dto.PayoutRequest, operator string) (*domain.Payout, error)
}
