package services

import (
	"context"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	"github.com/SscSPs/repair_shop_app/internal/dto"
)

// ReportSvcFacade manages fixed costs and month configuration and builds the
// monthly cashflow report.
type ReportSvcFacade interface {
	ListFixedCosts(ctx context.Context) ([]domain.FixedCost, error)
	CreateFixedCost(ctx context.Context, req dto.CreateFixedCostRequest, operator string) (*domain.FixedCost, error)
	DeleteFixedCost(ctx context.Context, id int64, operator string) error

	// GetMonthConfig returns the stored config, or the default working days
	// flagged IsDefault when the month was never configured.
	GetMonthConfig(ctx context.Context, year, month int) (*domain.MonthConfig, error)
	SetMonthConfig(ctx context.Context, req dto.MonthConfigRequest, operator string) (*domain.MonthConfig, error)

	GetCashflowReport(ctx context.Context, year, month int) (*domain.CashflowReport, error)
}
