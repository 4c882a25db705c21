package repositories

import (
	"context"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
)

// FixedCostRepositoryFacade defines persistence for recurring monthly costs.
type FixedCostRepositoryFacade interface {
	FindFixedCostByID(ctx context.Context, id int64) (*domain.FixedCost, error)
	ListFixedCosts(ctx context.Context) ([]domain.FixedCost, error)
	SaveFixedCost(ctx context.Context, cost *domain.FixedCost) error
	DeleteFixedCost(ctx context.Context, id int64) error
}

// MonthConfigRepositoryFacade defines persistence for per-month working days.
type MonthConfigRepositoryFacade interface {
	// FindMonthConfig returns apperrors.ErrNotFound when the month was never configured.
	FindMonthConfig(ctx context.Context, year, month int) (*domain.MonthConfig, error)
	UpsertMonthConfig(ctx context.Context, cfg domain.MonthConfig) error
}
