package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/repair_shop_app/internal/apperrors"
	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	portsrepo "github.com/SscSPs/repair_shop_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/repair_shop_app/internal/core/ports/services"
	"github.com/SscSPs/repair_shop_app/internal/dto"
	"github.com/shopspring/decimal"
)

type reportService struct {
	BaseService
	repos              portsrepo.RepositoryProvider
	defaultWorkingDays int
}

// NewReportService creates a new ReportSvcFacade. defaultWorkingDays is used
// for months without a stored configuration.
func NewReportService(repos portsrepo.RepositoryProvider, defaultWorkingDays int) portssvc.ReportSvcFacade {
	return &reportService{repos: repos, defaultWorkingDays: defaultWorkingDays}
}

var _ portssvc.ReportSvcFacade = (*reportService)(nil)

func (s *reportService) ListFixedCosts(ctx context.Context) ([]domain.FixedCost, error) {
	return s.repos.FixedCostRepo.ListFixedCosts(ctx)
}

func (s *reportService) CreateFixedCost(ctx context.Context, req dto.CreateFixedCostRequest, operator string) (*domain.FixedCost, error) {
	cost := domain.FixedCost{Name: strings.TrimSpace(req.Name), Amount: req.Amount}
	if cost.Name == "" || !cost.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: fixed cost needs a name and a positive amount", apperrors.ErrValidation)
	}
	err := s.repos.TxRunner.RunInTx(ctx, func(ctx context.Context, tx portsrepo.RepositoryProvider) error {
		if err := tx.FixedCostRepo.SaveFixedCost(ctx, &cost); err != nil {
			return err
		}
		return s.Audit(ctx, tx, domain.NewSystemLog(
			domain.LogTypeFixedCost, domain.ActionCreate, strconv.FormatInt(cost.FixedCostID, 10),
			fmt.Sprintf("Fixed cost %s %s", cost.Name, cost.Amount.StringFixed(2)), nil, cost, operator,
		))
	})
	if err != nil {
		return nil, err
	}
	return &cost, nil
}

func (s *reportService) DeleteFixedCost(ctx context.Context, id int64, operator string) error {
	return s.repos.TxRunner.RunInTx(ctx, func(ctx context.Context, tx portsrepo.RepositoryProvider) error {
		current, err := tx.FixedCostRepo.FindFixedCostByID(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.FixedCostRepo.DeleteFixedCost(ctx, id); err != nil {
			return err
		}
		return s.Audit(ctx, tx, domain.NewSystemLog(
			domain.LogTypeFixedCost, domain.ActionDelete, strconv.FormatInt(id, 10),
			fmt.Sprintf("Fixed cost %s removed", current.Name), current, nil, operator,
		))
	})
}

// GetMonthConfig implements portssvc.ReportSvcFacade.
func (s *reportService) GetMonthConfig(ctx context.Context, year, month int) (*domain.MonthConfig, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}
	cfg, err := s.repos.MonthConfigRepo.FindMonthConfig(ctx, year, month)
	if errors.Is(err, apperrors.ErrNotFound) {
		return &domain.MonthConfig{Year: year, Month: month, WorkingDays: s.defaultWorkingDays, IsDefault: true}, nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetMonthConfig implements portssvc.ReportSvcFacade.
func (s *reportService) SetMonthConfig(ctx context.Context, req dto.MonthConfigRequest, operator string) (*domain.MonthConfig, error) {
	if req.Month < 1 || req.Month > 12 || req.WorkingDays < 0 || req.WorkingDays > 31 {
		return nil, fmt.Errorf("%w: invalid month configuration", apperrors.ErrValidation)
	}
	cfg := domain.MonthConfig{Year: req.Year, Month: req.Month, WorkingDays: req.WorkingDays}
	err := s.repos.TxRunner.RunInTx(ctx, func(ctx context.Context, tx portsrepo.RepositoryProvider) error {
		previous, err := tx.MonthConfigRepo.FindMonthConfig(ctx, req.Year, req.Month)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if err := tx.MonthConfigRepo.UpsertMonthConfig(ctx, cfg); err != nil {
			return err
		}
		return s.Audit(ctx, tx, domain.NewSystemLog(
			domain.LogTypeMonthConfig, domain.ActionEdit, fmt.Sprintf("%04d-%02d", req.Year, req.Month),
			fmt.Sprintf("Working days set to %d", req.WorkingDays), previous, cfg, operator,
		))
	})
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetCashflowReport gathers the month's aggregates concurrently and combines them.
func (s *reportService) GetCashflowReport(ctx context.Context, year, month int) (*domain.CashflowReport, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}
	from, to := domain.MonthRange(year, month)

	var (
		totals      []domain.CategoryTotal
		commissions decimal.Decimal
		workers     []domain.Worker
		fixed       []domain.FixedCost
		monthCfg    *domain.MonthConfig
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = s.repos.CashRepo.SumByCategory(gctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		commissions, err = s.repos.CommissionRepo.SumCommissionsInRange(gctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		workers, err = s.repos.WorkerRepo.ListWorkers(gctx, false)
		return err
	})
	g.Go(func() error {
		var err error
		fixed, err = s.repos.FixedCostRepo.ListFixedCosts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		monthCfg, err = s.GetMonthConfig(gctx, year, month)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build cashflow report", slog.Int("year", year), slog.Int("month", month))
		return nil, err
	}

	report := domain.BuildCashflowReport(*monthCfg, totals, commissions, workers, fixed)
	return &report, nil
}
