package services

import (
	"context"
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

type cashService struct {
	BaseService
	repos portsrepo.RepositoryProvider
}

// NewCashService creates a new CashSvcFacade.
func NewCashService(repos portsrepo.RepositoryProvider) portssvc.CashSvcFacade {
	return &cashService{repos: repos}
}

var _ portssvc.CashSvcFacade = (*cashService)(nil)

// RecordTransaction implements portssvc.CashSvcFacade.
func (s *cashService) RecordTransaction(ctx context.Context, req dto.CreateCashTransactionRequest, operator string) (*domain.CashTransaction, error) {
	entry := domain.CashTransaction{
		Date:          nowUTC(),
		Type:          req.Type,
		Category:      strings.TrimSpace(req.Category),
		Description:   strings.TrimSpace(req.Description),
		Amount:        req.Amount,
		Method:        req.Method,
		RelatedEntity: strings.TrimSpace(req.RelatedEntity),
		CreatedBy:     operator,
	}
	if req.Date != nil && !req.Date.IsZero() {
		entry.Date = req.Date.UTC()
	}
	if err := entry.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	err := s.repos.TxRunner.RunInTx(ctx, func(ctx context.Context, tx portsrepo.RepositoryProvider) error {
		if err := tx.CashRepo.SaveCashTransaction(ctx, &entry); err != nil {
			return err
		}
		return s.Audit(ctx, tx, domain.NewSystemLog(
			domain.LogTypeCash, domain.ActionCreate, strconv.FormatInt(entry.TransactionID, 10),
			fmt.Sprintf("%s %s %s (%s)", entry.Type, entry.Amount.StringFixed(2), entry.Method, entry.Category),
			nil, entry, operator,
		))
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record cash transaction")
		return nil, err
	}
	return &entry, nil
}

// GetOverview implements portssvc.CashSvcFacade.
func (s *cashService) GetOverview(ctx context.Context, limit int) (*domain.CashOverview, error) {
	if limit <= 0 {
		limit = 100
	}
	overview := &domain.CashOverview{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := s.repos.CashRepo.GetBalances(gctx)
		if err != nil {
			return err
		}
		overview.Balances = b
		return nil
	})
	g.Go(func() error {
		txns, err := s.repos.CashRepo.ListRecentTransactions(gctx, limit)
		if err != nil {
			return err
		}
		overview.Transactions = txns
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load cash overview")
		return nil, err
	}
	return overview, nil
}

// Reconcile implements portssvc.CashSvcFacade.
func (s *cashService) Reconcile(ctx context.Context, req dto.ReconcileRequest, operator string) (*domain.ReconciliationResult, error) {
	if req.ActualCash == nil || req.ActualTerminal == nil {
		return nil, fmt.Errorf("%w: both counted balances are required", apperrors.ErrValidation)
	}

	result := &domain.ReconciliationResult{
		Cash:     s.reconcileMethod(ctx, domain.MethodCash, *req.ActualCash, operator),
		Terminal: s.reconcileMethod(ctx, domain.MethodTerminal, *req.ActualTerminal, operator),
	}
	if result.Cash.Error != "" && result.Terminal.Error != "" {
		return nil, apperrors.NewAppError(500, "reconciliation failed for both methods", nil)
	}
	result.NoDiscrepancy = result.Cash.Error == "" && result.Terminal.Error == "" &&
		result.Cash.Diff.IsZero() && result.Terminal.Diff.IsZero()

	s.LogInfo(ctx, "Reconciliation finished",
		slog.String("cash_diff", result.Cash.Diff.String()),
		slog.String("terminal_diff", result.Terminal.Diff.String()),
		slog.Bool("no_discrepancy", result.NoDiscrepancy))
	return result, nil
}

// reconcileMethod commits one method's correction in its own transaction so a
// failure on one side does not undo the other.
func (s *cashService) reconcileMethod(ctx context.Context, method domain.PaymentMethod, actual decimal.Decimal, operator string) domain.Adjustment {
	adj := domain.Adjustment{Method: method, Actual: actual, Diff: decimal.Zero}
	err := s.repos.TxRunner.RunInTx(ctx, func(ctx context.Context, tx portsrepo.RepositoryProvider) error {
		if err := tx.CashRepo.LockLedger(ctx); err != nil {
			return err
		}
		balances, err := tx.CashRepo.GetBalances(ctx)
		if err != nil {
			return err
		}
		adj.Expected = balances.For(method)

		diff, entry := domain.BuildAdjustment(method, actual, adj.Expected, nowUTC(), operator)
		adj.Diff = diff
		if entry == nil {
			return nil
		}
		if err := tx.CashRepo.SaveCashTransaction(ctx, entry); err != nil {
			return err
		}
		if err := s.Audit(ctx, tx, domain.NewSystemLog(
			domain.LogTypeCash, domain.ActionReconcile, string(method),
			entry.Description,
			map[string]decimal.Decimal{"expected": adj.Expected},
			map[string]decimal.Decimal{"actual": actual, "diff": diff},
			operator,
		)); err != nil {
			return err
		}
		adj.Entry = entry
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to reconcile", slog.String("method", string(method)))
		adj.Applied = false
		adj.Entry = nil
		adj.Error = "failed to apply adjustment"
		return adj
	}
	adj.Applied = adj.Entry != nil
	return adj
}
