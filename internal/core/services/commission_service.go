package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/SscSPs/repair_shop_app/internal/apperrors"
	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	portsrepo "github.com/SscSPs/repair_shop_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/repair_shop_app/internal/core/ports/services"
	"github.com/SscSPs/repair_shop_app/internal/dto"
	"github.com/shopspring/decimal"
)

type commissionService struct {
	BaseService
	repos portsrepo.RepositoryProvider
}

// NewCommissionService creates a new CommissionSvcFacade.
func NewCommissionService(repos portsrepo.RepositoryProvider) portssvc.CommissionSvcFacade {
	return &commissionService{repos: repos}
}

var _ portssvc.CommissionSvcFacade = (*commissionService)(nil)

// AccrueCommissions implements portssvc.CommissionAccrualSvc.
func (s *commissionService) AccrueCommissions(ctx context.Context, repos portsrepo.RepositoryProvider, orderID int64) ([]domain.SalaryLog, error) {
	existing, err := repos.CommissionRepo.CountCommissionsByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		s.LogDebug(ctx, "Commissions already accrued", slog.Int64("order_id", orderID))
		return nil, nil
	}

	order, err := repos.OrderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	items, err := order.LineItems()
	if err != nil {
		s.LogWarn(ctx, "Unreadable service details, falling back to master",
			slog.Int64("order_id", orderID), slog.String("error", err.Error()))
		items = nil
	}
	if len(items) == 0 && order.MasterID != nil && order.Price.IsPositive() {
		items = []domain.ServiceLineItem{{Service: order.Services, WorkerID: order.MasterID, Price: order.Price}}
	}
	if len(items) == 0 {
		return nil, nil
	}

	workers, err := repos.WorkerRepo.ListWorkers(ctx, true)
	if err != nil {
		return nil, err
	}

	at := nowUTC()
	var logs []domain.SalaryLog
	for _, p := range domain.CalculateCommissions(items, workers) {
		if !p.Amount.IsPositive() {
			continue
		}
		logs = append(logs, domain.SalaryLog{
			OrderID:  orderID,
			WorkerID: p.WorkerID,
			Amount:   p.Amount,
			Date:     at,
		})
	}
	if len(logs) == 0 {
		return nil, nil
	}

	saved, err := repos.CommissionRepo.SaveSalaryLogs(ctx, logs)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Commissions accrued",
		slog.Int64("order_id", orderID),
		slog.Int("logs", len(saved)),
		slog.String("total", domain.SumSalaryLogs(saved).String()))
	return saved, nil
}

// ListSalaryLogs implements portssvc.CommissionSvcFacade.
func (s *commissionService) ListSalaryLogs(ctx context.Context, filter domain.SalaryLogFilter) ([]domain.SalaryLog, error) {
	return s.repos.CommissionRepo.ListSalaryLogs(ctx, filter)
}

// PayoutWorker implements portssvc.CommissionSvcFacade.
func (s *commissionService) PayoutWorker(ctx context.Context, req dto.PayoutRequest, operator string) (*domain.Payout, error) {
	if !req.Method.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidPaymentMethod, req.Method)
	}

	var payout *domain.Payout
	err := s.repos.TxRunner.RunInTx(ctx, func(ctx context.Context, tx portsrepo.RepositoryProvider) error {
		worker, err := tx.WorkerRepo.FindWorkerByID(ctx, req.WorkerID)
		if err != nil {
			return err
		}

		at := nowUTC()
		logs, err := tx.CommissionRepo.MarkCommissionsPaid(ctx, req.WorkerID, req.LogIDs, at)
		if err != nil {
			return err
		}
		total := domain.SumSalaryLogs(logs)
		if len(logs) == 0 || !total.IsPositive() {
			return fmt.Errorf("%w: worker %s has no unpaid commissions", apperrors.ErrValidation, worker.Name)
		}

		entry := domain.CashTransaction{
			Date:          at,
			Type:          domain.Expense,
			Category:      domain.CategorySalary,
			Description:   fmt.Sprintf("Salary payout to %s (%d orders)", worker.Name, len(logs)),
			Amount:        total,
			Method:        req.Method,
			RelatedEntity: worker.Name,
			CreatedBy:     operator,
		}
		if err := tx.CashRepo.SaveCashTransaction(ctx, &entry); err != nil {
			return err
		}

		payout = &domain.Payout{
			WorkerID:    worker.WorkerID,
			WorkerName:  worker.Name,
			Amount:      total,
			Logs:        logs,
			Transaction: entry,
		}
		return s.Audit(ctx, tx, domain.NewSystemLog(
			domain.LogTypePayroll, domain.ActionPayout, strconv.FormatInt(worker.WorkerID, 10),
			fmt.Sprintf("Paid %s to %s via %s", total.StringFixed(2), worker.Name, req.Method),
			nil, payoutSnapshot{LogIDs: logIDs(logs), Amount: total, TransactionID: entry.TransactionID}, operator,
		))
	})
	if err != nil {
		if !isClientError(err) {
			s.LogError(ctx, err, "Failed to pay out worker", slog.Int64("worker_id", req.WorkerID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Worker paid out",
		slog.Int64("worker_id", payout.WorkerID),
		slog.String("amount", payout.Amount.String()))
	return payout, nil
}

type payoutSnapshot struct {
	LogIDs        []int64         `json:"logIds"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID int64           `json:"transactionId"`
}

func logIDs(logs []domain.SalaryLog) []int64 {
	ids := make([]int64, len(logs))
	for i, l := range logs {
		ids[i] = l.LogID
	}
	return ids
}
