package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/repair_shop_app/internal/apperrors"
	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	portsrepo "github.com/SscSPs/repair_shop_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/repair_shop_app/internal/core/ports/services"
	"github.com/SscSPs/repair_shop_app/internal/dto"
	"github.com/shopspring/decimal"
)

// lifecycleService owns status transitions and the money movements tied to them.
type lifecycleService struct {
	BaseService
	repos   portsrepo.RepositoryProvider
	accrual portssvc.CommissionAccrualSvc
}

// NewLifecycleService creates a new LifecycleSvcFacade.
func NewLifecycleService(repos portsrepo.RepositoryProvider, accrual portssvc.CommissionAccrualSvc) portssvc.LifecycleSvcFacade {
	return &lifecycleService{repos: repos, accrual: accrual}
}

var _ portssvc.LifecycleSvcFacade = (*lifecycleService)(nil)

type statusChange struct {
	Status domain.OrderStatus `json:"status"`
}

// ChangeStatus implements portssvc.LifecycleSvcFacade.
func (s *lifecycleService) ChangeStatus(ctx context.Context, orderID int64, req dto.ChangeStatusRequest, operator string) (*domain.Order, error) {
	if !req.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, req.Status)
	}
	if req.Status == domain.StatusIssued {
		amount := decimal.Zero
		if req.PaymentAmount != nil {
			amount = *req.PaymentAmount
		}
		return s.CompleteOrder(ctx, orderID, amount, req.PaymentMethod, operator)
	}

	var result *domain.Order
	var accrued []domain.SalaryLog
	err := s.repos.TxRunner.RunInTx(ctx, func(ctx context.Context, tx portsrepo.RepositoryProvider) error {
		order, err := tx.OrderRepo.FindOrderByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		prev := order.Status
		changed := prev != req.Status

		if req.Status == domain.StatusReady && order.ReadyAt == nil {
			at := nowUTC()
			order.ReadyAt = &at
			changed = true
		}
		order.Status = req.Status

		if changed {
			if err := tx.OrderRepo.UpdateOrder(ctx, *order); err != nil {
				return err
			}
		}
		if prev != req.Status {
			if err := s.Audit(ctx, tx, domain.NewSystemLog(
				domain.LogTypeOrder, domain.ActionStatus, orderTarget(orderID),
				fmt.Sprintf("Order #%s: %s -> %s", order.OrderNumber, prev, req.Status),
				statusChange{prev}, statusChange{req.Status}, operator,
			)); err != nil {
				return err
			}
		}

		if req.Status == domain.StatusReady {
			accrued, err = s.accrual.AccrueCommissions(ctx, tx, orderID)
			if err != nil {
				return err
			}
		}
		result = order
		return nil
	})
	if err != nil {
		if !isClientError(err) {
			s.LogError(ctx, err, "Failed to change order status", slog.Int64("order_id", orderID), slog.String("status", string(req.Status)))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Order status changed",
		slog.Int64("order_id", orderID),
		slog.String("status", string(result.Status)),
		slog.Int("commissions_accrued", len(accrued)))
	return result, nil
}

// CompleteOrder implements portssvc.LifecycleSvcFacade.
func (s *lifecycleService) CompleteOrder(ctx context.Context, orderID int64, amount decimal.Decimal, method domain.PaymentMethod, operator string) (*domain.Order, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: payment amount must not be negative", apperrors.ErrValidation)
	}
	if amount.IsPositive() && !method.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidPaymentMethod, method)
	}

	var result *domain.Order
	err := s.repos.TxRunner.RunInTx(ctx, func(ctx context.Context, tx portsrepo.RepositoryProvider) error {
		order, err := tx.OrderRepo.FindOrderByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order.Status == domain.StatusIssued {
			if amount.IsZero() {
				result = order
				return nil
			}
			return fmt.Errorf("%w: order #%s is already issued", apperrors.ErrConflict, order.OrderNumber)
		}
		if amount.GreaterThan(order.Remaining()) {
			return fmt.Errorf("%w: payment %s exceeds remaining %s", apperrors.ErrValidation, amount.StringFixed(2), order.Remaining().StringFixed(2))
		}

		prev := order.Status
		at := nowUTC()
		order.Status = domain.StatusIssued
		order.CompletedAt = &at
		order.PaymentDate = &at
		if amount.IsPositive() {
			if method == domain.MethodCash {
				order.PaymentFullCash = order.PaymentFullCash.Add(amount)
			} else {
				order.PaymentFullTerminal = order.PaymentFullTerminal.Add(amount)
			}
		}
		if err := tx.OrderRepo.UpdateOrder(ctx, *order); err != nil {
			return err
		}

		if amount.IsPositive() {
			entry := domain.CashTransaction{
				Date:          at,
				Type:          domain.Income,
				Category:      domain.CategoryClientPayment,
				Description:   fmt.Sprintf("Payment for order #%s", order.OrderNumber),
				Amount:        amount,
				Method:        method,
				RelatedEntity: order.ClientName,
				CreatedBy:     operator,
			}
			if err := tx.CashRepo.SaveCashTransaction(ctx, &entry); err != nil {
				return err
			}
		}

		result = order
		return s.Audit(ctx, tx, domain.NewSystemLog(
			domain.LogTypeOrder, domain.ActionStatus, orderTarget(orderID),
			fmt.Sprintf("Order #%s issued, paid %s %s", order.OrderNumber, amount.StringFixed(2), method),
			statusChange{prev}, statusChange{domain.StatusIssued}, operator,
		))
	})
	if err != nil {
		if !isClientError(err) {
			s.LogError(ctx, err, "Failed to complete order", slog.Int64("order_id", orderID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Order issued",
		slog.Int64("order_id", orderID),
		slog.String("amount", amount.String()),
		slog.String("method", string(method)))
	return result, nil
}
