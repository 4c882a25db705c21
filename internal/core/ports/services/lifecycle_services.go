package services

import (
	"context"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	"github.com/SscSPs/repair_shop_app/internal/dto"
	"github.com/shopspring/decimal"
)

// LifecycleSvcFacade drives orders through Accepted, Ready and Issued.
type LifecycleSvcFacade interface {
	// ChangeStatus moves an order to req.Status. Ready accrues commissions and
	// Issued records the final payment, each atomically with the status change.
	ChangeStatus(ctx context.Context, orderID int64, req dto.ChangeStatusRequest, operator string) (*domain.Order, error)

	// CompleteOrder issues an order and records amount paid through method.
	CompleteOrder(ctx context.Context, orderID int64, amount decimal.Decimal, method domain.PaymentMethod, operator string) (*domain.Order, error)
}
