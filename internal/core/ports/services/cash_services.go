package services

import (
	"context"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	"github.com/SscSPs/repair_shop_app/internal/dto"
)

// CashSvcFacade exposes the append-only cash ledger.
type CashSvcFacade interface {
	RecordTransaction(ctx context.Context, req dto.CreateCashTransactionRequest, operator string) (*domain.CashTransaction, error)

	// GetOverview returns balances over the full ledger and the latest limit entries.
	GetOverview(ctx context.Context, limit int) (*domain.CashOverview, error)

	// Reconcile books Inventory corrections so ledger balances match the
	// counted amounts. Each method is committed independently.
	Reconcile(ctx context.Context, req dto.ReconcileRequest, operator string) (*domain.ReconciliationResult, error)
}
