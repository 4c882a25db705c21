package dto

import (
	"time"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCashTransactionRequest defines a manual ledger entry. Date defaults to now.
type CreateCashTransactionRequest struct {
	Date          *time.Time             `json:"date"`
	Type          domain.TransactionType `json:"type" binding:"required,oneof=Income Expense"`
	Category      string                 `json:"category" binding:"required"`
	Description   string                 `json:"description"`
	Amount        decimal.Decimal        `json:"amount" binding:"gt=0"`
	Method        domain.PaymentMethod   `json:"method" binding:"required,paymethod"`
	RelatedEntity string                 `json:"relatedEntity"`
}

// ReconcileRequest carries the physically counted balances.
type ReconcileRequest struct {
	ActualCash     *decimal.Decimal `json:"actualCash" binding:"required"`
	ActualTerminal *decimal.Decimal `json:"actualTerminal" binding:"required"`
}

// ListCashParams defines query parameters for the cash overview.
type ListCashParams struct {
	Limit int `form:"limit,default=100" binding:"gte=1,lte=1000"`
}

// CashTransactionResponse defines the data returned for a ledger entry.
type CashTransactionResponse struct {
	TransactionID int64                  `json:"id"`
	Date          time.Time              `json:"date"`
	Type          domain.TransactionType `json:"type"`
	Category      string                 `json:"category"`
	Description   string                 `json:"description"`
	Amount        decimal.Decimal        `json:"amount"`
	Method        domain.PaymentMethod   `json:"method"`
	RelatedEntity string                 `json:"relatedEntity"`
	CreatedBy     string                 `json:"createdBy"`
}

// CashOverviewResponse is the cash screen payload.
type CashOverviewResponse struct {
	CashBalance     decimal.Decimal           `json:"cashBalance"`
	TerminalBalance decimal.Decimal           `json:"terminalBalance"`
	TotalBalance    decimal.Decimal           `json:"totalBalance"`
	Transactions    []CashTransactionResponse `json:"transactions"`
}

// ToCashTransactionResponse converts a domain.CashTransaction to its DTO.
func ToCashTransactionResponse(t *domain.CashTransaction) CashTransactionResponse {
	return CashTransactionResponse{
		TransactionID: t.TransactionID,
		Date:          t.Date,
		Type:          t.Type,
		Category:      t.Category,
		Description:   t.Description,
		Amount:        t.Amount,
		Method:        t.Method,
		RelatedEntity: t.RelatedEntity,
		CreatedBy:     t.CreatedBy,
	}
}

// ToCashOverviewResponse converts a domain.CashOverview to its DTO.
func ToCashOverviewResponse(o *domain.CashOverview) CashOverviewResponse {
	res := CashOverviewResponse{
		CashBalance:     o.Balances.Cash,
		TerminalBalance: o.Balances.Terminal,
		TotalBalance:    o.Balances.Total,
		Transactions:    make([]CashTransactionResponse, len(o.Transactions)),
	}
	for i := range o.Transactions {
		res.Transactions[i] = ToCashTransactionResponse(&o.Transactions[i])
	}
	return res
}
