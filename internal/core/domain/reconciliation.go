package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Adjustment is the outcome of reconciling a single payment method.
type Adjustment struct {
	Method   PaymentMethod    `json:"method"`
	Actual   decimal.Decimal  `json:"actual"`
	Expected decimal.Decimal  `json:"expected"`
	Diff     decimal.Decimal  `json:"diff"`
	Applied  bool             `json:"applied"`
	Entry    *CashTransaction `json:"entry,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// ReconciliationResult reports both methods independently.
type ReconciliationResult struct {
	Cash          Adjustment `json:"cash"`
	Terminal      Adjustment `json:"terminal"`
	NoDiscrepancy bool       `json:"noDiscrepancy"`
}

// BuildAdjustment returns the correcting entry for a counted amount against
// the ledger balance, or nil when they agree.
func BuildAdjustment(method PaymentMethod, actual, expected decimal.Decimal, at time.Time, operator string) (decimal.Decimal, *CashTransaction) {
	diff := actual.Sub(expected)
	if diff.IsZero() {
		return diff, nil
	}
	txType := Income
	if diff.IsNegative() {
		txType = Expense
	}
	sign := ""
	if diff.IsPositive() {
		sign = "+"
	}
	return diff, &CashTransaction{
		Date:        at,
		Type:        txType,
		Category:    CategoryInventory,
		Description: fmt.Sprintf("Inventory %s: counted %s, diff %s%s", method, actual.StringFixed(2), sign, diff.StringFixed(2)),
		Amount:      diff.Abs(),
		Method:      method,
		CreatedBy:   operator,
	}
}
