package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a cash entry brings money in or out.
type TransactionType string

const (
	Income  TransactionType = "Income"
	Expense TransactionType = "Expense"
)

// PaymentMethod is the channel money moved through.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "Cash"
	MethodTerminal PaymentMethod = "Terminal"
)

// IsValid reports whether m is Cash or Terminal.
func (m PaymentMethod) IsValid() bool {
	return m == MethodCash || m == MethodTerminal
}

// Ledger categories written by the engine itself.
const (
	CategoryClientPayment    = "Client Payment"
	CategoryClientPrepayment = "Client Prepayment"
	CategoryInventory        = "Inventory"
	CategorySalary           = "Salary"
)

// CashTransaction is an immutable ledger entry. Amount is always positive;
// the sign comes from Type.
type CashTransaction struct {
	TransactionID int64           `json:"id"`
	Date          time.Time       `json:"date"`
	Type          TransactionType `json:"type"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Method        PaymentMethod   `json:"method"`
	RelatedEntity string          `json:"relatedEntity"`
	CreatedBy     string          `json:"createdBy"`
}

// Validate checks the entry before it is appended.
func (t CashTransaction) Validate() error {
	if t.Type != Income && t.Type != Expense {
		return fmt.Errorf("transaction type must be Income or Expense, got %q", t.Type)
	}
	if !t.Method.IsValid() {
		return fmt.Errorf("transaction method must be Cash or Terminal, got %q", t.Method)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive, got %s", t.Amount.String())
	}
	if strings.TrimSpace(t.Category) == "" {
		return fmt.Errorf("transaction category is required")
	}
	return nil
}

// SignedAmount is +Amount for income and -Amount for expenses.
func (t CashTransaction) SignedAmount() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Balances are ledger-derived totals per payment method. They are never stored.
type Balances struct {
	Cash     decimal.Decimal `json:"cash"`
	Terminal decimal.Decimal `json:"terminal"`
	Total    decimal.Decimal `json:"total"`
}

// NewBalances builds Balances from per-method totals.
func NewBalances(cash, terminal decimal.Decimal) Balances {
	return Balances{Cash: cash, Terminal: terminal, Total: cash.Add(terminal)}
}

// For returns the balance of a single method.
func (b Balances) For(m PaymentMethod) decimal.Decimal {
	if m == MethodTerminal {
		return b.Terminal
	}
	return b.Cash
}

// ComputeBalances folds a full transaction list into balances.
func ComputeBalances(txns []CashTransaction) Balances {
	cash, terminal := decimal.Zero, decimal.Zero
	for _, t := range txns {
		switch t.Method {
		case MethodCash:
			cash = cash.Add(t.SignedAmount())
		case MethodTerminal:
			terminal = terminal.Add(t.SignedAmount())
		}
	}
	return NewBalances(cash, terminal)
}

// CategoryTotal is the sum of entries sharing a type and category.
type CategoryTotal struct {
	Type     TransactionType
	Category string
	Total    decimal.Decimal
}

// CashOverview is what the cash screen shows: true balances and a recent window.
type CashOverview struct {
	Balances     Balances
	Transactions []CashTransaction
}
