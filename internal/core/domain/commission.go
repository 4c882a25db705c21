package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryLog is one commission accrual owed to a worker for an order.
type SalaryLog struct {
	LogID    int64           `json:"id"`
	OrderID  int64           `json:"orderId"`
	WorkerID int64           `json:"workerId"`
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"`
	IsPaid   bool            `json:"isPaid"`
	PaidAt   *time.Time      `json:"paidAt"`

	// Read-side enrichment, not persisted on the log row.
	OrderNumber string `json:"orderNumber,omitempty"`
	WorkerName  string `json:"workerName,omitempty"`
}

// SalaryLogFilter narrows a salary log listing.
type SalaryLogFilter struct {
	WorkerID   *int64
	UnpaidOnly bool
}

// Payout is the result of paying a worker's outstanding commissions.
type Payout struct {
	WorkerID    int64           `json:"workerId"`
	WorkerName  string          `json:"workerName"`
	Amount      decimal.Decimal `json:"amount"`
	Logs        []SalaryLog     `json:"logs"`
	Transaction CashTransaction `json:"transaction"`
}

// SumSalaryLogs totals the amounts of logs.
func SumSalaryLogs(logs []SalaryLog) decimal.Decimal {
	total := decimal.Zero
	for _, l := range logs {
		total = total.Add(l.Amount)
	}
	return total
}
