package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Worker is the row shape of the workers table.
type Worker struct {
	WorkerID   int64           `db:"id"`
	Name       string          `db:"name"`
	Percentage decimal.Decimal `db:"percentage"`
	DailyRate  decimal.Decimal `db:"daily_rate"`
	Active     bool            `db:"active"`
	CreatedAt  time.Time       `db:"created_at"`
}

// SalaryLog is the row shape of the salary_logs table, plus joined names.
type SalaryLog struct {
	LogID    int64           `db:"id"`
	OrderID  int64           `db:"order_id"`
	WorkerID int64           `db:"worker_id"`
	Amount   decimal.Decimal `db:"amount"`
	Date     time.Time       `db:"date"`
	IsPaid   bool            `db:"is_paid"`
	PaidAt   *time.Time      `db:"paid_at"`

	OrderNumber *string `db:"order_number"` // From join, nullable
	WorkerName  *string `db:"worker_name"`  // From join, nullable
}
