package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashTransaction is the row shape of the append-only cash_transactions table.
type CashTransaction struct {
	TransactionID int64           `db:"id"`
	Date          time.Time       `db:"date"`
	Type          string          `db:"type"`
	Category      string          `db:"category"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	Method        string          `db:"method"`
	RelatedEntity string          `db:"related_entity"`
	CreatedBy     string          `db:"created_by"`
}

// SystemLog is the row shape of the system_logs table. Payloads are JSONB.
type SystemLog struct {
	LogID     int64     `db:"id"`
	Type      string    `db:"type"`
	Action    string    `db:"action"`
	TargetID  string    `db:"target_id"`
	Details   string    `db:"details"`
	OldData   []byte    `db:"old_data"`
	NewData   []byte    `db:"new_data"`
	Operator  string    `db:"operator"`
	CreatedAt time.Time `db:"created_at"`
}

// FixedCost is the row shape of the fixed_costs table.
type FixedCost struct {
	FixedCostID int64           `db:"id"`
	Name        string          `db:"name"`
	Amount      decimal.Decimal `db:"amount"`
	CreatedAt   time.Time       `db:"created_at"`
}

// MonthConfig is the row shape of the month_configs table.
type MonthConfig struct {
	Year        int `db:"year"`
	Month       int `db:"month"`
	WorkingDays int `db:"working_days"`
}
