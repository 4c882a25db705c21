package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FixedCost is a recurring monthly expense (rent, utilities).
type FixedCost struct {
	FixedCostID int64           `json:"id"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// MonthConfig holds the number of working days of a calendar month.
type MonthConfig struct {
	Year        int  `json:"year"`
	Month       int  `json:"month"`
	WorkingDays int  `json:"workingDays"`
	IsDefault   bool `json:"isDefault"`
}

// MonthRange returns [start of month, start of next month) in UTC.
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// CashflowReport is the derived monthly profit picture.
type CashflowReport struct {
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	WorkingDays   int             `json:"workingDays"`
	Revenue       decimal.Decimal `json:"revenue"`
	Commissions   decimal.Decimal `json:"commissions"`
	StaffPay      decimal.Decimal `json:"staffPay"`
	FixedCosts    decimal.Decimal `json:"fixedCosts"`
	OtherExpenses decimal.Decimal `json:"otherExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
}

// BuildCashflowReport combines the monthly aggregates. Revenue is client
// payment and prepayment income; other expenses are ledger expenses except
// salary payouts (already counted as commissions) and inventory corrections.
func BuildCashflowReport(cfg MonthConfig, totals []CategoryTotal, commissions decimal.Decimal, workers []Worker, fixed []FixedCost) CashflowReport {
	r := CashflowReport{
		Year:          cfg.Year,
		Month:         cfg.Month,
		WorkingDays:   cfg.WorkingDays,
		Revenue:       decimal.Zero,
		Commissions:   commissions,
		StaffPay:      decimal.Zero,
		FixedCosts:    decimal.Zero,
		OtherExpenses: decimal.Zero,
	}
	for _, t := range totals {
		switch {
		case t.Type == Income && (t.Category == CategoryClientPayment || t.Category == CategoryClientPrepayment):
			r.Revenue = r.Revenue.Add(t.Total)
		case t.Type == Expense && t.Category != CategorySalary && t.Category != CategoryInventory:
			r.OtherExpenses = r.OtherExpenses.Add(t.Total)
		}
	}
	days := decimal.NewFromInt(int64(cfg.WorkingDays))
	for _, w := range workers {
		if w.Active && w.DailyRate.IsPositive() {
			r.StaffPay = r.StaffPay.Add(w.DailyRate.Mul(days))
		}
	}
	for _, f := range fixed {
		r.FixedCosts = r.FixedCosts.Add(f.Amount)
	}
	r.NetProfit = r.Revenue.Sub(r.Commissions).Sub(r.StaffPay).Sub(r.FixedCosts).Sub(r.OtherExpenses)
	return r
}
