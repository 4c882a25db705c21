package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBuildCashflowReport(t *testing.T) {
	cfg := domain.MonthConfig{Year: 2026, Month: 3, WorkingDays: 20}
	totals := []domain.CategoryTotal{
		{Type: domain.Income, Category: domain.CategoryClientPayment, Total: decimal.NewFromInt(10000)},
		{Type: domain.Income, Category: domain.CategoryClientPrepayment, Total: decimal.NewFromInt(2000)},
		{Type: domain.Income, Category: domain.CategoryInventory, Total: decimal.NewFromInt(50)},
		{Type: domain.Expense, Category: "Supplies", Total: decimal.NewFromInt(700)},
		{Type: domain.Expense, Category: domain.CategorySalary, Total: decimal.NewFromInt(3000)},
		{Type: domain.Expense, Category: domain.CategoryInventory, Total: decimal.NewFromInt(10)},
	}
	workers := []domain.Worker{
		{WorkerID: 1, DailyRate: decimal.NewFromInt(100), Active: true},
		{WorkerID: 2, DailyRate: decimal.NewFromInt(100), Active: false},
		{WorkerID: 3, Active: true},
	}
	fixed := []domain.FixedCost{{Amount: decimal.NewFromInt(1500)}, {Amount: decimal.NewFromInt(500)}}

	r := domain.BuildCashflowReport(cfg, totals, decimal.NewFromInt(4000), workers, fixed)

	assert.True(t, r.Revenue.Equal(decimal.NewFromInt(12000)))
	assert.True(t, r.OtherExpenses.Equal(decimal.NewFromInt(700)))
	assert.True(t, r.StaffPay.Equal(decimal.NewFromInt(2000)))
	assert.True(t, r.FixedCosts.Equal(decimal.NewFromInt(2000)))
	assert.True(t, r.NetProfit.Equal(decimal.NewFromInt(12000-4000-2000-2000-700)), "got %s", r.NetProfit)
}

func TestMonthRange(t *testing.T) {
	start, end := domain.MonthRange(2026, 12)
	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestSystemLogPayloads(t *testing.T) {
	entry := domain.NewSystemLog(domain.LogTypeOrder, domain.ActionEdit, "5", "edit", map[string]int{"a": 1}, nil, "admin")
	assert.JSONEq(t, `{"a":1}`, entry.OldData)
	assert.Equal(t, "null", entry.NewData)

	raw, ok := domain.DecodePayload(entry.OldData)
	assert.True(t, ok)
	assert.Equal(t, json.RawMessage(`{"a":1}`), raw)

	_, ok = domain.DecodePayload("{broken")
	assert.False(t, ok)
	_, ok = domain.DecodePayload("")
	assert.False(t, ok)

	// Channels cannot be marshalled; the entry still gets written.
	bad := domain.NewSystemLog(domain.LogTypeOrder, domain.ActionEdit, "5", "edit", make(chan int), nil, "admin")
	assert.Equal(t, "null", bad.OldData)
}
