package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Worker is a technician or staff member (a "master") paid a commission
// percentage per order and optionally a fixed daily rate.
type Worker struct {
	WorkerID   int64           `json:"id"`
	Name       string          `json:"name"`
	Percentage decimal.Decimal `json:"percentage"`
	DailyRate  decimal.Decimal `json:"dailyRate"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"createdAt"`
}

var hundred = decimal.NewFromInt(100)

// ResolveWorkerID picks the worker a line item belongs to: the explicit id
// when set, otherwise an active worker whose name matches case-insensitively.
// It returns nil when nothing resolves.
func ResolveWorkerID(item ServiceLineItem, workers []Worker) *int64 {
	if item.WorkerID != nil {
		id := *item.WorkerID
		return &id
	}
	name := strings.TrimSpace(item.WorkerName)
	if name == "" {
		return nil
	}
	for _, w := range workers {
		if w.Active && strings.EqualFold(strings.TrimSpace(w.Name), name) {
			id := w.WorkerID
			return &id
		}
	}
	return nil
}

// CommissionPortion is the share of an order's price attributed to one worker.
type CommissionPortion struct {
	WorkerID   int64
	Portion    decimal.Decimal
	Percentage decimal.Decimal
	Amount     decimal.Decimal
}

// CalculateCommissions groups line items by resolved worker and applies each
// worker's percentage. Items whose worker cannot be resolved, or resolves to
// an id missing from workers, contribute nothing. Output is ordered by worker id.
func CalculateCommissions(items []ServiceLineItem, workers []Worker) []CommissionPortion {
	byID := make(map[int64]Worker, len(workers))
	for _, w := range workers {
		byID[w.WorkerID] = w
	}

	portions := make(map[int64]decimal.Decimal)
	for _, item := range items {
		id := ResolveWorkerID(item, workers)
		if id == nil {
			continue
		}
		if _, ok := byID[*id]; !ok {
			continue
		}
		portions[*id] = portions[*id].Add(item.Price)
	}

	out := make([]CommissionPortion, 0, len(portions))
	for id, portion := range portions {
		pct := byID[id].Percentage
		out = append(out, CommissionPortion{
			WorkerID:   id,
			Portion:    portion,
			Percentage: pct,
			Amount:     portion.Mul(pct).Div(hundred).Round(2),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WorkerID < out[j].WorkerID })
	return out
}
