package domain_test

import (
	"testing"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func testWorkers() []domain.Worker {
	return []domain.Worker{
		{WorkerID: 1, Name: "Ivan", Percentage: decimal.NewFromInt(50), Active: true},
		{WorkerID: 2, Name: "Anna", Percentage: decimal.NewFromInt(25), Active: true},
		{WorkerID: 3, Name: "Boris", Percentage: decimal.NewFromInt(40), Active: false},
	}
}

func TestResolveWorkerID(t *testing.T) {
	workers := testWorkers()

	tests := []struct {
		name string
		item domain.ServiceLineItem
		want *int64
	}{
		{name: "explicit id wins", item: domain.ServiceLineItem{WorkerID: int64Ptr(2), WorkerName: "Ivan"}, want: int64Ptr(2)},
		{name: "case insensitive name", item: domain.ServiceLineItem{WorkerName: "  aNNa "}, want: int64Ptr(2)},
		{name: "inactive worker not matched by name", item: domain.ServiceLineItem{WorkerName: "Boris"}},
		{name: "substring is not a match", item: domain.ServiceLineItem{WorkerName: "Iva"}},
		{name: "nothing to resolve", item: domain.ServiceLineItem{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ResolveWorkerID(tt.item, workers)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestCalculateCommissions_TwoWorkers(t *testing.T) {
	items := []domain.ServiceLineItem{
		{Service: "A", WorkerID: int64Ptr(1), Price: decimal.NewFromInt(1000)},
		{Service: "B", WorkerID: int64Ptr(2), Price: decimal.NewFromInt(2000)},
	}

	got := domain.CalculateCommissions(items, testWorkers())

	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].WorkerID)
	assert.True(t, got[0].Amount.Equal(decimal.NewFromInt(500)), "got %s", got[0].Amount)
	assert.Equal(t, int64(2), got[1].WorkerID)
	assert.True(t, got[1].Amount.Equal(decimal.NewFromInt(500)), "got %s", got[1].Amount)
}

func TestCalculateCommissions_GroupsAndSkipsUnresolved(t *testing.T) {
	items := []domain.ServiceLineItem{
		{Service: "A", WorkerID: int64Ptr(1), Price: decimal.NewFromInt(100)},
		{Service: "B", WorkerName: "ivan", Price: decimal.NewFromInt(300)},
		{Service: "C", WorkerName: "Nobody", Price: decimal.NewFromInt(999)},
		{Service: "D", WorkerID: int64Ptr(77), Price: decimal.NewFromInt(999)},
	}

	got := domain.CalculateCommissions(items, testWorkers())

	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].WorkerID)
	assert.True(t, got[0].Portion.Equal(decimal.NewFromInt(400)))
	assert.True(t, got[0].Amount.Equal(decimal.NewFromInt(200)))
}

func TestCalculateCommissions_RoundsToCents(t *testing.T) {
	w := []domain.Worker{{WorkerID: 1, Name: "X", Percentage: decimal.RequireFromString("33.3333"), Active: true}}
	got := domain.CalculateCommissions([]domain.ServiceLineItem{{WorkerID: int64Ptr(1), Price: decimal.NewFromInt(100)}}, w)
	require.Len(t, got, 1)
	assert.Equal(t, "33.33", got[0].Amount.StringFixed(2))
}
