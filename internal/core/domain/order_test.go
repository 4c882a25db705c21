package domain_test

import (
	"testing"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextOrderNumber(t *testing.T) {
	tests := []struct {
		name        string
		existing    []string
		want        string
		wantSkipped []string
	}{
		{name: "empty store starts at one", existing: nil, want: "1"},
		{name: "max plus one", existing: []string{"3", "10", "7"}, want: "11"},
		{name: "zero padding is cosmetic", existing: []string{"0009", "0012"}, want: "13"},
		{
			name:        "non numeric values are skipped",
			existing:    []string{"15", "TEST-1", "A7"},
			want:        "16",
			wantSkipped: []string{"TEST-1", "A7"},
		},
		{
			name:        "only non numeric does not crash",
			existing:    []string{"legacy"},
			want:        "1",
			wantSkipped: []string{"legacy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, skipped := domain.NextOrderNumber(tt.existing)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSkipped, skipped)
		})
	}
}

func TestOrder_SetLineItemsDerivesSummary(t *testing.T) {
	one := int64(1)
	o := domain.Order{}
	err := o.SetLineItems([]domain.ServiceLineItem{
		{Service: "Heel repair", WorkerID: &one, Price: decimal.NewFromInt(1000)},
		{Service: "Polish", WorkerName: "Anna", Price: decimal.NewFromInt(250)},
	})
	require.NoError(t, err)

	assert.Equal(t, "Heel repair, Polish", o.Services)
	assert.True(t, o.Price.Equal(decimal.NewFromInt(1250)))

	items, err := o.LineItems()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), *items[0].WorkerID)
	assert.Nil(t, items[1].WorkerID)
	assert.Equal(t, "Anna", items[1].WorkerName)
}

func TestOrder_LineItemsToleratesEmptyAndRejectsGarbage(t *testing.T) {
	items, err := domain.Order{}.LineItems()
	assert.NoError(t, err)
	assert.Empty(t, items)

	items, err = domain.Order{ServiceDetailsJSON: "null"}.LineItems()
	assert.NoError(t, err)
	assert.Empty(t, items)

	_, err = domain.Order{ServiceDetailsJSON: "{not json"}.LineItems()
	assert.Error(t, err)
}

func TestOrder_LineItemsAcceptsStringPrices(t *testing.T) {
	o := domain.Order{ServiceDetailsJSON: `[{"service":"A","workerId":1,"price":"1000"},{"service":"B","workerId":2,"price":2000}]`}
	items, err := o.LineItems()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[0].Price.Equal(decimal.NewFromInt(1000)))
	assert.True(t, items[1].Price.Equal(decimal.NewFromInt(2000)))
}

func TestOrder_Remaining(t *testing.T) {
	o := domain.Order{
		Price:              decimal.NewFromInt(1000),
		PrepaymentCash:     decimal.NewFromInt(300),
		PrepaymentTerminal: decimal.NewFromInt(200),
	}
	assert.True(t, o.Remaining().Equal(decimal.NewFromInt(500)))

	o.PaymentFullTerminal = decimal.NewFromInt(500)
	assert.True(t, o.Remaining().IsZero())
	assert.True(t, o.PaidTotal().Equal(o.Price))
}

func TestOrderView(t *testing.T) {
	assert.Equal(t, domain.ViewActive, domain.ParseOrderView(""))
	assert.Equal(t, domain.ViewActive, domain.ParseOrderView("bogus"))
	assert.Equal(t, domain.ViewArchive, domain.ParseOrderView("Archive"))
	assert.Equal(t, domain.ViewAll, domain.ParseOrderView("all"))

	assert.False(t, domain.ViewActive.Matches(domain.StatusIssued))
	assert.True(t, domain.ViewActive.Matches(domain.StatusReady))
	assert.True(t, domain.ViewArchive.Matches(domain.StatusIssued))
	assert.False(t, domain.ViewArchive.Matches(domain.StatusAccepted))
	assert.True(t, domain.ViewAll.Matches(domain.StatusIssued))
}

func TestOrder_MatchesSearch(t *testing.T) {
	o := domain.Order{OrderNumber: "0042", ClientName: "Maria Ivanova", ClientPhone: "+79001234567"}
	assert.True(t, o.MatchesSearch(""))
	assert.True(t, o.MatchesSearch("42"))
	assert.True(t, o.MatchesSearch("ivanova"))
	assert.True(t, o.MatchesSearch("9001"))
	assert.False(t, o.MatchesSearch("petrov"))
}

func TestNormalizePhoneAndEnrich(t *testing.T) {
	assert.Equal(t, "+79001234567", domain.NormalizePhone(" +7 (900) 123-45-67 "))

	o := domain.Order{ClientPhone: "+7900"}
	o.EnrichFromClient(&domain.Client{Name: "Oleg", Phone: "+7111"})
	assert.Equal(t, "Oleg", o.ClientName)
	assert.Equal(t, "+7900", o.ClientPhone, "denormalized value wins when present")
}
