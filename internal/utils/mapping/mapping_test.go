package mapping_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	"github.com/SscSPs/repair_shop_app/internal/models"
	"github.com/SscSPs/repair_shop_app/internal/utils/mapping"
)

func TestOrderMapping_ServiceDetailsNullability(t *testing.T) {
	o := domain.Order{OrderID: 1, OrderNumber: "1", Status: domain.StatusReady, Price: decimal.NewFromInt(10)}
	m := mapping.ToModelOrder(o)
	assert.Nil(t, m.ServiceDetails, "empty details are stored as NULL")
	assert.Equal(t, "Ready", m.Status)

	raw := `[{"service":"Hem","price":"10"}]`
	m.ServiceDetails = &raw
	back := mapping.ToDomainOrder(m)
	assert.Equal(t, raw, back.ServiceDetailsJSON)
	assert.Equal(t, domain.StatusReady, back.Status)
}

func TestSalaryLogMapping_JoinedNames(t *testing.T) {
	num, name := "42", "Ivan"
	d := mapping.ToDomainSalaryLog(models.SalaryLog{LogID: 3, OrderNumber: &num, WorkerName: &name})
	assert.Equal(t, "42", d.OrderNumber)
	assert.Equal(t, "Ivan", d.WorkerName)

	d = mapping.ToDomainSalaryLog(models.SalaryLog{LogID: 4})
	assert.Empty(t, d.OrderNumber)
}

func TestSystemLogMapping_InvalidPayloadBecomesNull(t *testing.T) {
	entry := domain.SystemLog{Type: domain.LogTypeOrder, OldData: "not json", NewData: `{"a":1}`, CreatedAt: time.Now()}
	m := mapping.ToModelSystemLog(entry)
	assert.Equal(t, "null", string(m.OldData))
	assert.JSONEq(t, `{"a":1}`, string(m.NewData))
}
