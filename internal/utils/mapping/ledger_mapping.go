package mapping

import (
	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	"github.com/SscSPs/repair_shop_app/internal/models"
)

// ToModelCashTransaction converts a domain CashTransaction to a model CashTransaction
func ToModelCashTransaction(d domain.CashTransaction) models.CashTransaction {
	return models.CashTransaction{
		TransactionID: d.TransactionID,
		Date:          d.Date,
		Type:          string(d.Type),
		Category:      d.Category,
		Description:   d.Description,
		Amount:        d.Amount,
		Method:        string(d.Method),
		RelatedEntity: d.RelatedEntity,
		CreatedBy:     d.CreatedBy,
	}
}

// ToDomainCashTransaction converts a model CashTransaction to a domain CashTransaction
func ToDomainCashTransaction(m models.CashTransaction) domain.CashTransaction {
	return domain.CashTransaction{
		TransactionID: m.TransactionID,
		Date:          m.Date,
		Type:          domain.TransactionType(m.Type),
		Category:      m.Category,
		Description:   m.Description,
		Amount:        m.Amount,
		Method:        domain.PaymentMethod(m.Method),
		RelatedEntity: m.RelatedEntity,
		CreatedBy:     m.CreatedBy,
	}
}

// ToModelSystemLog converts a domain SystemLog to a model SystemLog.
// Payloads that are not valid JSON are stored as JSON null.
func ToModelSystemLog(d domain.SystemLog) models.SystemLog {
	return models.SystemLog{
		LogID:     d.LogID,
		Type:      string(d.Type),
		Action:    string(d.Action),
		TargetID:  d.TargetID,
		Details:   d.Details,
		OldData:   jsonbPayload(d.OldData),
		NewData:   jsonbPayload(d.NewData),
		Operator:  d.Operator,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainSystemLog converts a model SystemLog to a domain SystemLog
func ToDomainSystemLog(m models.SystemLog) domain.SystemLog {
	return domain.SystemLog{
		LogID:     m.LogID,
		Type:      domain.LogType(m.Type),
		Action:    domain.LogAction(m.Action),
		TargetID:  m.TargetID,
		Details:   m.Details,
		OldData:   string(m.OldData),
		NewData:   string(m.NewData),
		Operator:  m.Operator,
		CreatedAt: m.CreatedAt,
	}
}

func jsonbPayload(raw string) []byte {
	if payload, ok := domain.DecodePayload(raw); ok {
		return payload
	}
	return []byte("null")
}

// ToDomainFixedCost converts a model FixedCost to a domain FixedCost
func ToDomainFixedCost(m models.FixedCost) domain.FixedCost {
	return domain.FixedCost{
		FixedCostID: m.FixedCostID,
		Name:        m.Name,
		Amount:      m.Amount,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainMonthConfig converts a model MonthConfig to a domain MonthConfig
func ToDomainMonthConfig(m models.MonthConfig) domain.MonthConfig {
	return domain.MonthConfig{
		Year:        m.Year,
		Month:       m.Month,
		WorkingDays: m.WorkingDays,
	}
}
