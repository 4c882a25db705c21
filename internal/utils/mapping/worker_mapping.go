package mapping

import (
	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	"github.com/SscSPs/repair_shop_app/internal/models"
)

// ToModelWorker converts a domain Worker to a model Worker
func ToModelWorker(d domain.Worker) models.Worker {
	return models.Worker{
		WorkerID:   d.WorkerID,
		Name:       d.Name,
		Percentage: d.Percentage,
		DailyRate:  d.DailyRate,
		Active:     d.Active,
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainWorker converts a model Worker to a domain Worker
func ToDomainWorker(m models.Worker) domain.Worker {
	return domain.Worker{
		WorkerID:   m.WorkerID,
		Name:       m.Name,
		Percentage: m.Percentage,
		DailyRate:  m.DailyRate,
		Active:     m.Active,
		CreatedAt:  m.CreatedAt,
	}
}

// ToDomainSalaryLog converts a model SalaryLog to a domain SalaryLog
func ToDomainSalaryLog(m models.SalaryLog) domain.SalaryLog {
	d := domain.SalaryLog{
		LogID:    m.LogID,
		OrderID:  m.OrderID,
		WorkerID: m.WorkerID,
		Amount:   m.Amount,
		Date:     m.Date,
		IsPaid:   m.IsPaid,
		PaidAt:   m.PaidAt,
	}
	if m.OrderNumber != nil {
		d.OrderNumber = *m.OrderNumber
	}
	if m.WorkerName != nil {
		d.WorkerName = *m.WorkerName
	}
	return d
}
