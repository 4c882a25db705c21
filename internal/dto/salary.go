package dto

import (
	"time"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListSalaryLogsParams defines query parameters for listing salary logs.
type ListSalaryLogsParams struct {
	WorkerID   *int64 `form:"workerId"`
	UnpaidOnly bool   `form:"unpaidOnly"`
}

// PayoutRequest pays out a worker's unpaid commissions. When LogIDs is empty
// every unpaid log of the worker is paid.
type PayoutRequest struct {
	WorkerID int64                `json:"workerId" binding:"required,gt=0"`
	LogIDs   []int64              `json:"logIds"`
	Method   domain.PaymentMethod `json:"method" binding:"required,paymethod"`
}

// SalaryLogResponse defines the data returned for a salary log.
type SalaryLogResponse struct {
	LogID       int64           `json:"id"`
	OrderID     int64           `json:"orderId"`
	OrderNumber string          `json:"orderNumber"`
	WorkerID    int64           `json:"workerId"`
	WorkerName  string          `json:"workerName"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	IsPaid      bool            `json:"isPaid"`
	PaidAt      *time.Time      `json:"paidAt"`
}

// PayoutResponse defines the data returned after a payout.
type PayoutResponse struct {
	WorkerID    int64                   `json:"workerId"`
	WorkerName  string                  `json:"workerName"`
	Amount      decimal.Decimal         `json:"amount"`
	Logs        []SalaryLogResponse     `json:"logs"`
	Transaction CashTransactionResponse `json:"transaction"`
}

// ToSalaryLogResponse converts a domain.SalaryLog to its DTO.
func ToSalaryLogResponse(l *domain.SalaryLog) SalaryLogResponse {
	return SalaryLogResponse{
		LogID:       l.LogID,
		OrderID:     l.OrderID,
		OrderNumber: l.OrderNumber,
		WorkerID:    l.WorkerID,
		WorkerName:  l.WorkerName,
		Amount:      l.Amount,
		Date:        l.Date,
		IsPaid:      l.IsPaid,
		PaidAt:      l.PaidAt,
	}
}

// ToListSalaryLogResponse converts a slice of domain.SalaryLog to DTOs.
func ToListSalaryLogResponse(logs []domain.SalaryLog) []SalaryLogResponse {
	res := make([]SalaryLogResponse, len(logs))
	for i := range logs {
		res[i] = ToSalaryLogResponse(&logs[i])
	}
	return res
}

// ToPayoutResponse converts a domain.Payout to its DTO.
func ToPayoutResponse(p *domain.Payout) PayoutResponse {
	return PayoutResponse{
		WorkerID:    p.WorkerID,
		WorkerName:  p.WorkerName,
		Amount:      p.Amount,
		Logs:        ToListSalaryLogResponse(p.Logs),
		Transaction: ToCashTransactionResponse(&p.Transaction),
	}
}
