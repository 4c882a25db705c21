package dto

import (
	"time"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertWorkerRequest creates a worker, or updates one when ID is set.
type UpsertWorkerRequest struct {
	ID         *int64          `json:"id"`
	Name       string          `json:"name" binding:"required"`
	Percentage decimal.Decimal `json:"percentage" binding:"gte=0,lte=100"`
	DailyRate  decimal.Decimal `json:"dailyRate" binding:"gte=0"`
	Active     *bool           `json:"active"`
}

// ListWorkersParams defines query parameters for listing workers.
type ListWorkersParams struct {
	IncludeInactive bool `form:"includeInactive"`
}

// WorkerResponse defines the data returned for a worker.
type WorkerResponse struct {
	WorkerID   int64           `json:"id"`
	Name       string          `json:"name"`
	Percentage decimal.Decimal `json:"percentage"`
	DailyRate  decimal.Decimal `json:"dailyRate"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ToWorkerResponse converts a domain.Worker to WorkerResponse DTO
func ToWorkerResponse(w *domain.Worker) WorkerResponse {
	return WorkerResponse{
		WorkerID:   w.WorkerID,
		Name:       w.Name,
		Percentage: w.Percentage,
		DailyRate:  w.DailyRate,
		Active:     w.Active,
		CreatedAt:  w.CreatedAt,
	}
}

// ToListWorkerResponse converts a slice of domain.Worker to WorkerResponse DTOs
func ToListWorkerResponse(workers []domain.Worker) []WorkerResponse {
	res := make([]WorkerResponse, len(workers))
	for i := range workers {
		res[i] = ToWorkerResponse(&workers[i])
	}
	return res
}
