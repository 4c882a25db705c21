package services

import (
	"context"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	"github.com/SscSPs/repair_shop_app/internal/dto"
)

// WorkerSvcFacade manages workers (masters).
type WorkerSvcFacade interface {
	ListWorkers(ctx context.Context, includeInactive bool) ([]domain.Worker, error)
	GetWorkerByID(ctx context.Context, workerID int64) (*domain.Worker, error)
	UpsertWorker(ctx context.Context, req dto.UpsertWorkerRequest, operator string) (*domain.Worker, error)
	DeactivateWorker(ctx context.Context, workerID int64, operator string) error
}
