package repositories

import (
	"context"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
)

// WorkerReader defines read operations for worker data
type WorkerReader interface {
	FindWorkerByID(ctx context.Context, workerID int64) (*domain.Worker, error)

	// ListWorkers returns workers ordered by name. Inactive workers are only
	// included when includeInactive is set.
	ListWorkers(ctx context.Context, includeInactive bool) ([]domain.Worker, error)
}

// WorkerWriter defines write operations for worker data
type WorkerWriter interface {
	SaveWorker(ctx context.Context, worker *domain.Worker) error
	UpdateWorker(ctx context.Context, worker domain.Worker) error

	// DeactivateWorker soft-deletes a worker. Historical logs keep pointing at it.
	DeactivateWorker(ctx context.Context, workerID int64) error
}

// WorkerRepositoryFacade combines all worker-related repository interfaces
type WorkerRepositoryFacade interface {
	WorkerReader
	WorkerWriter
}
