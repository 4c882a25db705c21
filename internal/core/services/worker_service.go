package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/SscSPs/repair_shop_app/internal/apperrors"
	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	portsrepo "github.com/SscSPs/repair_shop_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/repair_shop_app/internal/core/ports/services"
	"github.com/SscSPs/repair_shop_app/internal/dto"
	"github.com/shopspring/decimal"
)

type workerService struct {
	BaseService
	repos portsrepo.RepositoryProvider
}

// NewWorkerService creates a new WorkerSvcFacade.
func NewWorkerService(repos portsrepo.RepositoryProvider) portssvc.WorkerSvcFacade {
	return &workerService{repos: repos}
}

var _ portssvc.WorkerSvcFacade = (*workerService)(nil)

var maxPercentage = decimal.NewFromInt(100)

func (s *workerService) ListWorkers(ctx context.Context, includeInactive bool) ([]domain.Worker, error) {
	return s.repos.WorkerRepo.ListWorkers(ctx, includeInactive)
}

func (s *workerService) GetWorkerByID(ctx context.Context, workerID int64) (*domain.Worker, error) {
	return s.repos.WorkerRepo.FindWorkerByID(ctx, workerID)
}

// UpsertWorker creates a worker, or updates the one named by req.ID.
// Percentage changes never touch commissions that were already accrued.
func (s *workerService) UpsertWorker(ctx context.Context, req dto.UpsertWorkerRequest, operator string) (*domain.Worker, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: worker name is required", apperrors.ErrValidation)
	}
	if req.Percentage.IsNegative() || req.Percentage.GreaterThan(maxPercentage) {
		return nil, fmt.Errorf("%w: percentage must be between 0 and 100", apperrors.ErrValidation)
	}
	if req.DailyRate.IsNegative() {
		return nil, fmt.Errorf("%w: daily rate must not be negative", apperrors.ErrValidation)
	}

	var saved *domain.Worker
	err := s.repos.TxRunner.RunInTx(ctx, func(ctx context.Context, tx portsrepo.RepositoryProvider) error {
		if req.ID == nil {
			w := domain.Worker{Name: name, Percentage: req.Percentage, DailyRate: req.DailyRate, Active: true}
			if req.Active != nil {
				w.Active = *req.Active
			}
			if err := tx.WorkerRepo.SaveWorker(ctx, &w); err != nil {
				return err
			}
			saved = &w
			return s.Audit(ctx, tx, domain.NewSystemLog(
				domain.LogTypeWorker, domain.ActionCreate, strconv.FormatInt(w.WorkerID, 10),
				fmt.Sprintf("Worker %s created", w.Name), nil, w, operator,
			))
		}

		current, err := tx.WorkerRepo.FindWorkerByID(ctx, *req.ID)
		if err != nil {
			return err
		}
		updated := *current
		updated.Name = name
		updated.Percentage = req.Percentage
		updated.DailyRate = req.DailyRate
		if req.Active != nil {
			updated.Active = *req.Active
		}
		if err := tx.WorkerRepo.UpdateWorker(ctx, updated); err != nil {
			return err
		}
		saved = &updated
		return s.Audit(ctx, tx, domain.NewSystemLog(
			domain.LogTypeWorker, domain.ActionEdit, strconv.FormatInt(updated.WorkerID, 10),
			fmt.Sprintf("Worker %s updated", updated.Name), current, updated, operator,
		))
	})
	if err != nil {
		if !isClientError(err) {
			s.LogError(ctx, err, "Failed to save worker")
		}
		return nil, err
	}
	s.LogInfo(ctx, "Worker saved", slog.Int64("worker_id", saved.WorkerID))
	return saved, nil
}

// DeactivateWorker soft-deletes a worker.
func (s *workerService) DeactivateWorker(ctx context.Context, workerID int64, operator string) error {
	return s.repos.TxRunner.RunInTx(ctx, func(ctx context.Context, tx portsrepo.RepositoryProvider) error {
		current, err := tx.WorkerRepo.FindWorkerByID(ctx, workerID)
		if err != nil {
			return err
		}
		if err := tx.WorkerRepo.DeactivateWorker(ctx, workerID); err != nil {
			return err
		}
		return s.Audit(ctx, tx, domain.NewSystemLog(
			domain.LogTypeWorker, domain.ActionDelete, strconv.FormatInt(workerID, 10),
			fmt.Sprintf("Worker %s deactivated", current.Name), current, nil, operator,
		))
	})
}
