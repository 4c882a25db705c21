package pgsql

import (
	"context"

	"github.com/SscSPs/repair_shop_app/internal/apperrors"
	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	portsrepo "github.com/SscSPs/repair_shop_app/internal/core/ports/repositories"
	"github.com/SscSPs/repair_shop_app/internal/models"
	"github.com/SscSPs/repair_shop_app/internal/utils/mapping"
)

type PgxWorkerRepository struct {
	BaseRepository
}

var _ portsrepo.WorkerRepositoryFacade = (*PgxWorkerRepository)(nil)

const workerColumns = `id, name, percentage, daily_rate, active, created_at`

func scanWorker(row rowScanner) (models.Worker, error) {
	var m models.Worker
	err := row.Scan(&m.WorkerID, &m.Name, &m.Percentage, &m.DailyRate, &m.Active, &m.CreatedAt)
	return m, err
}

func (r *PgxWorkerRepository) FindWorkerByID(ctx context.Context, workerID int64) (*domain.Worker, error) {
	m, err := scanWorker(r.db.QueryRow(ctx, `SELECT `+workerColumns+` FROM workers WHERE id = $1`, workerID))
	if err != nil {
		return nil, storeError("find worker", err)
	}
	w := mapping.ToDomainWorker(m)
	return &w, nil
}

func (r *PgxWorkerRepository) ListWorkers(ctx context.Context, includeInactive bool) ([]domain.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers`
	if !includeInactive {
		query += ` WHERE active`
	}
	query += ` ORDER BY name, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, storeError("list workers", err)
	}
	defer rows.Close()

	var workers []domain.Worker
	for rows.Next() {
		m, err := scanWorker(rows)
		if err != nil {
			return nil, storeError("scan worker row", err)
		}
		workers = append(workers, mapping.ToDomainWorker(m))
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate worker rows", err)
	}
	return workers, nil
}

func (r *PgxWorkerRepository) SaveWorker(ctx context.Context, worker *domain.Worker) error {
	m := mapping.ToModelWorker(*worker)
	query := `
		INSERT INTO workers (name, percentage, daily_rate, active, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at;
	`
	if err := r.db.QueryRow(ctx, query, m.Name, m.Percentage, m.DailyRate, m.Active).
		Scan(&worker.WorkerID, &worker.CreatedAt); err != nil {
		return storeError("insert worker", err)
	}
	return nil
}

func (r *PgxWorkerRepository) UpdateWorker(ctx context.Context, worker domain.Worker) error {
	m := mapping.ToModelWorker(worker)
	tag, err := r.db.Exec(ctx,
		`UPDATE workers SET name = $2, percentage = $3, daily_rate = $4, active = $5 WHERE id = $1`,
		m.WorkerID, m.Name, m.Percentage, m.DailyRate, m.Active)
	if err != nil {
		return storeError("update worker", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxWorkerRepository) DeactivateWorker(ctx context.Context, workerID int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE workers SET active = FALSE WHERE id = $1`, workerID)
	if err != nil {
		return storeError("deactivate worker", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
