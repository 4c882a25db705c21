package pgsql

import (
	"context"

	"github.com/SscSPs/repair_shop_app/internal/apperrors"
	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	portsrepo "github.com/SscSPs/repair_shop_app/internal/core/ports/repositories"
	"github.com/SscSPs/repair_shop_app/internal/models"
	"github.com/SscSPs/repair_shop_app/internal/utils/mapping"
)

type PgxFixedCostRepository struct {
	BaseRepository
}

var _ portsrepo.FixedCostRepositoryFacade = (*PgxFixedCostRepository)(nil)

func (r *PgxFixedCostRepository) FindFixedCostByID(ctx context.Context, id int64) (*domain.FixedCost, error) {
	var m models.FixedCost
	err := r.db.QueryRow(ctx, `SELECT id, name, amount, created_at FROM fixed_costs WHERE id = $1`, id).
		Scan(&m.FixedCostID, &m.Name, &m.Amount, &m.CreatedAt)
	if err != nil {
		return nil, storeError("find fixed cost", err)
	}
	c := mapping.ToDomainFixedCost(m)
	return &c, nil
}

func (r *PgxFixedCostRepository) ListFixedCosts(ctx context.Context) ([]domain.FixedCost, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, amount, created_at FROM fixed_costs ORDER BY id`)
	if err != nil {
		return nil, storeError("list fixed costs", err)
	}
	defer rows.Close()

	var costs []domain.FixedCost
	for rows.Next() {
		var m models.FixedCost
		if err := rows.Scan(&m.FixedCostID, &m.Name, &m.Amount, &m.CreatedAt); err != nil {
			return nil, storeError("scan fixed cost", err)
		}
		costs = append(costs, mapping.ToDomainFixedCost(m))
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate fixed costs", err)
	}
	return costs, nil
}

func (r *PgxFixedCostRepository) SaveFixedCost(ctx context.Context, cost *domain.FixedCost) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO fixed_costs (name, amount, created_at) VALUES ($1, $2, NOW()) RETURNING id, created_at`,
		cost.Name, cost.Amount).Scan(&cost.FixedCostID, &cost.CreatedAt)
	if err != nil {
		return storeError("insert fixed cost", err)
	}
	return nil
}

func (r *PgxFixedCostRepository) DeleteFixedCost(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM fixed_costs WHERE id = $1`, id)
	if err != nil {
		return storeError("delete fixed cost", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type PgxMonthConfigRepository struct {
	BaseRepository
}

var _ portsrepo.MonthConfigRepositoryFacade = (*PgxMonthConfigRepository)(nil)

func (r *PgxMonthConfigRepository) FindMonthConfig(ctx context.Context, year, month int) (*domain.MonthConfig, error) {
	var m models.MonthConfig
	err := r.db.QueryRow(ctx,
		`SELECT year, month, working_days FROM month_configs WHERE year = $1 AND month = $2`, year, month).
		Scan(&m.Year, &m.Month, &m.WorkingDays)
	if err != nil {
		return nil, storeError("find month config", err)
	}
	c := mapping.ToDomainMonthConfig(m)
	return &c, nil
}

func (r *PgxMonthConfigRepository) UpsertMonthConfig(ctx context.Context, cfg domain.MonthConfig) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO month_configs (year, month, working_days)
		VALUES ($1, $2, $3)
		ON CONFLICT (year, month) DO UPDATE SET working_days = EXCLUDED.working_days;
	`, cfg.Year, cfg.Month, cfg.WorkingDays)
	if err != nil {
		return storeError("upsert month config", err)
	}
	return nil
}
