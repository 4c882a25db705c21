package pgsql

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	portsrepo "github.com/SscSPs/repair_shop_app/internal/core/ports/repositories"
	"github.com/SscSPs/repair_shop_app/internal/models"
	"github.com/SscSPs/repair_shop_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PgxCommissionRepository struct {
	BaseRepository
}

var _ portsrepo.CommissionRepositoryFacade = (*PgxCommissionRepository)(nil)

const salaryLogReturning = `RETURNING id, order_id, worker_id, amount, date, is_paid, paid_at`

func scanSalaryLog(row rowScanner, m *models.SalaryLog) error {
	return row.Scan(&m.LogID, &m.OrderID, &m.WorkerID, &m.Amount, &m.Date, &m.IsPaid, &m.PaidAt)
}

func (r *PgxCommissionRepository) CountCommissionsByOrderID(ctx context.Context, orderID int64) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM salary_logs WHERE order_id = $1`, orderID).Scan(&n); err != nil {
		return 0, storeError("count commissions", err)
	}
	return n, nil
}

func (r *PgxCommissionRepository) ListSalaryLogs(ctx context.Context, filter domain.SalaryLogFilter) ([]domain.SalaryLog, error) {
	var conditions []string
	var args []interface{}
	if filter.WorkerID != nil {
		args = append(args, *filter.WorkerID)
		conditions = append(conditions, "s.worker_id = $"+strconv.Itoa(len(args)))
	}
	if filter.UnpaidOnly {
		conditions = append(conditions, "NOT s.is_paid")
	}

	query := `
		SELECT s.id, s.order_id, s.worker_id, s.amount, s.date, s.is_paid, s.paid_at,
		       o.order_number, w.name
		FROM salary_logs s
		LEFT JOIN orders o ON o.id = s.order_id
		LEFT JOIN workers w ON w.id = s.worker_id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY s.date DESC, s.id DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError("list salary logs", err)
	}
	defer rows.Close()

	var logs []domain.SalaryLog
	for rows.Next() {
		var m models.SalaryLog
		if err := rows.Scan(&m.LogID, &m.OrderID, &m.WorkerID, &m.Amount, &m.Date, &m.IsPaid, &m.PaidAt,
			&m.OrderNumber, &m.WorkerName); err != nil {
			return nil, storeError("scan salary log", err)
		}
		logs = append(logs, mapping.ToDomainSalaryLog(m))
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate salary logs", err)
	}
	return logs, nil
}

func (r *PgxCommissionRepository) SumCommissionsInRange(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM salary_logs WHERE date >= $1 AND date < $2`, from, to).Scan(&total)
	if err != nil {
		return decimal.Zero, storeError("sum commissions", err)
	}
	return total, nil
}

// SaveSalaryLogs inserts the logs in one batch. The (order_id, worker_id)
// unique key makes a repeated accrual insert nothing.
func (r *PgxCommissionRepository) SaveSalaryLogs(ctx context.Context, logs []domain.SalaryLog) ([]domain.SalaryLog, error) {
	if len(logs) == 0 {
		return nil, nil
	}
	query := `
		INSERT INTO salary_logs (order_id, worker_id, amount, date, is_paid)
		VALUES ($1, $2, $3, $4, FALSE)
		ON CONFLICT (order_id, worker_id) DO NOTHING
	` + salaryLogReturning

	batch := &pgx.Batch{}
	for _, l := range logs {
		batch.Queue(query, l.OrderID, l.WorkerID, l.Amount, l.Date)
	}
	br := r.db.SendBatch(ctx, batch)
	defer br.Close()

	var saved []domain.SalaryLog
	for range logs {
		var m models.SalaryLog
		err := scanSalaryLog(br.QueryRow(), &m)
		if errors.Is(err, pgx.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, storeError("insert salary log", err)
		}
		saved = append(saved, mapping.ToDomainSalaryLog(m))
	}
	return saved, nil
}

func (r *PgxCommissionRepository) MarkCommissionsPaid(ctx context.Context, workerID int64, logIDs []int64, paidAt time.Time) ([]domain.SalaryLog, error) {
	if logIDs == nil {
		logIDs = []int64{}
	}
	query := `
		UPDATE salary_logs
		SET is_paid = TRUE, paid_at = $2
		WHERE worker_id = $1 AND NOT is_paid
		  AND (cardinality($3::bigint[]) = 0 OR id = ANY($3::bigint[]))
	` + salaryLogReturning

	rows, err := r.db.Query(ctx, query, workerID, paidAt, logIDs)
	if err != nil {
		return nil, storeError("mark commissions paid", err)
	}
	defer rows.Close()

	var paid []domain.SalaryLog
	for rows.Next() {
		var m models.SalaryLog
		if err := scanSalaryLog(rows, &m); err != nil {
			return nil, storeError("scan paid salary log", err)
		}
		paid = append(paid, mapping.ToDomainSalaryLog(m))
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate paid salary logs", err)
	}
	return paid, nil
}
