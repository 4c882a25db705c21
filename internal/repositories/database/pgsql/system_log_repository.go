package pgsql

import (
	"context"
	"strconv"
	"strings"

	"github.com/SscSPs/repair_shop_app/internal/apperrors"
	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	portsrepo "github.com/SscSPs/repair_shop_app/internal/core/ports/repositories"
	"github.com/SscSPs/repair_shop_app/internal/models"
	"github.com/SscSPs/repair_shop_app/internal/utils/mapping"
	"github.com/SscSPs/repair_shop_app/internal/utils/pagination"
)

type PgxSystemLogRepository struct {
	BaseRepository
}

var _ portsrepo.SystemLogRepositoryFacade = (*PgxSystemLogRepository)(nil)

func (r *PgxSystemLogRepository) SaveSystemLog(ctx context.Context, entry *domain.SystemLog) error {
	m := mapping.ToModelSystemLog(*entry)
	query := `
		INSERT INTO system_logs (type, action, target_id, details, old_data, new_data, operator, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		m.Type, m.Action, m.TargetID, m.Details, m.OldData, m.NewData, m.Operator, m.CreatedAt,
	).Scan(&entry.LogID)
	if err != nil {
		return storeError("append system log", err)
	}
	return nil
}

// ListSystemLogs pages newest first on (created_at, id).
func (r *PgxSystemLogRepository) ListSystemLogs(ctx context.Context, filter domain.SystemLogFilter, limit int, nextToken *string) ([]domain.SystemLog, *string, error) {
	limit = pagination.ClampLimit(limit)
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	var conditions []string
	var args []interface{}
	if filter.Type != "" {
		args = append(args, string(filter.Type))
		conditions = append(conditions, "type = $"+strconv.Itoa(len(args)))
	}
	if filter.TargetID != "" {
		args = append(args, filter.TargetID)
		conditions = append(conditions, "target_id = $"+strconv.Itoa(len(args)))
	}
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		args = append(args, lastCreatedAt, lastID)
		conditions = append(conditions, "(created_at, id) < ($"+strconv.Itoa(len(args)-1)+", $"+strconv.Itoa(len(args))+")")
	}

	query := `SELECT id, type, action, target_id, details, old_data, new_data, operator, created_at FROM system_logs`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, fetchLimit)
	query += " ORDER BY created_at DESC, id DESC LIMIT $" + strconv.Itoa(len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, storeError("list system logs", err)
	}
	defer rows.Close()

	ms := make([]models.SystemLog, 0, fetchLimit)
	for rows.Next() {
		var m models.SystemLog
		if err := rows.Scan(&m.LogID, &m.Type, &m.Action, &m.TargetID, &m.Details,
			&m.OldData, &m.NewData, &m.Operator, &m.CreatedAt); err != nil {
			return nil, nil, storeError("scan system log", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, storeError("iterate system logs", err)
	}

	var nextTokenVal *string
	if len(ms) > limit {
		last := ms[limit-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.LogID)
		nextTokenVal = &token
		ms = ms[:limit]
	}

	logs := make([]domain.SystemLog, len(ms))
	for i, m := range ms {
		logs[i] = mapping.ToDomainSystemLog(m)
	}
	return logs, nextTokenVal, nil
}
