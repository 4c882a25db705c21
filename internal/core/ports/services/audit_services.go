package services

import (
	"context"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
)

// AuditSvcFacade reads the system log.
type AuditSvcFacade interface {
	ListSystemLogs(ctx context.Context, filter domain.SystemLogFilter, limit int, nextToken *string) ([]domain.SystemLog, *string, error)
}
