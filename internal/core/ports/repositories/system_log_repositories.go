package repositories

import (
	"context"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
)

// SystemLogReader defines read operations for the system log
type SystemLogReader interface {
	// ListSystemLogs retrieves entries newest first using token-based pagination.
	// It returns the entries, a token for the next page, and an error.
	ListSystemLogs(ctx context.Context, filter domain.SystemLogFilter, limit int, nextToken *string) ([]domain.SystemLog, *string, error)
}

// SystemLogWriter defines the append operation for the system log
type SystemLogWriter interface {
	SaveSystemLog(ctx context.Context, entry *domain.SystemLog) error
}

// SystemLogRepositoryFacade combines all system log repository interfaces
type SystemLogRepositoryFacade interface {
	SystemLogReader
	SystemLogWriter
}
