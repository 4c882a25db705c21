package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/repair_shop_app/internal/apperrors"
	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	portsrepo "github.com/SscSPs/repair_shop_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/repair_shop_app/internal/core/ports/services"
	"github.com/SscSPs/repair_shop_app/internal/utils/pagination"
)

type auditService struct {
	BaseService
	repos portsrepo.RepositoryProvider
}

// NewAuditService creates a new AuditSvcFacade.
func NewAuditService(repos portsrepo.RepositoryProvider) portssvc.AuditSvcFacade {
	return &auditService{repos: repos}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// ListSystemLogs implements portssvc.AuditSvcFacade.
func (s *auditService) ListSystemLogs(ctx context.Context, filter domain.SystemLogFilter, limit int, nextToken *string) ([]domain.SystemLog, *string, error) {
	if nextToken != nil && *nextToken != "" {
		if _, _, err := pagination.DecodeCursor(*nextToken); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	} else {
		nextToken = nil
	}
	logs, next, err := s.repos.SystemLogRepo.ListSystemLogs(ctx, filter, pagination.ClampLimit(limit), nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list system logs")
		return nil, nil, err
	}
	return logs, next, nil
}
