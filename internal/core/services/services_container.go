package services

import (
	portsrepo "github.com/SscSPs/repair_shop_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/repair_shop_app/internal/core/ports/services"
	"github.com/SscSPs/repair_shop_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Lifecycle depends on accrual, so commissions come first.
	container.Commission = NewCommissionService(repos)
	container.Lifecycle = NewLifecycleService(repos, container.Commission)

	container.Order = NewOrderService(repos, cfg.OrderNumberMaxRetries)
	container.Cash = NewCashService(repos)
	container.Worker = NewWorkerService(repos)
	container.Audit = NewAuditService(repos)
	container.Report = NewReportService(repos, cfg.DefaultWorkingDays)
	container.Auth = NewAuthService(cfg)

	return container
}
