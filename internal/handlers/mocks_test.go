package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	portsrepo "github.com/SscSPs/repair_shop_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/repair_shop_app/internal/core/ports/services"
	"github.com/SscSPs/repair_shop_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock Services ---

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}
func (m *MockOrderService) ListClientOrders(ctx context.Context, clientID int64) ([]domain.Order, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}
func (m *MockOrderService) ListClients(ctx context.Context, search string) ([]domain.Client, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockOrderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest, operator string) (*domain.Order, error) {
	args := m.Called(ctx, req, operator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) EditOrder(ctx context.Context, orderID int64, req dto.EditOrderRequest, operator string) (*domain.Order, error) {
	args := m.Called(ctx, orderID, req, operator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) DeleteOrder(ctx context.Context, orderID int64, operator string) error {
	args := m.Called(ctx, orderID, operator)
	return args.Error(0)
}

type MockLifecycleService struct {
	mock.Mock
}

func (m *MockLifecycleService) ChangeStatus(ctx context.Context, orderID int64, req dto.ChangeStatusRequest, operator string) (*domain.Order, error) {
	args := m.Called(ctx, orderID, req, operator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockLifecycleService) CompleteOrder(ctx context.Context, orderID int64, amount decimal.Decimal, method domain.PaymentMethod, operator string) (*domain.Order, error) {
	args := m.Called(ctx, orderID, amount, method, operator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

type MockCommissionService struct {
	mock.Mock
}

func (m *MockCommissionService) AccrueCommissions(ctx context.Context, repos portsrepo.RepositoryProvider, orderID int64) ([]domain.SalaryLog, error) {
	args := m.Called(ctx, repos, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalaryLog), args.Error(1)
}
func (m *MockCommissionService) ListSalaryLogs(ctx context.Context, filter domain.SalaryLogFilter) ([]domain.SalaryLog, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalaryLog), args.Error(1)
}
func (m *MockCommissionService) PayoutWorker(ctx context.Context, req dto.PayoutRequest, operator string) (*domain.Payout, error) {
	args := m.Called(ctx, req, operator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payout), args.Error(1)
}

type MockCashService struct {
	mock.Mock
}

func (m *MockCashService) RecordTransaction(ctx context.Context, req dto.CreateCashTransactionRequest, operator string) (*domain.CashTransaction, error) {
	args := m.Called(ctx, req, operator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashTransaction), args.Error(1)
}
func (m *MockCashService) GetOverview(ctx context.Context, limit int) (*domain.CashOverview, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashOverview), args.Error(1)
}
func (m *MockCashService) Reconcile(ctx context.Context, req dto.ReconcileRequest, operator string) (*domain.ReconciliationResult, error) {
	args := m.Called(ctx, req, operator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationResult), args.Error(1)
}

type MockWorkerService struct {
	mock.Mock
}

func (m *MockWorkerService) ListWorkers(ctx context.Context, includeInactive bool) ([]domain.Worker, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Worker), args.Error(1)
}
func (m *MockWorkerService) GetWorkerByID(ctx context.Context, workerID int64) (*domain.Worker, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}
func (m *MockWorkerService) UpsertWorker(ctx context.Context, req dto.UpsertWorkerRequest, operator string) (*domain.Worker, error) {
	args := m.Called(ctx, req, operator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}
func (m *MockWorkerService) DeactivateWorker(ctx context.Context, workerID int64, operator string) error {
	args := m.Called(ctx, workerID, operator)
	return args.Error(0)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) ListSystemLogs(ctx context.Context, filter domain.SystemLogFilter, limit int, nextToken *string) ([]domain.SystemLog, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.SystemLog), next, args.Error(2)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) ListFixedCosts(ctx context.Context) ([]domain.FixedCost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FixedCost), args.Error(1)
}
func (m *MockReportService) CreateFixedCost(ctx context.Context, req dto.CreateFixedCostRequest, operator string) (*domain.FixedCost, error) {
	args := m.Called(ctx, req, operator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FixedCost), args.Error(1)
}
func (m *MockReportService) DeleteFixedCost(ctx context.Context, id int64, operator string) error {
	args := m.Called(ctx, id, operator)
	return args.Error(0)
}
func (m *MockReportService) GetMonthConfig(ctx context.Context, year, month int) (*domain.MonthConfig, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthConfig), args.Error(1)
}
func (m *MockReportService) SetMonthConfig(ctx context.Context, req dto.MonthConfigRequest, operator string) (*domain.MonthConfig, error) {
	args := m.Called(ctx, req, operator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthConfig), args.Error(1)
}
func (m *MockReportService) GetCashflowReport(ctx context.Context, year, month int) (*domain.CashflowReport, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashflowReport), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, password string) (string, time.Time, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

// Ensure mocks implement the interfaces
var (
	_ portssvc.OrderSvcFacade      = (*MockOrderService)(nil)
	_ portssvc.LifecycleSvcFacade  = (*MockLifecycleService)(nil)
	_ portssvc.CommissionSvcFacade = (*MockCommissionService)(nil)
	_ portssvc.CashSvcFacade       = (*MockCashService)(nil)
	_ portssvc.WorkerSvcFacade     = (*MockWorkerService)(nil)
	_ portssvc.AuditSvcFacade      = (*MockAuditService)(nil)
	_ portssvc.ReportSvcFacade     = (*MockReportService)(nil)
	_ portssvc.AuthSvcFacade       = (*MockAuthService)(nil)
)
