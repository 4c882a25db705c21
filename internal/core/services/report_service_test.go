package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/repair_shop_app/internal/apperrors"
	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	portsrepo "github.com/SscSPs/repair_shop_app/internal/core/ports/repositories"
	"github.com/SscSPs/repair_shop_app/internal/core/services"
	"github.com/SscSPs/repair_shop_app/internal/dto"
)

// MockMonthConfigRepository is a mock type for portsrepo.MonthConfigRepositoryFacade
type MockMonthConfigRepository struct {
	mock.Mock
}

func (m *MockMonthConfigRepository) FindMonthConfig(ctx context.Context, year, month int) (*domain.MonthConfig, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthConfig), args.Error(1)
}

func (m *MockMonthConfigRepository) UpsertMonthConfig(ctx context.Context, cfg domain.MonthConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

var _ portsrepo.MonthConfigRepositoryFacade = (*MockMonthConfigRepository)(nil)

func TestGetMonthConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("falls back to default", func(t *testing.T) {
		repo := new(MockMonthConfigRepository)
		repo.On("FindMonthConfig", ctx, 2026, 2).Return(nil, apperrors.ErrNotFound).Once()
		svc := services.NewReportService(portsrepo.RepositoryProvider{MonthConfigRepo: repo}, 22)

		cfg, err := svc.GetMonthConfig(ctx, 2026, 2)
		require.NoError(t, err)
		assert.Equal(t, 22, cfg.WorkingDays)
		assert.True(t, cfg.IsDefault)
		repo.AssertExpectations(t)
	})

	t.Run("stored value", func(t *testing.T) {
		repo := new(MockMonthConfigRepository)
		repo.On("FindMonthConfig", ctx, 2026, 3).Return(&domain.MonthConfig{Year: 2026, Month: 3, WorkingDays: 19}, nil).Once()
		svc := services.NewReportService(portsrepo.RepositoryProvider{MonthConfigRepo: repo}, 22)

		cfg, err := svc.GetMonthConfig(ctx, 2026, 3)
		require.NoError(t, err)
		assert.Equal(t, 19, cfg.WorkingDays)
		assert.False(t, cfg.IsDefault)
	})

	t.Run("store error", func(t *testing.T) {
		repo := new(MockMonthConfigRepository)
		dbErr := errors.New("connection reset")
		repo.On("FindMonthConfig", ctx, 2026, 4).Return(nil, dbErr).Once()
		svc := services.NewReportService(portsrepo.RepositoryProvider{MonthConfigRepo: repo}, 22)

		_, err := svc.GetMonthConfig(ctx, 2026, 4)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("bad month", func(t *testing.T) {
		repo := new(MockMonthConfigRepository)
		svc := services.NewReportService(portsrepo.RepositoryProvider{MonthConfigRepo: repo}, 22)
		_, err := svc.GetMonthConfig(ctx, 2026, 13)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		repo.AssertNotCalled(t, "FindMonthConfig", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSetMonthConfig(t *testing.T) {
	store := newMemStore()
	svc := services.NewReportService(store.provider(), 22)
	ctx := context.Background()

	cfg, err := svc.SetMonthConfig(ctx, dto.MonthConfigRequest{Year: 2026, Month: 5, WorkingDays: 20}, "admin")
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.WorkingDays)

	got, err := svc.GetMonthConfig(ctx, 2026, 5)
	require.NoError(t, err)
	assert.Equal(t, 20, got.WorkingDays)

	logs := store.logsOf(domain.LogTypeMonthConfig, domain.ActionEdit)
	require.Len(t, logs, 1)
	assert.Equal(t, "2026-05", logs[0].TargetID)

	_, err = svc.SetMonthConfig(ctx, dto.MonthConfigRequest{Year: 2026, Month: 5, WorkingDays: 40}, "admin")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestFixedCosts(t *testing.T) {
	store := newMemStore()
	svc := services.NewReportService(store.provider(), 22)
	ctx := context.Background()

	rent, err := svc.CreateFixedCost(ctx, dto.CreateFixedCostRequest{Name: "Rent", Amount: dec("30000")}, "admin")
	require.NoError(t, err)
	_, err = svc.CreateFixedCost(ctx, dto.CreateFixedCostRequest{Name: "", Amount: dec("1")}, "admin")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	costs, err := svc.ListFixedCosts(ctx)
	require.NoError(t, err)
	assert.Len(t, costs, 1)

	require.NoError(t, svc.DeleteFixedCost(ctx, rent.FixedCostID, "admin"))
	assert.ErrorIs(t, svc.DeleteFixedCost(ctx, rent.FixedCostID, "admin"), apperrors.ErrNotFound)
	assert.Len(t, store.logsOf(domain.LogTypeFixedCost, domain.ActionDelete), 1)
}

func TestGetCashflowReport(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()
	repos := store.provider()

	ivan := store.addWorker("Ivan", 50, true)
	workers := services.NewWorkerService(repos)
	_, err := workers.UpsertWorker(ctx, dto.UpsertWorkerRequest{Name: "Cleaner", DailyRate: dec("100")}, "admin")
	require.NoError(t, err)

	report := services.NewReportService(repos, 20)
	_, err = report.CreateFixedCost(ctx, dto.CreateFixedCostRequest{Name: "Rent", Amount: dec("500")}, "admin")
	require.NoError(t, err)

	orders := services.NewOrderService(repos, 3)
	lifecycle := services.NewLifecycleService(repos, services.NewCommissionService(repos))
	req := basicOrder()
	req.MasterID = &ivan.WorkerID
	req.PrepaymentCash = dec("200")
	order, err := orders.CreateOrder(ctx, req, "admin")
	require.NoError(t, err)
	_, err = lifecycle.ChangeStatus(ctx, order.OrderID, dto.ChangeStatusRequest{Status: domain.StatusReady}, "admin")
	require.NoError(t, err)
	_, err = lifecycle.CompleteOrder(ctx, order.OrderID, dec("800"), domain.MethodTerminal, "admin")
	require.NoError(t, err)

	seedLedger(t, store, expense("70", domain.MethodCash))

	now := time.Now().UTC()
	got, err := report.GetCashflowReport(ctx, now.Year(), int(now.Month()))
	require.NoError(t, err)

	assert.Equal(t, 20, got.WorkingDays)
	assert.True(t, got.Revenue.Equal(dec("1000")), "revenue %s", got.Revenue)
	assert.True(t, got.Commissions.Equal(dec("500")), "commissions %s", got.Commissions)
	assert.True(t, got.StaffPay.Equal(dec("2000")), "staff pay %s", got.StaffPay)
	assert.True(t, got.FixedCosts.Equal(dec("500")))
	assert.True(t, got.OtherExpenses.Equal(dec("70")))
	assert.True(t, got.NetProfit.Equal(dec("-2070")), "net %s", got.NetProfit)
}
