package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/repair_shop_app/internal/apperrors"
	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	"github.com/SscSPs/repair_shop_app/internal/core/services"
	"github.com/SscSPs/repair_shop_app/internal/dto"
	"github.com/SscSPs/repair_shop_app/internal/platform/config"
	"github.com/SscSPs/repair_shop_app/internal/utils"
)

func TestUpsertWorker(t *testing.T) {
	store := newMemStore()
	svc := services.NewWorkerService(store.provider())
	ctx := context.Background()

	created, err := svc.UpsertWorker(ctx, dto.UpsertWorkerRequest{Name: " Ivan ", Percentage: dec("40")}, "admin")
	require.NoError(t, err)
	assert.Equal(t, "Ivan", created.Name)
	assert.True(t, created.Active)

	inactive := false
	updated, err := svc.UpsertWorker(ctx, dto.UpsertWorkerRequest{ID: &created.WorkerID, Name: "Ivan", Percentage: dec("45"), Active: &inactive}, "admin")
	require.NoError(t, err)
	assert.True(t, updated.Percentage.Equal(dec("45")))
	assert.False(t, updated.Active)

	active, err := svc.ListWorkers(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, active)
	all, err := svc.ListWorkers(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	tests := []struct {
		name string
		req  dto.UpsertWorkerRequest
		err  error
	}{
		{"empty name", dto.UpsertWorkerRequest{Name: " "}, apperrors.ErrValidation},
		{"percentage over 100", dto.UpsertWorkerRequest{Name: "X", Percentage: dec("100.5")}, apperrors.ErrValidation},
		{"negative rate", dto.UpsertWorkerRequest{Name: "X", DailyRate: dec("-1")}, apperrors.ErrValidation},
		{"unknown id", dto.UpsertWorkerRequest{ID: func() *int64 { v := int64(999); return &v }(), Name: "X"}, apperrors.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpsertWorker(ctx, tt.req, "admin")
			assert.ErrorIs(t, err, tt.err)
		})
	}

	assert.Len(t, store.logsOf(domain.LogTypeWorker, domain.ActionCreate), 1)
	assert.Len(t, store.logsOf(domain.LogTypeWorker, domain.ActionEdit), 1)
}

func TestDeactivateWorker_KeepsAccruedLogs(t *testing.T) {
	store := newMemStore()
	repos := store.provider()
	ctx := context.Background()
	ivan := store.addWorker("Ivan", 50, true)

	req := basicOrder()
	req.MasterID = &ivan.WorkerID
	order, err := services.NewOrderService(repos, 3).CreateOrder(ctx, req, "admin")
	require.NoError(t, err)
	_, err = services.NewLifecycleService(repos, services.NewCommissionService(repos)).
		ChangeStatus(ctx, order.OrderID, dto.ChangeStatusRequest{Status: domain.StatusReady}, "admin")
	require.NoError(t, err)

	workers := services.NewWorkerService(repos)
	require.NoError(t, workers.DeactivateWorker(ctx, ivan.WorkerID, "admin"))
	assert.ErrorIs(t, workers.DeactivateWorker(ctx, 999, "admin"), apperrors.ErrNotFound)

	logs, err := services.NewCommissionService(repos).ListSalaryLogs(ctx, domain.SalaryLogFilter{WorkerID: &ivan.WorkerID})
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestListSystemLogs(t *testing.T) {
	store := newMemStore()
	repos := store.provider()
	ctx := context.Background()
	workers := services.NewWorkerService(repos)
	for _, name := range []string{"A", "B", "C"} {
		_, err := workers.UpsertWorker(ctx, dto.UpsertWorkerRequest{Name: name}, "admin")
		require.NoError(t, err)
	}

	audit := services.NewAuditService(repos)
	page, next, err := audit.ListSystemLogs(ctx, domain.SystemLogFilter{Type: domain.LogTypeWorker}, 2, nil)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.NotNil(t, next)
	assert.Equal(t, "Worker C created", page[0].Details)

	rest, next, err := audit.ListSystemLogs(ctx, domain.SystemLogFilter{Type: domain.LogTypeWorker}, 2, next)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Nil(t, next)
	assert.Equal(t, "Worker A created", rest[0].Details)

	bad := "%%%"
	_, _, err = audit.ListSystemLogs(ctx, domain.SystemLogFilter{}, 10, &bad)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiryDuration: time.Hour, JWTIssuer: "test", AdminPasswordHash: hash}
	svc := services.NewAuthService(cfg)
	ctx := context.Background()

	token, expiresAt, err := svc.Login(ctx, "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, expiresAt.IsZero())

	claims, err := utils.ParseAndValidateJWT(token, cfg.JWTSecret)
	require.NoError(t, err)
	sub, err := claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, services.AdminSubject, sub)

	_, _, err = svc.Login(ctx, "wrong")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, _, err = services.NewAuthService(&config.Config{JWTSecret: "x"}).Login(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
