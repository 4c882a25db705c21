package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/repair_shop_app/internal/apperrors"
	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	portsrepo "github.com/SscSPs/repair_shop_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/repair_shop_app/internal/core/ports/services"
	"github.com/SscSPs/repair_shop_app/internal/dto"
	"github.com/shopspring/decimal"
)

// orderService manages order intake, the single permitted edit, and reads.
type orderService struct {
	BaseService
	repos      portsrepo.RepositoryProvider
	maxRetries int
}

// NewOrderService creates a new OrderSvcFacade. maxRetries bounds how often
// CreateOrder retries after losing an order number race.
func NewOrderService(repos portsrepo.RepositoryProvider, maxRetries int) portssvc.OrderSvcFacade {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &orderService{repos: repos, maxRetries: maxRetries}
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// CreateOrder implements portssvc.OrderWriterSvc.
func (s *orderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest, operator string) (*domain.Order, error) {
	draft, err := draftFromRequest(req)
	if err != nil {
		return nil, err
	}

	var created *domain.Order
	for attempt := 1; ; attempt++ {
		err = s.repos.TxRunner.RunInTx(ctx, func(ctx context.Context, tx portsrepo.RepositoryProvider) error {
			order := draft
			if err := s.insertOrder(ctx, tx, &order, operator); err != nil {
				return err
			}
			created = &order
			return nil
		})
		if err == nil {
			break
		}
		if !errors.Is(err, apperrors.ErrOrderNumberTaken) {
			if !isClientError(err) {
				s.LogError(ctx, err, "Failed to create order")
			}
			return nil, err
		}
		if attempt >= s.maxRetries {
			s.LogWarn(ctx, "Order number allocation retries exhausted", slog.Int("attempts", attempt))
			return nil, fmt.Errorf("%w: could not allocate an order number after %d attempts", apperrors.ErrConflict, attempt)
		}
		s.LogWarn(ctx, "Order number conflict, retrying", slog.Int("attempt", attempt))
	}

	s.LogInfo(ctx, "Order created",
		slog.Int64("order_id", created.OrderID),
		slog.String("order_number", created.OrderNumber))
	return created, nil
}

func (s *orderService) insertOrder(ctx context.Context, tx portsrepo.RepositoryProvider, order *domain.Order, operator string) error {
	if err := tx.OrderRepo.LockOrderNumbers(ctx); err != nil {
		return err
	}
	numbers, err := tx.OrderRepo.ListOrderNumbers(ctx)
	if err != nil {
		return err
	}
	next, skipped := domain.NextOrderNumber(numbers)
	if len(skipped) > 0 {
		s.LogWarn(ctx, "Ignoring non-numeric order numbers", slog.Any("values", skipped))
	}
	order.OrderNumber = next

	client, err := tx.ClientRepo.FindOrCreateClientByPhone(ctx, order.ClientName, order.ClientPhone)
	if err != nil {
		return err
	}
	order.ClientID = &client.ClientID

	if err := s.resolveLineItems(ctx, tx, order); err != nil {
		return err
	}

	if err := tx.OrderRepo.SaveOrder(ctx, order); err != nil {
		return err
	}

	for _, p := range []struct {
		method domain.PaymentMethod
		amount decimal.Decimal
	}{
		{domain.MethodCash, order.PrepaymentCash},
		{domain.MethodTerminal, order.PrepaymentTerminal},
	} {
		if !p.amount.IsPositive() {
			continue
		}
		entry := domain.CashTransaction{
			Date:          order.CreatedAt,
			Type:          domain.Income,
			Category:      domain.CategoryClientPrepayment,
			Description:   fmt.Sprintf("Prepayment for order #%s", order.OrderNumber),
			Amount:        p.amount,
			Method:        p.method,
			RelatedEntity: order.ClientName,
			CreatedBy:     operator,
		}
		if err := tx.CashRepo.SaveCashTransaction(ctx, &entry); err != nil {
			return err
		}
	}

	return s.Audit(ctx, tx, domain.NewSystemLog(
		domain.LogTypeOrder, domain.ActionCreate, orderTarget(order.OrderID),
		fmt.Sprintf("Order #%s created", order.OrderNumber),
		nil, order, operator,
	))
}

// resolveLineItems binds each line item to a worker id on the write path and
// refreshes the derived services summary and price.
func (s *orderService) resolveLineItems(ctx context.Context, tx portsrepo.RepositoryProvider, order *domain.Order) error {
	items, err := order.LineItems()
	if err != nil || len(items) == 0 {
		return err
	}
	workers, err := tx.WorkerRepo.ListWorkers(ctx, true)
	if err != nil {
		return err
	}
	names := make(map[int64]string, len(workers))
	for _, w := range workers {
		names[w.WorkerID] = w.Name
	}
	for i := range items {
		items[i].WorkerID = domain.ResolveWorkerID(items[i], workers)
		if items[i].WorkerID == nil {
			if items[i].WorkerName != "" {
				s.LogWarn(ctx, "Line item worker not resolved", slog.String("worker_name", items[i].WorkerName))
			}
			continue
		}
		if name, ok := names[*items[i].WorkerID]; ok && strings.TrimSpace(items[i].WorkerName) == "" {
			items[i].WorkerName = name
		}
	}
	return order.SetLineItems(items)
}

func draftFromRequest(req dto.CreateOrderRequest) (domain.Order, error) {
	order := domain.Order{
		ClientName:         strings.TrimSpace(req.ClientName),
		ClientPhone:        domain.NormalizePhone(req.ClientPhone),
		ItemType:           strings.TrimSpace(req.ItemType),
		Brand:              strings.TrimSpace(req.Brand),
		Color:              strings.TrimSpace(req.Color),
		Quantity:           req.Quantity,
		Services:           strings.TrimSpace(req.Services),
		MasterID:           req.MasterID,
		Price:              req.Price,
		Comment:            req.Comment,
		Status:             domain.StatusAccepted,
		PrepaymentCash:     req.PrepaymentCash,
		PrepaymentTerminal: req.PrepaymentTerminal,
	}
	if order.Quantity == 0 {
		order.Quantity = 1
	}
	if order.ClientName == "" || order.ClientPhone == "" {
		return order, fmt.Errorf("%w: client name and phone are required", apperrors.ErrValidation)
	}
	if err := order.SetLineItems(dto.ToLineItems(req.ServiceDetails)); err != nil {
		return order, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err := checkAmounts(order); err != nil {
		return order, err
	}
	return order, nil
}

// checkAmounts enforces non-negative money fields and that recorded payments
// never exceed the price.
func checkAmounts(o domain.Order) error {
	for _, v := range []decimal.Decimal{o.Price, o.PrepaymentCash, o.PrepaymentTerminal, o.PaymentFullCash, o.PaymentFullTerminal} {
		if v.IsNegative() {
			return fmt.Errorf("%w: amounts must not be negative", apperrors.ErrValidation)
		}
	}
	if o.PaidTotal().GreaterThan(o.Price) {
		return fmt.Errorf("%w: payments %s exceed price %s", apperrors.ErrValidation, o.PaidTotal().StringFixed(2), o.Price.StringFixed(2))
	}
	return nil
}

// EditOrder implements portssvc.OrderWriterSvc.
func (s *orderService) EditOrder(ctx context.Context, orderID int64, req dto.EditOrderRequest, operator string) (*domain.Order, error) {
	var edited *domain.Order
	err := s.repos.TxRunner.RunInTx(ctx, func(ctx context.Context, tx portsrepo.RepositoryProvider) error {
		current, err := tx.OrderRepo.FindOrderByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if current.IsClosed() {
			return apperrors.ErrOrderLocked
		}
		if current.EditCount >= domain.MaxEdits {
			return apperrors.ErrEditLimitExceeded
		}

		updated := *current
		if err := applyPatch(&updated, req); err != nil {
			return err
		}
		client, err := tx.ClientRepo.FindOrCreateClientByPhone(ctx, updated.ClientName, updated.ClientPhone)
		if err != nil {
			return err
		}
		updated.ClientID = &client.ClientID
		if req.ServiceDetails != nil {
			if err := s.resolveLineItems(ctx, tx, &updated); err != nil {
				return err
			}
		}
		if err := checkAmounts(updated); err != nil {
			return err
		}
		updated.EditCount = current.EditCount + 1

		if err := tx.OrderRepo.UpdateOrderWithEditLock(ctx, updated); err != nil {
			return err
		}
		edited = &updated

		return s.Audit(ctx, tx, domain.NewSystemLog(
			domain.LogTypeOrder, domain.ActionEdit, orderTarget(orderID),
			fmt.Sprintf("Order #%s edited", current.OrderNumber),
			current, req, operator,
		))
	})
	if err != nil {
		if !isClientError(err) {
			s.LogError(ctx, err, "Failed to edit order", slog.Int64("order_id", orderID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Order edited", slog.Int64("order_id", orderID))
	return edited, nil
}

// applyPatch copies provided fields onto o. When o carries line items the
// price and services summary are derived from them and cannot be patched
// on their own.
func applyPatch(o *domain.Order, req dto.EditOrderRequest) error {
	if req.ClientName != nil {
		name := strings.TrimSpace(*req.ClientName)
		if name == "" {
			return fmt.Errorf("%w: client name must not be empty", apperrors.ErrValidation)
		}
		o.ClientName = name
	}
	if req.ClientPhone != nil {
		phone := domain.NormalizePhone(*req.ClientPhone)
		if phone == "" {
			return fmt.Errorf("%w: client phone must not be empty", apperrors.ErrValidation)
		}
		o.ClientPhone = phone
	}
	if req.ItemType != nil {
		o.ItemType = strings.TrimSpace(*req.ItemType)
	}
	if req.Brand != nil {
		o.Brand = strings.TrimSpace(*req.Brand)
	}
	if req.Color != nil {
		o.Color = strings.TrimSpace(*req.Color)
	}
	if req.Quantity != nil {
		o.Quantity = *req.Quantity
	}
	if req.MasterID != nil {
		o.MasterID = req.MasterID
	}
	if req.Comment != nil {
		o.Comment = *req.Comment
	}

	if req.ServiceDetails == nil {
		if items, err := o.LineItems(); err == nil && len(items) > 0 {
			if req.Price != nil && !req.Price.Equal(o.Price) {
				return fmt.Errorf("%w: price is derived from service details, edit the line items instead", apperrors.ErrValidation)
			}
			if req.Services != nil && strings.TrimSpace(*req.Services) != o.Services {
				return fmt.Errorf("%w: services are derived from service details, edit the line items instead", apperrors.ErrValidation)
			}
			return nil
		}
	}

	if req.Services != nil {
		o.Services = strings.TrimSpace(*req.Services)
	}
	if req.Price != nil {
		o.Price = *req.Price
	}
	if req.ServiceDetails != nil {
		if err := o.SetLineItems(dto.ToLineItems(*req.ServiceDetails)); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	}
	return nil
}

// GetOrderByID implements portssvc.OrderReaderSvc.
func (s *orderService) GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	return s.repos.OrderRepo.FindOrderByID(ctx, orderID)
}

// ListOrders implements portssvc.OrderReaderSvc.
func (s *orderService) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	filter.View = domain.ParseOrderView(string(filter.View))
	filter.Search = strings.TrimSpace(filter.Search)
	orders, err := s.repos.OrderRepo.ListOrders(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders", slog.String("view", string(filter.View)))
		return nil, err
	}
	return orders, nil
}

// ListClientOrders implements portssvc.OrderReaderSvc.
func (s *orderService) ListClientOrders(ctx context.Context, clientID int64) ([]domain.Order, error) {
	if _, err := s.repos.ClientRepo.FindClientByID(ctx, clientID); err != nil {
		return nil, err
	}
	return s.repos.OrderRepo.ListOrdersByClientID(ctx, clientID)
}

// ListClients implements portssvc.OrderReaderSvc.
func (s *orderService) ListClients(ctx context.Context, search string) ([]domain.Client, error) {
	return s.repos.ClientRepo.ListClients(ctx, strings.TrimSpace(search))
}

// DeleteOrder implements portssvc.OrderWriterSvc. Orders that already
// accrued commissions cannot be deleted.
func (s *orderService) DeleteOrder(ctx context.Context, orderID int64, operator string) error {
	err := s.repos.TxRunner.RunInTx(ctx, func(ctx context.Context, tx portsrepo.RepositoryProvider) error {
		current, err := tx.OrderRepo.FindOrderByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		accrued, err := tx.CommissionRepo.CountCommissionsByOrderID(ctx, orderID)
		if err != nil {
			return err
		}
		if accrued > 0 {
			return fmt.Errorf("%w: order #%s has accrued commissions", apperrors.ErrConflict, current.OrderNumber)
		}
		if err := tx.OrderRepo.DeleteOrder(ctx, orderID); err != nil {
			return err
		}
		return s.Audit(ctx, tx, domain.NewSystemLog(
			domain.LogTypeOrder, domain.ActionDelete, orderTarget(orderID),
			fmt.Sprintf("Order #%s deleted", current.OrderNumber),
			current, nil, operator,
		))
	})
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "Order deleted", slog.Int64("order_id", orderID))
	return nil
}

func orderTarget(id int64) string {
	return strconv.FormatInt(id, 10)
}

// isClientError reports whether err is an expected rejection rather than a store failure.
func isClientError(err error) bool {
	for _, target := range []error{
		apperrors.ErrNotFound, apperrors.ErrValidation, apperrors.ErrEditLimitExceeded,
		apperrors.ErrOrderLocked, apperrors.ErrInvalidPaymentMethod, apperrors.ErrConflict,
		apperrors.ErrUnauthorized,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
