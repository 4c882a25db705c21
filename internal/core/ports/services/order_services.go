package services

import (
	"context"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	"github.com/SscSPs/repair_shop_app/internal/dto"
)

// OrderReaderSvc defines read operations for orders and their clients
type OrderReaderSvc interface {
	GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)

	// ListClientOrders returns the order history of a client, found through the client relation.
	ListClientOrders(ctx context.Context, clientID int64) ([]domain.Order, error)
	ListClients(ctx context.Context, search string) ([]domain.Client, error)
}

// OrderWriterSvc defines write operations for orders
type OrderWriterSvc interface {
	// CreateOrder allocates the next order number, links the client and
	// records prepayments in the ledger, all in one transaction.
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest, operator string) (*domain.Order, error)

	// EditOrder applies the order's single permitted edit and audits it.
	EditOrder(ctx context.Context, orderID int64, req dto.EditOrderRequest, operator string) (*domain.Order, error)

	DeleteOrder(ctx context.Context, orderID int64, operator string) error
}

// OrderSvcFacade combines all order-related service interfaces
type OrderSvcFacade interface {
	OrderReaderSvc
	OrderWriterSvc
}
