package repositories

import (
	"context"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
)

// OrderReader defines read operations for order data
type OrderReader interface {
	// FindOrderByID retrieves a specific order by its internal id.
	FindOrderByID(ctx context.Context, orderID int64) (*domain.Order, error)

	// ListOrders retrieves orders matching the filter, newest first. Denormalized
	// client fields are filled from the linked client when empty.
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)

	// ListOrdersByClientID retrieves a client's order history, newest first.
	ListOrdersByClientID(ctx context.Context, clientID int64) ([]domain.Order, error)

	// ListOrderNumbers returns every stored order number.
	ListOrderNumbers(ctx context.Context) ([]string, error)
}

// OrderWriter defines write operations for order data
type OrderWriter interface {
	// SaveOrder inserts a new order and sets its OrderID and CreatedAt.
	SaveOrder(ctx context.Context, order *domain.Order) error

	// UpdateOrder persists status, payment and timestamp fields.
	UpdateOrder(ctx context.Context, order domain.Order) error

	// UpdateOrderWithEditLock persists an edit and consumes the edit allowance.
	// It only succeeds while edit_count is still zero and returns
	// apperrors.ErrEditLimitExceeded otherwise.
	UpdateOrderWithEditLock(ctx context.Context, order domain.Order) error

	// DeleteOrder removes an order.
	DeleteOrder(ctx context.Context, orderID int64) error
}

// OrderLocker defines the row and sequence locks used inside transactions.
type OrderLocker interface {
	// FindOrderByIDForUpdate reads an order and locks its row until the
	// transaction ends.
	FindOrderByIDForUpdate(ctx context.Context, orderID int64) (*domain.Order, error)

	// LockOrderNumbers serializes order number allocation until the
	// transaction ends.
	LockOrderNumbers(ctx context.Context) error
}

// OrderRepositoryFacade combines all order-related repository interfaces
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
	OrderLocker
}
