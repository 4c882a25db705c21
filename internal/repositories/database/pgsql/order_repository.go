package pgsql

import (
	"context"
	"strconv"
	"strings"

	"github.com/SscSPs/repair_shop_app/internal/apperrors"
	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	portsrepo "github.com/SscSPs/repair_shop_app/internal/core/ports/repositories"
	"github.com/SscSPs/repair_shop_app/internal/models"
	"github.com/SscSPs/repair_shop_app/internal/utils/mapping"
)

type PgxOrderRepository struct {
	BaseRepository
}

// Ensure PgxOrderRepository implements portsrepo.OrderRepositoryFacade
var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

// orderSelect reads orders with empty denormalized client fields filled from
// the linked client.
const orderSelect = `
	SELECT o.id, o.order_number, o.client_id,
	       COALESCE(NULLIF(o.client_name, ''), c.name, '') AS client_name,
	       COALESCE(NULLIF(o.client_phone, ''), c.phone, '') AS client_phone,
	       o.item_type, o.brand, o.color, o.quantity, o.services, o.service_details,
	       o.master_id, o.price, o.comment, o.status,
	       o.prepayment_cash, o.prepayment_terminal, o.payment_full_cash, o.payment_full_terminal,
	       o.edit_count, o.created_at, o.ready_at, o.completed_at, o.payment_date
	FROM orders o
	LEFT JOIN clients c ON c.id = o.client_id
`

func scanOrder(row rowScanner) (models.Order, error) {
	var m models.Order
	err := row.Scan(
		&m.OrderID,
		&m.OrderNumber,
		&m.ClientID,
		&m.ClientName,
		&m.ClientPhone,
		&m.ItemType,
		&m.Brand,
		&m.Color,
		&m.Quantity,
		&m.Services,
		&m.ServiceDetails,
		&m.MasterID,
		&m.Price,
		&m.Comment,
		&m.Status,
		&m.PrepaymentCash,
		&m.PrepaymentTerminal,
		&m.PaymentFullCash,
		&m.PaymentFullTerminal,
		&m.EditCount,
		&m.CreatedAt,
		&m.ReadyAt,
		&m.CompletedAt,
		&m.PaymentDate,
	)
	return m, err
}

func (r *PgxOrderRepository) findOne(ctx context.Context, query string, orderID int64) (*domain.Order, error) {
	m, err := scanOrder(r.db.QueryRow(ctx, query, orderID))
	if err != nil {
		return nil, storeError("find order "+strconv.FormatInt(orderID, 10), err)
	}
	order := mapping.ToDomainOrder(m)
	return &order, nil
}

func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	return r.findOne(ctx, orderSelect+` WHERE o.id = $1`, orderID)
}

func (r *PgxOrderRepository) FindOrderByIDForUpdate(ctx context.Context, orderID int64) (*domain.Order, error) {
	return r.findOne(ctx, orderSelect+` WHERE o.id = $1 FOR UPDATE OF o`, orderID)
}

func (r *PgxOrderRepository) listWhere(ctx context.Context, where string, args ...interface{}) ([]domain.Order, error) {
	query := orderSelect + " " + where + " ORDER BY o.created_at DESC, o.id DESC"
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError("list orders", err)
	}
	defer rows.Close()

	var ms []models.Order
	for rows.Next() {
		m, err := scanOrder(rows)
		if err != nil {
			return nil, storeError("scan order row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate order rows", err)
	}
	return mapping.ToDomainOrderSlice(ms), nil
}

func (r *PgxOrderRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	var conditions []string
	var args []interface{}

	switch filter.View {
	case domain.ViewArchive:
		args = append(args, string(domain.StatusIssued))
		conditions = append(conditions, "o.status = $"+strconv.Itoa(len(args)))
	case domain.ViewAll:
	default:
		args = append(args, string(domain.StatusIssued))
		conditions = append(conditions, "o.status <> $"+strconv.Itoa(len(args)))
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, containsPattern(search))
		p := "$" + strconv.Itoa(len(args)) + ` ESCAPE '\'`
		conditions = append(conditions, "(o.order_number ILIKE "+p+
			" OR COALESCE(NULLIF(o.client_name, ''), c.name, '') ILIKE "+p+
			" OR COALESCE(NULLIF(o.client_phone, ''), c.phone, '') ILIKE "+p+")")
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}
	return r.listWhere(ctx, where, args...)
}

func (r *PgxOrderRepository) ListOrdersByClientID(ctx context.Context, clientID int64) ([]domain.Order, error) {
	return r.listWhere(ctx, "WHERE o.client_id = $1", clientID)
}

func (r *PgxOrderRepository) ListOrderNumbers(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT order_number FROM orders`)
	if err != nil {
		return nil, storeError("list order numbers", err)
	}
	defer rows.Close()

	var numbers []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, storeError("scan order number", err)
		}
		numbers = append(numbers, n)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate order numbers", err)
	}
	return numbers, nil
}

func (r *PgxOrderRepository) LockOrderNumbers(ctx context.Context) error {
	if err := advisoryLock(ctx, r.db, orderNumberLockKey); err != nil {
		return storeError("lock order numbers", err)
	}
	return nil
}

func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order *domain.Order) error {
	m := mapping.ToModelOrder(*order)
	query := `
		INSERT INTO orders (
			order_number, client_id, client_name, client_phone, item_type, brand, color, quantity,
			services, service_details, master_id, price, comment, status,
			prepayment_cash, prepayment_terminal, payment_full_cash, payment_full_terminal,
			edit_count, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, NOW())
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		m.OrderNumber,
		m.ClientID,
		m.ClientName,
		m.ClientPhone,
		m.ItemType,
		m.Brand,
		m.Color,
		m.Quantity,
		m.Services,
		m.ServiceDetails,
		m.MasterID,
		m.Price,
		m.Comment,
		m.Status,
		m.PrepaymentCash,
		m.PrepaymentTerminal,
		m.PaymentFullCash,
		m.PaymentFullTerminal,
		m.EditCount,
	).Scan(&order.OrderID, &order.CreatedAt)
	if err != nil {
		return storeError("insert order "+m.OrderNumber, err)
	}
	order.CreatedAt = order.CreatedAt.UTC()
	return nil
}

func (r *PgxOrderRepository) UpdateOrder(ctx context.Context, order domain.Order) error {
	m := mapping.ToModelOrder(order)
	query := `
		UPDATE orders
		SET status = $2, payment_full_cash = $3, payment_full_terminal = $4,
		    ready_at = $5, completed_at = $6, payment_date = $7
		WHERE id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.OrderID,
		m.Status,
		m.PaymentFullCash,
		m.PaymentFullTerminal,
		m.ReadyAt,
		m.CompletedAt,
		m.PaymentDate,
	)
	if err != nil {
		return storeError("update order", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxOrderRepository) UpdateOrderWithEditLock(ctx context.Context, order domain.Order) error {
	m := mapping.ToModelOrder(order)
	query := `
		UPDATE orders
		SET client_id = $2, client_name = $3, client_phone = $4, item_type = $5, brand = $6,
		    color = $7, quantity = $8, services = $9, service_details = $10, master_id = $11,
		    price = $12, comment = $13, edit_count = edit_count + 1
		WHERE id = $1 AND edit_count = 0;
	`
	tag, err := r.db.Exec(ctx, query,
		m.OrderID,
		m.ClientID,
		m.ClientName,
		m.ClientPhone,
		m.ItemType,
		m.Brand,
		m.Color,
		m.Quantity,
		m.Services,
		m.ServiceDetails,
		m.MasterID,
		m.Price,
		m.Comment,
	)
	if err != nil {
		return storeError("edit order", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEditLimitExceeded
	}
	return nil
}

func (r *PgxOrderRepository) DeleteOrder(ctx context.Context, orderID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, orderID)
	if err != nil {
		return storeError("delete order", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
