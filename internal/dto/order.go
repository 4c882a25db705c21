package dto

import (
	"time"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ServiceLineItemRequest is one priced service in an order request.
// WorkerName is resolved to a worker id when WorkerID is absent.
type ServiceLineItemRequest struct {
	Service    string          `json:"service" binding:"required"`
	WorkerID   *int64          `json:"workerId"`
	WorkerName string          `json:"workerName"`
	Price      decimal.Decimal `json:"price" binding:"gte=0"`
}

// CreateOrderRequest defines the data needed to open a new order.
// When ServiceDetails is non-empty, Services and Price are derived from it.
type CreateOrderRequest struct {
	ClientName         string                   `json:"clientName" binding:"required"`
	ClientPhone        string                   `json:"clientPhone" binding:"required"`
	ItemType           string                   `json:"itemType"`
	Brand              string                   `json:"brand"`
	Color              string                   `json:"color"`
	Quantity           int                      `json:"quantity" binding:"gte=0"`
	Services           string                   `json:"services"`
	ServiceDetails     []ServiceLineItemRequest `json:"serviceDetails" binding:"omitempty,dive"`
	MasterID           *int64                   `json:"masterId"`
	Price              decimal.Decimal          `json:"price" binding:"gte=0"`
	Comment            string                   `json:"comment"`
	PrepaymentCash     decimal.Decimal          `json:"prepaymentCash" binding:"gte=0"`
	PrepaymentTerminal decimal.Decimal          `json:"prepaymentTerminal" binding:"gte=0"`
}

// EditOrderRequest defines the fields an order's single edit may change.
// Use pointers to distinguish between zero-value updates and fields not provided.
// Payments are not editable.
type EditOrderRequest struct {
	ClientName     *string                   `json:"clientName" binding:"omitempty,min=1"`
	ClientPhone    *string                   `json:"clientPhone" binding:"omitempty,min=1"`
	ItemType       *string                   `json:"itemType"`
	Brand          *string                   `json:"brand"`
	Color          *string                   `json:"color"`
	Quantity       *int                      `json:"quantity" binding:"omitempty,gte=0"`
	Services       *string                   `json:"services"`
	ServiceDetails *[]ServiceLineItemRequest `json:"serviceDetails" binding:"omitempty,dive"`
	MasterID       *int64                    `json:"masterId"`
	Price          *decimal.Decimal          `json:"price" binding:"omitempty,gte=0"`
	Comment        *string                   `json:"comment"`
}

// ChangeStatusRequest moves an order to a target status. Payment fields are
// only read for Issued.
type ChangeStatusRequest struct {
	Status        domain.OrderStatus   `json:"status" binding:"required,orderstatus"`
	PaymentAmount *decimal.Decimal     `json:"paymentAmount" binding:"omitempty,gte=0"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"omitempty,paymethod"`
}

// CompleteOrderRequest issues an order and records the final payment.
type CompleteOrderRequest struct {
	PaymentAmount decimal.Decimal      `json:"paymentAmount" binding:"gte=0"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"omitempty,paymethod"`
}

// ListOrdersParams defines query parameters for listing orders.
type ListOrdersParams struct {
	View   string `form:"view"`
	Search string `form:"search"`
}

// OrderResponse defines the data returned for an order.
type OrderResponse struct {
	OrderID             int64                    `json:"id"`
	OrderNumber         string                   `json:"orderNumber"`
	ClientID            *int64                   `json:"clientId"`
	ClientName          string                   `json:"clientName"`
	ClientPhone         string                   `json:"clientPhone"`
	ItemType            string                   `json:"itemType"`
	Brand               string                   `json:"brand"`
	Color               string                   `json:"color"`
	Quantity            int                      `json:"quantity"`
	Services            string                   `json:"services"`
	ServiceDetails      []domain.ServiceLineItem `json:"serviceDetails"`
	MasterID            *int64                   `json:"masterId"`
	Price               decimal.Decimal          `json:"price"`
	Comment             string                   `json:"comment"`
	Status              domain.OrderStatus       `json:"status"`
	PrepaymentCash      decimal.Decimal          `json:"prepaymentCash"`
	PrepaymentTerminal  decimal.Decimal          `json:"prepaymentTerminal"`
	PaymentFullCash     decimal.Decimal          `json:"paymentFullCash"`
	PaymentFullTerminal decimal.Decimal          `json:"paymentFullTerminal"`
	Remaining           decimal.Decimal          `json:"remaining"`
	EditCount           int                      `json:"editCount"`
	CanEdit             bool                     `json:"canEdit"`
	CreatedAt           time.Time                `json:"createdAt"`
	ReadyAt             *time.Time               `json:"readyAt"`
	CompletedAt         *time.Time               `json:"completedAt"`
	PaymentDate         *time.Time               `json:"paymentDate"`
}

// ToOrderResponse converts a domain.Order to OrderResponse DTO. Line items
// that fail to decode are returned as an empty list.
func ToOrderResponse(o *domain.Order) OrderResponse {
	items, err := o.LineItems()
	if err != nil || items == nil {
		items = []domain.ServiceLineItem{}
	}
	return OrderResponse{
		OrderID:             o.OrderID,
		OrderNumber:         o.OrderNumber,
		ClientID:            o.ClientID,
		ClientName:          o.ClientName,
		ClientPhone:         o.ClientPhone,
		ItemType:            o.ItemType,
		Brand:               o.Brand,
		Color:               o.Color,
		Quantity:            o.Quantity,
		Services:            o.Services,
		ServiceDetails:      items,
		MasterID:            o.MasterID,
		Price:               o.Price,
		Comment:             o.Comment,
		Status:              o.Status,
		PrepaymentCash:      o.PrepaymentCash,
		PrepaymentTerminal:  o.PrepaymentTerminal,
		PaymentFullCash:     o.PaymentFullCash,
		PaymentFullTerminal: o.PaymentFullTerminal,
		Remaining:           o.Remaining(),
		EditCount:           o.EditCount,
		CanEdit:             !o.IsClosed() && o.EditCount < domain.MaxEdits,
		CreatedAt:           o.CreatedAt,
		ReadyAt:             o.ReadyAt,
		CompletedAt:         o.CompletedAt,
		PaymentDate:         o.PaymentDate,
	}
}

// ToListOrderResponse converts a slice of domain.Order to a slice of OrderResponse DTOs
func ToListOrderResponse(orders []domain.Order) []OrderResponse {
	res := make([]OrderResponse, len(orders))
	for i := range orders {
		res[i] = ToOrderResponse(&orders[i])
	}
	return res
}

// ToLineItems converts request line items to domain line items.
func ToLineItems(reqs []ServiceLineItemRequest) []domain.ServiceLineItem {
	if len(reqs) == 0 {
		return nil
	}
	items := make([]domain.ServiceLineItem, len(reqs))
	for i, r := range reqs {
		items[i] = domain.ServiceLineItem{
			Service:    r.Service,
			WorkerID:   r.WorkerID,
			WorkerName: r.WorkerName,
			Price:      r.Price,
		}
	}
	return items
}
