package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of a work order.
type OrderStatus string

const (
	StatusAccepted OrderStatus = "Accepted"
	StatusReady    OrderStatus = "Ready"
	StatusIssued   OrderStatus = "Issued"
)

// IsValid reports whether s is one of the three lifecycle states.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusAccepted, StatusReady, StatusIssued:
		return true
	}
	return false
}

// MaxEdits is the number of post-creation edits an order allows.
const MaxEdits = 1

// ServiceLineItem is one priced service on an order, optionally assigned to a worker.
type ServiceLineItem struct {
	Service    string          `json:"service"`
	WorkerID   *int64          `json:"workerId"`
	WorkerName string          `json:"workerName"`
	Price      decimal.Decimal `json:"price"`
}

// Order represents a single repair job.
type Order struct {
	OrderID     int64  `json:"id"`
	OrderNumber string `json:"orderNumber"`

	ClientID    *int64 `json:"clientId"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`

	ItemType string `json:"itemType"`
	Brand    string `json:"brand"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`

	Services string `json:"services"`
	// ServiceDetailsJSON is the persisted line item list. It is kept raw so
	// legacy rows that do not parse can still be loaded.
	ServiceDetailsJSON string          `json:"-"`
	MasterID           *int64          `json:"masterId"`
	Price              decimal.Decimal `json:"price"`
	Comment            string          `json:"comment"`
	Status             OrderStatus     `json:"status"`

	PrepaymentCash      decimal.Decimal `json:"prepaymentCash"`
	PrepaymentTerminal  decimal.Decimal `json:"prepaymentTerminal"`
	PaymentFullCash     decimal.Decimal `json:"paymentFullCash"`
	PaymentFullTerminal decimal.Decimal `json:"paymentFullTerminal"`

	EditCount int `json:"editCount"`

	CreatedAt   time.Time  `json:"createdAt"`
	ReadyAt     *time.Time `json:"readyAt"`
	CompletedAt *time.Time `json:"completedAt"`
	PaymentDate *time.Time `json:"paymentDate"`
}

// LineItems decodes ServiceDetailsJSON. An empty value yields no items and no error.
func (o Order) LineItems() ([]ServiceLineItem, error) {
	raw := strings.TrimSpace(o.ServiceDetailsJSON)
	if raw == "" || raw == "null" {
		return nil, nil
	}
	var items []ServiceLineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode service details for order %d: %w", o.OrderID, err)
	}
	return items, nil
}

// SetLineItems encodes items into ServiceDetailsJSON and refreshes the
// derived Services summary and Price. An empty list clears the details and
// leaves Services and Price untouched.
func (o *Order) SetLineItems(items []ServiceLineItem) error {
	if len(items) == 0 {
		o.ServiceDetailsJSON = ""
		return nil
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode service details: %w", err)
	}
	o.ServiceDetailsJSON = string(raw)

	names := make([]string, 0, len(items))
	total := decimal.Zero
	for _, item := range items {
		if name := strings.TrimSpace(item.Service); name != "" {
			names = append(names, name)
		}
		total = total.Add(item.Price)
	}
	o.Services = strings.Join(names, ", ")
	o.Price = total
	return nil
}

// PaidTotal is the sum of every recorded prepayment and final payment.
func (o Order) PaidTotal() decimal.Decimal {
	return o.PrepaymentCash.
		Add(o.PrepaymentTerminal).
		Add(o.PaymentFullCash).
		Add(o.PaymentFullTerminal)
}

// Remaining is the unpaid part of the price. It never goes below zero.
func (o Order) Remaining() decimal.Decimal {
	rem := o.Price.Sub(o.PaidTotal())
	if rem.IsNegative() {
		return decimal.Zero
	}
	return rem
}

// IsClosed reports whether the order is issued and therefore immutable to edits.
func (o Order) IsClosed() bool {
	return o.Status == StatusIssued
}

// OrderView selects which orders a listing returns.
type OrderView string

const (
	ViewActive  OrderView = "active"
	ViewArchive OrderView = "archive"
	ViewAll     OrderView = "all"
)

// ParseOrderView maps a query value onto a view. Unknown or empty values mean active.
func ParseOrderView(v string) OrderView {
	switch OrderView(strings.ToLower(strings.TrimSpace(v))) {
	case ViewArchive:
		return ViewArchive
	case ViewAll:
		return ViewAll
	default:
		return ViewActive
	}
}

// Matches reports whether an order with the given status belongs to the view.
func (v OrderView) Matches(status OrderStatus) bool {
	switch v {
	case ViewArchive:
		return status == StatusIssued
	case ViewAll:
		return true
	default:
		return status != StatusIssued
	}
}

// OrderFilter narrows an order listing.
type OrderFilter struct {
	View   OrderView
	Search string
}

// MatchesSearch does the case-insensitive substring match over order number,
// client name and phone.
func (o Order) MatchesSearch(search string) bool {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(o.OrderNumber), q) ||
		strings.Contains(strings.ToLower(o.ClientName), q) ||
		strings.Contains(strings.ToLower(o.ClientPhone), q)
}

// NextOrderNumber returns max(numeric order numbers)+1 as a decimal string,
// starting at 1. Values that do not parse as integers are skipped and
// returned so the caller can report them.
func NextOrderNumber(existing []string) (next string, skipped []string) {
	var max int64
	for _, num := range existing {
		n, err := strconv.ParseInt(strings.TrimSpace(num), 10, 64)
		if err != nil {
			skipped = append(skipped, num)
			continue
		}
		if n > max {
			max = n
		}
	}
	return strconv.FormatInt(max+1, 10), skipped
}
