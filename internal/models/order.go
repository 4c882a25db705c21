package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the row shape of the orders table.
type Order struct {
	OrderID             int64           `db:"id"`
	OrderNumber         string          `db:"order_number"`
	ClientID            *int64          `db:"client_id"`
	ClientName          string          `db:"client_name"`
	ClientPhone         string          `db:"client_phone"`
	ItemType            string          `db:"item_type"`
	Brand               string          `db:"brand"`
	Color               string          `db:"color"`
	Quantity            int             `db:"quantity"`
	Services            string          `db:"services"`
	ServiceDetails      *string         `db:"service_details"` // Nullable, raw JSON
	MasterID            *int64          `db:"master_id"`
	Price               decimal.Decimal `db:"price"`
	Comment             string          `db:"comment"`
	Status              string          `db:"status"`
	PrepaymentCash      decimal.Decimal `db:"prepayment_cash"`
	PrepaymentTerminal  decimal.Decimal `db:"prepayment_terminal"`
	PaymentFullCash     decimal.Decimal `db:"payment_full_cash"`
	PaymentFullTerminal decimal.Decimal `db:"payment_full_terminal"`
	EditCount           int             `db:"edit_count"`
	CreatedAt           time.Time       `db:"created_at"`
	ReadyAt             *time.Time      `db:"ready_at"`
	CompletedAt         *time.Time      `db:"completed_at"`
	PaymentDate         *time.Time      `db:"payment_date"`
}

// Client is the row shape of the clients table.
type Client struct {
	ClientID  int64     `db:"id"`
	Name      string    `db:"name"`
	Phone     string    `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
}
