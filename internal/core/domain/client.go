package domain

import (
	"strings"
	"time"
)

// Client is a shop customer identified by phone number.
type Client struct {
	ClientID  int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// NormalizePhone strips the formatting characters staff tend to type so
// "+7 (900) 123-45-67" and "+79001234567" resolve to the same client.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(phone) {
		switch r {
		case ' ', '-', '(', ')', '.', '\t':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// EnrichFromClient fills empty denormalized client fields from the linked client.
func (o *Order) EnrichFromClient(c *Client) {
	if c == nil {
		return
	}
	if strings.TrimSpace(o.ClientName) == "" {
		o.ClientName = c.Name
	}
	if strings.TrimSpace(o.ClientPhone) == "" {
		o.ClientPhone = c.Phone
	}
}
