package mapping

import (
	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	"github.com/SscSPs/repair_shop_app/internal/models"
)

// ToModelOrder converts a domain Order to a model Order
func ToModelOrder(d domain.Order) models.Order {
	var details *string
	if d.ServiceDetailsJSON != "" {
		raw := d.ServiceDetailsJSON
		details = &raw
	}
	return models.Order{
		OrderID:             d.OrderID,
		OrderNumber:         d.OrderNumber,
		ClientID:            d.ClientID,
		ClientName:          d.ClientName,
		ClientPhone:         d.ClientPhone,
		ItemType:            d.ItemType,
		Brand:               d.Brand,
		Color:               d.Color,
		Quantity:            d.Quantity,
		Services:            d.Services,
		ServiceDetails:      details,
		MasterID:            d.MasterID,
		Price:               d.Price,
		Comment:             d.Comment,
		Status:              string(d.Status),
		PrepaymentCash:      d.PrepaymentCash,
		PrepaymentTerminal:  d.PrepaymentTerminal,
		PaymentFullCash:     d.PaymentFullCash,
		PaymentFullTerminal: d.PaymentFullTerminal,
		EditCount:           d.EditCount,
		CreatedAt:           d.CreatedAt,
		ReadyAt:             d.ReadyAt,
		CompletedAt:         d.CompletedAt,
		PaymentDate:         d.PaymentDate,
	}
}

// ToDomainOrder converts a model Order to a domain Order
func ToDomainOrder(m models.Order) domain.Order {
	d := domain.Order{
		OrderID:             m.OrderID,
		OrderNumber:         m.OrderNumber,
		ClientID:            m.ClientID,
		ClientName:          m.ClientName,
		ClientPhone:         m.ClientPhone,
		ItemType:            m.ItemType,
		Brand:               m.Brand,
		Color:               m.Color,
		Quantity:            m.Quantity,
		Services:            m.Services,
		MasterID:            m.MasterID,
		Price:               m.Price,
		Comment:             m.Comment,
		Status:              domain.OrderStatus(m.Status),
		PrepaymentCash:      m.PrepaymentCash,
		PrepaymentTerminal:  m.PrepaymentTerminal,
		PaymentFullCash:     m.PaymentFullCash,
		PaymentFullTerminal: m.PaymentFullTerminal,
		EditCount:           m.EditCount,
		CreatedAt:           m.CreatedAt,
		ReadyAt:             m.ReadyAt,
		CompletedAt:         m.CompletedAt,
		PaymentDate:         m.PaymentDate,
	}
	if m.ServiceDetails != nil {
		d.ServiceDetailsJSON = *m.ServiceDetails
	}
	return d
}

// ToDomainOrderSlice converts a slice of model Orders to a slice of domain Orders
func ToDomainOrderSlice(ms []models.Order) []domain.Order {
	ds := make([]domain.Order, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOrder(m)
	}
	return ds
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:  m.ClientID,
		Name:      m.Name,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
	}
}
