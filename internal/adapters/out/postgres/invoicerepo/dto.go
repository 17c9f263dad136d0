// Package invoicerepo persists invoices and their lines. Invoices are
// immutable once stored; the package also owns the per-year numbering
// sequence backing invoice numbers.
package invoicerepo

import (
	"time"

	"melodia/internal/core/domain/model/invoice"
	"melodia/internal/core/domain/model/kernel"
)

// InvoiceDTO represents the database structure for persisting invoices.
type InvoiceDTO struct {
	ID         string  `gorm:"type:uuid;primaryKey"`
	Number     string  `gorm:"uniqueIndex"`
	CustomerID string  `gorm:"type:uuid;index"`
	OrderID    *string `gorm:"type:uuid;index"`
	Subtotal   string  `gorm:"type:decimal(12,2)"`
	Tax        string  `gorm:"type:decimal(12,2)"`
	Total      string  `gorm:"type:decimal(12,2)"`
	IssuedAt   time.Time
}

// TableName specifies the database table name for invoices.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// InvoiceItemDTO represents one stored invoice line. Position keeps the
// assembly order stable across reads.
type InvoiceItemDTO struct {
	InvoiceID   string `gorm:"type:uuid;primaryKey"`
	Position    int    `gorm:"primaryKey"`
	Description string
	Amount      string `gorm:"type:decimal(12,2)"`
}

// TableName specifies the database table name for invoice lines.
func (InvoiceItemDTO) TableName() string {
	return "invoice_items"
}

// SequenceDTO represents the per-year invoice numbering sequence.
type SequenceDTO struct {
	Year  int `gorm:"primaryKey"`
	Value int64
}

// TableName specifies the database table name for the numbering sequence.
func (SequenceDTO) TableName() string {
	return "invoice_sequences"
}

// fromDomain converts an invoice to its database rows.
func fromDomain(aggregate *invoice.Invoice) (InvoiceDTO, []InvoiceItemDTO) {
	var orderID *string
	if id := aggregate.OrderID(); id != nil {
		s := id.String()
		orderID = &s
	}

	dto := InvoiceDTO{
		ID:         aggregate.ID().String(),
		Number:     aggregate.Number(),
		CustomerID: aggregate.CustomerID().String(),
		OrderID:    orderID,
		Subtotal:   aggregate.Subtotal().String(),
		Tax:        aggregate.Tax().String(),
		Total:      aggregate.Total().String(),
		IssuedAt:   aggregate.IssuedAt(),
	}

	items := aggregate.Items()
	itemDTOs := make([]InvoiceItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, InvoiceItemDTO{
			InvoiceID:   dto.ID,
			Position:    i,
			Description: item.Description(),
			Amount:      item.Amount().String(),
		})
	}

	return dto, itemDTOs
}

// toDomain converts database rows back to an invoice.
func toDomain(dto InvoiceDTO, itemDTOs []InvoiceItemDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromString(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oid, orderErr := kernel.UUIDFromString(*dto.OrderID)
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oid
	}

	subtotal, err := kernel.MoneyFromString(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	tax, err := kernel.MoneyFromString(dto.Tax)
	if err != nil {
		return nil, err
	}
	total, err := kernel.MoneyFromString(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]invoice.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		amount, amountErr := kernel.MoneyFromString(itemDTO.Amount)
		if amountErr != nil {
			return nil, amountErr
		}
		item, itemErr := invoice.NewItem(itemDTO.Description, amount)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return invoice.RestoreInvoice(id, dto.Number, customerID, orderID, items, subtotal, tax, total, dto.IssuedAt)
}
