package queries

import (
	"errors"
	"time"

	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/pkg/guard"
)

var ErrGetInvoicesQueryIsNotConstructed = errors.New(
	"GetInvoicesQuery must be created via NewGetInvoicesQuery constructor",
)

// GetInvoicesQuery retrieves the customer's invoices, newest first.
type GetInvoicesQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetInvoicesQuery creates a query for the customer's invoices.
func NewGetInvoicesQuery(customerID kernel.UUID) (GetInvoicesQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetInvoicesQuery{}, err
	}

	return GetInvoicesQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoicesQueryIsNotConstructed)
}

// CustomerID returns whose invoices are listed.
func (q GetInvoicesQuery) CustomerID() kernel.UUID { return q.customerID }

// InvoiceItemResponse is one invoice line.
type InvoiceItemResponse struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// InvoiceResponse is one invoice with its lines.
type InvoiceResponse struct {
	ID       string                `json:"id"`
	Number   string                `json:"number"`
	OrderID  string                `json:"orderId,omitempty"`
	Subtotal float64               `json:"subtotal"`
	Tax      float64               `json:"tax"`
	Total    float64               `json:"total"`
	IssuedAt time.Time             `json:"issuedAt"`
	Items    []InvoiceItemResponse `json:"items"`
}
