package ports

import (
	"context"

	"melodia/internal/core/domain/model/invoice"
	"melodia/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoices.
// Invoices are immutable; there is no Update.
type InvoiceRepository interface {
	// Add persists a newly assembled invoice.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Get retrieves an invoice by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)

	// GetAllByCustomer retrieves the customer's invoices, newest first.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*invoice.Invoice, error)

	// NextNumber atomically draws the next value of the per-year invoice
	// sequence and returns it formatted, e.g. "INV-2026-00042". Must be
	// called inside the transaction that stores the invoice so a rollback
	// releases nothing visible.
	NextNumber(ctx context.Context, year int) (string, error)
}
