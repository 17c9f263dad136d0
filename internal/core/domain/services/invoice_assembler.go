package services

import (
	"fmt"

	"melodia/internal/core/domain/model/invoice"
	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/core/domain/model/order"
	"melodia/internal/pkg/errs"
)

// InvoiceAssembler builds immutable invoices. An order is billable once a
// delivery has been accepted for payment, so assembly is legal from
// READY_FOR_PAYMENT, PAID, and COMPLETED; the invoiced amount is the
// accepted offer. Cart invoices are assembled from lines already priced
// by the LicensePricingEngine.
type InvoiceAssembler struct {
	pricing LicensePricingEngine
}

// NewInvoiceAssembler creates a new InvoiceAssembler instance.
func NewInvoiceAssembler(pricing LicensePricingEngine) InvoiceAssembler {
	return InvoiceAssembler{pricing: pricing}
}

// AssembleForOrder builds a one-line invoice for a custom order. number
// must be a fresh value from the per-year invoice sequence.
func (a InvoiceAssembler) AssembleForOrder(o *order.Order, number string) (*invoice.Invoice, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	switch o.Status() {
	case order.ReadyForPayment, order.Paid, order.Completed:
	default:
		return nil, errs.NewInvalidStateError("invoice", o.Status().String())
	}

	price, err := a.pricing.PriceOrder(o)
	if err != nil {
		return nil, err
	}

	item, err := invoice.NewItem(
		fmt.Sprintf("Custom order %s: %s", o.Number(), o.Title()), price)
	if err != nil {
		return nil, err
	}

	orderID := o.ID()
	return invoice.NewInvoice(kernel.NewUUID(), number, o.CustomerID(), &orderID, []invoice.Item{item})
}

// CartLine is one already-priced cart position going onto an invoice.
type CartLine struct {
	Description string
	Amount      kernel.Money
}

// AssembleForCart builds an invoice from priced cart lines.
func (a InvoiceAssembler) AssembleForCart(customerID kernel.UUID, number string, lines []CartLine) (*invoice.Invoice, error) {
	items := make([]invoice.Item, 0, len(lines))
	for _, line := range lines {
		item, err := invoice.NewItem(line.Description, line.Amount)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return invoice.NewInvoice(kernel.NewUUID(), number, customerID, nil, items)
}
