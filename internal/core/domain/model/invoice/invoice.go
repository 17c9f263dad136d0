package invoice

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/pkg/errs"
)

// VATRate is the value-added tax rate applied to every invoice.
var VATRate = decimal.NewFromFloat(0.19)

// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
// created through NewInvoice or RestoreInvoice.
var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice or RestoreInvoice")

// Item is one line of an invoice.
type Item struct {
	description string
	amount      kernel.Money
}

// NewItem creates an invoice line.
func NewItem(description string, amount kernel.Money) (Item, error) {
	if strings.TrimSpace(description) == "" {
		return Item{}, errs.NewValueIsRequiredError("description")
	}
	if !amount.IsPositive() {
		return Item{}, errs.NewValueIsInvalidError("amount must be positive")
	}
	return Item{description: description, amount: amount}, nil
}

// Description returns the line description.
func (i Item) Description() string { return i.description }

// Amount returns the net line amount.
func (i Item) Amount() kernel.Money { return i.amount }

// Invoice is an immutable billing document. All amounts are fixed at
// assembly time; there are no mutating methods.
type Invoice struct {
	id         kernel.UUID
	number     string
	customerID kernel.UUID
	orderID    *kernel.UUID

	items    []Item
	subtotal kernel.Money
	tax      kernel.Money
	total    kernel.Money

	issuedAt time.Time

	isConstructed bool
}

// FormatNumber renders a per-year sequence value as an invoice number,
// e.g. FormatNumber(2026, 42) == "INV-2026-00042".
func FormatNumber(year int, seq int64) string {
	return fmt.Sprintf("INV-%d-%05d", year, seq)
}

// NewInvoice assembles an invoice from its lines. Subtotal, tax and total
// are derived here and never change afterwards.
func NewInvoice(id kernel.UUID, number string, customerID kernel.UUID, orderID *kernel.UUID, items []Item) (*Invoice, error) {
	if err := errors.Join(id.Validate(), customerID.Validate()); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("number")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsInvalidError("invoice must have at least one item")
	}

	subtotal := kernel.ZeroMoney()
	for _, item := range items {
		subtotal = subtotal.Add(item.amount)
	}
	tax := subtotal.Mul(VATRate)

	return &Invoice{
		id:            id,
		number:        number,
		customerID:    customerID,
		orderID:       orderID,
		items:         append([]Item(nil), items...),
		subtotal:      subtotal,
		tax:           tax,
		total:         subtotal.Add(tax),
		issuedAt:      time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreInvoice reconstructs an invoice from persistence. The persisted
// amounts are taken as-is; they were derived at assembly time.
func RestoreInvoice(
	id kernel.UUID, number string, customerID kernel.UUID, orderID *kernel.UUID,
	items []Item, subtotal, tax, total kernel.Money, issuedAt time.Time,
) (*Invoice, error) {
	if err := errors.Join(id.Validate(), customerID.Validate()); err != nil {
		return nil, err
	}

	return &Invoice{
		id:            id,
		number:        number,
		customerID:    customerID,
		orderID:       orderID,
		items:         append([]Item(nil), items...),
		subtotal:      subtotal,
		tax:           tax,
		total:         total,
		issuedAt:      issuedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Invoice was created through a constructor.
func (inv *Invoice) Validate() error {
	if inv == nil || !inv.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// IsEqual compares two invoices by identifier.
func (inv *Invoice) IsEqual(other *Invoice) bool {
	return other != nil && inv.id.IsEqual(other.id)
}

// ID returns the invoice's unique identifier.
func (inv *Invoice) ID() kernel.UUID { return inv.id }

// Number returns the invoice number, e.g. "INV-2026-00042".
func (inv *Invoice) Number() string { return inv.number }

// CustomerID returns the billed customer.
func (inv *Invoice) CustomerID() kernel.UUID { return inv.customerID }

// OrderID returns the invoiced custom order, nil for cart invoices.
func (inv *Invoice) OrderID() *kernel.UUID { return inv.orderID }

// Items returns a copy of the invoice lines.
func (inv *Invoice) Items() []Item { return append([]Item(nil), inv.items...) }

// Subtotal returns the net amount before tax.
func (inv *Invoice) Subtotal() kernel.Money { return inv.subtotal }

// Tax returns the VAT amount.
func (inv *Invoice) Tax() kernel.Money { return inv.tax }

// Total returns the gross amount due.
func (inv *Invoice) Total() kernel.Money { return inv.total }

// IssuedAt returns when the invoice was assembled.
func (inv *Invoice) IssuedAt() time.Time { return inv.issuedAt }
