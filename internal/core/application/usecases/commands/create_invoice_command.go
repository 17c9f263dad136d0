package commands

import (
	"errors"

	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/pkg/guard"
)

var ErrCreateInvoiceCommandIsNotConstructed = errors.New(
	"CreateInvoiceCommand must be created via NewCreateInvoiceCommand constructor",
)

// CreateInvoiceCommand asks for an invoice over a billable custom order.
type CreateInvoiceCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateInvoiceCommand creates a command to invoice an order.
func NewCreateInvoiceCommand(orderID, customerID kernel.UUID) (CreateInvoiceCommand, error) {
	if err := errors.Join(orderID.Validate(), customerID.Validate()); err != nil {
		return CreateInvoiceCommand{}, err
	}

	return CreateInvoiceCommand{
		orderID:    orderID,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
}

// OrderID returns the order to invoice.
func (c CreateInvoiceCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerID returns the requesting customer.
func (c CreateInvoiceCommand) CustomerID() kernel.UUID { return c.customerID }
