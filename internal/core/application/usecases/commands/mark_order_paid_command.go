package commands

import (
	"errors"

	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/pkg/guard"
)

var ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
	"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
)

// MarkOrderPaidCommand records a successful payment capture, reported by
// the payment collaborator, for the order's customer.
type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderPaidCommand creates a command to mark the order paid.
func NewMarkOrderPaidCommand(orderID, customerID kernel.UUID) (MarkOrderPaidCommand, error) {
	if err := errors.Join(orderID.Validate(), customerID.Validate()); err != nil {
		return MarkOrderPaidCommand{}, err
	}

	return MarkOrderPaidCommand{
		orderID:    orderID,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

// OrderID returns the paid order.
func (c MarkOrderPaidCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerID returns the paying customer.
func (c MarkOrderPaidCommand) CustomerID() kernel.UUID { return c.customerID }
