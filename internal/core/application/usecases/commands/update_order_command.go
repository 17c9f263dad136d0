package commands

import (
	"errors"

	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/core/domain/model/order"
	"melodia/internal/pkg/errs"
	"melodia/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents the customer editing order content before
// the offer is accepted. The patch touches only the fields it names.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	patch      order.UpdatePatch

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to patch an order's content.
// An empty patch is rejected; the aggregate validates field contents.
func NewUpdateOrderCommand(orderID, customerID kernel.UUID, patch order.UpdatePatch) (UpdateOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), customerID.Validate()); err != nil {
		return UpdateOrderCommand{}, err
	}
	if patch.IsEmpty() {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("patch")
	}

	return UpdateOrderCommand{
		orderID:    orderID,
		customerID: customerID,
		patch:      patch,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order to edit.
func (c UpdateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerID returns the editing customer.
func (c UpdateOrderCommand) CustomerID() kernel.UUID { return c.customerID }

// Patch returns the partial update.
func (c UpdateOrderCommand) Patch() order.UpdatePatch { return c.patch }
