package commands

import (
	"errors"

	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/pkg/guard"
)

var ErrAcceptOfferCommandIsNotConstructed = errors.New(
	"AcceptOfferCommand must be created via NewAcceptOfferCommand constructor",
)

// AcceptOfferCommand represents the customer's acceptance of the current
// offer, making its terms binding.
type AcceptOfferCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOfferCommand creates a command to accept the pending offer.
func NewAcceptOfferCommand(orderID, customerID kernel.UUID) (AcceptOfferCommand, error) {
	if err := errors.Join(orderID.Validate(), customerID.Validate()); err != nil {
		return AcceptOfferCommand{}, err
	}

	return AcceptOfferCommand{
		orderID:    orderID,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOfferCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOfferCommandIsNotConstructed)
}

// OrderID returns the order whose offer is accepted.
func (c AcceptOfferCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerID returns the accepting customer.
func (c AcceptOfferCommand) CustomerID() kernel.UUID { return c.customerID }
