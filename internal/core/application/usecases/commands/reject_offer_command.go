package commands

import (
	"errors"

	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/pkg/guard"
)

var ErrRejectOfferCommandIsNotConstructed = errors.New(
	"RejectOfferCommand must be created via NewRejectOfferCommand constructor",
)

// RejectOfferCommand represents the customer declining the current offer.
// The order returns to PENDING so the composer may re-offer.
type RejectOfferCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewRejectOfferCommand creates a command to decline the pending offer.
// The reason is optional.
func NewRejectOfferCommand(orderID, customerID kernel.UUID, reason string) (RejectOfferCommand, error) {
	if err := errors.Join(orderID.Validate(), customerID.Validate()); err != nil {
		return RejectOfferCommand{}, err
	}

	return RejectOfferCommand{
		orderID:    orderID,
		customerID: customerID,
		reason:     reason,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOfferCommand) Validate() error {
	return c.guard.Validate(ErrRejectOfferCommandIsNotConstructed)
}

// OrderID returns the order whose offer is declined.
func (c RejectOfferCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerID returns the declining customer.
func (c RejectOfferCommand) CustomerID() kernel.UUID { return c.customerID }

// Reason returns the optional rejection reason.
func (c RejectOfferCommand) Reason() string { return c.reason }
