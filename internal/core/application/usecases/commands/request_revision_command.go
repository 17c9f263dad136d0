package commands

import (
	"errors"
	"strings"

	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/pkg/errs"
	"melodia/internal/pkg/guard"
)

var ErrRequestRevisionCommandIsNotConstructed = errors.New(
	"RequestRevisionCommand must be created via NewRequestRevisionCommand constructor",
)

// RequestRevisionCommand represents the customer sending a delivered
// track back for rework. Each request spends one revision from the
// order's budget.
type RequestRevisionCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	feedback   string

	guard guard.ConstructorGuard
}

// NewRequestRevisionCommand creates a command to request a revision.
// Feedback is required so the composer knows what to change.
func NewRequestRevisionCommand(orderID, customerID kernel.UUID, feedback string) (RequestRevisionCommand, error) {
	if err := errors.Join(orderID.Validate(), customerID.Validate()); err != nil {
		return RequestRevisionCommand{}, err
	}
	if strings.TrimSpace(feedback) == "" {
		return RequestRevisionCommand{}, errs.NewValueIsRequiredError("feedback")
	}

	return RequestRevisionCommand{
		orderID:    orderID,
		customerID: customerID,
		feedback:   feedback,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestRevisionCommand) Validate() error {
	return c.guard.Validate(ErrRequestRevisionCommandIsNotConstructed)
}

// OrderID returns the order to revise.
func (c RequestRevisionCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerID returns the requesting customer.
func (c RequestRevisionCommand) CustomerID() kernel.UUID { return c.customerID }

// Feedback returns what the customer wants changed.
func (c RequestRevisionCommand) Feedback() string { return c.feedback }
