package commands

import (
	"errors"
	"fmt"
	"strings"

	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/core/domain/model/order"
	"melodia/internal/pkg/errs"
	"melodia/internal/pkg/guard"
)

var ErrDisputeOrderCommandIsNotConstructed = errors.New(
	"DisputeOrderCommand must be created via NewDisputeOrderCommand constructor",
)

// DisputeOrderCommand represents either party escalating an order to a
// formal dispute.
type DisputeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewDisputeOrderCommand creates a command to dispute an order.
func NewDisputeOrderCommand(orderID, actorID kernel.UUID, reason string) (DisputeOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return DisputeOrderCommand{}, err
	}
	if len(strings.TrimSpace(reason)) < order.MinReasonLength {
		return DisputeOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("reason",
			fmt.Errorf("must be at least %d characters", order.MinReasonLength))
	}

	return DisputeOrderCommand{
		orderID: orderID,
		actorID: actorID,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DisputeOrderCommand) Validate() error {
	return c.guard.Validate(ErrDisputeOrderCommandIsNotConstructed)
}

// OrderID returns the disputed order.
func (c DisputeOrderCommand) OrderID() kernel.UUID { return c.orderID }

// ActorID returns the escalating party.
func (c DisputeOrderCommand) ActorID() kernel.UUID { return c.actorID }

// Reason returns the dispute reason.
func (c DisputeOrderCommand) Reason() string { return c.reason }
