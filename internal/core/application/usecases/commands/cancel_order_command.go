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

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents either party terminating an order. The
// refund outcome is resolved from the order's state at handling time and
// recorded in the audit trail.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order. The reason
// is mandatory and must carry some substance.
func NewCancelOrderCommand(orderID, actorID kernel.UUID, reason string) (CancelOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return CancelOrderCommand{}, err
	}
	if len(strings.TrimSpace(reason)) < order.MinReasonLength {
		return CancelOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("reason",
			fmt.Errorf("must be at least %d characters", order.MinReasonLength))
	}

	return CancelOrderCommand{
		orderID: orderID,
		actorID: actorID,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID { return c.orderID }

// ActorID returns the cancelling party.
func (c CancelOrderCommand) ActorID() kernel.UUID { return c.actorID }

// Reason returns the cancellation reason.
func (c CancelOrderCommand) Reason() string { return c.reason }
