package commands

import (
	"errors"

	"melodia/internal/pkg/guard"
)

var ErrRemindPendingOffersCommandIsNotConstructed = errors.New(
	"RemindPendingOffersCommand must be created via NewRemindPendingOffersCommand constructor",
)

// RemindPendingOffersCommand triggers reminder notifications for orders
// still waiting on composer terms. The command changes no state; it only
// fans out notifications through the dispatcher port.
type RemindPendingOffersCommand struct {
	guard guard.ConstructorGuard
}

// NewRemindPendingOffersCommand creates a new parameterless reminder command.
func NewRemindPendingOffersCommand() RemindPendingOffersCommand {
	return RemindPendingOffersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c RemindPendingOffersCommand) Validate() error {
	return c.guard.Validate(ErrRemindPendingOffersCommandIsNotConstructed)
}
