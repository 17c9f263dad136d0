package commands

import (
	"errors"

	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand takes one item out of the customer's cart.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove a cart item.
func NewRemoveCartItemCommand(itemID, userID kernel.UUID) (RemoveCartItemCommand, error) {
	if err := errors.Join(itemID.Validate(), userID.Validate()); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return RemoveCartItemCommand{
		itemID: itemID,
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// ItemID returns the cart item to remove.
func (c RemoveCartItemCommand) ItemID() kernel.UUID { return c.itemID }

// UserID returns the cart owner.
func (c RemoveCartItemCommand) UserID() kernel.UUID { return c.userID }
