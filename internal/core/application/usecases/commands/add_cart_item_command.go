package commands

import (
	"errors"

	"melodia/internal/core/domain/model/catalog"
	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/pkg/errs"
	"melodia/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand represents a customer putting a purchasable subject,
// a catalog track or one of their completed custom orders, into the cart
// under a license tier. Adding a subject already in the cart replaces its
// tier instead of duplicating the line.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.UUID
	trackID *kernel.UUID
	orderID *kernel.UUID
	tier    catalog.LicenseTier

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add a subject to the cart.
// Exactly one of trackID and orderID must be set.
func NewAddCartItemCommand(userID kernel.UUID, trackID, orderID *kernel.UUID, tier catalog.LicenseTier) (AddCartItemCommand, error) {
	if err := errors.Join(userID.Validate(), tier.Validate()); err != nil {
		return AddCartItemCommand{}, err
	}
	if (trackID == nil) == (orderID == nil) {
		return AddCartItemCommand{}, errs.NewValueIsInvalidError("exactly one of trackId and orderId is required")
	}
	if trackID != nil {
		if err := trackID.Validate(); err != nil {
			return AddCartItemCommand{}, err
		}
	}
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return AddCartItemCommand{}, err
		}
	}

	return AddCartItemCommand{
		userID:  userID,
		trackID: trackID,
		orderID: orderID,
		tier:    tier,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// UserID returns the cart owner.
func (c AddCartItemCommand) UserID() kernel.UUID { return c.userID }

// TrackID returns the catalog track to add, nil for order items.
func (c AddCartItemCommand) TrackID() *kernel.UUID { return c.trackID }

// OrderID returns the completed order to add, nil for track items.
func (c AddCartItemCommand) OrderID() *kernel.UUID { return c.orderID }

// Tier returns the chosen license tier.
func (c AddCartItemCommand) Tier() catalog.LicenseTier { return c.tier }
