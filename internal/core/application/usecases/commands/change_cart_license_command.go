package commands

import (
	"errors"

	"melodia/internal/core/domain/model/catalog"
	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/pkg/guard"
)

var ErrChangeCartLicenseCommandIsNotConstructed = errors.New(
	"ChangeCartLicenseCommand must be created via NewChangeCartLicenseCommand constructor",
)

// ChangeCartLicenseCommand switches an existing cart item to another
// license tier.
type ChangeCartLicenseCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	userID kernel.UUID
	tier   catalog.LicenseTier

	guard guard.ConstructorGuard
}

// NewChangeCartLicenseCommand creates a command to change an item's tier.
func NewChangeCartLicenseCommand(itemID, userID kernel.UUID, tier catalog.LicenseTier) (ChangeCartLicenseCommand, error) {
	if err := errors.Join(itemID.Validate(), userID.Validate(), tier.Validate()); err != nil {
		return ChangeCartLicenseCommand{}, err
	}

	return ChangeCartLicenseCommand{
		itemID: itemID,
		userID: userID,
		tier:   tier,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeCartLicenseCommand) Validate() error {
	return c.guard.Validate(ErrChangeCartLicenseCommandIsNotConstructed)
}

// ItemID returns the cart item to change.
func (c ChangeCartLicenseCommand) ItemID() kernel.UUID { return c.itemID }

// UserID returns the cart owner.
func (c ChangeCartLicenseCommand) UserID() kernel.UUID { return c.userID }

// Tier returns the new license tier.
func (c ChangeCartLicenseCommand) Tier() catalog.LicenseTier { return c.tier }
