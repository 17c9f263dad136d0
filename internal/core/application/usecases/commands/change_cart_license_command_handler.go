package commands

import (
	"context"

	"melodia/internal/pkg/errs"
)

// ChangeCartLicenseCommandHandler switches a cart item's license tier.
// Only the cart owner may change their items.
type ChangeCartLicenseCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewChangeCartLicenseCommandHandler creates a handler for tier changes.
func NewChangeCartLicenseCommandHandler(uowFactory CartUoWFactory) ChangeCartLicenseCommandHandler {
	return ChangeCartLicenseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the item, checks ownership, and applies the tier change.
func (h *ChangeCartLicenseCommandHandler) Handle(ctx context.Context, cmd ChangeCartLicenseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	item, err := cartRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}
	if !item.UserID().IsEqual(cmd.UserID()) {
		return errs.NewForbiddenError(cmd.UserID().String(), "change this cart item")
	}

	if err = item.ChangeTier(cmd.Tier()); err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
