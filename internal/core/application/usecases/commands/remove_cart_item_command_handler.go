package commands

import (
	"context"

	"melodia/internal/pkg/errs"
)

// RemoveCartItemCommandHandler removes one item from the customer's cart.
// Only the cart owner may remove their items.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartItemCommandHandler creates a handler for cart removals.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the item, checks ownership, and deletes it.
func (h *RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
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
		return errs.NewForbiddenError(cmd.UserID().String(), "remove this cart item")
	}

	if err = cartRepo.Delete(ctx, item.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
