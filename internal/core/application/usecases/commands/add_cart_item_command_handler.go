package commands

import (
	"context"
	"errors"

	"melodia/internal/core/domain/model/cart"
	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/core/domain/model/order"
	"melodia/internal/pkg/errs"
)

// A concurrent add of the same subject can slip between FindBySubject and
// the insert. The unique index on (user, subject) rejects the loser, whose
// second attempt finds the winner's row and updates the tier instead.
const maxCartAddAttempts = 2

// AddCartItemCommandHandler puts a subject into the customer's cart.
// Track subjects must be listed and available; order subjects must be the
// customer's own completed orders. Re-adding an existing subject updates
// the tier in place.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the subject, then inserts or upserts the cart item.
// Returns the identifier of the resulting item.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	var lastErr error
	for attempt := 0; attempt < maxCartAddAttempts; attempt++ {
		itemID, err := h.insertOrUpdate(ctx, cmd)
		if err == nil {
			return itemID, nil
		}
		if !errors.Is(err, errs.ErrConflict) {
			return kernel.UUID{}, err
		}
		lastErr = err
	}

	return kernel.UUID{}, lastErr
}

// insertOrUpdate runs one attempt in its own transaction. A conflict
// aborts the transaction, so the retry needs a fresh one.
func (h *AddCartItemCommandHandler) insertOrUpdate(ctx context.Context, cmd AddCartItemCommand) (kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := h.checkSubject(ctx, uow, cmd); err != nil {
		return kernel.UUID{}, err
	}

	cartRepo := uow.CartRepository()
	existing, err := cartRepo.FindBySubject(ctx, cmd.UserID(), cmd.TrackID(), cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	var itemID kernel.UUID
	if existing != nil {
		if err = existing.ChangeTier(cmd.Tier()); err != nil {
			return kernel.UUID{}, err
		}
		if err = cartRepo.Update(ctx, existing); err != nil {
			return kernel.UUID{}, err
		}
		itemID = existing.ID()
	} else {
		item, err := h.newItem(cmd)
		if err != nil {
			return kernel.UUID{}, err
		}
		if err = cartRepo.Add(ctx, item); err != nil {
			return kernel.UUID{}, err
		}
		itemID = item.ID()
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return itemID, nil
}

func (h *AddCartItemCommandHandler) checkSubject(ctx context.Context, uow CartUoW, cmd AddCartItemCommand) error {
	if cmd.TrackID() != nil {
		track, err := uow.TrackRepository().Get(ctx, *cmd.TrackID())
		if err != nil {
			return err
		}
		if !track.IsAvailable() {
			return errs.NewValueIsInvalidError("track is no longer available")
		}
		return nil
	}

	o, err := uow.OrderRepository().Get(ctx, *cmd.OrderID())
	if err != nil {
		return err
	}
	if !o.CustomerID().IsEqual(cmd.UserID()) {
		return errs.NewForbiddenError(cmd.UserID().String(), "purchase a license for this order")
	}
	if o.Status() != order.Completed {
		return errs.NewInvalidStateError("add to cart", o.Status().String())
	}
	return nil
}

func (h *AddCartItemCommandHandler) newItem(cmd AddCartItemCommand) (*cart.CartItem, error) {
	if cmd.TrackID() != nil {
		return cart.NewTrackItem(kernel.NewUUID(), cmd.UserID(), *cmd.TrackID(), cmd.Tier())
	}
	return cart.NewOrderItem(kernel.NewUUID(), cmd.UserID(), *cmd.OrderID(), cmd.Tier())
}
