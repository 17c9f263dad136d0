package commands

import (
	"context"
)

// SubmitOfferCommandHandler applies a composer's offer to an order.
// The transition and its audit entry commit atomically; a concurrent
// transition on the same order surfaces as a ConflictError from Update.
type SubmitOfferCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSubmitOfferCommandHandler creates a handler for offer submission.
func NewSubmitOfferCommandHandler(uowFactory OrderUoWFactory) SubmitOfferCommandHandler {
	return SubmitOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, records the offer, and persists the transition.
func (h *SubmitOfferCommandHandler) Handle(ctx context.Context, cmd SubmitOfferCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.SubmitOffer(
		cmd.ComposerID(), cmd.Price(), cmd.ProductionDays(), cmd.IncludedRevisions(), cmd.Message(),
	); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
