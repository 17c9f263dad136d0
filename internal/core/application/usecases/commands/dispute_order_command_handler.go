package commands

import (
	"context"
)

// DisputeOrderCommandHandler escalates an order to DISPUTED for manual
// resolution by support.
type DisputeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDisputeOrderCommandHandler creates a handler for dispute escalation.
func NewDisputeOrderCommandHandler(uowFactory OrderUoWFactory) DisputeOrderCommandHandler {
	return DisputeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, disputes it, and persists the transition.
func (h *DisputeOrderCommandHandler) Handle(ctx context.Context, cmd DisputeOrderCommand) error {
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

	if err = o.Dispute(cmd.ActorID(), cmd.Reason()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
