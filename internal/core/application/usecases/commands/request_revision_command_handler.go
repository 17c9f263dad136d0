package commands

import (
	"context"
)

// RequestRevisionCommandHandler spends one revision from the order's
// budget and sends the track back to the composer. An exhausted budget
// fails the command with RevisionLimitExceeded and no state change.
type RequestRevisionCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRequestRevisionCommandHandler creates a handler for revision requests.
func NewRequestRevisionCommandHandler(uowFactory OrderUoWFactory) RequestRevisionCommandHandler {
	return RequestRevisionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, consumes a revision, and persists the transition.
func (h *RequestRevisionCommandHandler) Handle(ctx context.Context, cmd RequestRevisionCommand) error {
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

	if err = o.RequestRevision(cmd.CustomerID(), cmd.Feedback()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
