package commands

import (
	"context"

	"melodia/internal/core/ports"
)

// RemindPendingOffersCommandHandler notifies composers of orders sitting
// in PENDING or OFFER_PENDING. Reminders are best effort: a failed
// notification is reported but does not stop the remaining fan-out, and
// nothing is persisted.
type RemindPendingOffersCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewRemindPendingOffersCommandHandler creates a handler for offer reminders.
func NewRemindPendingOffersCommandHandler(
	uowFactory OrderUoWFactory, dispatcher ports.NotificationDispatcher,
) RemindPendingOffersCommandHandler {
	return RemindPendingOffersCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle reads the awaiting orders and dispatches one reminder per order.
// Returns the number of reminders sent and the first dispatch error, if any.
func (h *RemindPendingOffersCommandHandler) Handle(ctx context.Context, cmd RemindPendingOffersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllAwaitingOffer(ctx)
	if err != nil {
		return 0, err
	}

	sent := 0
	var firstErr error
	for _, o := range orders {
		if dispatchErr := h.dispatcher.NotifyPendingOffer(ctx, o.ComposerID(), o.ID(), o.Number()); dispatchErr != nil {
			if firstErr == nil {
				firstErr = dispatchErr
			}
			continue
		}
		sent++
	}

	return sent, firstErr
}
