package commands

import (
	"context"

	"melodia/internal/core/domain/services"
)

// CancelOrderCommandHandler terminates an order. It resolves the refund
// outcome from the order's current state and the cancelling party,
// records it in the audit trail, and purges the order from every cart in
// the same transaction; a cancelled order is unpurchasable.
type CancelOrderCommandHandler struct {
	uowFactory OrderCartUoWFactory
	policy     services.CancellationPolicyResolver
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderCartUoWFactory, policy services.CancellationPolicyResolver,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle cancels the order and returns the resolved refund outcome so
// the caller can present it. The policy is resolved from the status the
// order holds before the transition.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (services.CancellationOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return services.CancellationOutcome{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.CancellationOutcome{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return services.CancellationOutcome{}, err
	}

	outcome := h.policy.Resolve(o.Status(), o.RoleOf(cmd.ActorID()))

	if err = o.Cancel(cmd.ActorID(), cmd.Reason(), outcome.Note); err != nil {
		return services.CancellationOutcome{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return services.CancellationOutcome{}, err
	}

	if err = uow.CartRepository().DeleteAllByOrder(ctx, o.ID()); err != nil {
		return services.CancellationOutcome{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.CancellationOutcome{}, err
	}

	return outcome, nil
}
