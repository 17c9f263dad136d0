package commands

import (
	"context"
	"errors"
	"time"

	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/core/domain/model/order"
	"melodia/internal/pkg/errs"
)

// Order numbers are random within a year, so an insert can collide with
// an existing number. The handler regenerates and retries a few times
// before giving up.
const maxNumberAttempts = 3

// CreateOrderCommandHandler handles the business logic for order creation.
// Fans out one PENDING order per addressed composer inside a single
// transaction; either all orders are created or none.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the identifiers
// of the created orders, one per composer, in the command's composer
// order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) ([]kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	createdIDs := make([]kernel.UUID, 0, len(cmd.ComposerIDs()))

	for _, composerID := range cmd.ComposerIDs() {
		var lastErr error
		for attempt := 0; attempt < maxNumberAttempts; attempt++ {
			o, err := order.NewOrder(
				kernel.NewUUID(), order.GenerateNumber(time.Now()),
				cmd.CustomerID(), composerID, cmd.Details())
			if err != nil {
				return nil, err
			}

			lastErr = orderRepo.Add(ctx, o)
			if lastErr == nil {
				createdIDs = append(createdIDs, o.ID())
				break
			}
			if !errors.Is(lastErr, errs.ErrConflict) {
				return nil, lastErr
			}
		}
		if lastErr != nil {
			return nil, lastErr
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return createdIDs, nil
}
