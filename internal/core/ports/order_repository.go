// Package ports defines repository and collaborator interfaces for the
// marketplace domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Returns a ConflictError when the generated order number collides
	// with an existing one; callers regenerate and retry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, guarded by
	// the status observed at load time. A concurrent transition makes
	// the guard fail and Update returns a ConflictError without writing
	// anything. Pending history entries are written in the same
	// transaction as the order row.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetHistory retrieves the order's audit trail, oldest first.
	GetHistory(ctx context.Context, orderID kernel.UUID) ([]order.HistoryEntry, error)

	// GetAllByParticipant retrieves all orders the actor takes part in,
	// as customer or as composer, newest first.
	GetAllByParticipant(ctx context.Context, actorID kernel.UUID) ([]*order.Order, error)

	// GetAllAwaitingOffer retrieves orders sitting in PENDING or
	// OFFER_PENDING. Used by the reminder job.
	GetAllAwaitingOffer(ctx context.Context) ([]*order.Order, error)
}
