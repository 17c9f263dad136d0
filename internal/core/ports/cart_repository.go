package ports

import (
	"context"

	"melodia/internal/core/domain/model/cart"
	"melodia/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart items.
type CartRepository interface {
	// Add persists a new cart item.
	Add(ctx context.Context, item *cart.CartItem) error

	// Update persists a tier change on an existing item.
	Update(ctx context.Context, item *cart.CartItem) error

	// Get retrieves a cart item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*cart.CartItem, error)

	// GetAllByUser retrieves the user's cart, oldest item first.
	GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*cart.CartItem, error)

	// FindBySubject finds the user's existing item for the same track or
	// order, if any. Supports the add-is-upsert rule.
	FindBySubject(ctx context.Context, userID kernel.UUID, trackID, orderID *kernel.UUID) (*cart.CartItem, error)

	// Delete removes a cart item.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteAllByOrder purges an order from every cart it appears in.
	// Runs inside the cancellation transaction.
	DeleteAllByOrder(ctx context.Context, orderID kernel.UUID) error
}
