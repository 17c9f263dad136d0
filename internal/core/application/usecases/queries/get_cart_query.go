package queries

import (
	"errors"
	"time"

	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves the user's cart with effective prices. Prices
// are computed at read time, so a changed tier price or base price is
// reflected immediately; the cart stores no amounts.
type GetCartQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the user's cart.
func NewGetCartQuery(userID kernel.UUID) (GetCartQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// UserID returns whose cart is read.
func (q GetCartQuery) UserID() kernel.UUID { return q.userID }

// CartItemResponse is one priced cart line.
type CartItemResponse struct {
	ID      string    `json:"id"`
	TrackID string    `json:"trackId,omitempty"`
	OrderID string    `json:"orderId,omitempty"`
	Title   string    `json:"title"`
	Tier    string    `json:"tier"`
	Price   float64   `json:"price"`
	AddedAt time.Time `json:"addedAt"`
}

// CartResponse is the user's priced cart.
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total float64            `json:"total"`
}
