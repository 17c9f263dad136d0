// Package queries contains the read side of the CQRS split. Query
// handlers go straight to the database with raw SQL and return flat
// response models; they never load aggregates or take locks.
package queries

import (
	"errors"
	"time"

	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves every order the actor takes part in, as
// customer or as composer.
type GetOrdersQuery struct {
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the actor's orders.
func NewGetOrdersQuery(actorID kernel.UUID) (GetOrdersQuery, error) {
	if err := actorID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{actorID: actorID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// ActorID returns whose orders are listed.
func (q GetOrdersQuery) ActorID() kernel.UUID { return q.actorID }

// OrderSummaryResponse is one row of the actor's order list.
type OrderSummaryResponse struct {
	ID            string     `json:"id"`
	Number        string     `json:"number"`
	CustomerID    string     `json:"customerId"`
	ComposerID    string     `json:"composerId"`
	Title         string     `json:"title"`
	Status        string     `json:"status"`
	OfferedPrice  *float64   `json:"offeredPrice,omitempty"`
	PaymentModel  string     `json:"paymentModel"`
	UsedRevisions int        `json:"usedRevisions"`
	MaxRevisions  int        `json:"maxRevisions"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
