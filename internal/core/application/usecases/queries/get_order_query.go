package queries

import (
	"errors"
	"time"

	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order in full, including its audit trail.
// Only the order's participants may read it; the handler enforces that.
type GetOrderQuery struct {
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID, actorID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{orderID: orderID, actorID: actorID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// ActorID returns who is asking.
func (q GetOrderQuery) ActorID() kernel.UUID { return q.actorID }

// HistoryEntryResponse is one audit trail row.
type HistoryEntryResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	ActorID   string    `json:"actorId"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderDetailResponse is the full read model of one order.
type OrderDetailResponse struct {
	ID                string                 `json:"id"`
	Number            string                 `json:"number"`
	CustomerID        string                 `json:"customerId"`
	ComposerID        string                 `json:"composerId"`
	Title             string                 `json:"title"`
	Description       string                 `json:"description"`
	Requirements      string                 `json:"requirements,omitempty"`
	ReferenceLinks    string                 `json:"referenceLinks,omitempty"`
	Notes             string                 `json:"notes,omitempty"`
	RequestedBudget   *float64               `json:"requestedBudget,omitempty"`
	OfferedPrice      *float64               `json:"offeredPrice,omitempty"`
	PaymentModel      string                 `json:"paymentModel"`
	ProductionDays    int                    `json:"productionDays"`
	IncludedRevisions int                    `json:"includedRevisions"`
	UsedRevisions     int                    `json:"usedRevisions"`
	MaxRevisions      int                    `json:"maxRevisions"`
	FinalMusicURL     string                 `json:"finalMusicUrl,omitempty"`
	Status            string                 `json:"status"`
	CreatedAt         time.Time              `json:"createdAt"`
	OfferAcceptedAt   *time.Time             `json:"offerAcceptedAt,omitempty"`
	UpdatedAt         time.Time              `json:"updatedAt"`
	History           []HistoryEntryResponse `json:"history"`
}
