// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows and
// flushing the aggregate's pending audit entries alongside the order itself.
package orderrepo

import (
	"time"

	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Identifiers, statuses and monetary amounts are stored as text so the raw
// read-side queries stay legible; prices map to decimal columns.
type OrderDTO struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	Number     string `gorm:"uniqueIndex"`
	CustomerID string `gorm:"type:uuid;index"`
	ComposerID string `gorm:"type:uuid;index"`

	Title          string
	Description    string
	Requirements   string
	ReferenceLinks string
	Notes          string

	RequestedBudget *string `gorm:"type:decimal(12,2)"`
	OfferedPrice    *string `gorm:"type:decimal(12,2)"`
	PaymentModel    string
	ProductionDays  int

	IncludedRevisions int
	UsedRevisions     int
	MaxRevisions      int

	FinalMusicURL string
	Status        string `gorm:"index"`

	CreatedAt       time.Time
	OfferAcceptedAt *time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// HistoryEntryDTO represents one row of the append-only order audit trail.
type HistoryEntryDTO struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	OrderID   string `gorm:"type:uuid;index"`
	Status    string
	Message   string
	ActorID   string `gorm:"type:uuid"`
	CreatedAt time.Time
}

// TableName specifies the database table name for audit entries.
func (HistoryEntryDTO) TableName() string {
	return "order_history"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	budget := aggregate.RevisionBudget()

	return OrderDTO{
		ID:                aggregate.ID().String(),
		Number:            aggregate.Number(),
		CustomerID:        aggregate.CustomerID().String(),
		ComposerID:        aggregate.ComposerID().String(),
		Title:             aggregate.Title(),
		Description:       aggregate.Description(),
		Requirements:      aggregate.Requirements(),
		ReferenceLinks:    aggregate.ReferenceLinks(),
		Notes:             aggregate.Notes(),
		RequestedBudget:   moneyToColumn(aggregate.RequestedBudget()),
		OfferedPrice:      moneyToColumn(aggregate.OfferedPrice()),
		PaymentModel:      aggregate.PaymentModel().String(),
		ProductionDays:    aggregate.ProductionDays(),
		IncludedRevisions: budget.Included(),
		UsedRevisions:     budget.Used(),
		MaxRevisions:      budget.Max(),
		FinalMusicURL:     aggregate.FinalMusicURL(),
		Status:            aggregate.Status().String(),
		CreatedAt:         aggregate.CreatedAt(),
		OfferAcceptedAt:   aggregate.OfferAcceptedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
}

// historyFromDomain converts a pending audit entry to its database row.
func historyFromDomain(entry order.HistoryEntry) HistoryEntryDTO {
	return HistoryEntryDTO{
		ID:        entry.ID().String(),
		OrderID:   entry.OrderID().String(),
		Status:    entry.Status().String(),
		Message:   entry.Message(),
		ActorID:   entry.ActorID().String(),
		CreatedAt: entry.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// The restored status doubles as the compare-and-swap guard for the next update.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromString(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	composerID, err := kernel.UUIDFromString(dto.ComposerID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentModel, err := order.ParsePaymentModel(dto.PaymentModel)
	if err != nil {
		return nil, err
	}

	requestedBudget, err := moneyFromColumn(dto.RequestedBudget)
	if err != nil {
		return nil, err
	}
	offeredPrice, err := moneyFromColumn(dto.OfferedPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                id,
		Number:            dto.Number,
		CustomerID:        customerID,
		ComposerID:        composerID,
		Title:             dto.Title,
		Description:       dto.Description,
		Requirements:      dto.Requirements,
		ReferenceLinks:    dto.ReferenceLinks,
		Notes:             dto.Notes,
		RequestedBudget:   requestedBudget,
		OfferedPrice:      offeredPrice,
		PaymentModel:      paymentModel,
		ProductionDays:    dto.ProductionDays,
		IncludedRevisions: dto.IncludedRevisions,
		UsedRevisions:     dto.UsedRevisions,
		MaxRevisions:      dto.MaxRevisions,
		FinalMusicURL:     dto.FinalMusicURL,
		Status:            status,
		CreatedAt:         dto.CreatedAt,
		OfferAcceptedAt:   dto.OfferAcceptedAt,
		UpdatedAt:         dto.UpdatedAt,
	})
}

// historyToDomain converts a database row to an audit trail entry.
func historyToDomain(dto HistoryEntryDTO) (order.HistoryEntry, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return order.HistoryEntry{}, err
	}
	orderID, err := kernel.UUIDFromString(dto.OrderID)
	if err != nil {
		return order.HistoryEntry{}, err
	}
	actorID, err := kernel.UUIDFromString(dto.ActorID)
	if err != nil {
		return order.HistoryEntry{}, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return order.HistoryEntry{}, err
	}

	return order.RestoreHistoryEntry(id, orderID, actorID, status, dto.Message, dto.CreatedAt)
}

func moneyToColumn(m *kernel.Money) *string {
	if m == nil {
		return nil
	}
	s := m.String()
	return &s
}

func moneyFromColumn(s *string) (*kernel.Money, error) {
	if s == nil {
		return nil, nil
	}
	m, err := kernel.MoneyFromString(*s)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
