package order

import (
	"strings"
	"time"

	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/pkg/errs"
)

// HistoryEntry is one row of the order's append-only audit trail.
// Exactly one entry is written per lifecycle transition, atomically with
// the transition itself. Entries are never rewritten or deleted; ordering
// is creation-time ascending.
type HistoryEntry struct {
	id        kernel.UUID
	orderID   kernel.UUID
	status    Status
	message   string
	actorID   kernel.UUID
	createdAt time.Time
}

// NewHistoryEntry creates an audit entry for a transition that just
// happened. status is the status the order holds after the transition.
func NewHistoryEntry(orderID, actorID kernel.UUID, status Status, message string) (HistoryEntry, error) {
	if err := orderID.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if err := actorID.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if strings.TrimSpace(message) == "" {
		return HistoryEntry{}, errs.NewValueIsRequiredError("message")
	}

	return HistoryEntry{
		id:        kernel.NewUUID(),
		orderID:   orderID,
		status:    status,
		message:   message,
		actorID:   actorID,
		createdAt: time.Now().UTC(),
	}, nil
}

// RestoreHistoryEntry reconstructs an entry from persistence.
func RestoreHistoryEntry(
	id, orderID, actorID kernel.UUID, status Status, message string, createdAt time.Time,
) (HistoryEntry, error) {
	if err := id.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if err := orderID.Validate(); err != nil {
		return HistoryEntry{}, err
	}

	return HistoryEntry{
		id:        id,
		orderID:   orderID,
		status:    status,
		message:   message,
		actorID:   actorID,
		createdAt: createdAt,
	}, nil
}

// ID returns the entry's unique identifier.
func (h HistoryEntry) ID() kernel.UUID { return h.id }

// OrderID returns the order the entry belongs to.
func (h HistoryEntry) OrderID() kernel.UUID { return h.orderID }

// Status returns the order status at the time of the entry.
func (h HistoryEntry) Status() Status { return h.status }

// Message returns the human-readable description of the transition.
func (h HistoryEntry) Message() string { return h.message }

// ActorID returns who triggered the transition.
func (h HistoryEntry) ActorID() kernel.UUID { return h.actorID }

// CreatedAt returns when the entry was written.
func (h HistoryEntry) CreatedAt() time.Time { return h.createdAt }
