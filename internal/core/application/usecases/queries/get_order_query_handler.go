package queries

import (
	"context"
	"database/sql"
	"errors"

	"melodia/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its audit trail. Actors who
// are neither the customer nor the composer get a Forbidden error, not a
// not-found, because the order's existence is no secret between its
// participants only.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order detail.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailResponse{}, err
	}

	var resp OrderDetailResponse
	var requestedBudget, offeredPrice sql.NullFloat64
	var offerAcceptedAt sql.NullTime

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			customer_id,
			composer_id,
			title,
			description,
			requirements,
			reference_links,
			notes,
			requested_budget,
			offered_price,
			payment_model,
			production_days,
			included_revisions,
			used_revisions,
			max_revisions,
			final_music_url,
			status,
			created_at,
			offer_accepted_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.Number,
		&resp.CustomerID,
		&resp.ComposerID,
		&resp.Title,
		&resp.Description,
		&resp.Requirements,
		&resp.ReferenceLinks,
		&resp.Notes,
		&requestedBudget,
		&offeredPrice,
		&resp.PaymentModel,
		&resp.ProductionDays,
		&resp.IncludedRevisions,
		&resp.UsedRevisions,
		&resp.MaxRevisions,
		&resp.FinalMusicURL,
		&resp.Status,
		&resp.CreatedAt,
		&offerAcceptedAt,
		&resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderDetailResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}
	if err != nil {
		return OrderDetailResponse{}, err
	}

	actor := query.ActorID().String()
	if resp.CustomerID != actor && resp.ComposerID != actor {
		return OrderDetailResponse{}, errs.NewForbiddenError(actor, "view this order")
	}

	if requestedBudget.Valid {
		resp.RequestedBudget = &requestedBudget.Float64
	}
	if offeredPrice.Valid {
		resp.OfferedPrice = &offeredPrice.Float64
	}
	if offerAcceptedAt.Valid {
		resp.OfferAcceptedAt = &offerAcceptedAt.Time
	}

	history, err := h.loadHistory(ctx, resp.ID)
	if err != nil {
		return OrderDetailResponse{}, err
	}
	resp.History = history

	return resp, nil
}

func (h GetOrderQueryHandler) loadHistory(ctx context.Context, orderID string) ([]HistoryEntryResponse, error) {
	entries := make([]HistoryEntryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			message,
			actor_id,
			created_at
		FROM order_history
		WHERE order_id = ?
		ORDER BY created_at, id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry HistoryEntryResponse
		if err = rows.Scan(&entry.Status, &entry.Message, &entry.ActorID, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
