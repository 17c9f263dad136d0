package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists an actor's orders straight from the
// database, newest first.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the actor's orders.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderSummaryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			customer_id,
			composer_id,
			title,
			status,
			offered_price,
			payment_model,
			used_revisions,
			max_revisions,
			created_at,
			updated_at
		FROM orders
		WHERE customer_id = ? OR composer_id = ?
		ORDER BY created_at DESC
	`, query.ActorID().String(), query.ActorID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp OrderSummaryResponse
		var offeredPrice sql.NullFloat64

		err = rows.Scan(
			&resp.ID,
			&resp.Number,
			&resp.CustomerID,
			&resp.ComposerID,
			&resp.Title,
			&resp.Status,
			&offeredPrice,
			&resp.PaymentModel,
			&resp.UsedRevisions,
			&resp.MaxRevisions,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if offeredPrice.Valid {
			resp.OfferedPrice = &offeredPrice.Float64
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
