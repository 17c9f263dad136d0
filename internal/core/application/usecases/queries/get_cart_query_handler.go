package queries

import (
	"context"
	"database/sql"

	"melodia/internal/core/domain/model/catalog"
	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCartQueryHandler reads the user's cart and prices every line through
// the license pricing engine: stored tier override when one exists,
// otherwise base price times tier multiplier; order lines are priced at
// the accepted offer.
type GetCartQueryHandler struct {
	db      *gorm.DB
	pricing services.LicensePricingEngine
}

// NewGetCartQueryHandler creates a handler for cart queries.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db, pricing: services.NewLicensePricingEngine()}
}

// Handle executes the query and returns the priced cart.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartResponse, error) {
	if err := query.Validate(); err != nil {
		return CartResponse{}, err
	}

	resp := CartResponse{Items: make([]CartItemResponse, 0)}
	total := decimal.Zero

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ci.id,
			ci.track_id,
			ci.order_id,
			ci.tier,
			ci.added_at,
			t.title,
			t.base_price,
			tp.price,
			o.title,
			o.offered_price
		FROM cart_items ci
		LEFT JOIN tracks t ON t.id = ci.track_id
		LEFT JOIN track_prices tp ON tp.track_id = ci.track_id AND tp.tier = ci.tier
		LEFT JOIN orders o ON o.id = ci.order_id
		WHERE ci.user_id = ?
		ORDER BY ci.added_at, ci.id
	`, query.UserID().String()).Rows()
	if err != nil {
		return CartResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item CartItemResponse
		var trackID, orderID, trackTitle, orderTitle sql.NullString
		var basePrice, tierPrice, offeredPrice sql.NullString

		err = rows.Scan(
			&item.ID,
			&trackID,
			&orderID,
			&item.Tier,
			&item.AddedAt,
			&trackTitle,
			&basePrice,
			&tierPrice,
			&orderTitle,
			&offeredPrice,
		)
		if err != nil {
			return CartResponse{}, err
		}

		price, err := h.priceLine(item.Tier, trackID.Valid, basePrice, tierPrice, offeredPrice)
		if err != nil {
			return CartResponse{}, err
		}

		item.TrackID = trackID.String
		item.OrderID = orderID.String
		if trackID.Valid {
			item.Title = trackTitle.String
		} else {
			item.Title = orderTitle.String
		}
		item.Price = price.Float64()
		total = total.Add(price.Decimal())
		resp.Items = append(resp.Items, item)
	}

	if err = rows.Err(); err != nil {
		return CartResponse{}, err
	}

	resp.Total, _ = total.Float64()
	return resp, nil
}

func (h GetCartQueryHandler) priceLine(
	tierName string, isTrack bool, basePrice, tierPrice, offeredPrice sql.NullString,
) (kernel.Money, error) {
	if !isTrack {
		return kernel.MoneyFromString(offeredPrice.String)
	}

	tier, err := catalog.ParseLicenseTier(tierName)
	if err != nil {
		return kernel.Money{}, err
	}

	var override *kernel.Money
	if tierPrice.Valid {
		stored, storedErr := kernel.MoneyFromString(tierPrice.String)
		if storedErr != nil {
			return kernel.Money{}, storedErr
		}
		override = &stored
	}

	base, err := kernel.MoneyFromString(basePrice.String)
	if err != nil {
		return kernel.Money{}, err
	}

	return h.pricing.ResolveTierPrice(base, override, tier), nil
}
