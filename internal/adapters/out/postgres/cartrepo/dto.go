// Package cartrepo persists cart items. A cart is not an aggregate of its
// own, just the set of a user's items, so the repository works on single
// rows plus a purge used by order cancellation.
package cartrepo

import (
	"time"

	"melodia/internal/core/domain/model/cart"
	"melodia/internal/core/domain/model/catalog"
	"melodia/internal/core/domain/model/kernel"
)

// CartItemDTO represents the database structure for persisting cart items.
// Exactly one of TrackID and OrderID is set. The composite unique indexes
// hold at most one row per user and subject; the column that is NULL on a
// given row never collides.
type CartItemDTO struct {
	ID      string  `gorm:"type:uuid;primaryKey"`
	UserID  string  `gorm:"type:uuid;index;uniqueIndex:idx_cart_items_user_track;uniqueIndex:idx_cart_items_user_order"`
	TrackID *string `gorm:"type:uuid;uniqueIndex:idx_cart_items_user_track"`
	OrderID *string `gorm:"type:uuid;index;uniqueIndex:idx_cart_items_user_order"`
	Tier    string
	AddedAt time.Time
}

// TableName specifies the database table name for cart items.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart item to its database representation.
func fromDomain(item *cart.CartItem) CartItemDTO {
	return CartItemDTO{
		ID:      item.ID().String(),
		UserID:  item.UserID().String(),
		TrackID: uuidToColumn(item.TrackID()),
		OrderID: uuidToColumn(item.OrderID()),
		Tier:    item.Tier().String(),
		AddedAt: item.AddedAt(),
	}
}

// toDomain converts a database row to a cart item.
func toDomain(dto CartItemDTO) (*cart.CartItem, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromString(dto.UserID)
	if err != nil {
		return nil, err
	}
	trackID, err := uuidFromColumn(dto.TrackID)
	if err != nil {
		return nil, err
	}
	orderID, err := uuidFromColumn(dto.OrderID)
	if err != nil {
		return nil, err
	}
	tier, err := catalog.ParseLicenseTier(dto.Tier)
	if err != nil {
		return nil, err
	}

	return cart.RestoreCartItem(id, userID, trackID, orderID, tier, dto.AddedAt)
}

func uuidToColumn(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func uuidFromColumn(s *string) (*kernel.UUID, error) {
	if s == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
