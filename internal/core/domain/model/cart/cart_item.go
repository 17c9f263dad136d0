package cart

import (
	"errors"
	"time"

	"melodia/internal/core/domain/model/catalog"
	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/pkg/errs"
)

// ErrCartItemIsNotConstructed is returned when a CartItem instance was not
// created through a constructor.
var ErrCartItemIsNotConstructed = errors.New("CartItem must be created via NewTrackItem, NewOrderItem or RestoreCartItem")

// CartItem is one line of a customer's cart. It references exactly one
// subject, a catalog track or a completed custom order, and the license
// tier the customer intends to buy it under.
type CartItem struct {
	id     kernel.UUID
	userID kernel.UUID

	trackID *kernel.UUID
	orderID *kernel.UUID

	tier    catalog.LicenseTier
	addedAt time.Time

	isConstructed bool
}

// NewTrackItem adds a catalog track to the customer's cart.
func NewTrackItem(id, userID, trackID kernel.UUID, tier catalog.LicenseTier) (*CartItem, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), trackID.Validate(), tier.Validate()); err != nil {
		return nil, err
	}

	return &CartItem{
		id:            id,
		userID:        userID,
		trackID:       &trackID,
		tier:          tier,
		addedAt:       time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// NewOrderItem adds a completed custom order to the customer's cart for
// license purchase. The caller checks the order is completed and belongs
// to the customer.
func NewOrderItem(id, userID, orderID kernel.UUID, tier catalog.LicenseTier) (*CartItem, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), orderID.Validate(), tier.Validate()); err != nil {
		return nil, err
	}

	return &CartItem{
		id:            id,
		userID:        userID,
		orderID:       &orderID,
		tier:          tier,
		addedAt:       time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreCartItem reconstructs a cart item from persistence. Exactly one
// of trackID and orderID must be set.
func RestoreCartItem(
	id, userID kernel.UUID, trackID, orderID *kernel.UUID, tier catalog.LicenseTier, addedAt time.Time,
) (*CartItem, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), tier.Validate()); err != nil {
		return nil, err
	}
	if (trackID == nil) == (orderID == nil) {
		return nil, errs.NewValueIsInvalidError("cart item must reference exactly one of track and order")
	}

	return &CartItem{
		id:            id,
		userID:        userID,
		trackID:       trackID,
		orderID:       orderID,
		tier:          tier,
		addedAt:       addedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the CartItem was created through a constructor.
func (c *CartItem) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two cart items by identifier.
func (c *CartItem) IsEqual(other *CartItem) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (c *CartItem) ID() kernel.UUID { return c.id }

// UserID returns the cart owner.
func (c *CartItem) UserID() kernel.UUID { return c.userID }

// TrackID returns the referenced catalog track, nil for order items.
func (c *CartItem) TrackID() *kernel.UUID { return c.trackID }

// OrderID returns the referenced custom order, nil for track items.
func (c *CartItem) OrderID() *kernel.UUID { return c.orderID }

// Tier returns the chosen license tier.
func (c *CartItem) Tier() catalog.LicenseTier { return c.tier }

// AddedAt returns when the item entered the cart.
func (c *CartItem) AddedAt() time.Time { return c.addedAt }

// IsSameSubject reports whether both items reference the same track or
// the same order, regardless of tier. The cart holds at most one item per
// subject per customer; adding the same subject again replaces the tier.
func (c *CartItem) IsSameSubject(other *CartItem) bool {
	if other == nil {
		return false
	}
	if c.trackID != nil && other.trackID != nil {
		return c.trackID.IsEqual(*other.trackID)
	}
	if c.orderID != nil && other.orderID != nil {
		return c.orderID.IsEqual(*other.orderID)
	}
	return false
}

// ChangeTier switches the item to another license tier.
func (c *CartItem) ChangeTier(tier catalog.LicenseTier) error {
	if err := tier.Validate(); err != nil {
		return err
	}
	c.tier = tier
	return nil
}
