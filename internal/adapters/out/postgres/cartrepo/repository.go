package cartrepo

import (
	"context"
	"errors"

	"melodia/internal/core/domain/model/cart"
	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new cart item to the database. A concurrent add of the same
// subject for the same user trips the composite unique index; the caller
// gets a conflict and retries as a tier update.
func (r *GormCartRepository) Add(ctx context.Context, item *cart.CartItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("cart subject", subjectID(dto))
		}
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

func subjectID(dto CartItemDTO) string {
	if dto.TrackID != nil {
		return *dto.TrackID
	}
	if dto.OrderID != nil {
		return *dto.OrderID
	}
	return dto.ID
}

// Update saves a tier change on an existing cart item.
func (r *GormCartRepository) Update(ctx context.Context, item *cart.CartItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&CartItemDTO{}).
		Where("id = ?", dto.ID).
		Update("tier", dto.Tier)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cart item", dto.ID)
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Get retrieves a cart item by ID.
func (r *GormCartRepository) Get(ctx context.Context, id kernel.UUID) (*cart.CartItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CartItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByUser retrieves the user's cart, oldest item first.
func (r *GormCartRepository) GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*cart.CartItem, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartItemDTO
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("added_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]*cart.CartItem, 0, len(dtos))
	for _, dto := range dtos {
		item, itemErr := toDomain(dto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return items, nil
}

// FindBySubject finds the user's existing item for the same track or
// order. Returns nil without error when the cart has no such item.
func (r *GormCartRepository) FindBySubject(
	ctx context.Context, userID kernel.UUID, trackID, orderID *kernel.UUID,
) (*cart.CartItem, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	if (trackID == nil) == (orderID == nil) {
		return nil, errs.NewValueIsInvalidError("exactly one of trackId and orderId must be set")
	}

	query := r.db.WithContext(ctx).Where("user_id = ?", userID.String())
	if trackID != nil {
		query = query.Where("track_id = ?", trackID.String())
	} else {
		query = query.Where("order_id = ?", orderID.String())
	}

	var dto CartItemDTO
	if err := query.First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a cart item.
func (r *GormCartRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&CartItemDTO{}, "id = ?", id.String()).Error
}

// DeleteAllByOrder purges a cancelled order from every cart it appears in.
func (r *GormCartRepository) DeleteAllByOrder(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&CartItemDTO{}, "order_id = ?", orderID.String()).Error
}
