package trackrepo

import (
	"context"
	"errors"

	"melodia/internal/core/domain/model/catalog"
	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTrackRepository implements TrackRepository using GORM.
type GormTrackRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTrackRepository creates a new GORM track repository.
func NewGormTrackRepository(db *gorm.DB, tracker aggregateTracker) *GormTrackRepository {
	return &GormTrackRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly listed track with its tier price overrides.
func (r *GormTrackRepository) Add(ctx context.Context, aggregate *catalog.Track) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, priceDTOs := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if len(priceDTOs) > 0 {
		if err := r.db.WithContext(ctx).Create(&priceDTOs).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to an existing track. Tier price overrides are
// replaced wholesale, which keeps removed overrides from lingering.
func (r *GormTrackRepository) Update(ctx context.Context, aggregate *catalog.Track) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, priceDTOs := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TrackDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("track", dto.ID)
	}

	if err := r.db.WithContext(ctx).Delete(&TrackPriceDTO{}, "track_id = ?", dto.ID).Error; err != nil {
		return err
	}
	if len(priceDTOs) > 0 {
		if err := r.db.WithContext(ctx).Create(&priceDTOs).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a track by ID, tier price overrides included.
func (r *GormTrackRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Track, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TrackDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("track", id.String())
		}
		return nil, err
	}

	var priceDTOs []TrackPriceDTO
	if err := r.db.WithContext(ctx).Find(&priceDTOs, "track_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, priceDTOs)
}
