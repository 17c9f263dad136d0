// Package trackrepo persists catalog tracks together with their optional
// per-tier price overrides, which live in a separate table keyed by track
// and tier.
package trackrepo

import (
	"time"

	"melodia/internal/core/domain/model/catalog"
	"melodia/internal/core/domain/model/kernel"
)

// TrackDTO represents the database structure for persisting tracks.
type TrackDTO struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	ComposerID string `gorm:"type:uuid;index"`
	Title      string
	Genre      string
	BasePrice  string `gorm:"type:decimal(12,2)"`
	Available  bool
	CreatedAt  time.Time
}

// TableName specifies the database table name for tracks.
func (TrackDTO) TableName() string {
	return "tracks"
}

// TrackPriceDTO represents one per-tier price override.
type TrackPriceDTO struct {
	TrackID string `gorm:"type:uuid;primaryKey"`
	Tier    string `gorm:"primaryKey"`
	Price   string `gorm:"type:decimal(12,2)"`
}

// TableName specifies the database table name for tier price overrides.
func (TrackPriceDTO) TableName() string {
	return "track_prices"
}

// fromDomain converts a track to its database rows.
func fromDomain(aggregate *catalog.Track) (TrackDTO, []TrackPriceDTO) {
	dto := TrackDTO{
		ID:         aggregate.ID().String(),
		ComposerID: aggregate.ComposerID().String(),
		Title:      aggregate.Title(),
		Genre:      aggregate.Genre(),
		BasePrice:  aggregate.BasePrice().String(),
		Available:  aggregate.IsAvailable(),
		CreatedAt:  aggregate.CreatedAt(),
	}

	overrides := aggregate.TierPrices()
	priceDTOs := make([]TrackPriceDTO, 0, len(overrides))
	for _, tier := range catalog.AllLicenseTiers() {
		if price, ok := overrides[tier]; ok {
			priceDTOs = append(priceDTOs, TrackPriceDTO{
				TrackID: dto.ID,
				Tier:    tier.String(),
				Price:   price.String(),
			})
		}
	}

	return dto, priceDTOs
}

// toDomain converts database rows back to a track.
func toDomain(dto TrackDTO, priceDTOs []TrackPriceDTO) (*catalog.Track, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	composerID, err := kernel.UUIDFromString(dto.ComposerID)
	if err != nil {
		return nil, err
	}
	basePrice, err := kernel.MoneyFromString(dto.BasePrice)
	if err != nil {
		return nil, err
	}

	tierPrices := make(map[catalog.LicenseTier]kernel.Money, len(priceDTOs))
	for _, priceDTO := range priceDTOs {
		tier, tierErr := catalog.ParseLicenseTier(priceDTO.Tier)
		if tierErr != nil {
			return nil, tierErr
		}
		price, priceErr := kernel.MoneyFromString(priceDTO.Price)
		if priceErr != nil {
			return nil, priceErr
		}
		tierPrices[tier] = price
	}

	return catalog.RestoreTrack(id, composerID, dto.Title, dto.Genre, basePrice, tierPrices, dto.Available, dto.CreatedAt)
}
