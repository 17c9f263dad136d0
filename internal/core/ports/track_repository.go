package ports

import (
	"context"

	"melodia/internal/core/domain/model/catalog"
	"melodia/internal/core/domain/model/kernel"
)

// TrackRepository defines the persistence contract for catalog tracks.
type TrackRepository interface {
	// Add persists a newly listed track.
	Add(ctx context.Context, aggregate *catalog.Track) error

	// Update persists changes to an existing track.
	Update(ctx context.Context, aggregate *catalog.Track) error

	// Get retrieves a track by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Track, error)
}
