package catalog

import (
	"errors"
	"strings"
	"time"

	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/pkg/errs"
)

// MinTrackTitleLength is the minimum length of a listed track title.
const MinTrackTitleLength = 2

// ErrTrackIsNotConstructed is returned when a Track instance was not
// created through NewTrack or RestoreTrack.
var ErrTrackIsNotConstructed = errors.New("Track must be created via NewTrack or RestoreTrack")

// Track is a published, ready-made piece of music listed on the
// marketplace. tierPrices holds optional per-tier overrides of the base
// price; tiers without an override are priced by multiplier.
type Track struct {
	id         kernel.UUID
	composerID kernel.UUID

	title     string
	genre     string
	basePrice kernel.Money

	tierPrices map[LicenseTier]kernel.Money

	available bool
	createdAt time.Time

	isConstructed bool
}

// NewTrack lists a new track with the given base price. The track starts
// available with no per-tier overrides.
func NewTrack(id, composerID kernel.UUID, title, genre string, basePrice kernel.Money) (*Track, error) {
	if err := errors.Join(id.Validate(), composerID.Validate()); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(title)) < MinTrackTitleLength {
		return nil, errs.NewValueIsInvalidError("title")
	}
	if !basePrice.IsPositive() {
		return nil, errs.NewValueIsInvalidError("basePrice must be positive")
	}

	return &Track{
		id:            id,
		composerID:    composerID,
		title:         title,
		genre:         genre,
		basePrice:     basePrice,
		tierPrices:    map[LicenseTier]kernel.Money{},
		available:     true,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreTrack reconstructs a track from persistence. tierPrices may be
// nil when no overrides are stored.
func RestoreTrack(
	id, composerID kernel.UUID, title, genre string, basePrice kernel.Money,
	tierPrices map[LicenseTier]kernel.Money, available bool, createdAt time.Time,
) (*Track, error) {
	if err := errors.Join(id.Validate(), composerID.Validate()); err != nil {
		return nil, err
	}
	if tierPrices == nil {
		tierPrices = map[LicenseTier]kernel.Money{}
	}

	return &Track{
		id:            id,
		composerID:    composerID,
		title:         title,
		genre:         genre,
		basePrice:     basePrice,
		tierPrices:    tierPrices,
		available:     available,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Track was created through a constructor.
func (t *Track) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTrackIsNotConstructed
	}
	return nil
}

// IsEqual compares two tracks by identifier.
func (t *Track) IsEqual(other *Track) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the track's unique identifier.
func (t *Track) ID() kernel.UUID { return t.id }

// ComposerID returns the track's author.
func (t *Track) ComposerID() kernel.UUID { return t.composerID }

// Title returns the track title.
func (t *Track) Title() string { return t.title }

// Genre returns the track genre label.
func (t *Track) Genre() string { return t.genre }

// BasePrice returns the anchor price scaled by tier multipliers.
func (t *Track) BasePrice() kernel.Money { return t.basePrice }

// IsAvailable reports whether the track may still be added to carts.
func (t *Track) IsAvailable() bool { return t.available }

// CreatedAt returns when the track was listed.
func (t *Track) CreatedAt() time.Time { return t.createdAt }

// TierPrice returns the stored override for the tier, if any.
func (t *Track) TierPrice(tier LicenseTier) (kernel.Money, bool) {
	price, ok := t.tierPrices[tier]
	return price, ok
}

// TierPrices returns a copy of the stored per-tier overrides.
func (t *Track) TierPrices() map[LicenseTier]kernel.Money {
	out := make(map[LicenseTier]kernel.Money, len(t.tierPrices))
	for tier, price := range t.tierPrices {
		out[tier] = price
	}
	return out
}

// SetTierPrice stores a per-tier price override.
func (t *Track) SetTierPrice(tier LicenseTier, price kernel.Money) error {
	if err := tier.Validate(); err != nil {
		return err
	}
	if !price.IsPositive() {
		return errs.NewValueIsInvalidError("price must be positive")
	}
	t.tierPrices[tier] = price
	return nil
}

// Withdraw takes the track off the marketplace. Existing cart items keep
// referencing it; checkout of withdrawn tracks is blocked at the
// application layer.
func (t *Track) Withdraw() {
	t.available = false
}
