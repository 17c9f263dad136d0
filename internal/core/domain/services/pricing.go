package services

import (
	"melodia/internal/core/domain/model/catalog"
	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/core/domain/model/order"
	"melodia/internal/pkg/errs"
)

// LicensePricingEngine computes the effective license price for the two
// purchasable subjects of the marketplace.
//
// Business rules:
//   - A stored per-tier price on a track always wins over computation
//   - Without an override the price is base price times tier multiplier,
//     rounded to two decimals half up
//   - For equal inputs the output is always equal, and for a positive base
//     price tier prices are strictly ordered PERSONAL < COMMERCIAL <
//     ENTERPRISE < EXCLUSIVE
//   - A completed custom order is priced at its accepted offer; the terms
//     were negotiated and the tier does not rescale them
//
// Example usage:
//
//	engine := NewLicensePricingEngine()
//	price, err := engine.PriceTrack(track, catalog.Enterprise)
type LicensePricingEngine struct{}

// NewLicensePricingEngine creates a new LicensePricingEngine instance.
func NewLicensePricingEngine() LicensePricingEngine {
	return LicensePricingEngine{}
}

// PriceTrack returns the effective price of the track under the tier.
func (e LicensePricingEngine) PriceTrack(track *catalog.Track, tier catalog.LicenseTier) (kernel.Money, error) {
	if err := track.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if err := tier.Validate(); err != nil {
		return kernel.Money{}, err
	}

	var override *kernel.Money
	if stored, ok := track.TierPrice(tier); ok {
		override = &stored
	}
	return e.ResolveTierPrice(track.BasePrice(), override, tier), nil
}

// ResolveTierPrice applies the resolution order every consumer shares: a
// stored override wins, otherwise base price times tier multiplier. Read
// models that carry raw columns instead of a Track aggregate price their
// lines through this method.
func (e LicensePricingEngine) ResolveTierPrice(
	base kernel.Money, override *kernel.Money, tier catalog.LicenseTier,
) kernel.Money {
	if override != nil {
		return *override
	}
	return base.Mul(tier.Multiplier())
}

// PriceOrder returns the price of licensing a completed custom order,
// which is the accepted offer amount.
func (e LicensePricingEngine) PriceOrder(o *order.Order) (kernel.Money, error) {
	if err := o.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if o.OfferedPrice() == nil {
		return kernel.Money{}, errs.NewValueIsRequiredError("offeredPrice")
	}
	return *o.OfferedPrice(), nil
}
