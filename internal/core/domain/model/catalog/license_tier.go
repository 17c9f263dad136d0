package catalog

import (
	"github.com/shopspring/decimal"

	"melodia/internal/pkg/errs"
)

// LicenseTier is a usage-rights level a buyer purchases a track under.
type LicenseTier int

const (
	LicenseTierUnknown LicenseTier = iota
	Personal
	Commercial
	Enterprise
	Exclusive
)

var tierMultipliers = map[LicenseTier]decimal.Decimal{
	Personal:   decimal.NewFromFloat(0.6),
	Commercial: decimal.NewFromInt(1),
	Enterprise: decimal.NewFromFloat(2.5),
	Exclusive:  decimal.NewFromInt(10),
}

// ParseLicenseTier maps a wire name to a tier.
func ParseLicenseTier(s string) (LicenseTier, error) {
	switch s {
	case "PERSONAL":
		return Personal, nil
	case "COMMERCIAL":
		return Commercial, nil
	case "ENTERPRISE":
		return Enterprise, nil
	case "EXCLUSIVE":
		return Exclusive, nil
	default:
		return LicenseTierUnknown, errs.NewValueIsInvalidError("licenseTier: " + s)
	}
}

// Validate checks the tier is one of the defined levels.
func (t LicenseTier) Validate() error {
	if _, ok := tierMultipliers[t]; !ok {
		return errs.NewValueIsInvalidError("licenseTier")
	}
	return nil
}

// String returns the tier's wire name.
func (t LicenseTier) String() string {
	switch t {
	case Personal:
		return "PERSONAL"
	case Commercial:
		return "COMMERCIAL"
	case Enterprise:
		return "ENTERPRISE"
	case Exclusive:
		return "EXCLUSIVE"
	default:
		return "UNKNOWN"
	}
}

// Multiplier returns the factor applied to a track's base price when no
// per-tier price is stored. The commercial tier is the 1.0 anchor.
func (t LicenseTier) Multiplier() decimal.Decimal {
	return tierMultipliers[t]
}

// AllLicenseTiers returns the defined tiers in ascending rights order.
func AllLicenseTiers() []LicenseTier {
	return []LicenseTier{Personal, Commercial, Enterprise, Exclusive}
}
