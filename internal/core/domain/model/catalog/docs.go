// Package catalog contains the published track aggregate and the license
// tier value object.
//
// A Track is a finished piece of music listed on the marketplace. Each
// track carries a base price and optionally per-tier price overrides; when
// no override is stored for a tier, the effective price is the base price
// scaled by the tier's multiplier.
package catalog
