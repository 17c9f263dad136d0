// Package cart contains the shopping cart item entity.
//
// A CartItem ties a customer to exactly one purchasable subject, either a
// catalog track or a completed custom order, under a chosen license tier.
// The cart stores no prices; effective prices are computed on read by the
// pricing engine so tier or catalog changes are always reflected.
package cart
