// Package invoice contains the immutable invoice aggregate.
//
// An Invoice is assembled once, by the InvoiceAssembler service, and never
// changes afterwards. Amounts are computed at assembly time: subtotal is
// the sum of line items, tax is 19% of the subtotal, total is their sum.
// Numbers are sequential per year, INV-<year>-<5 digits>, drawn from an
// atomic counter in storage.
package invoice
