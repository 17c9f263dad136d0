// Package services provides domain services that implement business rules
// spanning more than one aggregate of the marketplace.
//
// The package includes:
//   - LicensePricingEngine: deterministic license price computation for
//     catalog tracks and completed custom orders
//   - CancellationPolicyResolver: maps a cancellation's context to a
//     refund class
//   - InvoiceAssembler: builds immutable invoices from orders or priced
//     cart lines
//
// All services are stateless; their outputs depend only on their inputs.
package services
