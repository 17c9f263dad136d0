// Package order contains the custom-order aggregate and its lifecycle
// state machine.
//
// An Order is one customer-composer negotiation for a bespoke music track,
// moving from PENDING through offer, production, revision, and payment
// states to a terminal COMPLETED, CANCELLED, or DISPUTED. Every legal
// transition is defined once in the table in status.go; each aggregate
// method checks the actor's role, consults that table, mutates the order,
// and appends exactly one pending audit entry which the repository
// persists in the same transaction.
//
// The package also holds the order's supporting value objects: the
// RevisionBudget (included/used/max revision accounting), the
// PaymentModel, and the append-only HistoryEntry.
package order
