package services

import (
	"melodia/internal/core/domain/model/order"
)

// RefundClass is the machine-readable billing outcome of a cancellation.
type RefundClass int

const (
	RefundNone RefundClass = iota
	RefundPartial
	RefundFull
	RefundEscalate
)

// String returns the refund class's wire name.
func (c RefundClass) String() string {
	switch c {
	case RefundNone:
		return "NONE"
	case RefundPartial:
		return "PARTIAL"
	case RefundFull:
		return "FULL"
	case RefundEscalate:
		return "ESCALATE"
	default:
		return "ESCALATE"
	}
}

// CancellationOutcome pairs the billing tag with the human-readable
// explanation recorded in the order's audit trail.
type CancellationOutcome struct {
	Class RefundClass
	Note  string
}

// CancellationPolicyResolver decides the refund outcome of a cancellation
// from the order's status and the initiating party. Pure decision table,
// no side effects; the actual money movement belongs to the payment
// system downstream.
type CancellationPolicyResolver struct{}

// NewCancellationPolicyResolver creates a new CancellationPolicyResolver
// instance.
func NewCancellationPolicyResolver() CancellationPolicyResolver {
	return CancellationPolicyResolver{}
}

// Resolve returns the outcome for cancelling an order in the given status
// by the given initiator.
//
// Decision table:
//   - PENDING, OFFER_PENDING: no money has changed hands, class NONE
//   - OFFER_ACCEPTED, IN_PROGRESS by the customer: class PARTIAL, the
//     deposit may be withheld proportional to progress
//   - OFFER_ACCEPTED, IN_PROGRESS by the composer: class FULL
//   - every other state: class ESCALATE, support resolves manually
func (r CancellationPolicyResolver) Resolve(status order.Status, initiator order.Role) CancellationOutcome {
	switch status {
	case order.Pending, order.OfferPending:
		return CancellationOutcome{
			Class: RefundNone,
			Note:  "No cost incurred, no money has changed hands.",
		}
	case order.OfferAccepted, order.InProgress:
		if initiator == order.RoleCustomer {
			return CancellationOutcome{
				Class: RefundPartial,
				Note:  "Deposit may be withheld proportional to progress.",
			}
		}
		return CancellationOutcome{
			Class: RefundFull,
			Note:  "Customer receives a full refund.",
		}
	default:
		return CancellationOutcome{
			Class: RefundEscalate,
			Note:  "Please contact support to settle this cancellation.",
		}
	}
}
