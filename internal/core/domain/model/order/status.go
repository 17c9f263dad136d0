package order

import (
	"melodia/internal/pkg/errs"
)

// Status represents the lifecycle state of a custom order.
// It implements a state machine with a single central transition table so
// that every operation checks legality in one place.
//
// State transitions:
//
//	PENDING ──SubmitOffer──> OFFER_PENDING ──AcceptOffer──> OFFER_ACCEPTED
//	OFFER_PENDING ──RejectOffer──> PENDING
//	OFFER_ACCEPTED ──Deliver──> READY_FOR_PAYMENT | IN_PROGRESS
//	IN_PROGRESS ──Deliver──> READY_FOR_PAYMENT
//	READY_FOR_PAYMENT ──RequestRevision──> REVISION_REQUESTED
//	REVISION_REQUESTED ──Deliver──> READY_FOR_PAYMENT
//	READY_FOR_PAYMENT ──MarkPaid──> PAID
//	READY_FOR_PAYMENT | PAID ──Complete──> COMPLETED
//
// CANCELLED and DISPUTED absorb every non-terminal state (and DISPUTED
// itself remains cancellable). COMPLETED, CANCELLED, and DISPUTED are
// terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order awaits a composer offer.
	Pending

	// OfferPending means the composer has submitted terms awaiting the
	// customer's decision.
	OfferPending

	// OfferAccepted means the customer accepted the offer; content edits
	// are frozen and production may begin.
	OfferAccepted

	// InProgress marks production after a preview delivery under the
	// partial payment model.
	InProgress

	// RevisionRequested means the customer asked for a rework of the
	// delivered track.
	RevisionRequested

	// ReadyForPayment means a delivery is in place and payment is due.
	ReadyForPayment

	// Paid means payment was captured; the order awaits completion.
	Paid

	// Completed is a terminal state: the order finished successfully.
	Completed

	// Cancelled is a terminal state reached by explicit cancellation.
	Cancelled

	// Disputed is a terminal state for escalated disagreements.
	Disputed
)

// Operation names a lifecycle operation for transition checks and error
// messages.
type Operation string

const (
	OpSubmitOffer     Operation = "submit offer"
	OpAcceptOffer     Operation = "accept offer"
	OpRejectOffer     Operation = "reject offer"
	OpDeliver         Operation = "deliver"
	OpRequestRevision Operation = "request revision"
	OpMarkPaid        Operation = "mark paid"
	OpComplete        Operation = "complete"
	OpCancel          Operation = "cancel"
	OpDispute         Operation = "dispute"
	OpUpdate          Operation = "update details"
)

// legalSources is the closed transition table: the set of states each
// operation may start from. An operation attempted from any other state
// fails with InvalidStateError and performs no side effects.
var legalSources = map[Operation][]Status{
	OpSubmitOffer:     {Pending, OfferPending},
	OpAcceptOffer:     {OfferPending},
	OpRejectOffer:     {OfferPending},
	OpDeliver:         {OfferAccepted, InProgress, RevisionRequested},
	OpRequestRevision: {ReadyForPayment},
	OpMarkPaid:        {ReadyForPayment},
	OpComplete:        {ReadyForPayment, Paid},
	OpCancel:          {Pending, OfferPending, OfferAccepted, InProgress, RevisionRequested, ReadyForPayment, Disputed},
	OpDispute:         {Pending, OfferPending, OfferAccepted, InProgress, RevisionRequested, ReadyForPayment, Paid},
	OpUpdate:          {Pending, OfferPending},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "UNKNOWN",
		Pending:           "PENDING",
		OfferPending:      "OFFER_PENDING",
		OfferAccepted:     "OFFER_ACCEPTED",
		InProgress:        "IN_PROGRESS",
		RevisionRequested: "REVISION_REQUESTED",
		ReadyForPayment:   "READY_FOR_PAYMENT",
		Paid:              "PAID",
		Completed:         "COMPLETED",
		Cancelled:         "CANCELLED",
		Disputed:          "DISPUTED",
	}
}

// ParseStatus maps a stored status name back to its Status value.
// The inverse of String for all valid states.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status: " + s)
}

// Validate checks that the Status value is one of the defined lifecycle
// states. Unknown (0) and out-of-range values are invalid. Used when
// reconstructing orders from persistence.
func (s Status) Validate() error {
	if s <= Unknown || s > Disputed {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the canonical upper-snake name of the status, e.g.
// "READY_FOR_PAYMENT". Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further lifecycle operations apply.
// Disputed is terminal for the regular flow but remains cancellable.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled || s == Disputed
}

// CanApply checks the transition table without performing the transition.
// Returns an InvalidStateError naming the operation and the current state
// when the operation is not legal from s.
func (s Status) CanApply(op Operation) error {
	for _, src := range legalSources[op] {
		if s == src {
			return nil
		}
	}
	return errs.NewInvalidStateError(string(op), s.String())
}
