package order

import (
	"fmt"

	"melodia/internal/pkg/errs"
)

// RevisionBudget tracks included versus used revision cycles for one order.
// The budget is a value object: Consume returns a new budget instead of
// mutating in place, and the used count never decrements.
//
// Invariant: used <= max at all times. max defaults to included and may
// only grow through an explicit extension, never shrink below used.
type RevisionBudget struct {
	included int
	used     int
	max      int
}

// NewRevisionBudget creates a budget for a freshly agreed offer.
// The hard ceiling starts equal to the included count.
func NewRevisionBudget(included int) (RevisionBudget, error) {
	if included < 0 {
		return RevisionBudget{}, errs.NewValueIsInvalidErrorWithCause("includedRevisions",
			fmt.Errorf("%d is negative", included))
	}
	return RevisionBudget{included: included, max: included}, nil
}

// RestoreRevisionBudget reconstructs a budget from persistence.
func RestoreRevisionBudget(included, used, maxRevisions int) (RevisionBudget, error) {
	if included < 0 || used < 0 {
		return RevisionBudget{}, errs.NewValueIsInvalidError("revision counts must not be negative")
	}
	if maxRevisions < included {
		return RevisionBudget{}, errs.NewValueIsInvalidError("maxRevisions must not be below includedRevisions")
	}
	if used > maxRevisions {
		return RevisionBudget{}, errs.NewValueIsOutOfRangeError("usedRevisions", used, 0, maxRevisions)
	}
	return RevisionBudget{included: included, used: used, max: maxRevisions}, nil
}

// Consume spends one revision from the budget.
// Returns the advanced budget, or a RevisionLimitExceededError when the
// ceiling is reached; the receiver is left untouched either way.
func (b RevisionBudget) Consume() (RevisionBudget, error) {
	if b.used >= b.max {
		return b, errs.NewRevisionLimitExceededError(b.used, b.max)
	}
	return RevisionBudget{included: b.included, used: b.used + 1, max: b.max}, nil
}

// Included returns the revision count agreed in the offer.
func (b RevisionBudget) Included() int {
	return b.included
}

// Used returns how many revisions the customer has consumed.
func (b RevisionBudget) Used() int {
	return b.used
}

// Max returns the hard ceiling on revisions.
func (b RevisionBudget) Max() int {
	return b.max
}

// Remaining returns how many revisions are still available.
func (b RevisionBudget) Remaining() int {
	return b.max - b.used
}
