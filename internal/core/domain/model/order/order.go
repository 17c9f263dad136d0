package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/pkg/errs"
)

// Validation limits for customer-supplied order content.
const (
	MinTitleLength       = 5
	MinDescriptionLength = 20
	MinReasonLength      = 5
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Role is an actor's relationship to an order.
type Role int

const (
	RoleUnknown Role = iota
	RoleCustomer
	RoleComposer
)

// String returns the lowercase role name.
func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "customer"
	case RoleComposer:
		return "composer"
	default:
		return "unknown"
	}
}

// Details carries the customer-authored content of a new order.
type Details struct {
	Title           string
	Description     string
	Requirements    string
	ReferenceLinks  string
	Notes           string
	RequestedBudget *kernel.Money
	PaymentModel    PaymentModel
}

// UpdatePatch is a tagged partial update of editable order fields.
// Nil fields are left untouched. Only legal before offer acceptance.
type UpdatePatch struct {
	Title           *string
	Description     *string
	Requirements    *string
	ReferenceLinks  *string
	Notes           *string
	RequestedBudget *kernel.Money
}

// IsEmpty reports whether the patch changes nothing.
func (p UpdatePatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Requirements == nil &&
		p.ReferenceLinks == nil && p.Notes == nil && p.RequestedBudget == nil
}

// Order is the aggregate root of a single customer-composer negotiation
// for a bespoke music track. All lifecycle transitions go through the
// methods below; each successful transition appends exactly one pending
// history entry, which the repository persists atomically with the order.
//
// Invariants:
//   - usedRevisions <= maxRevisions at all times
//   - offeredPrice is nil until an offer exists
//   - transitions follow the central table in status.go; CANCELLED and
//     DISPUTED absorb every non-terminal state
//   - content fields are frozen once the offer is accepted
type Order struct {
	id         kernel.UUID
	number     string
	customerID kernel.UUID
	composerID kernel.UUID

	title          string
	description    string
	requirements   string
	referenceLinks string
	notes          string

	requestedBudget *kernel.Money
	offeredPrice    *kernel.Money
	paymentModel    PaymentModel
	productionDays  int
	budget          RevisionBudget

	finalMusicURL string
	status        Status

	createdAt       time.Time
	offerAcceptedAt *time.Time
	updatedAt       time.Time

	// loadedStatus is the status observed when the aggregate was read from
	// storage. The repository uses it as a compare-and-swap guard so a
	// concurrent transition surfaces as a conflict instead of a silent
	// overwrite.
	loadedStatus Status

	// pendingHistory holds audit entries appended by transitions since the
	// aggregate was loaded; the repository flushes them in the same
	// transaction as the order update.
	pendingHistory []HistoryEntry

	isConstructed bool
}

// NewOrder creates a new order in PENDING status for one composer.
// Fan-out across several composers happens in the application layer, one
// independent aggregate per composer.
//
// Creation seeds the aggregate but writes no history row: the audit trail
// records lifecycle transitions only.
func NewOrder(id kernel.UUID, number string, customerID, composerID kernel.UUID, details Details) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setParties(customerID, composerID),
		o.setTitle(details.Title),
		o.setDescription(details.Description),
		o.setPaymentModel(details.PaymentModel),
	); err != nil {
		return nil, err
	}

	o.requirements = details.Requirements
	o.referenceLinks = details.ReferenceLinks
	o.notes = details.Notes
	o.requestedBudget = details.RequestedBudget

	now := time.Now().UTC()
	o.createdAt = now
	o.updatedAt = now
	return o, nil
}

// Snapshot is the full persisted state of an order, used to move the
// aggregate across the repository boundary.
type Snapshot struct {
	ID         kernel.UUID
	Number     string
	CustomerID kernel.UUID
	ComposerID kernel.UUID

	Title          string
	Description    string
	Requirements   string
	ReferenceLinks string
	Notes          string

	RequestedBudget *kernel.Money
	OfferedPrice    *kernel.Money
	PaymentModel    PaymentModel
	ProductionDays  int

	IncludedRevisions int
	UsedRevisions     int
	MaxRevisions      int

	FinalMusicURL string
	Status        Status

	CreatedAt       time.Time
	OfferAcceptedAt *time.Time
	UpdatedAt       time.Time
}

// RestoreOrder reconstructs an order from its persisted snapshot.
// The snapshot's status becomes the compare-and-swap guard for the next
// update.
func RestoreOrder(snap Snapshot) (*Order, error) {
	if err := errors.Join(
		snap.ID.Validate(),
		snap.CustomerID.Validate(),
		snap.ComposerID.Validate(),
		snap.Status.Validate(),
		snap.PaymentModel.Validate(),
	); err != nil {
		return nil, err
	}

	budget, err := RestoreRevisionBudget(snap.IncludedRevisions, snap.UsedRevisions, snap.MaxRevisions)
	if err != nil {
		return nil, err
	}

	return &Order{
		id:              snap.ID,
		number:          snap.Number,
		customerID:      snap.CustomerID,
		composerID:      snap.ComposerID,
		title:           snap.Title,
		description:     snap.Description,
		requirements:    snap.Requirements,
		referenceLinks:  snap.ReferenceLinks,
		notes:           snap.Notes,
		requestedBudget: snap.RequestedBudget,
		offeredPrice:    snap.OfferedPrice,
		paymentModel:    snap.PaymentModel,
		productionDays:  snap.ProductionDays,
		budget:          budget,
		finalMusicURL:   snap.FinalMusicURL,
		status:          snap.Status,
		createdAt:       snap.CreatedAt,
		offerAcceptedAt: snap.OfferAcceptedAt,
		updatedAt:       snap.UpdatedAt,
		loadedStatus:    snap.Status,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Number returns the human-readable order number, e.g. "ORD-2026-0042".
func (o *Order) Number() string { return o.number }

// CustomerID returns the commissioning customer.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// ComposerID returns the composer this negotiation thread belongs to.
func (o *Order) ComposerID() kernel.UUID { return o.composerID }

// Title returns the order title.
func (o *Order) Title() string { return o.title }

// Description returns the order description.
func (o *Order) Description() string { return o.description }

// Requirements returns free-form production requirements.
func (o *Order) Requirements() string { return o.requirements }

// ReferenceLinks returns customer-supplied reference material links.
func (o *Order) ReferenceLinks() string { return o.referenceLinks }

// Notes returns additional customer notes.
func (o *Order) Notes() string { return o.notes }

// RequestedBudget returns the advisory customer budget, nil if not given.
func (o *Order) RequestedBudget() *kernel.Money { return o.requestedBudget }

// OfferedPrice returns the composer's price, nil until an offer exists.
// Binding once the offer is accepted.
func (o *Order) OfferedPrice() *kernel.Money { return o.offeredPrice }

// PaymentModel returns the order's payment model.
func (o *Order) PaymentModel() PaymentModel { return o.paymentModel }

// ProductionDays returns the offered production time in days.
func (o *Order) ProductionDays() int { return o.productionDays }

// RevisionBudget returns the revision accounting state.
func (o *Order) RevisionBudget() RevisionBudget { return o.budget }

// FinalMusicURL returns the delivered track reference, empty before the
// first delivery.
func (o *Order) FinalMusicURL() string { return o.finalMusicURL }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// LoadedStatus returns the status observed when the aggregate was read
// from storage, used by the repository's compare-and-swap update.
func (o *Order) LoadedStatus() Status { return o.loadedStatus }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// OfferAcceptedAt returns when the offer was accepted, nil before that.
func (o *Order) OfferAcceptedAt() *time.Time { return o.offerAcceptedAt }

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// PendingHistory returns audit entries appended since the aggregate was
// loaded, in creation order.
func (o *Order) PendingHistory() []HistoryEntry { return o.pendingHistory }

// RoleOf returns the actor's relationship to this order.
func (o *Order) RoleOf(actorID kernel.UUID) Role {
	switch {
	case o.customerID.IsEqual(actorID):
		return RoleCustomer
	case o.composerID.IsEqual(actorID):
		return RoleComposer
	default:
		return RoleUnknown
	}
}

// SubmitOffer records the composer's terms and moves the order to
// OFFER_PENDING. Legal from PENDING and OFFER_PENDING (re-offer). Only the
// order's assigned composer may offer.
func (o *Order) SubmitOffer(
	actorID kernel.UUID, price kernel.Money, productionDays, includedRevisions int, message string,
) error {
	if o.RoleOf(actorID) != RoleComposer {
		return errs.NewForbiddenError(actorID.String(), string(OpSubmitOffer))
	}
	if err := o.status.CanApply(OpSubmitOffer); err != nil {
		return err
	}
	if !price.IsPositive() {
		return errs.NewValueIsInvalidError("price must be positive")
	}
	if productionDays <= 0 {
		return errs.NewValueIsInvalidError("productionDays must be positive")
	}

	budget, err := NewRevisionBudget(includedRevisions)
	if err != nil {
		return err
	}

	o.offeredPrice = &price
	o.productionDays = productionDays
	o.budget = budget
	o.status = OfferPending

	text := fmt.Sprintf("Offer submitted: %s, %d production days, %d included revisions",
		price.String(), productionDays, includedRevisions)
	if strings.TrimSpace(message) != "" {
		text += ". " + message
	}
	return o.recordTransition(actorID, text)
}

// AcceptOffer locks in the composer's terms and moves the order to
// OFFER_ACCEPTED. Legal only from OFFER_PENDING, only for the customer.
// Content edits are frozen from this point on.
func (o *Order) AcceptOffer(actorID kernel.UUID) error {
	if o.RoleOf(actorID) != RoleCustomer {
		return errs.NewForbiddenError(actorID.String(), string(OpAcceptOffer))
	}
	if err := o.status.CanApply(OpAcceptOffer); err != nil {
		return err
	}

	now := time.Now().UTC()
	o.offerAcceptedAt = &now
	o.status = OfferAccepted

	return o.recordTransition(actorID, fmt.Sprintf("Offer accepted at %s", o.offeredPrice.String()))
}

// RejectOffer declines the current terms and returns the order to PENDING
// so the composer may re-offer. Legal only from OFFER_PENDING, only for
// the customer. The previous terms stay on record for reference.
func (o *Order) RejectOffer(actorID kernel.UUID, reason string) error {
	if o.RoleOf(actorID) != RoleCustomer {
		return errs.NewForbiddenError(actorID.String(), string(OpRejectOffer))
	}
	if err := o.status.CanApply(OpRejectOffer); err != nil {
		return err
	}

	o.status = Pending

	text := "Offer rejected"
	if strings.TrimSpace(reason) != "" {
		text += ": " + reason
	}
	return o.recordTransition(actorID, text)
}

// Deliver records a finished (or preview) track. Legal from
// OFFER_ACCEPTED, IN_PROGRESS, and REVISION_REQUESTED, only for the
// composer. The target state is READY_FOR_PAYMENT, except a delivery out
// of OFFER_ACCEPTED under PARTIAL_PAYMENT, which is a preview and lands in
// IN_PROGRESS.
func (o *Order) Deliver(actorID kernel.UUID, musicURL, message string) error {
	if o.RoleOf(actorID) != RoleComposer {
		return errs.NewForbiddenError(actorID.String(), string(OpDeliver))
	}
	if err := o.status.CanApply(OpDeliver); err != nil {
		return err
	}
	if strings.TrimSpace(musicURL) == "" {
		return errs.NewValueIsRequiredError("musicUrl")
	}

	target := ReadyForPayment
	if o.status == OfferAccepted && o.paymentModel == PartialPayment {
		target = InProgress
	}

	o.finalMusicURL = musicURL
	o.status = target

	text := "Track delivered"
	if target == InProgress {
		text = "Preview track delivered, deposit outstanding"
	}
	if strings.TrimSpace(message) != "" {
		text += ". " + message
	}
	return o.recordTransition(actorID, text)
}

// RequestRevision spends one revision from the budget and moves the order
// to REVISION_REQUESTED. Legal only from READY_FOR_PAYMENT (a delivery
// must exist), only for the customer. Fails with RevisionLimitExceeded and
// zero side effects when the budget is spent.
func (o *Order) RequestRevision(actorID kernel.UUID, feedback string) error {
	if o.RoleOf(actorID) != RoleCustomer {
		return errs.NewForbiddenError(actorID.String(), string(OpRequestRevision))
	}
	if err := o.status.CanApply(OpRequestRevision); err != nil {
		return err
	}
	if strings.TrimSpace(feedback) == "" {
		return errs.NewValueIsRequiredError("feedback")
	}

	budget, err := o.budget.Consume()
	if err != nil {
		return err
	}

	o.budget = budget
	o.status = RevisionRequested

	return o.recordTransition(actorID,
		fmt.Sprintf("Revision %d of %d requested: %s", budget.Used(), budget.Max(), feedback))
}

// MarkPaid records the payment collaborator's capture confirmation and
// moves the order from READY_FOR_PAYMENT to PAID. The actor is the
// customer whose payment was captured.
func (o *Order) MarkPaid(actorID kernel.UUID) error {
	if o.RoleOf(actorID) != RoleCustomer {
		return errs.NewForbiddenError(actorID.String(), string(OpMarkPaid))
	}
	if err := o.status.CanApply(OpMarkPaid); err != nil {
		return err
	}

	o.status = Paid

	return o.recordTransition(actorID, fmt.Sprintf("Payment received: %s", o.offeredPrice.String()))
}

// Complete closes the order successfully. Legal from READY_FOR_PAYMENT and
// PAID, only for the customer. Completing an already completed order is an
// idempotent no-op with zero side effects.
func (o *Order) Complete(actorID kernel.UUID) error {
	if o.RoleOf(actorID) != RoleCustomer {
		return errs.NewForbiddenError(actorID.String(), string(OpComplete))
	}
	if o.status == Completed {
		return nil
	}
	if err := o.status.CanApply(OpComplete); err != nil {
		return err
	}

	o.status = Completed

	return o.recordTransition(actorID, "Order completed")
}

// Cancel terminates the order. Legal from every state except COMPLETED,
// CANCELLED, and PAID, for either party. The reason is required;
// policyNote is the resolved refund explanation recorded alongside it.
func (o *Order) Cancel(actorID kernel.UUID, reason, policyNote string) error {
	if o.RoleOf(actorID) == RoleUnknown {
		return errs.NewForbiddenError(actorID.String(), string(OpCancel))
	}
	if len(strings.TrimSpace(reason)) < MinReasonLength {
		return errs.NewValueIsInvalidErrorWithCause("reason",
			fmt.Errorf("must be at least %d characters", MinReasonLength))
	}
	if err := o.status.CanApply(OpCancel); err != nil {
		return err
	}

	o.status = Cancelled

	text := fmt.Sprintf("Order cancelled by %s: %s", o.RoleOf(actorID), reason)
	if policyNote != "" {
		text += ". " + policyNote
	}
	return o.recordTransition(actorID, text)
}

// Dispute escalates the order to the DISPUTED terminal state. Legal from
// any non-terminal state, for either party.
func (o *Order) Dispute(actorID kernel.UUID, reason string) error {
	if o.RoleOf(actorID) == RoleUnknown {
		return errs.NewForbiddenError(actorID.String(), string(OpDispute))
	}
	if len(strings.TrimSpace(reason)) < MinReasonLength {
		return errs.NewValueIsInvalidErrorWithCause("reason",
			fmt.Errorf("must be at least %d characters", MinReasonLength))
	}
	if err := o.status.CanApply(OpDispute); err != nil {
		return err
	}

	o.status = Disputed

	return o.recordTransition(actorID,
		fmt.Sprintf("Order disputed by %s: %s", o.RoleOf(actorID), reason))
}

// ApplyPatch updates editable content fields. Legal only in PENDING and
// OFFER_PENDING, only for the customer; afterwards the order is locked for
// editing. A patch is not a lifecycle transition and writes no history.
func (o *Order) ApplyPatch(actorID kernel.UUID, patch UpdatePatch) error {
	if o.RoleOf(actorID) != RoleCustomer {
		return errs.NewForbiddenError(actorID.String(), string(OpUpdate))
	}
	if err := o.status.CanApply(OpUpdate); err != nil {
		return err
	}

	if patch.Title != nil {
		if err := o.setTitle(*patch.Title); err != nil {
			return err
		}
	}
	if patch.Description != nil {
		if err := o.setDescription(*patch.Description); err != nil {
			return err
		}
	}
	if patch.Requirements != nil {
		o.requirements = *patch.Requirements
	}
	if patch.ReferenceLinks != nil {
		o.referenceLinks = *patch.ReferenceLinks
	}
	if patch.Notes != nil {
		o.notes = *patch.Notes
	}
	if patch.RequestedBudget != nil {
		o.requestedBudget = patch.RequestedBudget
	}

	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) recordTransition(actorID kernel.UUID, message string) error {
	entry, err := NewHistoryEntry(o.id, actorID, o.status, message)
	if err != nil {
		return err
	}
	o.pendingHistory = append(o.pendingHistory, entry)
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	o.number = number
	return nil
}

func (o *Order) setParties(customerID, composerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if err := composerID.Validate(); err != nil {
		return err
	}
	if customerID.IsEqual(composerID) {
		return errs.NewValueIsInvalidError("customer and composer must differ")
	}
	o.customerID = customerID
	o.composerID = composerID
	return nil
}

func (o *Order) setTitle(title string) error {
	if len(strings.TrimSpace(title)) < MinTitleLength {
		return errs.NewValueIsInvalidErrorWithCause("title",
			fmt.Errorf("must be at least %d characters", MinTitleLength))
	}
	o.title = title
	return nil
}

func (o *Order) setDescription(description string) error {
	if len(strings.TrimSpace(description)) < MinDescriptionLength {
		return errs.NewValueIsInvalidErrorWithCause("description",
			fmt.Errorf("must be at least %d characters", MinDescriptionLength))
	}
	o.description = description
	return nil
}

func (o *Order) setPaymentModel(model PaymentModel) error {
	if model == PaymentModelUnknown {
		model = PayOnCompletion
	}
	if err := model.Validate(); err != nil {
		return err
	}
	o.paymentModel = model
	return nil
}
