package order_test

import (
	"testing"

	"melodia/internal/core/domain/model/order"
	"melodia/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.Pending, order.OfferPending, order.OfferAccepted, order.InProgress,
		order.RevisionRequested, order.ReadyForPayment, order.Paid,
		order.Completed, order.Cancelled, order.Disputed,
	}
}

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.Unknown:           "UNKNOWN",
		order.Pending:           "PENDING",
		order.OfferPending:      "OFFER_PENDING",
		order.OfferAccepted:     "OFFER_ACCEPTED",
		order.InProgress:        "IN_PROGRESS",
		order.RevisionRequested: "REVISION_REQUESTED",
		order.ReadyForPayment:   "READY_FOR_PAYMENT",
		order.Paid:              "PAID",
		order.Completed:         "COMPLETED",
		order.Cancelled:         "CANCELLED",
		order.Disputed:          "DISPUTED",
		order.Status(99):        "UNKNOWN",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range allStatuses() {
		assert.NoError(t, status.Validate(), status.String())
	}

	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
	assert.ErrorIs(t, order.Status(99).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := map[order.Status]bool{
		order.Completed: true,
		order.Cancelled: true,
		order.Disputed:  true,
	}

	for _, status := range allStatuses() {
		assert.Equal(t, terminal[status], status.IsTerminal(), status.String())
	}
}

// TestStatus_CanApply_TableIsClosed walks the entire (operation, status)
// grid and verifies the transition table admits exactly the documented
// source states and nothing else.
func TestStatus_CanApply_TableIsClosed(t *testing.T) {
	legal := map[order.Operation]map[order.Status]bool{
		order.OpSubmitOffer:     {order.Pending: true, order.OfferPending: true},
		order.OpAcceptOffer:     {order.OfferPending: true},
		order.OpRejectOffer:     {order.OfferPending: true},
		order.OpDeliver:         {order.OfferAccepted: true, order.InProgress: true, order.RevisionRequested: true},
		order.OpRequestRevision: {order.ReadyForPayment: true},
		order.OpMarkPaid:        {order.ReadyForPayment: true},
		order.OpComplete:        {order.ReadyForPayment: true, order.Paid: true},
		order.OpCancel: {
			order.Pending: true, order.OfferPending: true, order.OfferAccepted: true,
			order.InProgress: true, order.RevisionRequested: true, order.ReadyForPayment: true,
			order.Disputed: true,
		},
		order.OpDispute: {
			order.Pending: true, order.OfferPending: true, order.OfferAccepted: true,
			order.InProgress: true, order.RevisionRequested: true, order.ReadyForPayment: true,
			order.Paid: true,
		},
		order.OpUpdate: {order.Pending: true, order.OfferPending: true},
	}

	for op, sources := range legal {
		for _, status := range allStatuses() {
			err := status.CanApply(op)
			if sources[status] {
				assert.NoError(t, err, "%s from %s", op, status)
			} else {
				require.Error(t, err, "%s from %s", op, status)
				assert.ErrorIs(t, err, errs.ErrInvalidState)
			}
		}
	}
}

func TestStatus_CancelExcludesExactly(t *testing.T) {
	// Cancel is legal from every state except COMPLETED, CANCELLED, PAID.
	for _, status := range allStatuses() {
		err := status.CanApply(order.OpCancel)
		switch status {
		case order.Completed, order.Cancelled, order.Paid:
			require.Error(t, err, status.String())
		default:
			assert.NoError(t, err, status.String())
		}
	}
}
