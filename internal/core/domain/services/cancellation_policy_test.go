package services_test

import (
	"testing"

	"melodia/internal/core/domain/model/order"
	"melodia/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestCancellationPolicyResolver_Resolve(t *testing.T) {
	resolver := services.NewCancellationPolicyResolver()

	cases := []struct {
		name      string
		status    order.Status
		initiator order.Role
		class     services.RefundClass
	}{
		{"pending by customer", order.Pending, order.RoleCustomer, services.RefundNone},
		{"offer pending by composer", order.OfferPending, order.RoleComposer, services.RefundNone},
		{"accepted by customer", order.OfferAccepted, order.RoleCustomer, services.RefundPartial},
		{"in progress by customer", order.InProgress, order.RoleCustomer, services.RefundPartial},
		{"accepted by composer", order.OfferAccepted, order.RoleComposer, services.RefundFull},
		{"in progress by composer", order.InProgress, order.RoleComposer, services.RefundFull},
		{"revision requested by customer", order.RevisionRequested, order.RoleCustomer, services.RefundEscalate},
		{"ready for payment by composer", order.ReadyForPayment, order.RoleComposer, services.RefundEscalate},
		{"disputed by customer", order.Disputed, order.RoleCustomer, services.RefundEscalate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			outcome := resolver.Resolve(tc.status, tc.initiator)
			assert.Equal(t, tc.class, outcome.Class)
			assert.NotEmpty(t, outcome.Note, "every outcome carries an explanation")
		})
	}
}

func TestRefundClass_String(t *testing.T) {
	assert.Equal(t, "NONE", services.RefundNone.String())
	assert.Equal(t, "PARTIAL", services.RefundPartial.String())
	assert.Equal(t, "FULL", services.RefundFull.String())
	assert.Equal(t, "ESCALATE", services.RefundEscalate.String())
}
