package order

import (
	"melodia/internal/pkg/errs"
)

// PaymentModel determines when money changes hands for a custom order.
type PaymentModel int

const (
	// PaymentModelUnknown represents an invalid or undefined model.
	PaymentModelUnknown PaymentModel = iota

	// PayOnCompletion collects the full price once the final delivery is
	// in place. The default model.
	PayOnCompletion

	// PartialPayment collects a deposit up front; a delivery made while
	// the deposit is outstanding is a preview and moves the order to
	// IN_PROGRESS instead of READY_FOR_PAYMENT.
	PartialPayment
)

func getPaymentModelStrings() map[PaymentModel]string {
	return map[PaymentModel]string{
		PaymentModelUnknown: "UNKNOWN",
		PayOnCompletion:     "PAY_ON_COMPLETION",
		PartialPayment:      "PARTIAL_PAYMENT",
	}
}

// ParsePaymentModel converts a wire string to a PaymentModel.
// The empty string defaults to PayOnCompletion.
func ParsePaymentModel(s string) (PaymentModel, error) {
	switch s {
	case "", "PAY_ON_COMPLETION":
		return PayOnCompletion, nil
	case "PARTIAL_PAYMENT":
		return PartialPayment, nil
	default:
		return PaymentModelUnknown, errs.NewValueIsInvalidError("paymentModel")
	}
}

// Validate checks that the model is one of the defined values.
func (m PaymentModel) Validate() error {
	if m != PayOnCompletion && m != PartialPayment {
		return errs.NewValueIsInvalidError("paymentModel")
	}
	return nil
}

// String returns the canonical wire name of the model.
func (m PaymentModel) String() string {
	if str, ok := getPaymentModelStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}
