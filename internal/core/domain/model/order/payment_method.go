package order

import (
	"fmt"

	"burgercounter/internal/pkg/errs"
)

// PaymentMethod is the closed set of ways an order can be paid.
type PaymentMethod int

const (
	// PaymentUnknown represents an invalid or undefined payment method.
	PaymentUnknown PaymentMethod = iota

	// Cash payment at the door.
	Cash

	// InstantTransfer is an instant bank transfer confirmed on the spot.
	InstantTransfer

	// Card payment on the courier's machine.
	Card
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		Cash:            "Cash",
		InstantTransfer: "InstantTransfer",
		Card:            "Card",
	}
}

// ParsePaymentMethod converts a wire string into a PaymentMethod, rejecting
// unknown values with a validation error.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment_method",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}

// Validate checks if the PaymentMethod is one of the defined methods.
func (p PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment_method",
			fmt.Errorf("%d is not a valid payment method", p),
		)
	}
	return nil
}

// String returns the wire name of the payment method.
func (p PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[p]; ok {
		return str
	}
	return "Unknown"
}
