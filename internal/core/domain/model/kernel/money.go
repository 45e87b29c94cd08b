package kernel

import (
	"fmt"

	"burgercounter/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a non-negative monetary amount in the
// counter's single currency. It wraps decimal.Decimal so that additions and
// comparisons are exact; order totals must equal item price plus delivery fee
// to the cent, with no float drift.
//
// The zero value is a valid zero amount. Construct non-zero amounts through
// NewMoney or MoneyFromString.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money value from a decimal amount.
// Negative amounts are rejected; direction of cash movements is carried by
// the ledger kind, never by a sign.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a Money value from its decimal string form,
// e.g. "15.00". Used at the HTTP boundary and in seeds.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the exact sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m minus other. The result may be negative; callers that need
// a balance (entries minus exits) want exactly that.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual compares two amounts by value, ignoring exponent representation.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount with two decimal places, e.g. "17.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
