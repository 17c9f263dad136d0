package kernel

import (
	"melodia/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object for a non-negative monetary amount in the shop
// currency. All arithmetic rounds to two decimal places half up, so a given
// input always produces the same output regardless of call order or time.
//
// The zero value is a valid zero amount; construction through NewMoney is
// still required for amounts coming from external input because it rejects
// negative values.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
// The amount must not be negative and is rounded to two decimal places.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidError("amount must not be negative")
	}
	return Money{amount: amount.Round(2)}, nil
}

// NewMoneyFromFloat creates a Money from a float64 amount, e.g. a JSON
// request field.
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// MoneyFromString parses a decimal string such as "450.00".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// ZeroMoney returns a zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount).Round(2)}
}

// Mul returns the amount multiplied by factor, rounded to two decimals.
// Multiplying by a non-negative factor cannot produce a negative amount,
// so the result needs no revalidation.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor).Round(2)}
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float64 for serialization.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String renders the amount with two decimal places, e.g. "450.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Cmp compares two amounts: -1 if m < other, 0 if equal, +1 if m > other.
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

// IsEqual reports whether two amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}
