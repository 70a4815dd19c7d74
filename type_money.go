package stash

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// fraction is the number of fractional digits an Amount is normalized to,
// matching currency convention.
const fraction = 2

// Amount is a monetary value. It is stored as an exact decimal and is
// currency-agnostic: the currency label lives in the configuration, not in
// the amount. Rounding happens once, at input normalization, never during
// arithmetic.
type Amount struct {
	value decimal.Decimal
}

// NewAmount normalizes a decimal into a transaction amount: it must be
// non-negative, and is rounded to two fractional digits.
func NewAmount(value decimal.Decimal) (Amount, error) {
	if value.IsNegative() {
		return Amount{}, fmt.Errorf("%w: %s is negative", ErrInvalidAmount, value)
	}
	return Amount{value: value.Round(fraction)}, nil
}

// ParseAmount parses a decimal string into a normalized transaction amount.
func ParseAmount(str string) (Amount, error) {
	value, err := decimal.NewFromString(str)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidAmount, str)
	}
	return NewAmount(value)
}

// A returns an Amount from an already-normalized decimal without the
// non-negative check. Balances use it: they may legitimately go negative.
func A(value decimal.Decimal) Amount { return Amount{value: value} }

// binary operators.

func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }

// Neg returns the amount with its sign flipped.
func (a Amount) Neg() Amount { return Amount{value: a.value.Neg()} }

func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool        { return a.value.IsZero() }
func (a Amount) IsNegative() bool    { return a.value.IsNegative() }

// String returns the plain decimal representation with two fractional digits.
func (a Amount) String() string { return a.value.StringFixed(fraction) }

// Display formats the amount for the given currency label. Known ISO codes
// ("EUR", "USD", ...) get full currency-aware formatting; anything else
// (e.g. a bare "€" symbol) is used as a prefix.
func (a Amount) Display(label string) string {
	if cur := money.GetCurrency(label); cur != nil {
		dec := a.value.Shift(int32(cur.Fraction))
		return cur.Formatter().Format(dec.IntPart())
	}
	return label + " " + a.String()
}

// MarshalJSON persists the amount as a bare JSON number with two
// fractional digits.
func (a Amount) MarshalJSON() ([]byte, error) {
	return a.value.Round(fraction).MarshalJSON()
}

// UnmarshalJSON reads a JSON number (or quoted number) into the amount.
// Sign validation is the decoder's concern: balances may be negative.
func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.value.UnmarshalJSON(data)
}
