package money

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/signoff/internal/apperr"
)

var (
	hundred  = decimal.NewFromInt(100)
	maxCents = decimal.NewFromInt(math.MaxInt64)
)

var (
	ErrNegative   = apperr.Validation("price must not be negative")
	ErrOutOfRange = apperr.Validation("price is out of range")
)

// FromDecimal converts a non-negative major-unit amount to cents, rounding
// half away from zero. Examples: 10 -> 1000, 12.345 -> 1235.
func FromDecimal(d decimal.Decimal) (int64, error) {
	if d.IsNegative() {
		return 0, ErrNegative
	}

	cents := d.Mul(hundred).Round(0)
	if cents.GreaterThan(maxCents) {
		return 0, ErrOutOfRange
	}

	return cents.IntPart(), nil
}

// Format renders cents as a fixed two-decimal string, e.g. 123456 -> "1234.56".
func Format(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
