// Package money holds the fixed-point helpers shared by every component that
// touches a monetary or percentage value. All amounts in the system live at a
// 2-decimal scale and are rounded half-up at each computation step.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Scale is the number of decimal digits every monetary value carries.
const Scale = 2

// Round2 rounds d half-up to two decimal places. Amounts in this system are
// never negative, so decimal's round-half-away-from-zero is exactly half-up.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// Parse parses a decimal literal and normalizes it to two decimal places.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("money: invalid amount %q: %w", s, err)
	}
	return Round2(d), nil
}

// Format renders d with exactly two decimal digits ("12.30", not "12.3").
func Format(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}

// FormatWithMarker renders d at two decimals with the currency marker appended
// directly to the numeric text, the way the receipt file expects ("12.34$").
func FormatWithMarker(d decimal.Decimal, marker string) string {
	return d.StringFixed(Scale) + marker
}
