// Package price разбирает денежные значения из каталога и форм.
package price

import (
	"strings"
	"unicode"

	"github.com/DRSN-tech/terranova/pkg/e"
	"github.com/shopspring/decimal"
)

// Parse converts strings like "1,299.00", " 45 " or "35.5" to a decimal.
// Thousands separators and whitespace are stripped before parsing.
// Returns e.ErrInvalidPrice if:
// - the string is empty after cleanup
// - the value is not a decimal number
// - the value is negative
func Parse(s string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	if cleaned == "" {
		return decimal.Zero, e.Wrap("price is empty", e.ErrInvalidPrice)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, e.Wrap(cleaned, e.ErrInvalidPrice)
	}

	if d.IsNegative() {
		return decimal.Zero, e.Wrap(cleaned, e.ErrInvalidPrice)
	}

	return d, nil
}

// Format печатает цену с двумя знаками после запятой.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}
