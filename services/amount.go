package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MaxAmount caps any rupiah amount (prices, totals, item subtotals) so sums stay far from int64 overflow.
const MaxAmount int64 = 1_000_000_000_000_000

const (
	maxAmountText     = 40
	maxAmountExponent = 18
)

var maxAmountDec = decimal.NewFromInt(MaxAmount)

// parseAmount reads a rupiah amount typed into a form: a whole, non-negative number.
// blankAsZero controls whether an empty field is accepted.
func parseAmount(field, raw string, blankAsZero bool) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if blankAsZero {
			return 0, nil
		}
		return 0, invalid("%s is required", field)
	}
	if len(raw) > maxAmountText {
		return 0, invalid("%s is too large", field)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, invalid("%s must be a number", field)
	}
	// rescaling a huge exponent allocates 10^|exp|; reject before any comparison
	if exp := d.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return 0, invalid("%s is out of range", field)
	}
	if d.IsNegative() {
		return 0, invalid("%s must not be negative", field)
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, invalid("%s must be a whole number", field)
	}
	if d.GreaterThan(maxAmountDec) {
		return 0, invalid("%s is too large", field)
	}
	return d.IntPart(), nil
}

// subtotal multiplies a price snapshot by a quantity, refusing results above MaxAmount.
func subtotal(price int64, qty int) (int64, bool) {
	if price < 0 || qty < 0 {
		return 0, false
	}
	if price != 0 && int64(qty) > MaxAmount/price {
		return 0, false
	}
	return price * int64(qty), true
}
