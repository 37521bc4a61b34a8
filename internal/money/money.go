// Package money holds the 2-decimal currency arithmetic shared by the cart and
// order services. Every derived value (unit price, line subtotal, total) is
// rounded half away from zero at the point it is produced, never compounded
// from unrounded intermediates.
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// LineSubtotal computes round2(price * quantity) with the single multiplication
// done in decimal space.
func LineSubtotal(price float64, quantity int) float64 {
	f, _ := decimal.NewFromFloat(price).
		Mul(decimal.NewFromInt(int64(quantity))).
		Round(2).
		Float64()
	return f
}

// Sum adds already-rounded values and rounds the result once.
func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	f, _ := total.Round(2).Float64()
	return f
}

// Valid reports whether v is a usable monetary amount. Guards against corrupt
// upstream data leaking NaN/Inf into stored documents.
func Valid(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
