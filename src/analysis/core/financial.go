package core

import (
	"math"

	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// -----------------------------------------------------------------------------

// PercentChange returns (current - base) / base * 100 rounded to 2 decimals.
// A zero base yields 0.
func PercentChange(current, base float64) float64 {
	if base == 0 {
		return 0
	}
	c := decimal.NewFromFloat(current)
	b := decimal.NewFromFloat(base)
	f, _ := c.Sub(b).Div(b).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	return f
}

// -----------------------------------------------------------------------------

// IsFinite reports whether v is a usable price.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
