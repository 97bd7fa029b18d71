package core

import "math"

// -----------------------------------------------------------------------------

// MinMax returns the extremes of values. ok is false for an empty slice.
func MinMax(values []float64) (lo, hi float64, ok bool) {
	if len(values) == 0 {
		return 0, 0, false
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, true
}

// -----------------------------------------------------------------------------

// PaddedRange widens [lo, hi] by (hi-lo)*factor on each side. A flat range is
// padded by |lo|*factor, or by 1 when the value is 0. Bounds are not rounded.
func PaddedRange(lo, hi, factor float64) (float64, float64) {
	pad := (hi - lo) * factor
	if pad == 0 {
		pad = math.Abs(lo) * factor
		if pad == 0 {
			pad = 1
		}
	}
	return lo - pad, hi + pad
}
