// Package preprocess holds the robust-statistics steps applied to flux
// before scanning: NaN imputation, median/MAD normalization, and the
// noise-adaptive gain. All functions operate on copies; raw flux is what
// gets written to output.
package preprocess

import (
	"math"
	"sort"
)

// madNormal rescales the median absolute deviation to the standard
// deviation of a normal distribution (1/0.67449).
const madNormal = 1.4826022185056018

// #region robust-stats
// Median returns the median of the finite values in v, 0 for none.
func Median(v []float64) float64 {
	finite := make([]float64, 0, len(v))
	for _, x := range v {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			finite = append(finite, x)
		}
	}
	if len(finite) == 0 {
		return 0
	}
	sort.Float64s(finite)
	mid := len(finite) / 2
	if len(finite)%2 == 1 {
		return finite[mid]
	}
	return 0.5 * (finite[mid-1] + finite[mid])
}

// MAD returns the normal-scaled median absolute deviation of v.
func MAD(v []float64) float64 {
	med := Median(v)
	dev := make([]float64, len(v))
	for i, x := range v {
		dev[i] = math.Abs(x - med)
	}
	return madNormal * Median(dev)
}
// #endregion robust-stats

// #region impute
// ImputeNaN returns a copy of v with NaN entries replaced by the median of
// the finite entries. Infinities are left alone; the evolver rejects them.
func ImputeNaN(v []float64) []float64 {
	out := make([]float64, len(v))
	med := Median(v)
	for i, x := range v {
		if math.IsNaN(x) {
			out[i] = med
		} else {
			out[i] = x
		}
	}
	return out
}
// #endregion impute

// #region normalize
// Normalize centers v on its median and scales by the normal-equivalent MAD,
// floored at 1e-12 so a flat lightcurve does not divide by zero.
func Normalize(v []float64) []float64 {
	med := Median(v)
	centered := make([]float64, len(v))
	for i, x := range v {
		centered[i] = x - med
	}
	mad := MAD(v)
	if mad < 1e-12 {
		mad = 1e-12
	}
	for i := range centered {
		centered[i] /= mad
	}
	return centered
}
// #endregion normalize

// #region adaptive-gain
// AdaptiveGain scales the base gain by the noise level of the (normalized)
// flux: noisy curves get less gain so the scan does not trigger on noise,
// quiet curves get more to catch subtle events. The factor is clipped to
// [0.5, 2].
func AdaptiveGain(norm []float64, base float64) float64 {
	mad := MAD(norm)
	if mad < 0.1 {
		mad = 0.1
	}
	factor := 1.0 / mad
	if factor < 0.5 {
		factor = 0.5
	}
	if factor > 2.0 {
		factor = 2.0
	}
	return base * factor
}
// #endregion adaptive-gain
