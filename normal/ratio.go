package normal

import "math"

// badDstLength is the panic message for mismatched destination slices,
// following the gonum/floats convention for numeric kernels.
const badDstLength = "normal: destination slice length does not match input"

// Ratio returns φ(x)/Φ(x), the ratio of the standard-normal density to its
// CDF (the reciprocal of the Mills ratio at −x).
//
// The ratio is computed as exp(LogPDF(x) − LogCDF(x)), never as a direct
// division: for large negative x both φ(x) and Φ(x) underflow, while their
// log-difference stays small — the ratio tends to |x| as x → −∞ and to 0
// as x → +∞.  For every finite x the result is finite and positive.
func Ratio(x float64) float64 {
	return math.Exp(LogPDF(x) - LogCDF(x))
}

// RatioGrad returns the derivative d/dx [φ(x)/Φ(x)] = −g·(x+g), where
// g = Ratio(x).  The same g value feeds both factors, so the derivative is
// exactly consistent with the Ratio it differentiates.
//
// The result is always negative for finite x: the ratio is strictly
// decreasing.
func RatioGrad(x float64) float64 {
	g := Ratio(x)
	return -g * (x + g)
}

// RatioTo writes Ratio(x[i]) into dst[i] for every element of x and
// returns dst.  It panics if len(dst) != len(x).
func RatioTo(dst, x []float64) []float64 {
	if len(dst) != len(x) {
		panic(badDstLength)
	}
	for i, v := range x {
		dst[i] = Ratio(v)
	}
	return dst
}

// RatioGradTo writes RatioGrad(x[i]) into dst[i] for every element of x
// and returns dst.  It panics if len(dst) != len(x).
func RatioGradTo(dst, x []float64) []float64 {
	if len(dst) != len(x) {
		panic(badDstLength)
	}
	for i, v := range x {
		dst[i] = RatioGrad(v)
	}
	return dst
}
