package normal

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Branch cutoffs for LogCDF.
//
//   - Above upperCutoff, Φ(x) is within 1e−9 of 1 and log(Φ(x)) evaluated
//     directly would cancel; log1p against the upper tail keeps full
//     precision.
//   - Between the cutoffs, math.Erfc(−x/√2) carries the value with ~1 ulp
//     relative error and a plain log is exact enough.
//   - Below lowerCutoff, erfc itself is still finite (it underflows near
//     x ≈ −37.5) but the asymptotic Mills series is already converged to
//     double precision there, and it keeps working arbitrarily far out.
const (
	upperCutoff = 6.0
	lowerCutoff = -14.0

	// tailSeriesMax bounds the asymptotic expansion; at x = lowerCutoff the
	// series reaches double precision in 14 terms, and it only gets faster
	// further out.
	tailSeriesMax = 30
	tailSeriesEps = 1e-17
)

// unit is the standard normal N(0,1); LogProb gives logφ.
var unit = distuv.UnitNormal

// LogPDF returns the standard-normal log-density logφ(x) = −x²/2 − log(2π)/2.
func LogPDF(x float64) float64 {
	return unit.LogProb(x)
}

// LogCDF returns logΦ(x), the log of the standard-normal CDF, with full
// double precision over the whole real line — including tails where Φ(x)
// itself underflows to 0 or rounds to 1.
//
// For finite x the result is always finite (large negative, never −Inf).
func LogCDF(x float64) float64 {
	switch {
	case x > upperCutoff:
		// Φ(x) ≈ 1: go through the upper tail, log1p(−Φ(−x)).
		return math.Log1p(-0.5 * math.Erfc(x/math.Sqrt2))
	case x > lowerCutoff:
		return math.Log(0.5 * math.Erfc(-x/math.Sqrt2))
	default:
		return logCDFTail(x)
	}
}

// logCDFTail evaluates logΦ(x) for x ≤ lowerCutoff via the asymptotic
// expansion of the Mills ratio:
//
//	Φ(x) = φ(x)/(−x) · [1 − 1/x² + 3/x⁴ − 15/x⁶ + ...]
//
// so logΦ(x) = logφ(x) − log(−x) + log1p(Σ_{k≥1} (−1)^k (2k−1)!!/x^(2k)).
// The series is summed until the next term falls below double precision.
func logCDFTail(x float64) float64 {
	r := 1 / (x * x)
	term := 1.0
	var sum float64
	for k := 1; k <= tailSeriesMax; k++ {
		term *= -float64(2*k-1) * r
		sum += term
		if math.Abs(term) < tailSeriesEps {
			break
		}
	}
	return LogPDF(x) - math.Log(-x) + math.Log1p(sum)
}
