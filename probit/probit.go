package probit

import (
	"github.com/katalvlaran/probkit/normal"
)

// Panic messages for misaligned inputs, gonum/floats style.
const (
	badObsLength = "probit: observation vectors have mismatched lengths"
	badDstLength = "probit: destination slice length does not match input"
)

// checkObs panics unless x, n, p are equal-length.
func checkObs(x, n, p []float64) {
	if len(n) != len(x) || len(p) != len(x) {
		panic(badObsLength)
	}
}

// Likelihood returns the total binomial-probit log-likelihood
//
//	Σ_i p[i]·logΦ(x[i]) + (n[i]−p[i])·logΦ(−x[i])
//
// where Φ is the standard-normal CDF.  The failure term is evaluated as
// logΦ at the negated argument, never as log(1−Φ(x)), so both tails keep
// full precision.  Panics if the vectors are not equal-length.
func Likelihood(x, n, p []float64) float64 {
	checkObs(x, n, p)
	var ll float64
	for i, xi := range x {
		ll += p[i]*normal.LogCDF(xi) + (n[i]-p[i])*normal.LogCDF(-xi)
	}
	return ll
}

// Grad returns the gradient of the total log-likelihood with respect to
// each x[i], as a freshly allocated vector of the same length:
//
//	grad[i] = p[i]·g(x[i]) − (n[i]−p[i])·g(−x[i]),  g = normal.Ratio
func Grad(x, n, p []float64) []float64 {
	return GradTo(make([]float64, len(x)), x, n, p)
}

// GradTo writes the gradient into dst and returns it.  Panics if the
// observation vectors are not equal-length or dst does not match them.
func GradTo(dst, x, n, p []float64) []float64 {
	checkObs(x, n, p)
	if len(dst) != len(x) {
		panic(badDstLength)
	}
	for i, xi := range x {
		dst[i] = p[i]*normal.Ratio(xi) - (n[i]-p[i])*normal.Ratio(-xi)
	}
	return dst
}

// DiagHessian returns the diagonal of the Hessian of the total
// log-likelihood, as a freshly allocated vector:
//
//	hess[i] = p[i]·g′(x[i]) + (n[i]−p[i])·g′(−x[i]),  g′ = normal.RatioGrad
//
// Off-diagonal Hessian entries are identically zero — observation i
// depends only on x[i] — so the diagonal is the whole curvature story.
// The plus sign on the failure term comes from the chain rule at −x
// canceling the outer negation in the gradient.
func DiagHessian(x, n, p []float64) []float64 {
	return DiagHessianTo(make([]float64, len(x)), x, n, p)
}

// DiagHessianTo writes the Hessian diagonal into dst and returns it.
// Panics on any length mismatch.
func DiagHessianTo(dst, x, n, p []float64) []float64 {
	checkObs(x, n, p)
	if len(dst) != len(x) {
		panic(badDstLength)
	}
	for i, xi := range x {
		dst[i] = p[i]*normal.RatioGrad(xi) + (n[i]-p[i])*normal.RatioGrad(-xi)
	}
	return dst
}
