// Package probkit is a compact toolkit for probability computations that
// show up when fitting latent-variable models — currently the standard
// normal tail machinery and the binomial-probit likelihood built on it.
//
// 🚀 What is probkit?
//
//	A small, focused library of closed-form statistical kernels:
//		• Standard-normal log-density and a log-CDF that stays exact
//		  deep into both tails
//		• The PDF/CDF ratio φ(x)/Φ(x) (reciprocal Mills ratio) and its
//		  derivative, evaluated in log-space for stability
//		• Binomial-probit log-likelihood, gradient and diagonal Hessian
//		  over aligned observation vectors
//
// ✨ Why choose probkit?
//
//   - Numerically honest – no Inf/NaN surprises in the tails; φ(−40)/Φ(−40)
//     comes back as ≈ 40, not a division of two underflowed zeros
//   - Pure functions – no state, no goroutines, no I/O; every call is a
//     deterministic transform of its inputs
//   - Optimizer-friendly – gradient and Hessian writers take destination
//     slices, so a fitting loop allocates once and iterates
//
// Everything is organized under two subpackages, leaf-first:
//
//	normal/ — standard-normal LogPDF, LogCDF, Ratio, RatioGrad
//	probit/ — Likelihood, Grad, DiagHessian + a Model wrapper for fitters
//
// Quick taste:
//
//	x := []float64{-0.3, 0.0, 1.2}     // latent predictor
//	n := []float64{10, 10, 10}         // trials
//	p := []float64{3, 5, 9}            // successes
//	ll := probit.Likelihood(x, n, p)   // scalar log-likelihood
//	g := probit.Grad(x, n, p)          // ∂ll/∂x[i], same length as x
//
// See each subpackage's doc.go for formulas, stability notes and examples.
package probkit
