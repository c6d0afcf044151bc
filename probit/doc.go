// Package probit computes the log-likelihood, gradient and diagonal
// Hessian of the binomial-probit model.
//
// 🚀 The model:
//
//	Each observation i has n[i] trials, p[i] successes, and a latent
//	linear predictor x[i].  The success probability is Φ(x[i]), the
//	standard-normal CDF, so the per-observation log-likelihood is
//
//	  ℓ_i = p[i]·logΦ(x[i]) + (n[i]−p[i])·logΦ(−x[i])
//
//	The failure term uses logΦ(−x) rather than log(1−Φ(x)) — the two are
//	equal mathematically, but only the former survives in the right tail.
//
// ✨ Key functions:
//   - Likelihood(x, n, p)  — Σ ℓ_i, a single scalar
//   - Grad(x, n, p)        — ∂ℓ_i/∂x[i] = p·g(x) − (n−p)·g(−x),
//     with g = normal.Ratio
//   - DiagHessian(x, n, p) — ∂²ℓ_i/∂x[i]² = p·g′(x) + (n−p)·g′(−x),
//     with g′ = normal.RatioGrad (cross terms vanish: observation i
//     depends only on x[i])
//   - GradTo / DiagHessianTo — destination-slice forms for fitting loops
//   - Model — fixes (n, p) once and exposes LogLike / Score / DiagHess
//     in optimizer-friendly signatures
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/probkit/probit"
//
//	m := probit.Model{Trials: n, Successes: p}
//	ll := m.LogLike(x)
//	m.Score(grad, x)      // gradient into a reused buffer
//	m.DiagHess(hess, x)   // per-coordinate curvature
//
// All functions are pure and stateless; inputs are never mutated.  Vectors
// must be positionally aligned and of equal length — a mismatch panics in
// the gonum/floats tradition.  Value constraints (0 ≤ p[i] ≤ n[i]) are the
// caller's responsibility; violations give mathematically meaningless but
// untrapped results, and NaN/Inf propagate per IEEE 754.
//
// Complexity: O(N) time, and zero allocations through the ...To forms.
package probit
