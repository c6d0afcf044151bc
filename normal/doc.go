// Package normal evaluates standard-normal quantities that are fragile in
// naive floating point: the log-CDF deep in the tails and the PDF/CDF
// ratio φ(x)/Φ(x) with its derivative.
//
// 🚀 Why a dedicated package?
//
//	Φ(x) underflows to 0 around x ≈ −38, so any formula that touches Φ(x)
//	or log(Φ(x)) directly dies long before the mathematics does.  The
//	ratio φ(x)/Φ(x) is perfectly tame — it grows like |x| as x → −∞ —
//	but only if evaluated as exp(logφ(x) − logΦ(x)) with a log-CDF that
//	never bottoms out.
//
// ✨ Key functions:
//   - LogPDF(x)     — log φ(x), the standard-normal log-density
//   - LogCDF(x)     — log Φ(x), stable over the whole real line
//   - Ratio(x)      — φ(x)/Φ(x), the reciprocal Mills ratio
//   - RatioGrad(x)  — d/dx φ(x)/Φ(x) = −g·(x+g) with g = Ratio(x)
//   - RatioTo / RatioGradTo — elementwise forms writing into a
//     caller-provided destination slice
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/probkit/normal"
//
//	g := normal.Ratio(-10)          // ≈ 10.098, finite and positive
//	lc := normal.LogCDF(-30)        // ≈ −454.32, no underflow
//	dst := make([]float64, len(xs))
//	normal.RatioTo(dst, xs)         // elementwise over a vector
//
// Scalars are the primary API; length-1 slices through the ...To forms
// behave identically.  The ...To forms panic when the destination length
// does not match the input, in the gonum/floats tradition — there is no
// error taxonomy here, misuse is a programming bug.
//
// NaN and ±Inf inputs propagate per IEEE 754; no function in this package
// detects or repairs them.
//
// Complexity: every function is O(1) per element, allocation-free.
package normal
