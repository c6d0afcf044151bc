package probit

// Model fixes the observation data of a binomial-probit fit: Trials holds
// n[i] (non-negative trial counts) and Successes holds p[i] with
// 0 ≤ p[i] ≤ n[i].  The two slices must be equal-length and positionally
// aligned; Model never mutates them.
//
// The methods mirror the free functions with the data bound, in the
// signatures fitting loops want: Score and DiagHess write into
// caller-owned buffers, so an optimizer allocates once and iterates.
type Model struct {
	Trials    []float64
	Successes []float64
}

// NumObs returns the number of observations in the model.
func (m Model) NumObs() int {
	return len(m.Trials)
}

// LogLike returns the total log-likelihood at the latent predictor x.
// Panics if len(x) differs from the observation count.
func (m Model) LogLike(x []float64) float64 {
	return Likelihood(x, m.Trials, m.Successes)
}

// Score writes the gradient of LogLike at x into grad and returns it.
func (m Model) Score(grad, x []float64) []float64 {
	return GradTo(grad, x, m.Trials, m.Successes)
}

// DiagHess writes the diagonal Hessian of LogLike at x into hess and
// returns it.
func (m Model) DiagHess(hess, x []float64) []float64 {
	return DiagHessianTo(hess, x, m.Trials, m.Successes)
}
