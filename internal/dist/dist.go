// Package dist defines the analytic contracts a probability distribution
// exposes to the rest of the system, plus a couple of concrete
// distributions that exercise them. Evaluations are pure; a conforming
// implementation keeps no mutable state.
package dist

// Continuous is the capability set of a continuous probability
// distribution. CDF must be non-decreasing, approaching 0 at MinValue and
// 1 at MaxValue; PDF must integrate to 1 over [MinValue, MaxValue].
type Continuous interface {
	// Variance returns the theoretical variance of the distribution.
	Variance() float64
	// Expectation returns the theoretical mean of the distribution.
	Expectation() float64
	// MinValue returns the smallest value the random variable can take.
	MinValue() float64
	// MaxValue returns the largest value the random variable can take.
	MaxValue() float64
	// PDF evaluates the probability density at x.
	PDF(x float64) float64
	// CDF evaluates P(X <= x).
	CDF(x float64) float64
}

// Discrete is the capability set of a discrete probability distribution
// over integer support. PMF must sum to 1 over the support; CDF follows
// the same monotonicity contract as the continuous variant.
type Discrete interface {
	// Variance returns the theoretical variance of the distribution.
	Variance() float64
	// Expectation returns the theoretical mean of the distribution.
	Expectation() float64
	// MinValue returns the smallest value in the support.
	MinValue() int64
	// MaxValue returns the largest value in the support.
	MaxValue() int64
	// PMF evaluates P(X = k).
	PMF(k int64) float64
	// CDF evaluates P(X <= k).
	CDF(k int64) float64
}
