// Package sim runs Monte Carlo trials of a sampler against a seeded
// generator and summarizes the outcomes, so sampled moments can be checked
// against a distribution's analytic contract.
package sim

import (
	"math"
	"sort"

	"github.com/xtding233/randkit/internal/random"
)

// Sampler produces one integer variate per call from the given generator.
type Sampler interface {
	Sample(g *random.Generator) int64
}

// Stats summarizes simulation results.
type Stats struct {
	Trials int     `json:"trials"`
	Mean   float64 `json:"mean"`
	Var    float64 `json:"var"`
	StdDev float64 `json:"stddev"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
	P99    float64 `json:"p99"`
}

// Run draws trials variates from s and returns their summary statistics.
func Run(g *random.Generator, s Sampler, trials int) Stats {
	if trials <= 0 {
		return Stats{}
	}
	samples := make([]int64, trials)
	for i := range samples {
		samples[i] = s.Sample(g)
	}
	return Summarize(samples)
}

// Summarize computes mean/variance/percentiles for integer samples.
func Summarize(xs []int64) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}

	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	// variance (population)
	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)

	cp := append([]int64(nil), xs...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	percentile := func(p float64) float64 {
		if p <= 0 || n == 1 {
			return float64(cp[0])
		}
		if p >= 1 {
			return float64(cp[n-1])
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return float64(cp[i])
		}
		return float64(cp[i])*(1-f) + float64(cp[i+1])*f
	}

	return Stats{
		Trials: n,
		Mean:   mean,
		Var:    variance,
		StdDev: math.Sqrt(variance),
		P50:    percentile(0.50),
		P90:    percentile(0.90),
		P99:    percentile(0.99),
	}
}
