package dist

import (
	"math"

	"github.com/xtding233/randkit/internal/random"
)

// Geometric is the geometric distribution on support {1, 2, ...}: the
// number of independent trials with success probability P needed to see
// the first success. Requires 0 < P < 1; not validated.
type Geometric struct {
	P float64
}

func (g Geometric) Variance() float64 { return (1 - g.P) / (g.P * g.P) }

func (g Geometric) Expectation() float64 { return 1 / g.P }

func (g Geometric) MinValue() int64 { return 1 }

func (g Geometric) MaxValue() int64 { return math.MaxInt64 }

func (g Geometric) PMF(k int64) float64 {
	if k < 1 {
		return 0
	}
	return g.P * math.Pow(1-g.P, float64(k-1))
}

func (g Geometric) CDF(k int64) float64 {
	if k < 1 {
		return 0
	}
	return 1 - math.Pow(1-g.P, float64(k))
}

// Sample draws one variate by counting unit draws until the first lands
// below P.
func (g Geometric) Sample(rng *random.Generator) int64 {
	var k int64 = 1
	for rng.NextUnit() >= g.P {
		k++
	}
	return k
}
