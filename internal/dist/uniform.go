package dist

import "github.com/xtding233/randkit/internal/random"

// Uniform is the continuous uniform distribution on [A, B).
// Requires A < B; not validated.
type Uniform struct {
	A, B float64
}

func (u Uniform) Variance() float64 {
	d := u.B - u.A
	return d * d / 12
}

func (u Uniform) Expectation() float64 { return (u.A + u.B) / 2 }

func (u Uniform) MinValue() float64 { return u.A }

func (u Uniform) MaxValue() float64 { return u.B }

func (u Uniform) PDF(x float64) float64 {
	if x < u.A || x >= u.B {
		return 0
	}
	return 1 / (u.B - u.A)
}

func (u Uniform) CDF(x float64) float64 {
	switch {
	case x <= u.A:
		return 0
	case x >= u.B:
		return 1
	}
	return (x - u.A) / (u.B - u.A)
}

// Sample draws one variate using the generator's continuous ranged draw.
func (u Uniform) Sample(g *random.Generator) float64 {
	return g.NextInCRange(u.A, u.B)
}
