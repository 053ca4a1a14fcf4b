// Package random implements generic sampling operations over an abstract
// raw-entropy source. Any algorithm satisfying Source gets unit-interval
// draws, ranged draws, uniform and weighted choice, and shuffling for free.
package random

import (
	"errors"
	"math"
	"sort"
)

var ErrLengthMismatch = errors.New("lengths of sequence and weight sequence must be equal")
var ErrEmptySequence = errors.New("sequence must have non-zero length")

// Generator derives sampling operations from a raw Source. It holds no
// state of its own beyond the source; reproducibility is entirely the
// source's concern. Not safe for concurrent use; each independent stream
// of randomness needs its own Generator.
type Generator struct {
	src     Source
	maxWord float64
}

// New wraps a concrete source. The source's word width fixes the divisor
// used for unit-interval draws.
func New(src Source) *Generator {
	maxWord := float64(math.MaxUint64)
	if bits := src.WordBits(); bits < 64 {
		maxWord = float64(uint64(1)<<uint(bits) - 1)
	}
	return &Generator{src: src, maxWord: maxWord}
}

// Next returns one raw word from the underlying source, untransformed.
func (g *Generator) Next() uint64 {
	return g.src.Next()
}

// ResetSeed reinitializes the underlying source from seed, replacing all
// of its internal state.
func (g *Generator) ResetSeed(seed uint64) {
	g.src.Reseed(seed)
}

// WordBits reports the native word width of the underlying source.
func (g *Generator) WordBits() int {
	return g.src.WordBits()
}

// NextUnit returns a random real in [0, 1). A raw draw is divided by the
// word type's maximum value; a result of exactly 1.0 is rejected and
// redrawn, since max/max would otherwise leak the closed upper bound.
func (g *Generator) NextUnit() float64 {
	x := 1.0
	for x == 1.0 {
		x = float64(g.src.Next()) / g.maxWord
	}
	return x
}

// NextInRange returns a random integer in [min, max], both ends inclusive.
// Requires min <= max; behavior is undefined otherwise. Spans wider than
// float64 can represent exactly (above 2^53) lose low-bit resolution.
func (g *Generator) NextInRange(min, max int64) int64 {
	return int64(math.Floor(g.NextUnit()*float64(max-min+1))) + min
}

// NextInCRange returns a random real in [min, max). A result equal to max
// exactly is rejected and redrawn; min is attainable only through the unit
// draw's own lower bound.
func (g *Generator) NextInCRange(min, max float64) float64 {
	x := max
	for x == max {
		x = (max-min)*g.NextUnit() + min
	}
	return x
}

// Choice returns a uniformly chosen element of seq. seq must be non-empty.
func Choice[E any](g *Generator, seq []E) E {
	return seq[g.NextInRange(0, int64(len(seq)-1))]
}

// WeightedChoice returns an element of seq chosen with probability
// proportional to its weight. It validates the inputs before consuming any
// randomness, so a rejected call leaves the generator sequence untouched.
// Weights are assumed non-negative; that is not validated.
func WeightedChoice[E any](g *Generator, seq []E, weights []float64) (E, error) {
	var zero E
	if len(seq) != len(weights) {
		return zero, ErrLengthMismatch
	}
	if len(seq) == 0 {
		return zero, ErrEmptySequence
	}

	cumulative := make([]float64, len(weights))
	sum := 0.0
	for i, w := range weights {
		sum += w
		cumulative[i] = sum
	}

	// first prefix sum strictly above u (upper-bound semantics), so
	// zero-weight elements are never selected
	u := g.NextUnit() * sum
	idx := sort.Search(len(cumulative), func(i int) bool { return cumulative[i] > u })
	if idx == len(cumulative) {
		idx = len(cumulative) - 1
	}
	return seq[idx], nil
}

// Shuffle permutes seq in place with the Fisher-Yates algorithm: position i
// receives a uniform pick among the elements not yet placed, so all n!
// permutations are equally likely when the source is uniform.
func Shuffle[E any](g *Generator, seq []E) {
	for i := len(seq) - 1; i > 0; i-- {
		j := g.NextInRange(0, int64(i))
		seq[i], seq[j] = seq[j], seq[i]
	}
}
