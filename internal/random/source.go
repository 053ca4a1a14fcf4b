package random

// Source abstract

// Source is the raw-entropy contract a concrete PRNG algorithm supplies.
// The derived sampling operations in this package are written once against
// it and never per algorithm. A source owns all of its own state; Reseed
// replaces that state completely, never partially.
type Source interface {
	// Next returns one native random word, zero-extended to 64 bits.
	Next() uint64
	// Reseed reinitializes all internal state from the seed.
	Reseed(seed uint64)
	// WordBits reports the native word width: 32 or 64.
	WordBits() int
}

// splitmix64 mixes a seed into a well-spread 64-bit state word.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// XorShift is a xorshift128+ source producing 64-bit words.
type XorShift struct {
	s0, s1 uint64
}

// NewXorShift creates a xorshift128+ source seeded with seed.
func NewXorShift(seed uint64) *XorShift {
	x := &XorShift{}
	x.Reseed(seed)
	return x
}

func (x *XorShift) Next() uint64 {
	v := x.s0 + x.s1
	s0 := x.s1
	t := x.s0 ^ (x.s0 << 23)
	x.s0 = s0
	x.s1 = t ^ s0 ^ (t >> 18) ^ (s0 >> 5)
	return v
}

func (x *XorShift) Reseed(seed uint64) {
	// expand one word into two non-zero state words
	x.s0 = splitmix64(seed)
	x.s1 = splitmix64(x.s0)
	if x.s0 == 0 && x.s1 == 0 {
		x.s1 = 1
	}
}

func (x *XorShift) WordBits() int { return 64 }

// LCG32 is a 32-bit linear-congruential source using the
// Numerical Recipes multiplier.
type LCG32 struct {
	state uint32
}

// NewLCG32 creates a 32-bit LCG source seeded with seed.
func NewLCG32(seed uint64) *LCG32 {
	l := &LCG32{}
	l.Reseed(seed)
	return l
}

func (l *LCG32) Next() uint64 {
	l.state = l.state*1664525 + 1013904223
	return uint64(l.state)
}

func (l *LCG32) Reseed(seed uint64) {
	l.state = uint32(splitmix64(seed))
}

func (l *LCG32) WordBits() int { return 32 }
