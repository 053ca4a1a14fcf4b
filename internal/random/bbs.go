package random

import "github.com/xtding233/randkit/internal/bigint"

// DefaultBBSModulus is the product of the two largest primes below 2^32
// (4294967291 and 4294967279, both congruent to 3 mod 4).
const DefaultBBSModulus uint64 = 4294967291 * 4294967279

// BBS is a Blum-Blum-Shub style modular-recurrence source: each step
// advances state <- state^2 mod n and emits the low 32 bits. The squaring
// runs through bigint.Int128 because the intermediate product of a value
// just below 2^64 needs up to 128 bits before reduction.
//
// This is a demonstration collaborator for the sampling layer, not a
// cryptographically secure generator.
type BBS struct {
	n     uint64
	state bigint.Int128
}

// NewBBS creates a modular-recurrence source with modulus n, seeded with
// seed. If n < 4 the default modulus is used.
func NewBBS(n, seed uint64) *BBS {
	if n < 4 {
		n = DefaultBBSModulus
	}
	b := &BBS{n: n}
	b.Reseed(seed)
	return b
}

func (b *BBS) Next() uint64 {
	b.state.Square()
	b.state.Mod(b.n)
	return b.state.Uint64() & 0xFFFFFFFF
}

func (b *BBS) Reseed(seed uint64) {
	s := seed % b.n
	// avoid the fixed points 0 and 1 and the short cycle at n-1
	if s < 2 || s == b.n-1 {
		s = 2 + s%2
	}
	b.state = bigint.FromUint64(s)
}

func (b *BBS) WordBits() int { return 32 }
