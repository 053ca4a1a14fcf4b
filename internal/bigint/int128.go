// Package bigint provides a fixed-width 128-bit unsigned integer for
// modular-recurrence generators whose update rule is state <- state^2 mod n.
// The squaring step needs up to 256 bits of intermediate width, which is why
// this type exists instead of a pair of native 64-bit words.
package bigint

import (
	"fmt"
	"math/bits"
)

const limbMask = 1<<32 - 1

// Int128 is an unsigned integer in [0, 2^128), stored as four limbs of at
// most 32 significant bits each, least significant first. The limbs live in
// 64-bit words so that carries during arithmetic never overflow.
type Int128 struct {
	limbs [4]uint64
}

// New builds an Int128 from four 32-bit limbs, least significant first.
func New(d0, d1, d2, d3 uint64) Int128 {
	return Int128{limbs: [4]uint64{d0 & limbMask, d1 & limbMask, d2 & limbMask, d3 & limbMask}}
}

// FromUint64 builds an Int128 holding the given 64-bit value.
func FromUint64(x uint64) Int128 {
	return Int128{limbs: [4]uint64{x & limbMask, x >> 32, 0, 0}}
}

// Uint64 returns the low 64 bits of the value.
func (z *Int128) Uint64() uint64 {
	return z.limbs[1]<<32 | z.limbs[0]
}

// IsZero reports whether the value is 0.
func (z *Int128) IsZero() bool {
	return z.limbs[0]|z.limbs[1]|z.limbs[2]|z.limbs[3] == 0
}

// Square replaces the value with value*value mod 2^128.
//
// Schoolbook limb-by-limb multiplication into an 8-limb accumulator. Each
// partial product is at most 64 bits; its overflow above 32 bits is folded
// into the next limb immediately after the addition and the limb is masked
// back to 32 bits so the same carry is never folded twice. With 32-bit
// limbs the accumulator peaks at exactly 2^64-1, so no add here can wrap.
func (z *Int128) Square() {
	var product [8]uint64

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			product[i+j] += z.limbs[i] * z.limbs[j]
			product[i+j+1] += product[i+j] >> 32
			product[i+j] &= limbMask
		}
	}

	for i := 0; i < 4; i++ {
		z.limbs[i] = product[i] & limbMask
	}
}

// Mod reduces the value modulo n. n must be > 0; n == 0 is caller error and
// panics in the division below. After reduction the value fits in 64 bits:
// limbs 2 and 3 are zero.
func (z *Int128) Mod(n uint64) {
	// Already below n: nothing to do.
	hi, lo := n>>32, n&limbMask
	if z.limbs[3] == 0 && z.limbs[2] == 0 &&
		(z.limbs[1] < hi || (z.limbs[1] == hi && z.limbs[0] < lo)) {
		return
	}

	// Horner reduction, most significant limb first. The running remainder
	// stays below n, so res*2^32 fits in 128 bits and Div64 cannot trap on
	// quotient overflow.
	var res uint64
	for i := 3; i >= 0; i-- {
		ph, pl := bits.Mul64(res, 1<<32)
		_, rem := bits.Div64(ph, pl, n)
		sum, carry := bits.Add64(rem, z.limbs[i]%n, 0)
		if carry != 0 || sum >= n {
			sum -= n
		}
		res = sum
	}

	z.limbs[3] = 0
	z.limbs[2] = 0
	z.limbs[1] = res >> 32
	z.limbs[0] = res & limbMask
}

// String renders the limbs most significant first, for diagnostics only.
func (z *Int128) String() string {
	return fmt.Sprintf("%d %d %d %d", z.limbs[3], z.limbs[2], z.limbs[1], z.limbs[0])
}
