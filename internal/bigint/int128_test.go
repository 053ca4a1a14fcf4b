package bigint

import (
	"math/big"
	"math/rand/v2"
	"testing"
)

func fromBig(t *testing.T, v *big.Int) Int128 {
	t.Helper()
	mask := big.NewInt(0).SetUint64(1<<32 - 1)
	var limbs [4]uint64
	tmp := new(big.Int).Set(v)
	for i := 0; i < 4; i++ {
		limbs[i] = new(big.Int).And(tmp, mask).Uint64()
		tmp.Rsh(tmp, 32)
	}
	if tmp.Sign() != 0 {
		t.Fatalf("value does not fit in 128 bits: %s", v)
	}
	return New(limbs[0], limbs[1], limbs[2], limbs[3])
}

func TestSquareThenModMatchesBigInt(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 5000; i++ {
		n := rng.Uint64()
		if n < 2 {
			n = 2
		}
		a := rng.Uint64() % n

		x := FromUint64(a)
		x.Square()
		x.Mod(n)

		want := new(big.Int).SetUint64(a)
		want.Mul(want, want)
		want.Mod(want, new(big.Int).SetUint64(n))
		if got := x.Uint64(); got != want.Uint64() {
			t.Fatalf("a=%d n=%d: got %d, want %s", a, n, got, want)
		}
		if x != FromUint64(want.Uint64()) {
			t.Fatalf("a=%d n=%d: upper limbs not cleared: %s", a, n, x.String())
		}
	}
}

func TestSquareFullWidth(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	mod128 := new(big.Int).Lsh(big.NewInt(1), 128)
	for i := 0; i < 5000; i++ {
		v := new(big.Int).SetUint64(rng.Uint64())
		v.Lsh(v, 64)
		v.Or(v, new(big.Int).SetUint64(rng.Uint64()))

		x := fromBig(t, v)
		x.Square()

		want := new(big.Int).Mul(v, v)
		want.Mod(want, mod128)
		if exp := fromBig(t, want); x != exp {
			t.Fatalf("v=%s: got %s, want %s", v, x.String(), exp.String())
		}
	}
}

func TestModIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 2000; i++ {
		n := rng.Uint64()
		if n == 0 {
			n = 1
		}
		x := New(rng.Uint64()&0xFFFFFFFF, rng.Uint64()&0xFFFFFFFF, rng.Uint64()&0xFFFFFFFF, rng.Uint64()&0xFFFFFFFF)
		x.Mod(n)
		once := x
		x.Mod(n)
		if x != once {
			t.Fatalf("n=%d: mod not idempotent: %s vs %s", n, x.String(), once.String())
		}
	}
}

func TestModBelowModulusUntouched(t *testing.T) {
	x := FromUint64(41)
	x.Mod(97)
	if x != FromUint64(41) {
		t.Fatalf("value below modulus changed: %s", x.String())
	}
}

func TestModEqualModulus(t *testing.T) {
	x := FromUint64(97)
	x.Mod(97)
	if !x.IsZero() {
		t.Fatalf("value equal to modulus should reduce to zero, got %s", x.String())
	}
}

func TestZero(t *testing.T) {
	var z Int128
	z.Square()
	if !z.IsZero() {
		t.Fatalf("0 squared is not 0: %s", z.String())
	}
	for _, n := range []uint64{1, 2, 97, 1<<63 + 1} {
		z.Mod(n)
		if !z.IsZero() {
			t.Fatalf("0 mod %d is not 0: %s", n, z.String())
		}
	}
}

func TestString(t *testing.T) {
	x := New(1, 2, 3, 4)
	if got := x.String(); got != "4 3 2 1" {
		t.Fatalf("want most-significant limb first, got %q", got)
	}
}
