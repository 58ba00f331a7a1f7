// Copyright (c) 2021-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint256

import (
	"math/big"
	"testing"
)

// boundaryVals houses values that commonly trigger edge cases in carry and
// borrow propagation.
var boundaryVals = []Uint256{
	Zero,
	One,
	Max,
	FromUint64(^uint64(0)),
	FromWords([4]uint64{0, 1, 0, 0}),
	FromWords([4]uint64{^uint64(0), ^uint64(0), 0, 0}),
	FromWords([4]uint64{0, 0, 0, 1 << 63}),
	FromWords([4]uint64{^uint64(0), 0, ^uint64(0), 0}),
}

// TestAddSub ensures that addition and subtraction, with and without the
// overflow and underflow reporting, produce the expected results for edge
// cases.
func TestAddSub(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string // test description
		n1        string // hex encoded first operand
		n2        string // hex encoded second operand
		sum       string // expected hex encoded sum
		overflow  bool   // expected overflow flag
		diff      string // expected hex encoded difference
		underflow bool   // expected underflow flag
	}{{
		name: "zero + zero",
		n1:   "0",
		n2:   "0",
		sum:  "0",
		diff: "0",
	}, {
		name: "carry into every word",
		n1:   repeatHex("f", 48),
		n2:   "1",
		sum:  "1" + repeatHex("0", 48),
		diff: repeatHex("f", 47) + "e",
	}, {
		name:      "max + one wraps to zero",
		n1:        repeatHex("f", 64),
		n2:        "1",
		sum:       "0",
		overflow:  true,
		diff:      repeatHex("f", 63) + "e",
		underflow: false,
	}, {
		name:      "one - max",
		n1:        "1",
		n2:        repeatHex("f", 64),
		sum:       "0",
		overflow:  true,
		diff:      "2",
		underflow: true,
	}, {
		name:      "zero - one wraps to max",
		n1:        "0",
		n2:        "1",
		sum:       "1",
		diff:      repeatHex("f", 64),
		underflow: true,
	}, {
		name:     "max + max",
		n1:       repeatHex("f", 64),
		n2:       repeatHex("f", 64),
		sum:      repeatHex("f", 63) + "e",
		overflow: true,
		diff:     "0",
	}}

	for _, test := range tests {
		n1, n2 := hexToUint256(test.n1), hexToUint256(test.n2)
		wantSum, wantDiff := hexToUint256(test.sum), hexToUint256(test.diff)

		if got := n1.Add(n2); !got.Eq(wantSum) {
			t.Errorf("%q: wrong sum -- got: %x, want: %x", test.name, got,
				wantSum)
			continue
		}
		got, overflow := n1.AddOverflow(n2)
		if !got.Eq(wantSum) || overflow != test.overflow {
			t.Errorf("%q: wrong sum -- got: %x (overflow %v), want: %x "+
				"(overflow %v)", test.name, got, overflow, wantSum,
				test.overflow)
			continue
		}
		if got := n1.Sub(n2); !got.Eq(wantDiff) {
			t.Errorf("%q: wrong difference -- got: %x, want: %x", test.name,
				got, wantDiff)
			continue
		}
		got, underflow := n1.SubUnderflow(n2)
		if !got.Eq(wantDiff) || underflow != test.underflow {
			t.Errorf("%q: wrong difference -- got: %x (underflow %v), want: "+
				"%x (underflow %v)", test.name, got, underflow, wantDiff,
				test.underflow)
			continue
		}
	}
}

// TestAddSubRandom ensures that addition and subtraction along with their
// overflow and underflow flags agree with stdlib big integers for random and
// boundary values and that subtraction is the inverse of addition.
func TestAddSubRandom(t *testing.T) {
	t.Parallel()

	check := func(n1, n2 Uint256) {
		t.Helper()
		b1, b2 := n1.ToBig(), n2.ToBig()
		bigSum := new(big.Int).Add(b1, b2)
		wantSum := bigToUint256(bigSum)
		wantOverflow := bigSum.Cmp(two256) >= 0
		gotSum, gotOverflow := n1.AddOverflow(n2)
		if !gotSum.Eq(wantSum) || gotOverflow != wantOverflow {
			t.Fatalf("%x + %x -- got: %x (overflow %v), want %x "+
				"(overflow %v)", n1, n2, gotSum, gotOverflow, wantSum,
				wantOverflow)
		}

		bigDiff := new(big.Int).Sub(b1, b2)
		wantDiff := bigToUint256(bigDiff)
		wantUnderflow := bigDiff.Sign() < 0
		gotDiff, gotUnderflow := n1.SubUnderflow(n2)
		if !gotDiff.Eq(wantDiff) || gotUnderflow != wantUnderflow {
			t.Fatalf("%x - %x -- got: %x (underflow %v), want %x "+
				"(underflow %v)", n1, n2, gotDiff, gotUnderflow, wantDiff,
				wantUnderflow)
		}

		if got := n1.Add(n2).Sub(n2); !got.Eq(n1) {
			t.Fatalf("(%x + %x) - %x -- got: %x, want: %x", n1, n2, n2, got,
				n1)
		}
		if gotLt := n1.Lt(n2); gotLt != wantUnderflow {
			t.Fatalf("%x < %x -- got: %v, want: %v", n1, n2, gotLt,
				wantUnderflow)
		}
	}

	for _, n1 := range boundaryVals {
		for _, n2 := range boundaryVals {
			check(n1, n2)
		}
	}

	rng, logSeed := newTestRNG(t)
	defer logSeed()
	for i := 0; i < 10000; i++ {
		check(randUint256(rng), randUint256(rng))
	}
}

// TestAddSubUint64 ensures the native integer variants of addition and
// subtraction agree with their full width counterparts.
func TestAddSubUint64(t *testing.T) {
	t.Parallel()

	rng, logSeed := newTestRNG(t)
	defer logSeed()
	for i := 0; i < 1000; i++ {
		n, u := randUint256(rng), rng.Uint64()
		if got, want := n.AddUint64(u), n.Add(FromUint64(u)); !got.Eq(want) {
			t.Fatalf("%x + %x -- got: %x, want: %x", n, u, got, want)
		}
		if got, want := n.SubUint64(u), n.Sub(FromUint64(u)); !got.Eq(want) {
			t.Fatalf("%x - %x -- got: %x, want: %x", n, u, got, want)
		}
		if got, want := n.MulUint64(u), n.Mul(FromUint64(u)); !got.Eq(want) {
			t.Fatalf("%x * %x -- got: %x, want: %x", n, u, got, want)
		}
	}
	if got := Max.AddUint64(1); !got.IsZero() {
		t.Fatalf("max + 1 -- got: %x, want: 0", got)
	}
	if got := Zero.SubUint64(1); !got.Eq(Max) {
		t.Fatalf("0 - 1 -- got: %x, want: %x", got, Max)
	}
}

// TestMul ensures multiplication, the overflow reporting variant, and
// squaring agree with each other and with stdlib big integers.
func TestMul(t *testing.T) {
	t.Parallel()

	check := func(n1, n2 Uint256) {
		t.Helper()
		bigProduct := new(big.Int).Mul(n1.ToBig(), n2.ToBig())
		want := bigToUint256(bigProduct)
		wantOverflow := bigProduct.Cmp(two256) >= 0

		if got := n1.Mul(n2); !got.Eq(want) {
			t.Fatalf("%x * %x -- got: %x, want: %x", n1, n2, got, want)
		}
		got, overflow := n1.MulOverflow(n2)
		if !got.Eq(want) || overflow != wantOverflow {
			t.Fatalf("%x * %x -- got: %x (overflow %v), want: %x "+
				"(overflow %v)", n1, n2, got, overflow, want, wantOverflow)
		}

		// Ensure the full product agrees with the stdlib.
		p := mul512(&n1.n, &n2.n)
		gotFull := new(big.Int).Lsh(FromWords([4]uint64{p[4], p[5], p[6],
			p[7]}).ToBig(), 256)
		gotFull.Add(gotFull, FromWords([4]uint64{p[0], p[1], p[2],
			p[3]}).ToBig())
		if gotFull.Cmp(bigProduct) != 0 {
			t.Fatalf("%x * %x full -- got: %x, want: %x", n1, n2, gotFull,
				bigProduct)
		}

		if got, want := n1.Square(), n1.Mul(n1); !got.Eq(want) {
			t.Fatalf("%x^2 -- got: %x, want: %x", n1, got, want)
		}
	}

	for _, n1 := range boundaryVals {
		for _, n2 := range boundaryVals {
			check(n1, n2)
		}
	}

	rng, logSeed := newTestRNG(t)
	defer logSeed()
	for i := 0; i < 10000; i++ {
		check(randUint256(rng), randUint256(rng))
	}

	// Ensure the multiplication overflow edge cases are flagged as expected.
	twoTo128 := One.Lsh(128)
	if _, overflow := twoTo128.MulOverflow(twoTo128); !overflow {
		t.Fatal("2^128 * 2^128 did not overflow")
	}
	twoTo127 := One.Lsh(127)
	if got, overflow := twoTo128.MulOverflow(twoTo127); overflow ||
		!got.Eq(One.Lsh(255)) {

		t.Fatalf("2^128 * 2^127 -- got: %x (overflow %v)", got, overflow)
	}
}

// TestMulUint64Carry ensures the carry returned when multiplying by a native
// integer holds the bits of the product beyond the first 256.
func TestMulUint64Carry(t *testing.T) {
	t.Parallel()

	check := func(n Uint256, u uint64) {
		t.Helper()
		lo, carry := n.MulUint64Carry(u)
		got := new(big.Int).SetUint64(carry)
		got.Lsh(got, 256)
		got.Add(got, lo.ToBig())
		want := new(big.Int).Mul(n.ToBig(), new(big.Int).SetUint64(u))
		if got.Cmp(want) != 0 {
			t.Fatalf("%x * %x -- got: %x, want: %x", n, u, got, want)
		}
		if !lo.Eq(n.MulUint64(u)) {
			t.Fatalf("%x * %x -- low bits %x do not match %x", n, u, lo,
				n.MulUint64(u))
		}
	}

	for _, n := range boundaryVals {
		check(n, 0)
		check(n, 1)
		check(n, ^uint64(0))
	}
	rng, logSeed := newTestRNG(t)
	defer logSeed()
	for i := 0; i < 1000; i++ {
		check(randUint256(rng), rng.Uint64())
	}

	if _, carry := Max.MulUint64Carry(^uint64(0)); carry != ^uint64(0)-1 {
		t.Fatalf("max * (2^64-1) -- got carry %x, want %x", carry,
			^uint64(0)-1)
	}
}
