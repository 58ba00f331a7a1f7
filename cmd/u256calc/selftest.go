// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/decred/dcrd/crypto/rand"
)

var (
	// bigTwo256 is 2^256 as an arbitrary precision integer.
	bigTwo256 = new(big.Int).Lsh(big.NewInt(1), 256)

	// bigMask256 is 2^256 - 1 as an arbitrary precision integer.
	bigMask256 = new(big.Int).Sub(bigTwo256, big.NewInt(1))
)

// wrap256 reduces the passed value modulo 2^256 in place and returns it.
func wrap256(n *big.Int) *big.Int {
	return n.Mod(n, bigTwo256)
}

// bigOracle computes the expected result of an operation with arbitrary
// precision integers.  The shift count is only used by shift operations.
type bigOracle func(vals []*big.Int, count uint) *big.Int

// modOracle returns an oracle for a modular operation that treats a zero
// modulus as producing zero.
func modOracle(fn func(x, y, m *big.Int) *big.Int) bigOracle {
	return func(vals []*big.Int, _ uint) *big.Int {
		if vals[2].Sign() == 0 {
			return new(big.Int)
		}
		return fn(vals[0], vals[1], vals[2])
	}
}

// selfTestOps houses the arbitrary precision oracles for the operations checked
// by the self test.  Operations that take a shift count use a single operand.
var selfTestOps = map[string]struct {
	numVals int
	shift   bool
	oracle  bigOracle
}{
	"add": {2, false, func(v []*big.Int, _ uint) *big.Int {
		return wrap256(new(big.Int).Add(v[0], v[1]))
	}},
	"sub": {2, false, func(v []*big.Int, _ uint) *big.Int {
		return wrap256(new(big.Int).Sub(v[0], v[1]))
	}},
	"mul": {2, false, func(v []*big.Int, _ uint) *big.Int {
		return wrap256(new(big.Int).Mul(v[0], v[1]))
	}},
	"sqr": {1, false, func(v []*big.Int, _ uint) *big.Int {
		return wrap256(new(big.Int).Mul(v[0], v[0]))
	}},
	"div": {2, false, func(v []*big.Int, _ uint) *big.Int {
		if v[1].Sign() == 0 {
			return new(big.Int)
		}
		return new(big.Int).Quo(v[0], v[1])
	}},
	"mod": {2, false, func(v []*big.Int, _ uint) *big.Int {
		if v[1].Sign() == 0 {
			return new(big.Int)
		}
		return new(big.Int).Rem(v[0], v[1])
	}},
	"addmod": {3, false, modOracle(func(x, y, m *big.Int) *big.Int {
		sum := new(big.Int).Add(x, y)
		return sum.Mod(sum, m)
	})},
	"submod": {3, false, modOracle(func(x, y, m *big.Int) *big.Int {
		diff := new(big.Int).Sub(x, y)
		diff.Abs(diff)
		return diff.Mod(diff, m)
	})},
	"mulmod": {3, false, modOracle(func(x, y, m *big.Int) *big.Int {
		prod := new(big.Int).Mul(x, y)
		return prod.Mod(prod, m)
	})},
	"exp": {2, false, func(v []*big.Int, _ uint) *big.Int {
		return new(big.Int).Exp(v[0], v[1], bigTwo256)
	}},
	"expmod": {3, false, func(v []*big.Int, _ uint) *big.Int {
		if v[2].Cmp(big.NewInt(1)) <= 0 {
			return new(big.Int)
		}
		return new(big.Int).Exp(v[0], v[1], v[2])
	}},
	"and": {2, false, func(v []*big.Int, _ uint) *big.Int {
		return new(big.Int).And(v[0], v[1])
	}},
	"or": {2, false, func(v []*big.Int, _ uint) *big.Int {
		return new(big.Int).Or(v[0], v[1])
	}},
	"xor": {2, false, func(v []*big.Int, _ uint) *big.Int {
		return new(big.Int).Xor(v[0], v[1])
	}},
	"not": {1, false, func(v []*big.Int, _ uint) *big.Int {
		return new(big.Int).Xor(v[0], bigMask256)
	}},
	"lsh": {1, true, func(v []*big.Int, count uint) *big.Int {
		return wrap256(new(big.Int).Lsh(v[0], count))
	}},
	"rsh": {1, true, func(v []*big.Int, count uint) *big.Int {
		return new(big.Int).Rsh(v[0], count)
	}},
}

// randOperand returns a random 256-bit value as an arbitrary precision integer.
// The values are biased towards edge cases such as zero, one, the maximum
// value, powers of two, and values with fewer than four significant words
// since those exercise the most interesting paths through the arithmetic.
func randOperand(prng *rand.PRNG) *big.Int {
	switch prng.IntN(16) {
	case 0:
		return new(big.Int)
	case 1:
		return big.NewInt(1)
	case 2:
		return new(big.Int).Set(bigMask256)
	case 3:
		return new(big.Int).Lsh(big.NewInt(1), prng.UintN(256))
	case 4:
		pow := new(big.Int).Lsh(big.NewInt(1), prng.UintN(256))
		return pow.Sub(pow, big.NewInt(1))
	}

	numWords := 1 + prng.IntN(4)
	n := new(big.Int)
	for i := 0; i < numWords; i++ {
		n.Lsh(n, 64)
		n.Or(n, new(big.Int).SetUint64(prng.Uint64()))
	}
	return n
}

// randShift returns a random shift count that includes counts at and beyond
// the bit width.
func randShift(prng *rand.PRNG) uint {
	if prng.IntN(8) == 0 {
		return 256 + prng.UintN(64)
	}
	return prng.UintN(256)
}

// runSelfTest evaluates every checked operation the given number of times with
// random operands and compares the results with those produced by arbitrary
// precision arithmetic.  The operands of every mismatch are logged so the
// failure can be reproduced and the number of mismatches is returned.  The test
// stops early with the context error when the context is canceled.
func runSelfTest(ctx context.Context, iterations int) (int, error) {
	const base = 16

	prng, err := rand.NewPRNG()
	if err != nil {
		return 0, fmt.Errorf("unable to create random number generator: %w",
			err)
	}

	var checked, failed int
	for _, name := range operationNames() {
		op, ok := selfTestOps[name]
		if !ok {
			continue
		}

		log.Debugf("Checking %s with %d random inputs", name, iterations)
		for i := 0; i < iterations; i++ {
			if interruptRequested(ctx) {
				log.Infof("Self test interrupted after %d expressions: %d "+
					"failed", checked, failed)
				return failed, ctx.Err()
			}

			vals := make([]*big.Int, op.numVals)
			fields := make([]string, 0, op.numVals+2)
			fields = append(fields, name)
			for j := range vals {
				vals[j] = randOperand(prng)
				fields = append(fields, "0x"+vals[j].Text(base))
			}
			var count uint
			if op.shift {
				count = randShift(prng)
				fields = append(fields, fmt.Sprintf("%d", count))
			}

			checked++
			want := op.oracle(vals, count).Text(base)
			got, err := evalExpr(fields, base)
			if err != nil {
				failed++
				log.Errorf("%s: unexpected error: %v", strings.Join(fields, " "),
					err)
				continue
			}
			if got != want {
				failed++
				log.Errorf("%s: got %s, want %s", strings.Join(fields, " "),
					got, want)
			}
		}
	}

	log.Infof("Self test checked %d expressions: %d passed, %d failed", checked,
		checked-failed, failed)
	return failed, nil
}
