// Copyright (c) 2021-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint256

import (
	"fmt"
	"math/bits"
)

// This file houses the single word primitives the multi-word arithmetic is
// built from.  Carry and borrow propagation, bit lengths, and the widening
// multiply come directly from math/bits since the compiler replaces those
// functions with the equivalent hardware instructions where available.

// mulWidePortable returns the 128-bit product of x and y split into its high
// and low 64-bit words using nothing wider than 64-bit arithmetic.  It splits
// each operand into 32-bit halves so none of the partial products can overflow
// a word and is guaranteed to produce results identical to bits.Mul64.
//
// The arithmetic itself always uses bits.Mul64.  This is kept as the reference
// decomposition of the widening multiply and the tests check it against
// bits.Mul64.
func mulWidePortable(x, y uint64) (hi, lo uint64) {
	const mask32 = 1<<32 - 1
	x0, x1 := x&mask32, x>>32
	y0, y1 := y&mask32, y>>32

	// Accumulate the middle partial products while carrying the upper half of
	// each into the next position.
	w0 := x0 * y0
	t := x1*y0 + w0>>32
	w1, w2 := t&mask32, t>>32
	w1 += x0 * y1
	hi = x1*y1 + w2 + w1>>32
	lo = x * y
	return hi, lo
}

// mulAddCarry returns the 128-bit result of x*y + z + carry split into its
// high and low 64-bit words.  The result can never overflow 128 bits since
// (2^64-1)^2 + 2*(2^64-1) = 2^128 - 1.
func mulAddCarry(z, x, y, carry uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(x, y)
	var c uint64
	lo, c = bits.Add64(lo, carry, 0)
	hi += c
	lo, c = bits.Add64(lo, z, 0)
	hi += c
	return hi, lo
}

// divWide divides the 128-bit value hi:lo by d and returns the quotient and
// remainder.  The quotient must fit in a single word, so an error with kind
// ErrInvalidDivision is returned when d is zero or when hi is not strictly less
// than d.
//
// Unlike bits.Div64, precondition violations are reported instead of causing
// a run-time panic.
func divWide(hi, lo, d uint64) (quo, rem uint64, err error) {
	if d == 0 {
		return 0, 0, makeError(ErrInvalidDivision, "division by zero")
	}
	if d <= hi {
		str := fmt.Sprintf("quotient overflow: high word %#x is not less "+
			"than divisor %#x", hi, d)
		return 0, 0, makeError(ErrInvalidDivision, str)
	}
	quo, rem = bits.Div64(hi, lo, d)
	return quo, rem, nil
}

// reciprocal returns the reciprocal of the passed normalized divisor, which is
// the value floor((2^128 - 1) / d) - 2^64.  The divisor must have its most
// significant bit set.
//
// The result is computed as floor(((2^64 - 1 - d) * 2^64 + 2^64 - 1) / d),
// which is the same quantity expressed as a single valid wide division since
// the high word ^d is necessarily less than a normalized d.
func reciprocal(d uint64) uint64 {
	rec, _, err := divWide(^d, ^uint64(0), d)
	if err != nil {
		panic(fmt.Sprintf("reciprocal of unnormalized divisor %#x: %v", d,
			err))
	}
	return rec
}

// div2by1 divides the 128-bit value uh:ul by the normalized divisor d using its
// precomputed reciprocal and returns the quotient and remainder.  It requires
// uh < d so the quotient fits in a word.
//
// This is algorithm 4 from "Improved division by invariant integers" by Möller
// and Granlund, which trades the hardware division for a multiplication by the
// reciprocal along with at most two corrections.
func div2by1(uh, ul, d, rec uint64) (quo, rem uint64) {
	qh, ql := bits.Mul64(rec, uh)
	var carry uint64
	ql, carry = bits.Add64(ql, ul, 0)
	qh, _ = bits.Add64(qh, uh, carry)
	qh++

	rem = ul - qh*d
	if rem > ql {
		qh--
		rem += d
	}
	if rem >= d {
		qh++
		rem -= d
	}
	return qh, rem
}
