// Copyright (c) 2021-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint256

import "math/bits"

// maxDividendWords is the maximum number of words a dividend passed to the
// division engine may have.  This is the full 512-bit product of two unsigned
// 256-bit integers.
const maxDividendWords = 8

// Div returns the quotient of n divided by the passed divisor, rounded toward
// zero.
//
// NOTE: By convention, division by zero results in zero rather than a
// run-time panic as is the case with native integers and math/big.  Callers
// that depend on different semantics must check for a zero divisor first.
func (n Uint256) Div(divisor Uint256) Uint256 {
	switch {
	case divisor.IsZero() || divisor.Gt(n):
		return Zero
	case n.Eq(divisor):
		return One
	case n.IsUint64():
		// The divisor is necessarily also a single word at this point.
		return FromUint64(n.n[0] / divisor.n[0])
	}

	var quot Uint256
	udivrem(quot.n[:], n.n[:], &divisor)
	return quot
}

// Mod returns the remainder of n divided by the passed divisor.  The result is
// always less than the divisor.
//
// NOTE: By convention, the remainder of a division by zero is zero rather than
// a run-time panic as is the case with native integers and math/big.
func (n Uint256) Mod(divisor Uint256) Uint256 {
	if n.IsZero() || divisor.IsZero() || divisor.isOne() {
		return Zero
	}
	switch n.Cmp(divisor) {
	case -1:
		return n
	case 0:
		return Zero
	}
	if n.IsUint64() {
		return FromUint64(n.n[0] % divisor.n[0])
	}

	var quot Uint256
	return udivrem(quot.n[:], n.n[:], &divisor)
}

// DivMod returns both the quotient and the remainder of n divided by the
// passed divisor with a single pass of the division algorithm.  It follows
// the same zero divisor convention as Div and Mod and therefore returns zero
// for both results in that case.
func (n Uint256) DivMod(divisor Uint256) (Uint256, Uint256) {
	switch {
	case divisor.IsZero():
		return Zero, Zero
	case divisor.Gt(n):
		return Zero, n
	case n.Eq(divisor):
		return One, Zero
	case n.IsUint64():
		return FromUint64(n.n[0] / divisor.n[0]),
			FromUint64(n.n[0] % divisor.n[0])
	}

	var quot Uint256
	rem := udivrem(quot.n[:], n.n[:], &divisor)
	return quot, rem
}

// divRemUint64 returns the quotient and remainder of n divided by the passed
// nonzero single word divisor.
func (n Uint256) divRemUint64(divisor uint64) (Uint256, uint64) {
	shift := uint(bits.LeadingZeros64(divisor))
	var un [5]uint64
	un[4] = n.n[3] >> (64 - shift)
	for i := 3; i > 0; i-- {
		un[i] = n.n[i]<<shift | n.n[i-1]>>(64-shift)
	}
	un[0] = n.n[0] << shift

	var quot Uint256
	rem := udivremBy1(quot.n[:], un[:], divisor<<shift)
	return quot, rem >> shift
}

// udivrem divides the dividend u by the divisor d, stores the quotient words
// in quot, and returns the remainder.  This is the general multi-word division
// algorithm that all of the division and modular reduction methods rely on.
//
// The dividend must have between 4 and 8 words and must be greater than or
// equal to the divisor, which must not be zero.  The quotient buffer must hold
// at least a number of words equal to the active words of the dividend minus
// the active words of the divisor plus one and must be zeroed.  These
// preconditions are not checked.
//
// Both operands are first normalized by shifting them left until the most
// significant bit of the divisor is set, which requires an extra word for the
// dividend.  A divisor of a single word is then handled by a dedicated pass
// that divides by the reciprocal of the word while larger divisors use Knuth's
// algorithm D.  Finally, the remainder is denormalized by shifting it back.
func udivrem(quot, u []uint64, d *Uint256) Uint256 {
	dLen := d.numWords()
	shift := uint(bits.LeadingZeros64(d.n[dLen-1]))

	// Normalize the divisor.  Note that shifting a 64-bit word by 64 bits
	// results in zero in Go, so no special handling is needed when the
	// divisor is already normalized.
	var dnStorage [4]uint64
	dn := dnStorage[:dLen]
	for i := dLen - 1; i > 0; i-- {
		dn[i] = d.n[i]<<shift | d.n[i-1]>>(64-shift)
	}
	dn[0] = d.n[0] << shift

	// Normalize the dividend into a buffer with an extra word to hold the
	// bits shifted out of its most significant active word.
	uLen := len(u)
	for uLen > 0 && u[uLen-1] == 0 {
		uLen--
	}
	if uLen == 0 {
		return Zero
	}
	var unStorage [maxDividendWords + 1]uint64
	un := unStorage[:uLen+1]
	un[uLen] = u[uLen-1] >> (64 - shift)
	for i := uLen - 1; i > 0; i-- {
		un[i] = u[i]<<shift | u[i-1]>>(64-shift)
	}
	un[0] = u[0] << shift

	if dLen == 1 {
		rem := udivremBy1(quot, un, dn[0])
		return FromUint64(rem >> shift)
	}

	udivremKnuth(quot, un, dn)

	// The remainder is left in the lowest words of the normalized dividend, so
	// shift it back while merging the bits across the word boundaries.
	var rem Uint256
	for i := 0; i < dLen-1; i++ {
		rem.n[i] = un[i]>>shift | un[i+1]<<(64-shift)
	}
	rem.n[dLen-1] = un[dLen-1] >> shift
	return rem
}

// udivremBy1 divides the normalized dividend u by the normalized single word
// divisor d, stores the quotient words in quot, and returns the normalized
// remainder.  The most significant word of u must be less than d, which is
// always the case for a dividend normalized by the same shift as the divisor.
func udivremBy1(quot, u []uint64, d uint64) uint64 {
	rec := reciprocal(d)
	rem := u[len(u)-1]
	for j := len(u) - 2; j >= 0; j-- {
		quot[j], rem = div2by1(rem, u[j], d, rec)
	}
	return rem
}

// udivremKnuth divides the normalized dividend u by the normalized multi-word
// divisor d in place per Knuth's algorithm D (TAOCP vol 2, section 4.3.1).
// The quotient words are stored in quot and the remainder is left in the
// lowest len(d) words of u.
func udivremKnuth(quot, u, d []uint64) {
	dLen := len(d)
	dh, dl := d[dLen-1], d[dLen-2]
	rec := reciprocal(dh)

	for j := len(u) - dLen - 1; j >= 0; j-- {
		u2, u1, u0 := u[j+dLen], u[j+dLen-1], u[j+dLen-2]

		// Estimate the quotient digit from the top words of the current
		// remainder and the top word of the divisor.  The estimate is never
		// too small and the check against the second word of the divisor
		// removes nearly all cases where it is too big.
		var qhat, rhat uint64
		if u2 >= dh {
			qhat = ^uint64(0)
		} else {
			qhat, rhat = div2by1(u2, u1, dh, rec)
			ph, pl := bits.Mul64(qhat, dl)
			if ph > rhat || (ph == rhat && pl > u0) {
				qhat--
			}
		}

		// Multiply and subtract.  The estimate was one too big when that
		// borrows out of the window, so add the divisor back once.
		borrow := subMulTo(u[j:], d, qhat)
		u[j+dLen] = u2 - borrow
		if u2 < borrow {
			qhat--
			u[j+dLen] += addTo(u[j:], d)
		}

		quot[j] = qhat
	}
}

// subMulTo subtracts y*multiplier from the low len(y) words of x in place and
// returns the amount that must be borrowed from the next word of x.
func subMulTo(x, y []uint64, multiplier uint64) uint64 {
	var borrow uint64
	for i := 0; i < len(y); i++ {
		s, carry1 := bits.Sub64(x[i], borrow, 0)
		ph, pl := bits.Mul64(y[i], multiplier)
		t, carry2 := bits.Sub64(s, pl, 0)
		x[i] = t
		borrow = ph + carry1 + carry2
	}
	return borrow
}

// addTo adds y to the low len(y) words of x in place and returns the carry
// out of the last word.
func addTo(x, y []uint64) uint64 {
	var carry uint64
	for i := 0; i < len(y); i++ {
		x[i], carry = bits.Add64(x[i], y[i], carry)
	}
	return carry
}
