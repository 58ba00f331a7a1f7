// Copyright (c) 2021-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint256

// AddMod returns (n + n2) mod m computed without any intermediate loss of
// precision, meaning the result is correct even when the sum exceeds 2^256.
// The result is zero when the modulus is zero.
func (n Uint256) AddMod(n2, m Uint256) Uint256 {
	if m.IsZero() {
		return Zero
	}

	sum, overflow := n.AddOverflow(n2)
	if !overflow {
		return sum.Mod(m)
	}

	// The true sum is 2^256 + sum, so divide the 257-bit value held in 5
	// words.
	u := [5]uint64{sum.n[0], sum.n[1], sum.n[2], sum.n[3], 1}
	var quot [5]uint64
	return udivrem(quot[:], u[:], &m)
}

// SubMod returns the difference between n and n2 reduced modulo m.  When the
// subtraction n - n2 would underflow, the operands are swapped so the
// difference n2 - n is reduced instead, meaning the result is |n - n2| mod m.
// The result is zero when the modulus is zero.
func (n Uint256) SubMod(n2, m Uint256) Uint256 {
	diff, underflow := n.SubUnderflow(n2)
	if underflow {
		diff = n2.Sub(n)
	}
	return diff.Mod(m)
}

// MulMod returns (n * n2) mod m computed without any intermediate loss of
// precision, meaning the result is correct even when the product exceeds
// 2^256.  The result is zero when any of the inputs are zero.
func (n Uint256) MulMod(n2, m Uint256) Uint256 {
	if n.IsZero() || n2.IsZero() || m.IsZero() {
		return Zero
	}

	p := mul512(&n.n, &n2.n)
	if p[4]|p[5]|p[6]|p[7] == 0 {
		return Uint256{n: [4]uint64{p[0], p[1], p[2], p[3]}}.Mod(m)
	}

	var quot [maxDividendWords]uint64
	return udivrem(quot[:], p[:], &m)
}

// multiplier defines the multiplication used by the shared exponentiation
// algorithm so that both plain and modular exponentiation are expressed by the
// same square-and-multiply loop.
type multiplier func(x, y Uint256) Uint256

// wrappingMul multiplies modulo 2^256 and uses the faster squaring when both
// operands are the same.
func wrappingMul(x, y Uint256) Uint256 {
	if x.Eq(y) {
		return x.Square()
	}
	return x.Mul(y)
}

// exp raises base to the power of exponent via binary exponentiation using the
// provided multiplication.  The exponent bits are scanned from least to most
// significant while the running power of the base is squared at each step and
// multiplied into the result when the corresponding bit is set.
func exp(base, exponent Uint256, mul multiplier) Uint256 {
	result := One
	power := base
	bitLen := exponent.BitLen()
	for i := 0; i < bitLen; i++ {
		if exponent.Bit(uint(i)) {
			result = mul(result, power)
		}
		// Squaring after the final set bit would be wasted work.
		if i+1 < bitLen {
			power = mul(power, power)
		}
	}
	return result
}

// Exp returns n raised to the power of the passed exponent modulo 2^256.
// Since every intermediate product wraps, callers that need the exact power
// must either ensure it fits in 256 bits or use ExpMod.
//
// Note that 0^0 is 1, as is the case for math/big.
func (n Uint256) Exp(exponent Uint256) Uint256 {
	return exp(n, exponent, wrappingMul)
}

// ExpMod returns n raised to the power of the passed exponent modulo m with
// every intermediate product reduced modulo m, so the result is exact for all
// inputs.  The result is zero when the modulus is zero or one.
func (n Uint256) ExpMod(exponent, m Uint256) Uint256 {
	if m.IsZero() || m.isOne() {
		return Zero
	}
	mulMod := func(x, y Uint256) Uint256 {
		return x.MulMod(y, m)
	}
	return exp(n.Mod(m), exponent, mulMod)
}
