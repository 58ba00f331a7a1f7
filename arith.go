// Copyright (c) 2021-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint256

import "math/bits"

// Add returns n + n2 modulo 2^256.
func (n Uint256) Add(n2 Uint256) Uint256 {
	r, _ := n.AddOverflow(n2)
	return r
}

// AddOverflow returns n + n2 modulo 2^256 along with whether or not the true
// sum exceeds the maximum value of an unsigned 256-bit integer.
func (n Uint256) AddOverflow(n2 Uint256) (Uint256, bool) {
	var r Uint256
	var carry uint64
	r.n[0], carry = bits.Add64(n.n[0], n2.n[0], 0)
	r.n[1], carry = bits.Add64(n.n[1], n2.n[1], carry)
	r.n[2], carry = bits.Add64(n.n[2], n2.n[2], carry)
	r.n[3], carry = bits.Add64(n.n[3], n2.n[3], carry)
	return r, carry != 0
}

// AddUint64 returns n + n2 modulo 2^256 where n2 is an unsigned 64-bit
// integer.
func (n Uint256) AddUint64(n2 uint64) Uint256 {
	var r Uint256
	var carry uint64
	r.n[0], carry = bits.Add64(n.n[0], n2, 0)
	r.n[1], carry = bits.Add64(n.n[1], 0, carry)
	r.n[2], carry = bits.Add64(n.n[2], 0, carry)
	r.n[3], _ = bits.Add64(n.n[3], 0, carry)
	return r
}

// Sub returns n - n2 modulo 2^256.
func (n Uint256) Sub(n2 Uint256) Uint256 {
	r, _ := n.SubUnderflow(n2)
	return r
}

// SubUnderflow returns n - n2 modulo 2^256 along with whether or not the true
// difference is negative, which is the case when n < n2.
func (n Uint256) SubUnderflow(n2 Uint256) (Uint256, bool) {
	var r Uint256
	var borrow uint64
	r.n[0], borrow = bits.Sub64(n.n[0], n2.n[0], 0)
	r.n[1], borrow = bits.Sub64(n.n[1], n2.n[1], borrow)
	r.n[2], borrow = bits.Sub64(n.n[2], n2.n[2], borrow)
	r.n[3], borrow = bits.Sub64(n.n[3], n2.n[3], borrow)
	return r, borrow != 0
}

// SubUint64 returns n - n2 modulo 2^256 where n2 is an unsigned 64-bit
// integer.
func (n Uint256) SubUint64(n2 uint64) Uint256 {
	var r Uint256
	var borrow uint64
	r.n[0], borrow = bits.Sub64(n.n[0], n2, 0)
	r.n[1], borrow = bits.Sub64(n.n[1], 0, borrow)
	r.n[2], borrow = bits.Sub64(n.n[2], 0, borrow)
	r.n[3], _ = bits.Sub64(n.n[3], 0, borrow)
	return r
}

// Mul returns n * n2 modulo 2^256.
//
// The product is computed with the schoolbook method over the 4x4 grid of word
// products.  Each row multiplies all words of n by a single word of n2 and
// accumulates into the result with a running carry, and any partial products
// that would land at or beyond 2^256 are never computed.
func (n Uint256) Mul(n2 Uint256) Uint256 {
	var r Uint256
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; i+j < 4; j++ {
			carry, r.n[i+j] = mulAddCarry(r.n[i+j], n.n[j], n2.n[i], carry)
		}
	}
	return r
}

// mul512 returns the full 512-bit product of x and y as 8 words ordered from
// least significant to most significant.  It uses the same grid as Mul
// extended to all output words.
func mul512(x, y *[4]uint64) [8]uint64 {
	var p [8]uint64
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			carry, p[i+j] = mulAddCarry(p[i+j], x[j], y[i], carry)
		}
		p[i+4] = carry
	}
	return p
}

// MulOverflow returns n * n2 modulo 2^256 along with whether or not the true
// product exceeds the maximum value of an unsigned 256-bit integer.
func (n Uint256) MulOverflow(n2 Uint256) (Uint256, bool) {
	p := mul512(&n.n, &n2.n)
	r := Uint256{n: [4]uint64{p[0], p[1], p[2], p[3]}}
	return r, p[4]|p[5]|p[6]|p[7] != 0
}

// MulUint64 returns n * n2 modulo 2^256 where n2 is an unsigned 64-bit
// integer.
func (n Uint256) MulUint64(n2 uint64) Uint256 {
	r, _ := n.MulUint64Carry(n2)
	return r
}

// MulUint64Carry returns n * n2 modulo 2^256 along with the word that was
// carried out of the most significant word.  Together they form the full
// 320-bit product and the carry is zero if and only if the product did not
// overflow.
func (n Uint256) MulUint64Carry(n2 uint64) (Uint256, uint64) {
	var r Uint256
	var carry uint64
	carry, r.n[0] = bits.Mul64(n.n[0], n2)
	carry, r.n[1] = mulAddCarry(0, n.n[1], n2, carry)
	carry, r.n[2] = mulAddCarry(0, n.n[2], n2, carry)
	carry, r.n[3] = mulAddCarry(0, n.n[3], n2, carry)
	return r, carry
}

// Square returns n * n modulo 2^256.  The result is identical to n.Mul(n),
// however, it is faster since the symmetric cross products only need to be
// computed once and then doubled.
func (n Uint256) Square() Uint256 {
	// The square of n modulo 2^256 is:
	//
	//  n0*n0 + 2*n0*n1*2^64 + (2*n0*n2 + n1*n1)*2^128 +
	//   (2*n0*n3 + 2*n1*n2)*2^192
	//
	// So, sum the cross products, double them with a single shift, and
	// finally add the squares along the diagonal.
	var r Uint256
	var hi, lo, carry uint64
	r.n[2], r.n[1] = bits.Mul64(n.n[0], n.n[1])
	hi, lo = bits.Mul64(n.n[0], n.n[2])
	r.n[2], carry = bits.Add64(r.n[2], lo, 0)
	r.n[3] = hi + carry + n.n[0]*n.n[3] + n.n[1]*n.n[2]

	r.n[3] = r.n[3]<<1 | r.n[2]>>63
	r.n[2] = r.n[2]<<1 | r.n[1]>>63
	r.n[1] <<= 1

	hi, r.n[0] = bits.Mul64(n.n[0], n.n[0])
	r.n[1], carry = bits.Add64(r.n[1], hi, 0)
	hi, lo = bits.Mul64(n.n[1], n.n[1])
	r.n[2], carry = bits.Add64(r.n[2], lo, carry)
	r.n[3], _ = bits.Add64(r.n[3], hi, carry)
	return r
}
