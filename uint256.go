// Copyright (c) 2021-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint256

import (
	"math/bits"
	"strconv"
)

// Uint256 implements high-performance, zero-allocation, unsigned 256-bit
// fixed-precision arithmetic.  All operations that do not explicitly report
// overflow are performed modulo 2^256, so callers may rely on "wrap around"
// semantics.
//
// Values are immutable.  Every method has a value receiver and returns a new
// value, so a Uint256 may be freely copied and shared between goroutines
// without any synchronization.  The zero value is the number 0.
type Uint256 struct {
	// The uint256 is represented as 4 unsigned 64-bit integers in base 2^64.
	//
	// The following depicts the internal representation:
	//
	//  --------------------------------------------------------------------
	// |      n[3]      |      n[2]      |      n[1]      |      n[0]      |
	// | 64 bits        | 64 bits        | 64 bits        | 64 bits        |
	// | Mult: 2^(64*3) | Mult: 2^(64*2) | Mult: 2^(64*1) | Mult: 2^(64*0) |
	//  --------------------------------------------------------------------
	//
	// For example, consider the number:
	//  0x0000000000000000080000000000000000000000000001000000000000000001 =
	//  2^187 + 2^72 + 1
	//
	// It would be represented as:
	//  n[0] = 1
	//  n[1] = 2^8
	//  n[2] = 2^59
	//  n[3] = 0
	//
	// Every combination of the four words is a valid value and each value has
	// exactly one representation.
	n [4]uint64
}

var (
	// Zero is the unsigned 256-bit integer 0.
	Zero = Uint256{}

	// One is the unsigned 256-bit integer 1.
	One = Uint256{n: [4]uint64{1, 0, 0, 0}}

	// Max is the largest value an unsigned 256-bit integer can hold, 2^256 - 1.
	Max = Uint256{n: [4]uint64{
		^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0),
	}}
)

// FromUint64 returns an unsigned 256-bit integer with the passed unsigned
// 64-bit integer zero extended into it.  This is a convenience function since
// it is fairly common to perform arithmetic with small native integers.
func FromUint64(n uint64) Uint256 {
	return Uint256{n: [4]uint64{n, 0, 0, 0}}
}

// FromInt64 returns an unsigned 256-bit integer with the passed signed 64-bit
// integer zero extended into it.  An error with kind ErrOutOfRange is returned
// for negative values since they can't be represented.
func FromInt64(n int64) (Uint256, error) {
	if n < 0 {
		str := "cannot represent negative value " + strconv.FormatInt(n, 10)
		return Zero, makeError(ErrOutOfRange, str)
	}
	return FromUint64(uint64(n)), nil
}

// FromWords returns an unsigned 256-bit integer made of the passed 64-bit
// words ordered from least significant to most significant.
func FromWords(words [4]uint64) Uint256 {
	return Uint256{n: words}
}

// FromWordsBE returns an unsigned 256-bit integer made of the passed 64-bit
// words ordered from most significant to least significant.
func FromWordsBE(words [4]uint64) Uint256 {
	return Uint256{n: [4]uint64{words[3], words[2], words[1], words[0]}}
}

// Words returns the 64-bit words of the integer ordered from least significant
// to most significant.
func (n Uint256) Words() [4]uint64 {
	return n.n
}

// WordsBE returns the 64-bit words of the integer ordered from most
// significant to least significant.
func (n Uint256) WordsBE() [4]uint64 {
	return [4]uint64{n.n[3], n.n[2], n.n[1], n.n[0]}
}

// IsZero returns whether or not the uint256 is equal to zero.
func (n Uint256) IsZero() bool {
	return n.n[0]|n.n[1]|n.n[2]|n.n[3] == 0
}

// isOne returns whether or not the uint256 is equal to one.
func (n Uint256) isOne() bool {
	return n.n[0] == 1 && n.n[1]|n.n[2]|n.n[3] == 0
}

// IsUint64 returns whether or not the uint256 can be converted to a uint64
// without any loss of precision.  In other words, 0 <= n < 2^64.
func (n Uint256) IsUint64() bool {
	return n.n[1]|n.n[2]|n.n[3] == 0
}

// Uint64 returns the least significant 64 bits of the uint256.  Callers that
// need to know whether the conversion is lossless should check IsUint64.
func (n Uint256) Uint64() uint64 {
	return n.n[0]
}

// Uint32 returns the least significant 32 bits of the uint256.
func (n Uint256) Uint32() uint32 {
	return uint32(n.n[0])
}

// numWords returns the number of active words, that is, the number of words
// up to and including the most significant nonzero one.
func (n Uint256) numWords() int {
	for i := 3; i >= 0; i-- {
		if n.n[i] != 0 {
			return i + 1
		}
	}
	return 0
}

// BitLen returns the minimum number of bits required to represent the uint256.
// The result is 0 when the value is 0.
func (n Uint256) BitLen() int {
	if w := n.numWords(); w != 0 {
		return (w-1)*64 + bits.Len64(n.n[w-1])
	}
	return 0
}

// ByteLen returns the minimum number of bytes required to represent the
// uint256.  The result is 0 when the value is 0.
func (n Uint256) ByteLen() int {
	return (n.BitLen() + 7) / 8
}

// Eq returns whether or not n and n2 represent the same value.
func (n Uint256) Eq(n2 Uint256) bool {
	return n.n == n2.n
}

// EqUint64 returns whether or not the uint256 represents the same value as the
// passed uint64.
func (n Uint256) EqUint64(n2 uint64) bool {
	return n.n[0] == n2 && n.n[1]|n.n[2]|n.n[3] == 0
}

// Lt returns whether or not n is less than n2.  It is defined as subtracting
// n2 from n producing a borrow out of the most significant word.
func (n Uint256) Lt(n2 Uint256) bool {
	_, borrow := bits.Sub64(n.n[0], n2.n[0], 0)
	_, borrow = bits.Sub64(n.n[1], n2.n[1], borrow)
	_, borrow = bits.Sub64(n.n[2], n2.n[2], borrow)
	_, borrow = bits.Sub64(n.n[3], n2.n[3], borrow)
	return borrow != 0
}

// LtEq returns whether or not n is less than or equal to n2.
func (n Uint256) LtEq(n2 Uint256) bool {
	return !n2.Lt(n)
}

// Gt returns whether or not n is greater than n2.
func (n Uint256) Gt(n2 Uint256) bool {
	return n2.Lt(n)
}

// GtEq returns whether or not n is greater than or equal to n2.
func (n Uint256) GtEq(n2 Uint256) bool {
	return !n.Lt(n2)
}

// Cmp compares n and n2 and returns:
//
//	-1 when n <  n2
//	 0 when n == n2
//	+1 when n >  n2
func (n Uint256) Cmp(n2 Uint256) int {
	switch {
	case n.Lt(n2):
		return -1
	case n.Eq(n2):
		return 0
	}
	return 1
}

// And returns the bitwise AND of n and n2.
func (n Uint256) And(n2 Uint256) Uint256 {
	return Uint256{n: [4]uint64{
		n.n[0] & n2.n[0], n.n[1] & n2.n[1], n.n[2] & n2.n[2], n.n[3] & n2.n[3],
	}}
}

// Or returns the bitwise OR of n and n2.
func (n Uint256) Or(n2 Uint256) Uint256 {
	return Uint256{n: [4]uint64{
		n.n[0] | n2.n[0], n.n[1] | n2.n[1], n.n[2] | n2.n[2], n.n[3] | n2.n[3],
	}}
}

// Xor returns the bitwise XOR of n and n2.
func (n Uint256) Xor(n2 Uint256) Uint256 {
	return Uint256{n: [4]uint64{
		n.n[0] ^ n2.n[0], n.n[1] ^ n2.n[1], n.n[2] ^ n2.n[2], n.n[3] ^ n2.n[3],
	}}
}

// Not returns the bitwise NOT (one's complement) of n.  This is equivalent to
// 2^256 - 1 - n.
func (n Uint256) Not() Uint256 {
	return Uint256{n: [4]uint64{^n.n[0], ^n.n[1], ^n.n[2], ^n.n[3]}}
}

// Lsh returns n logically shifted left by the given number of bits.  Bits
// shifted beyond the most significant word are discarded, so any shift of 256
// bits or more results in zero.
func (n Uint256) Lsh(shift uint) Uint256 {
	if shift >= 256 {
		return Zero
	}

	// Whole word moves only when the shift is a multiple of the word size.
	words, rem := int(shift/64), shift%64
	var r Uint256
	if rem == 0 {
		for i := 3; i >= words; i-- {
			r.n[i] = n.n[i-words]
		}
		return r
	}

	// Otherwise each destination word is made of the low bits of its source
	// word merged with the high bits of the word below the source.
	for i := 3; i > words; i-- {
		src := i - words
		r.n[i] = n.n[src]<<rem | n.n[src-1]>>(64-rem)
	}
	r.n[words] = n.n[0] << rem
	return r
}

// Rsh returns n logically shifted right by the given number of bits.  Bits
// shifted below the least significant word are discarded, so any shift of 256
// bits or more results in zero.
func (n Uint256) Rsh(shift uint) Uint256 {
	if shift >= 256 {
		return Zero
	}

	words, rem := int(shift/64), shift%64
	var r Uint256
	if rem == 0 {
		for i := 0; i+words <= 3; i++ {
			r.n[i] = n.n[i+words]
		}
		return r
	}

	last := 3 - words
	for i := 0; i < last; i++ {
		src := i + words
		r.n[i] = n.n[src]>>rem | n.n[src+1]<<(64-rem)
	}
	r.n[last] = n.n[3] >> rem
	return r
}

// Bit returns whether or not the bit at the given zero-based position is set.
// The position is taken modulo 256, so positions beyond the most significant
// bit wrap around to the least significant words.  Callers must not rely on
// that behavior.
func (n Uint256) Bit(pos uint) bool {
	word := (pos / 64) % 4
	return (n.n[word]>>(pos%64))&1 == 1
}
