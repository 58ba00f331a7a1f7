// Copyright (c) 2021-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficulty

import (
	"fmt"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/math/uint256"
	"lukechampine.com/blake3"
)

// DiffBitsToUint256 converts the compact representation used to encode
// difficulty targets to an unsigned 256-bit integer.  The representation is
// similar to IEEE754 floating point numbers.
//
// Like IEEE754 floating point, there are three basic components: the sign,
// the exponent, and the mantissa.  They are broken out as follows:
//
//  1. the most significant 8 bits represent the unsigned base 256 exponent
//  2. zero-based bit 23 (the 24th bit) represents the sign bit
//  3. the least significant 23 bits represent the mantissa
//
// Diagram:
//
//	-------------------------------------------------
//	|   Exponent     |    Sign    |    Mantissa     |
//	|-----------------------------------------------|
//	| 8 bits [31-24] | 1 bit [23] | 23 bits [22-00] |
//	-------------------------------------------------
//
// The formula to calculate N is:
//
//	N = (-1^sign) * mantissa * 256^(exponent-3)
//
// The encoding is capable of representing negative numbers as well as numbers
// much larger than the maximum value of an unsigned 256-bit integer, so flags
// are returned to indicate whether or not the encoding was for a negative
// value and/or overflows a uint256.
func DiffBitsToUint256(bits uint32) (n uint256.Uint256, isNegative bool, overflows bool) {
	mantissa := bits & 0x007fffff
	isSignBitSet := bits&0x00800000 != 0
	exponent := bits >> 24

	// Any multiple of a zero mantissa is zero, so it can never be negative or
	// overflow.
	if mantissa == 0 {
		return uint256.Zero, false, false
	}

	// The base of the exponent is 256 = 2^8, so the full number is computed
	// by shifting the mantissa right or left by multiples of 8 bits.
	if exponent <= 3 {
		n = uint256.FromUint64(uint64(mantissa >> (8 * (3 - exponent))))
		return n, isSignBitSet, false
	}

	// Any encoded exponent of 35 or greater overflows since 256/8 + 3 = 35.
	// Each decrease of the exponent below that makes 8 more bits available
	// to the mantissa, so an exponent of 34 allows a mantissa up to 0xff and
	// 33 allows one up to 0xffff.  The mantissa only has 23 bits, so overflow
	// is impossible for exponents of 32 and lower.
	overflows = exponent >= 35 || (exponent >= 34 && mantissa > 0xff) ||
		(exponent >= 33 && mantissa > 0xffff)
	if overflows {
		return uint256.Zero, isSignBitSet, true
	}
	n = uint256.FromUint64(uint64(mantissa)).Lsh(uint(8 * (exponent - 3)))
	return n, isSignBitSet, false
}

// uint256ToDiffBits converts a uint256 to a compact representation using an
// unsigned 32-bit integer.  The compact representation only provides 23 bits of
// precision, so values larger than (2^23 - 1) only encode the most significant
// digits of the number.  See DiffBitsToUint256 for details.
//
// NOTE: The only difference between this function and the exported variant is
// that this one accepts a flag to produce the encoding of the negated value.
// Difficulty targets are never negative in practice, so it only exists for
// consistency with the legacy encoding and for testing purposes.
func uint256ToDiffBits(n uint256.Uint256, isNegative bool) uint32 {
	if n.IsZero() {
		return 0
	}

	// Since the base for the exponent is 256, the exponent is the number of
	// bytes it takes to represent the value.  This is equivalent to:
	// mantissa = n / 256^(exponent-3)
	var mantissa uint32
	exponent := uint32(n.ByteLen())
	if exponent <= 3 {
		mantissa = n.Uint32() << (8 * (3 - exponent))
	} else {
		mantissa = n.Rsh(uint(8 * (exponent - 3))).Uint32()
	}

	// A mantissa that already has the sign bit set is too large to fit into
	// the available 23 bits, so divide it by 256 and increment the exponent
	// accordingly.
	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	bits := exponent<<24 | mantissa
	if isNegative {
		bits |= 0x00800000
	}
	return bits
}

// Uint256ToDiffBits converts a uint256 to a compact representation using an
// unsigned 32-bit integer.  The compact representation only provides 23 bits of
// precision, so values larger than (2^23 - 1) only encode the most significant
// digits of the number.  See DiffBitsToUint256 for details.
func Uint256ToDiffBits(n uint256.Uint256) uint32 {
	const isNegative = false
	return uint256ToDiffBits(n, isNegative)
}

// CalcWork calculates a work value from difficulty bits.  The difficulty for
// generating a block is increased by decreasing the value which the generated
// hash must be less than, so the work value which is accumulated to select the
// chain with the most proof of work must be the inverse of the target.  For
// legacy reasons, the result is zero when the target is zero, negative, or
// overflows.  Finally, to avoid really small floating point numbers, the result
// multiplies the numerator by 2^256 and adds 1 to the denominator.
func CalcWork(diffBits uint32) uint256.Uint256 {
	diff, isNegative, overflows := DiffBitsToUint256(diffBits)
	if isNegative || overflows || diff.IsZero() {
		return uint256.Zero
	}

	// The goal is to calculate 2^256 / (diff+1), where diff > 0, however 2^256
	// can't be represented by a uint256.  Notice:
	//
	//    work = (2^256 / (diff+1))
	// => work = ((2^256-diff-1) / (diff+1))+1
	//
	// Also, 2^256-diff-1 is the bitwise not of diff.  The case of diff =
	// 2^256-1 would result in division by zero, but it is impossible to
	// encode in the difficulty bits, so it can safely be ignored.
	return diff.Not().Div(diff.AddUint64(1)).AddUint64(1)
}

// SumWork returns the cumulative work of all of the passed difficulty bits
// along with whether or not the total overflowed an unsigned 256-bit integer.
// The returned total wraps around when it overflows.
func SumWork(diffBits ...uint32) (uint256.Uint256, bool) {
	var total uint256.Uint256
	var overflowed bool
	for _, bits := range diffBits {
		var overflow bool
		total, overflow = total.AddOverflow(CalcWork(bits))
		overflowed = overflowed || overflow
	}
	return total, overflowed
}

// HashToUint256 converts the provided hash to an unsigned 256-bit integer that
// can be used to perform math comparisons.
func HashToUint256(hash *chainhash.Hash) uint256.Uint256 {
	// Hashes are a stream of bytes that do not have any inherent endianness to
	// them, so they are interpreted as little endian for the purposes of
	// treating them as a uint256.
	return uint256.FromBytesLE((*[32]byte)(hash))
}

// PowHashV1 calculates the original BLAKE-256 based proof-of-work hash of the
// passed serialized block header.
func PowHashV1(header []byte) chainhash.Hash {
	return chainhash.HashH(header)
}

// PowHashV2 calculates the BLAKE3 based proof-of-work hash of the passed
// serialized block header.
func PowHashV2(header []byte) chainhash.Hash {
	return chainhash.Hash(blake3.Sum256(header))
}

// checkProofOfWorkRange ensures the provided target difficulty is in min/max
// range per the provided proof-of-work limit and returns the target.
func checkProofOfWorkRange(diffBits uint32, powLimit uint256.Uint256) (uint256.Uint256, error) {
	// The target difficulty must be larger than zero, not overflow, and not
	// be negative.
	target, isNegative, overflows := DiffBitsToUint256(diffBits)
	if isNegative {
		str := fmt.Sprintf("target difficulty bits %08x is a negative value",
			diffBits)
		return uint256.Zero, ruleError(ErrUnexpectedDifficulty, str)
	}
	if overflows {
		str := fmt.Sprintf("target difficulty bits %08x is higher than the "+
			"max limit %064x", diffBits, powLimit)
		return uint256.Zero, ruleError(ErrUnexpectedDifficulty, str)
	}
	if target.IsZero() {
		str := "target difficulty is zero"
		return uint256.Zero, ruleError(ErrUnexpectedDifficulty, str)
	}

	// The target difficulty must not exceed the maximum allowed.
	if target.Gt(powLimit) {
		str := fmt.Sprintf("target difficulty %064x is higher than max %064x",
			target, powLimit)
		return uint256.Zero, ruleError(ErrUnexpectedDifficulty, str)
	}

	return target, nil
}

// CheckProofOfWorkRange ensures the provided target difficulty represented by
// the given header bits is in min/max range per the provided proof-of-work
// limit.
func CheckProofOfWorkRange(diffBits uint32, powLimit uint256.Uint256) error {
	_, err := checkProofOfWorkRange(diffBits, powLimit)
	return err
}

// checkProofOfWorkHash ensures the provided hash is less than or equal to the
// provided target difficulty.
func checkProofOfWorkHash(powHash *chainhash.Hash, target uint256.Uint256) error {
	hashNum := HashToUint256(powHash)
	if hashNum.Gt(target) {
		str := fmt.Sprintf("proof of work hash %064x is higher than expected "+
			"max of %064x", hashNum, target)
		return ruleError(ErrHighHash, str)
	}
	return nil
}

// CheckProofOfWorkHash ensures the provided hash is less than or equal to the
// target difficulty represented by the given header bits.  It does not check
// the target is in range, so callers will typically want CheckProofOfWork
// instead.
func CheckProofOfWorkHash(powHash *chainhash.Hash, diffBits uint32) error {
	target, _, _ := DiffBitsToUint256(diffBits)
	return checkProofOfWorkHash(powHash, target)
}

// CheckProofOfWork ensures the provided hash is less than the target difficulty
// represented by given header bits and that said difficulty is in min/max range
// per the provided proof-of-work limit.
func CheckProofOfWork(powHash *chainhash.Hash, diffBits uint32, powLimit uint256.Uint256) error {
	target, err := checkProofOfWorkRange(diffBits, powLimit)
	if err != nil {
		log.Tracef("Rejecting difficulty bits %08x: %v", diffBits, err)
		return err
	}

	if err := checkProofOfWorkHash(powHash, target); err != nil {
		log.Tracef("Rejecting proof of work hash %v: %v", powHash, err)
		return err
	}
	return nil
}
