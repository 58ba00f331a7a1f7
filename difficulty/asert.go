// Copyright (c) 2020-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficulty

import (
	"fmt"

	"github.com/decred/dcrd/math/uint256"
)

// panicf is a convenience function that formats according to the given format
// specifier and arguments and panics with it.
func panicf(format string, args ...interface{}) {
	str := fmt.Sprintf(format, args...)
	panic(str)
}

const (
	// maxExponentDelta is the maximum magnitude of the difference between
	// the actual and ideal time deltas that can be converted to 64.16 fixed
	// point without overflowing a signed 64-bit integer.
	maxExponentDelta = 1<<47 - 1

	// The following are the coefficients of the cubic polynomial that
	// approximates 2^x over the interval [0, 1) in 16.48 fixed point.
	polyCoeff1 uint64 = 195766423245049 // ceil(0.695502049712533 * 2^48)
	polyCoeff2 uint64 = 971821376       // ceil(0.2262697964 * 2^32)
	polyCoeff3 uint64 = 5127            // ceil(0.0782318 * 2^16)
)

// CalcASERTDiff calculates an absolutely scheduled exponentially weighted
// target difficulty for the given set of parameters using the algorithm defined
// in DCP0011.
//
// The Absolutely Scheduled Exponentially weighted Rising Targets (ASERT)
// algorithm defines an ideal schedule for block issuance and calculates the
// difficulty based on how far the most recent block's timestamp is ahead or
// behind that schedule.  The target difficulty is doubled or halved for every
// multiple of the half life the most recent block is ahead or behind the ideal
// schedule.
//
// The starting difficulty bits parameter is the initial target difficulty all
// calculations use as a reference.  It must be non-zero and less than or equal
// to the provided proof of work limit or the function will panic.
//
// The time delta is the number of seconds that have elapsed between the most
// recent block and an initial reference timestamp.
//
// The height delta is the number of blocks between the most recent block height
// and an initial reference height.  It must be non-negative or the function
// will panic.
//
// The half life must be positive or the function will panic.
//
// This function is safe for concurrent access.
func CalcASERTDiff(startDiffBits uint32, powLimit uint256.Uint256, targetSecsPerBlock,
	timeDelta, heightDelta, halfLife int64) uint32 {

	startDiff, isNegative, overflows := DiffBitsToUint256(startDiffBits)
	if isNegative || overflows || startDiff.IsZero() || startDiff.Gt(powLimit) {
		panicf("starting difficulty bits %08x are not in the valid range "+
			"[1, %064x]", startDiffBits, powLimit)
	}
	if heightDelta < 0 {
		panicf("provided height delta %d is negative", heightDelta)
	}
	if halfLife <= 0 {
		panicf("provided half life %d is not positive", halfLife)
	}

	// The goal equation is:
	//
	//   nextDiff = min(max(startDiff * 2^((Δt - Δh*Ib)/halfLife), 1), powLimit)
	//
	// It is implemented with fixed-point integer arithmetic and a cubic
	// polynomial approximation to the 2^x term over the interval [0, 1):
	//
	//   2^x ~= 1 + 0.695502049712533x + 0.2262697964x^2 + 0.0782318x^3
	//
	// The exponent is computed in 64.16 fixed point and decomposed into an
	// integer part n and fractional part f, so that 2^(n + f) = 2^n * 2^f
	// where the 2^f term uses the approximation and the 2^n term is a shift.
	//
	//       (Δt - Δh*Ib) << 16
	//   x = ------------------,  n = x >> 16,  f = x & 0xffff
	//            halfLife
	//
	// Deltas too large to represent in 64.16 fixed point produce exponents
	// that clamp the result to one of the bounds regardless, so they are
	// saturated.
	delta := timeDelta - heightDelta*targetSecsPerBlock
	switch {
	case delta > maxExponentDelta:
		delta = maxExponentDelta
	case delta < -maxExponentDelta:
		delta = -maxExponentDelta
	}
	exponent := (delta << 16) / halfLife // truncated towards zero
	frac := uint64(exponent & 0xffff)
	shifts := exponent >> 16

	// Calculate 2^16 * 2^f with the internal addition performed in 16.48
	// fixed point.  The result is a maximum of 17 bits.
	fracFactor := 1<<16 + (polyCoeff1*frac+
		polyCoeff2*frac*frac+
		polyCoeff3*frac*frac*frac+
		1<<47)>>48

	// nextDiff = (startDiff * 2^f * 2^n) / 2^16
	//
	// The product can exceed 256 bits by up to 17 bits, so it is kept as the
	// low 256 bits along with the high word and the multiplication by 2^n and
	// the division by 2^16 are combined into a single shift of the full
	// product.
	lo, hi := startDiff.MulUint64Carry(fracFactor)
	shifts -= 16
	var nextDiff uint256.Uint256
	tooHigh := false
	switch {
	case shifts >= 0:
		if hi != 0 || int64(lo.BitLen())+shifts > 256 {
			tooHigh = true
			break
		}
		nextDiff = lo.Lsh(uint(shifts))

	case shifts > -256:
		rshift := uint(-shifts)
		if hi>>rshift != 0 {
			tooHigh = true
			break
		}
		nextDiff = lo.Rsh(rshift).Or(uint256.FromUint64(hi).Lsh(256 - rshift))

	default:
		// Shifting by 320 bits or more always results in zero which Go
		// shifts handle naturally.
		nextDiff = uint256.FromUint64(hi >> uint(-shifts-256))
	}

	// Limit the target difficulty to the valid hardest and easiest values.
	// The hardest valid target difficulty is 1 since it would be impossible
	// to find a non-negative integer less than 0.
	switch {
	case tooHigh || nextDiff.Gt(powLimit):
		nextDiff = powLimit
	case nextDiff.IsZero():
		nextDiff = uint256.One
	}

	return Uint256ToDiffBits(nextDiff)
}
