// Copyright (c) 2021-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint256

import (
	"fmt"
	"math/big"
)

// ToBig returns the uint256 as a newly allocated stdlib big integer.
func (n Uint256) ToBig() *big.Int {
	return n.PutBig(new(big.Int))
}

// PutBig sets the passed big integer to the value of the uint256 and returns
// it.  This allows callers to reuse a big integer and avoid an allocation.
func (n Uint256) PutBig(out *big.Int) *big.Int {
	b := n.Bytes()
	return out.SetBytes(b[:])
}

// FromBig converts the passed stdlib big integer to an unsigned 256-bit
// integer.  An error with kind ErrOutOfRange is returned when the big integer
// is negative or requires more than 256 bits to represent.
func FromBig(b *big.Int) (Uint256, error) {
	if b.Sign() < 0 {
		str := fmt.Sprintf("cannot represent negative value %v", b)
		return Zero, makeError(ErrOutOfRange, str)
	}
	if b.BitLen() > 256 {
		str := fmt.Sprintf("value %#x requires %d bits which exceeds the "+
			"maximum of 256", b, b.BitLen())
		return Zero, makeError(ErrOutOfRange, str)
	}

	var b32 [32]byte
	b.FillBytes(b32[:])
	return FromBytes(&b32), nil
}
