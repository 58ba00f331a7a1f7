// Copyright (c) 2021-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package uint256 implements highly optimized fixed precision unsigned 256-bit
integer arithmetic.

The type provided by this package is a value type made of four unsigned 64-bit
words.  It never allocates, every method returns a new value rather than
modifying the receiver, and it is therefore safe to share between goroutines
without any synchronization.

# Arithmetic semantics

All arithmetic is performed modulo 2^256, so callers may rely on "wrap around"
semantics.  Callers that need to detect when that happens can make use of the
overflow-reporting variants:

  - AddOverflow reports whether the true sum is 2^256 or more
  - SubUnderflow reports whether the true difference is negative
  - MulOverflow reports whether the true product is 2^256 or more

The modular variants AddMod, SubMod, MulMod, and ExpMod, on the other hand,
never lose precision since the intermediate results are computed with as many
words as needed before they are reduced.  Note that SubMod reduces the absolute
difference |n - n2| rather than the residue of a negative difference.

# Division by zero

Unlike native integers and math/big, division and reduction by zero do not
panic.  Instead, the following conventions apply and they are relied upon by
dependent code:

  - Div and Mod by zero result in zero
  - AddMod, SubMod, and MulMod with a zero modulus result in zero
  - ExpMod with a modulus of zero or one results in zero

# Operators

Go does not support operator overloading, so the usual operators are provided
by methods as follows:

	+  Add     -  Sub     *  Mul    /  Div    %  Mod
	&  And     |  Or      ^  Xor    ~  Not
	<< Lsh     >> Rsh
	== Eq      <  Lt      >  Gt     <= LtEq   >= GtEq

# Conversions

Values may be created from and converted to big and little endian bytes,
arrays of 64-bit words in either order, native unsigned integers, stdlib big
integers, and text in any base from 2 to 36.  The type also implements
fmt.Formatter along with encoding.TextMarshaler and encoding.TextUnmarshaler.

# Errors

Errors returned by this package are of type uint256.Error and wrap an
ErrorKind, so callers can programmatically determine the reason for the error
via errors.Is.
*/
package uint256
