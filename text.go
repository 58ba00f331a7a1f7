// Copyright (c) 2021-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint256

import (
	"fmt"
	"math/bits"
	"strings"
)

const (
	// digits houses the characters used when converting to text for all of
	// the supported bases.
	digits = "0123456789abcdefghijklmnopqrstuvwxyz"

	// minBase and maxBase are the supported range of bases for converting to
	// and from text.
	minBase = 2
	maxBase = len(digits)
)

// wordChunk returns the largest power of the passed base that fits in a single
// word along with the number of digits it represents.  Converting one chunk at
// a time means the expensive 256-bit division only needs to happen once per
// chunk rather than once per digit.
func wordChunk(base uint64) (uint64, int) {
	chunk, numDigits := base, 1
	for {
		hi, lo := bits.Mul64(chunk, base)
		if hi != 0 {
			return chunk, numDigits
		}
		chunk = lo
		numDigits++
	}
}

// Text returns the string representation of the uint256 in the given base,
// which must be between 2 and 36, inclusive.  Lowercase letters are used for
// digits 10 and above and the result never has a prefix or leading zeros.  It
// will panic when the base is out of range.
func (n Uint256) Text(base int) string {
	if base < minBase || base > maxBase {
		panic(fmt.Sprintf("invalid base %d", base))
	}
	if n.IsZero() {
		return "0"
	}

	// The largest possible output is 256 binary digits.
	var buf [256]byte
	i := len(buf)

	// Bases that are a power of two map to a fixed number of bits per digit.
	if base&(base-1) == 0 {
		shift := uint(bits.TrailingZeros(uint(base)))
		mask := uint64(base - 1)
		for !n.IsZero() {
			i--
			buf[i] = digits[n.n[0]&mask]
			n = n.Rsh(shift)
		}
		return string(buf[i:])
	}

	b := uint64(base)
	chunk, chunkDigits := wordChunk(b)
	for !n.IsZero() {
		var r uint64
		n, r = n.divRemUint64(chunk)

		// Every chunk other than the most significant one is zero padded.
		for j := 0; j < chunkDigits && (r != 0 || !n.IsZero()); j++ {
			i--
			buf[i] = digits[r%b]
			r /= b
		}
	}
	return string(buf[i:])
}

// String returns the uint256 as a human-readable decimal string.
func (n Uint256) String() string {
	return n.Text(10)
}

// Format implements fmt.Formatter.  It accepts the formats 'b' (binary), 'o'
// (octal with 0 prefix when the '#' flag is specified), 'O' (octal with 0o
// prefix), 'd' (decimal), 'x' (lowercase hexadecimal), 'X' (uppercase
// hexadecimal), along with 's' and 'v' which are both decimal.  The '#' flag
// adds the usual base prefixes, and the width, precision, '0', and '-' flags
// behave as they do for native integers.
func (n Uint256) Format(s fmt.State, verb rune) {
	var base int
	var prefix string
	switch verb {
	case 'b':
		base, prefix = 2, "0b"
	case 'o':
		base, prefix = 8, "0"
	case 'O':
		base, prefix = 8, "0o"
	case 'd', 's', 'v':
		base = 10
	case 'x':
		base, prefix = 16, "0x"
	case 'X':
		base, prefix = 16, "0X"
	default:
		fmt.Fprintf(s, "%%!%c(uint256.Uint256=%s)", verb, n.String())
		return
	}
	if verb != 'O' && !s.Flag('#') {
		prefix = ""
	}

	text := n.Text(base)
	if verb == 'X' {
		text = strings.ToUpper(text)
	}

	// The precision specifies the minimum number of digits where an explicit
	// precision of zero for the value zero results in no digits at all.
	prec, hasPrec := s.Precision()
	if hasPrec {
		switch {
		case prec == 0 && n.IsZero():
			text = ""
		case len(text) < prec:
			text = strings.Repeat("0", prec-len(text)) + text
		}
	}

	// Pad to the requested width.  Zero padding goes between the prefix and
	// the digits and is ignored when a precision or left justification is
	// requested, matching the behavior for native integers.
	width, hasWidth := s.Width()
	padLen := 0
	if hasWidth {
		padLen = width - len(prefix) - len(text)
	}
	switch {
	case padLen <= 0:
		fmt.Fprint(s, prefix, text)
	case s.Flag('-'):
		fmt.Fprint(s, prefix, text, strings.Repeat(" ", padLen))
	case s.Flag('0') && !hasPrec:
		fmt.Fprint(s, prefix, strings.Repeat("0", padLen), text)
	default:
		fmt.Fprint(s, strings.Repeat(" ", padLen), prefix, text)
	}
}

// digitVal returns the numeric value of the passed character when interpreted
// as a digit in a base up to 36.  Characters that are not digits return a
// value that is larger than all valid bases.
func digitVal(c byte) uint64 {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0')
	case c >= 'a' && c <= 'z':
		return uint64(c - 'a' + 10)
	case c >= 'A' && c <= 'Z':
		return uint64(c - 'A' + 10)
	}
	return uint64(maxBase)
}

// Parse interprets the passed string as an unsigned integer in the given base
// and returns the resulting uint256.
//
// The base must be 0 or between 2 and 36, inclusive.  When it is 0, the base is
// implied by the string prefix: "0x" or "0X" selects base 16, "0o" or "0O"
// selects base 8, "0b" or "0B" selects base 2, and base 10 is used otherwise.
//
// An error with kind ErrInvalidSyntax is returned when the string is empty or
// contains characters that are not valid digits for the base, and an error
// with kind ErrOutOfRange is returned when the value does not fit in 256 bits.
func Parse(s string, base int) (Uint256, error) {
	origStr := s
	if base == 0 {
		base = 10
		if len(s) > 2 && s[0] == '0' {
			switch s[1] {
			case 'x', 'X':
				base, s = 16, s[2:]
			case 'o', 'O':
				base, s = 8, s[2:]
			case 'b', 'B':
				base, s = 2, s[2:]
			}
		}
	}
	if base < minBase || base > maxBase {
		str := fmt.Sprintf("invalid base %d", base)
		return Zero, makeError(ErrInvalidSyntax, str)
	}
	if len(s) == 0 {
		str := fmt.Sprintf("%q is not a valid base %d integer", origStr, base)
		return Zero, makeError(ErrInvalidSyntax, str)
	}

	b := uint64(base)
	var n Uint256
	for i := 0; i < len(s); i++ {
		d := digitVal(s[i])
		if d >= b {
			str := fmt.Sprintf("%q is not a valid base %d integer", origStr,
				base)
			return Zero, makeError(ErrInvalidSyntax, str)
		}

		var carry uint64
		var overflow bool
		n, carry = n.MulUint64Carry(b)
		n, overflow = n.AddOverflow(FromUint64(d))
		if carry != 0 || overflow {
			str := fmt.Sprintf("%q overflows an unsigned 256-bit integer",
				origStr)
			return Zero, makeError(ErrOutOfRange, str)
		}
	}
	return n, nil
}

// MarshalText implements encoding.TextMarshaler by encoding the uint256 as a
// decimal string.
func (n Uint256) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.  It accepts any text that
// Parse accepts with an implied base.
//
// This is the only method that modifies the receiver since the interface
// requires it.
func (n *Uint256) UnmarshalText(text []byte) error {
	v, err := Parse(string(text), 0)
	if err != nil {
		return err
	}
	*n = v
	return nil
}
