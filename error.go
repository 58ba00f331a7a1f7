// Copyright (c) 2021-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint256

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidDivision indicates the wide division primitive was invoked
	// with a zero divisor or with a high dividend word that is not strictly
	// less than the divisor, meaning the quotient would not fit in a word.
	ErrInvalidDivision = ErrorKind("ErrInvalidDivision")

	// ErrOutOfRange indicates a value can't be represented as an unsigned
	// 256-bit integer because it is negative or requires more than 256 bits.
	ErrOutOfRange = ErrorKind("ErrOutOfRange")

	// ErrInvalidSyntax indicates a string is not a valid textual
	// representation of an unsigned integer in the requested base.
	ErrInvalidSyntax = ErrorKind("ErrInvalidSyntax")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to unsigned 256-bit integers.  It has
// full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Description string
	Err         error
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
