// Copyright (c) 2019-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package difficulty provides proof-of-work target difficulty functions built on
fixed precision unsigned 256-bit integers.

Target difficulties, work values, and proof-of-work hashes are all unsigned
256-bit quantities, so they are represented by uint256.Uint256 rather than
much less efficient arbitrary precision big integers.

# Proof-of-work

  - Converting to and from the compact target difficulty representation
  - Calculating work values based on the compact target difficulty and
    accumulating them
  - Calculating the BLAKE-256 and BLAKE3 proof-of-work hashes of a serialized
    header
  - Checking a hash satisfies a target difficulty and that target difficulty
    is within a valid range
  - Calculating the next target difficulty with the ASERT algorithm

# Errors

Errors returned by this package are of type difficulty.RuleError and wrap an
ErrorKind, so callers can programmatically determine the specific rule
violation via errors.Is.

# Logging

The package does not log anything by default.  Callers may provide a logger
via UseLogger in order to trace rejected proofs of work.
*/
package difficulty
