// Copyright (c) 2021-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficulty

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/math/uint256"
)

// hexToBytes converts the passed hex string into bytes and will panic if there
// is an error.  This is only provided for the hard-coded constants so errors in
// the source code can be detected. It will only (and must only) be called with
// hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// hexToUint256 converts the passed hex string into a Uint256 and will panic if
// there is an error.  This is only provided for the hard-coded constants so
// errors in the source code can be detected. It will only (and must only) be
// called with hard-coded values.
func hexToUint256(s string) uint256.Uint256 {
	n, err := uint256.Parse(s, 16)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return n
}

// mainNetPowLimit is the highest proof of work value a block can have for the
// main network.  It is the value 2^224 - 1.
var mainNetPowLimit = hexToUint256("00000000ffffffffffffffffffffffffffffffff" +
	"ffffffffffffffffffffffff")

// simNetPowLimit is the highest proof of work value a block can have for the
// simulation test network.  It is the value 2^255 - 1.
var simNetPowLimit = uint256.One.Lsh(255).SubUint64(1)

// TestDiffBitsToUint256 ensures converting from the compact representation used
// for target difficulties to unsigned 256-bit integers produces the correct
// results.
func TestDiffBitsToUint256(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string // test description
		input     uint32 // compact target difficulty bits to test
		want      string // expected uint256
		neg       bool   // expect result to be a negative number
		overflows bool   // expect result to overflow
	}{{
		name:  "mainnet block 1",
		input: 0x1b01ffff,
		want:  "000000000001ffff000000000000000000000000000000000000000000000000",
	}, {
		name:  "mainnet block 288",
		input: 0x1b01330e,
		want:  "000000000001330e000000000000000000000000000000000000000000000000",
	}, {
		name:  "higher diff (exponent 24, sign bit 0, mantissa 0x5fb28a)",
		input: 0x185fb28a,
		want:  "00000000000000005fb28a000000000000000000000000000000000000000000",
	}, {
		name:  "zero",
		input: 0,
		want:  "00",
	}, {
		name:  "-1 (exponent 1, sign bit 1, mantissa 0x10000)",
		input: 0x1810000,
		want:  "01",
		neg:   true,
	}, {
		name:  "-128 (exponent 2, sign bit 1, mantissa 0x08000)",
		input: 0x2808000,
		want:  "80",
		neg:   true,
	}, {
		name:  "-32768 (exponent 3, sign bit 1, mantissa 0x08000)",
		input: 0x3808000,
		want:  "8000",
		neg:   true,
	}, {
		name:  "-8388608 (exponent 4, sign bit 1, mantissa 0x08000)",
		input: 0x4808000,
		want:  "800000",
		neg:   true,
	}, {
		name:  "largest representable via exponent 32",
		input: 0x207fffff,
		want:  "7fffff0000000000000000000000000000000000000000000000000000000000",
	}, {
		name:      "max uint256 + 1 via exponent 33 (overflows)",
		input:     0x21010000,
		want:      "00",
		overflows: true,
	}, {
		name:      "negative max uint256 + 1 (negative and overflows)",
		input:     0x21810000,
		want:      "00",
		neg:       true,
		overflows: true,
	}, {
		name:      "max uint256 + 1 via exponent 34 (overflows)",
		input:     0x22000100,
		want:      "00",
		overflows: true,
	}, {
		name:      "max uint256 + 1 via exponent 35 (overflows)",
		input:     0x23000001,
		want:      "00",
		overflows: true,
	}}

	for _, test := range tests {
		want := hexToUint256(test.want)

		result, isNegative, overflows := DiffBitsToUint256(test.input)
		if !result.Eq(want) {
			t.Errorf("%q: mismatched result -- got %x, want %x", test.name,
				result, want)
			continue
		}
		if isNegative != test.neg {
			t.Errorf("%q: mismatched negative -- got %v, want %v", test.name,
				isNegative, test.neg)
			continue
		}
		if overflows != test.overflows {
			t.Errorf("%q: mismatched overflows -- got %v, want %v", test.name,
				overflows, test.overflows)
			continue
		}
	}
}

// TestUint256ToDiffBits ensures converting from unsigned 256-bit integers to
// the representation used for target difficulties in the header bits field
// produces the correct results.
func TestUint256ToDiffBits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string // test description
		input string // uint256 to test
		neg   bool   // treat as a negative number
		want  uint32 // expected encoded value
	}{{
		name:  "mainnet block 1",
		input: "000000000001ffff000000000000000000000000000000000000000000000000",
		want:  0x1b01ffff,
	}, {
		name:  "mainnet block 288",
		input: "000000000001330e000000000000000000000000000000000000000000000000",
		want:  0x1b01330e,
	}, {
		name:  "higher diff (exponent 24, sign bit 0, mantissa 0x5fb28a)",
		input: "00000000000000005fb28a000000000000000000000000000000000000000000",
		want:  0x185fb28a,
	}, {
		name:  "mainnet pow limit loses precision",
		input: "00000000ffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		want:  0x1d00ffff,
	}, {
		name:  "max uint256 loses precision",
		input: "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		want:  0x2100ffff,
	}, {
		name:  "zero",
		input: "00",
		want:  0,
	}, {
		name:  "negative zero is zero",
		input: "00",
		neg:   true,
		want:  0,
	}, {
		name:  "-1 (exponent 1, sign bit 1, mantissa 0x10000)",
		input: "01",
		neg:   true,
		want:  0x1810000,
	}, {
		name:  "-128 (exponent 2, sign bit 1, mantissa 0x08000)",
		input: "80",
		neg:   true,
		want:  0x2808000,
	}, {
		name:  "-32768 (exponent 3, sign bit 1, mantissa 0x08000)",
		input: "8000",
		neg:   true,
		want:  0x3808000,
	}, {
		name:  "-8388608 (exponent 4, sign bit 1, mantissa 0x08000)",
		input: "800000",
		neg:   true,
		want:  0x4808000,
	}}

	for _, test := range tests {
		input := hexToUint256(test.input)

		// Either use the internal function or the exported function depending
		// on whether or not the test is for negative inputs since only the
		// internal one accepts a flag to specify the value should be treated
		// as negative.
		var result uint32
		if test.neg {
			result = uint256ToDiffBits(input, true)
		} else {
			result = Uint256ToDiffBits(input)
		}
		if result != test.want {
			t.Errorf("%q: mismatched result -- got %x, want %x", test.name,
				result, test.want)
			continue
		}
	}
}

// TestCalcWork ensures calculating a work value from a compact target
// difficulty produces the correct results.
func TestCalcWork(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string // test description
		input uint32 // target difficulty bits to test
		want  string // expected uint256
	}{{
		name:  "mainnet block 1",
		input: 0x1b01ffff,
		want:  "0000000000000000000000000000000000000000000000000000800040002000",
	}, {
		name:  "mainnet block 288",
		input: 0x1b01330e,
		want:  "0000000000000000000000000000000000000000000000000000d56f2dcbe105",
	}, {
		name:  "higher diff (exponent 24)",
		input: 0x185fb28a,
		want:  "000000000000000000000000000000000000000000000002acd33ddd458512da",
	}, {
		name:  "zero",
		input: 0,
		want:  "0000000000000000000000000000000000000000000000000000000000000000",
	}, {
		name:  "max uint256",
		input: 0x2100ffff,
		want:  "0000000000000000000000000000000000000000000000000000000000000001",
	}, {
		name:  "target of one",
		input: 0x1010000,
		want:  "8000000000000000000000000000000000000000000000000000000000000000",
	}, {
		name:  "negative target difficulty",
		input: 0x1810000,
		want:  "0000000000000000000000000000000000000000000000000000000000000000",
	}, {
		name:  "overflowing target difficulty",
		input: 0x23000001,
		want:  "0000000000000000000000000000000000000000000000000000000000000000",
	}}

	for _, test := range tests {
		want := hexToUint256(test.want)
		result := CalcWork(test.input)
		if !result.Eq(want) {
			t.Errorf("%q: mismatched result -- got %x, want %x", test.name,
				result, want)
			continue
		}
	}
}

// TestSumWork ensures accumulating work values from multiple compact target
// difficulties produces the correct results and detects overflow.
func TestSumWork(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string   // test description
		input    []uint32 // target difficulty bits to sum
		want     string   // expected uint256
		overflow bool     // expected overflow flag
	}{{
		name:  "no bits",
		input: nil,
		want:  "00",
	}, {
		name:  "mainnet blocks 1 and 2",
		input: []uint32{0x1b01ffff, 0x1b01ffff},
		want:  "1000080004000",
	}, {
		name:  "mainnet blocks 1 and 288",
		input: []uint32{0x1b01ffff, 0x1b01330e},
		want:  "1556f6dcc0105",
	}, {
		name:     "two targets of one overflow",
		input:    []uint32{0x1010000, 0x1010000},
		want:     "00",
		overflow: true,
	}, {
		name:     "overflow is sticky",
		input:    []uint32{0x1010000, 0x1010000, 0x1b01ffff},
		want:     "800040002000",
		overflow: true,
	}}

	for _, test := range tests {
		want := hexToUint256(test.want)
		result, overflow := SumWork(test.input...)
		if !result.Eq(want) || overflow != test.overflow {
			t.Errorf("%q: mismatched result -- got %x (overflow %v), want %x "+
				"(overflow %v)", test.name, result, overflow, want,
				test.overflow)
			continue
		}
	}
}

// TestHashToUint256 ensures converting a hash treated as a little endian
// unsigned 256-bit value to a uint256 works as intended.
func TestHashToUint256(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string // test description
		hash string // hash to convert
		want string // expected uint256 bytes in hex
	}{{
		name: "mainnet block 1 hash",
		hash: "000000000000437482b6d47f82f374cde539440ddb108b0a76886f0d87d126b9",
		want: "000000000000437482b6d47f82f374cde539440ddb108b0a76886f0d87d126b9",
	}, {
		name: "mainnet block 2 hash",
		hash: "000000000000c41019872ff7db8fd2e9bfa05f42d3f8fee8e895e8c1e5b8dcba",
		want: "000000000000c41019872ff7db8fd2e9bfa05f42d3f8fee8e895e8c1e5b8dcba",
	}}

	for _, test := range tests {
		hash, err := chainhash.NewHashFromStr(test.hash)
		if err != nil {
			t.Errorf("%q: unexpected err parsing test hash: %v", test.name, err)
			continue
		}
		want := hexToUint256(test.want)

		result := HashToUint256(hash)
		if !result.Eq(want) {
			t.Errorf("%s: unexpected result -- got %x, want %x\n%s", test.name,
				result, want, spew.Sdump(hash))
			continue
		}
	}
}

// TestPowHashes ensures the proof-of-work hash functions produce the expected
// digests.
func TestPowHashes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string // test description
		header []byte // serialized header to hash
		wantV1 string // expected BLAKE-256 digest
		wantV2 string // expected BLAKE3 digest
	}{{
		name:   "empty",
		header: nil,
		wantV1: "716f6e863f744b9ac22c97ec7b76ea5f5908bc5b2f67c61510bfc4751384ea7a",
		wantV2: "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262",
	}}

	for _, test := range tests {
		gotV1 := PowHashV1(test.header)
		if want := hexToBytes(test.wantV1); !bytes.Equal(gotV1[:], want) {
			t.Errorf("%q: unexpected v1 hash -- got %x, want %x", test.name,
				gotV1[:], want)
			continue
		}
		gotV2 := PowHashV2(test.header)
		if want := hexToBytes(test.wantV2); !bytes.Equal(gotV2[:], want) {
			t.Errorf("%q: unexpected v2 hash -- got %x, want %x", test.name,
				gotV2[:], want)
			continue
		}
	}
}

// TestCheckProofOfWorkRange ensures target difficulties that are outside of
// the acceptable ranges are detected as an error and those inside are not.
func TestCheckProofOfWorkRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string // test description
		bits uint32 // compact target difficulty bits to test
		err  error  // expected error
	}{{
		name: "mainnet block 1",
		bits: 0x1b01ffff,
		err:  nil,
	}, {
		name: "mainnet block 288",
		bits: 0x1b01330e,
		err:  nil,
	}, {
		name: "smallest allowed",
		bits: 0x1010000,
		err:  nil,
	}, {
		name: "max allowed (exactly the pow limit)",
		bits: 0x1d00ffff,
		err:  nil,
	}, {
		name: "zero",
		bits: 0,
		err:  ErrUnexpectedDifficulty,
	}, {
		name: "negative",
		bits: 0x1810000,
		err:  ErrUnexpectedDifficulty,
	}, {
		name: "pow limit + 1",
		bits: 0x1d010000,
		err:  ErrUnexpectedDifficulty,
	}, {
		name: "overflows uint256",
		bits: 0x23000001,
		err:  ErrUnexpectedDifficulty,
	}}

	for _, test := range tests {
		err := CheckProofOfWorkRange(test.bits, mainNetPowLimit)
		if !errors.Is(err, test.err) {
			t.Errorf("%q: unexpected err -- got %v, want %v", test.name, err,
				test.err)
			continue
		}
	}
}

// TestCheckProofOfWorkHash ensures hashes that do not satisfy a given target
// difficulty are detected as an error and those that do are not.
func TestCheckProofOfWorkHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string // test description
		hash string // proof of work hash to test
		bits uint32 // compact target difficulty bits to test
		err  error  // expected error
	}{{
		name: "mainnet block 1 pow hash",
		hash: "000000000000437482b6d47f82f374cde539440ddb108b0a76886f0d87d126b9",
		bits: 0x1b01ffff,
		err:  nil,
	}, {
		name: "mainnet block 288 pow hash",
		hash: "000000000000e0ab546b8fc19f6d94054d47ffa5fe79e17611d170662c8b702b",
		bits: 0x1b01330e,
		err:  nil,
	}, {
		name: "high hash",
		hash: "000000000001ffff000000000000000000000000000000000000000000000001",
		bits: 0x1b01ffff,
		err:  ErrHighHash,
	}}

	for _, test := range tests {
		hash, err := chainhash.NewHashFromStr(test.hash)
		if err != nil {
			t.Errorf("%q: unexpected err parsing test hash: %v", test.name, err)
			continue
		}

		err = CheckProofOfWorkHash(hash, test.bits)
		if !errors.Is(err, test.err) {
			t.Errorf("%q: unexpected err -- got %v, want %v", test.name, err,
				test.err)
			continue
		}
	}
}

// TestCheckProofOfWork ensures hashes and target difficulties that are outside
// of the acceptable ranges are detected as an error and those inside are not.
func TestCheckProofOfWork(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string // test description
		hash string // proof of work hash to test
		bits uint32 // compact target difficulty bits to test
		err  error  // expected error
	}{{
		name: "mainnet block 1 pow hash",
		hash: "000000000000437482b6d47f82f374cde539440ddb108b0a76886f0d87d126b9",
		bits: 0x1b01ffff,
		err:  nil,
	}, {
		name: "mainnet block 288 pow hash",
		hash: "000000000000e0ab546b8fc19f6d94054d47ffa5fe79e17611d170662c8b702b",
		bits: 0x1b01330e,
		err:  nil,
	}, {
		name: "max allowed (exactly the target)",
		hash: "000000000001ffff000000000000000000000000000000000000000000000000",
		bits: 0x1b01ffff,
		err:  nil,
	}, {
		name: "high hash (target + 1)",
		hash: "000000000001ffff000000000000000000000000000000000000000000000001",
		bits: 0x1b01ffff,
		err:  ErrHighHash,
	}, {
		name: "hash satisfies target, but target too high at pow limit + 1",
		hash: "0000000000000000000000000000000000000000000000000000000000000001",
		bits: 0x1d010000,
		err:  ErrUnexpectedDifficulty,
	}, {
		name: "zero target difficulty",
		hash: "0000000000000000000000000000000000000000000000000000000000000001",
		bits: 0,
		err:  ErrUnexpectedDifficulty,
	}, {
		name: "negative target difficulty",
		hash: "0000000000000000000000000000000000000000000000000000000000000001",
		bits: 0x1810000,
		err:  ErrUnexpectedDifficulty,
	}}

	for _, test := range tests {
		hash, err := chainhash.NewHashFromStr(test.hash)
		if err != nil {
			t.Errorf("%q: unexpected err parsing test hash: %v", test.name, err)
			continue
		}

		err = CheckProofOfWork(hash, test.bits, mainNetPowLimit)
		if !errors.Is(err, test.err) {
			t.Errorf("%q: unexpected err -- got %v, want %v", test.name, err,
				test.err)
			continue
		}
	}
}
