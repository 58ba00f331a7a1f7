// Copyright (c) 2021-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint256

import "encoding/binary"

// FromBytes interprets the provided array as a 256-bit big-endian unsigned
// integer and returns the resulting uint256.
func FromBytes(b *[32]byte) Uint256 {
	return Uint256{n: [4]uint64{
		binary.BigEndian.Uint64(b[24:32]),
		binary.BigEndian.Uint64(b[16:24]),
		binary.BigEndian.Uint64(b[8:16]),
		binary.BigEndian.Uint64(b[0:8]),
	}}
}

// FromBytesLE interprets the provided array as a 256-bit little-endian
// unsigned integer and returns the resulting uint256.
func FromBytesLE(b *[32]byte) Uint256 {
	return Uint256{n: [4]uint64{
		binary.LittleEndian.Uint64(b[0:8]),
		binary.LittleEndian.Uint64(b[8:16]),
		binary.LittleEndian.Uint64(b[16:24]),
		binary.LittleEndian.Uint64(b[24:32]),
	}}
}

// FromByteSlice interprets the provided slice as a big-endian unsigned integer
// and returns the resulting uint256.  Slices shorter than 32 bytes are treated
// as if they were left padded with zeros, while only the least significant 32
// bytes of longer slices are used, which is equivalent to reducing the value
// modulo 2^256.
func FromByteSlice(b []byte) Uint256 {
	var b32 [32]byte
	if len(b) > 32 {
		b = b[len(b)-32:]
	}
	copy(b32[32-len(b):], b)
	return FromBytes(&b32)
}

// FromByteSliceLE interprets the provided slice as a little-endian unsigned
// integer and returns the resulting uint256.  Slices shorter than 32 bytes are
// treated as if they were right padded with zeros, while only the least
// significant 32 bytes of longer slices are used.
func FromByteSliceLE(b []byte) Uint256 {
	var b32 [32]byte
	if len(b) > 32 {
		b = b[:32]
	}
	copy(b32[:], b)
	return FromBytesLE(&b32)
}

// PutBytesUnchecked unpacks the uint256 to a 32-byte big-endian value directly
// into the passed byte slice.  The target slice must have at least 32 bytes
// available or it will panic.
//
// There is a similar function, PutBytes, which unpacks the uint256 into a
// 32-byte array directly.  This version is provided since it can be useful to
// write directly into part of a larger buffer without needing a separate
// allocation.
func (n Uint256) PutBytesUnchecked(b []byte) {
	binary.BigEndian.PutUint64(b[0:8], n.n[3])
	binary.BigEndian.PutUint64(b[8:16], n.n[2])
	binary.BigEndian.PutUint64(b[16:24], n.n[1])
	binary.BigEndian.PutUint64(b[24:32], n.n[0])
}

// PutBytesUncheckedLE unpacks the uint256 to a 32-byte little-endian value
// directly into the passed byte slice.  The target slice must have at least 32
// bytes available or it will panic.
func (n Uint256) PutBytesUncheckedLE(b []byte) {
	binary.LittleEndian.PutUint64(b[0:8], n.n[0])
	binary.LittleEndian.PutUint64(b[8:16], n.n[1])
	binary.LittleEndian.PutUint64(b[16:24], n.n[2])
	binary.LittleEndian.PutUint64(b[24:32], n.n[3])
}

// PutBytes unpacks the uint256 to a 32-byte big-endian value using the passed
// byte array.
func (n Uint256) PutBytes(b *[32]byte) {
	n.PutBytesUnchecked(b[:])
}

// PutBytesLE unpacks the uint256 to a 32-byte little-endian value using the
// passed byte array.
func (n Uint256) PutBytesLE(b *[32]byte) {
	n.PutBytesUncheckedLE(b[:])
}

// Bytes unpacks the uint256 to a 32-byte big-endian array.
func (n Uint256) Bytes() [32]byte {
	var b [32]byte
	n.PutBytesUnchecked(b[:])
	return b
}

// BytesLE unpacks the uint256 to a 32-byte little-endian array.
func (n Uint256) BytesLE() [32]byte {
	var b [32]byte
	n.PutBytesUncheckedLE(b[:])
	return b
}

// PaddedBytes returns the big-endian encoding of the uint256 left padded with
// zeros to the requested length.  The value is never truncated, so the
// minimal big-endian encoding is returned when the requested length is less
// than the number of significant bytes.
func (n Uint256) PaddedBytes(length int) []byte {
	byteLen := n.ByteLen()
	if length < byteLen {
		length = byteLen
	}
	b32 := n.Bytes()
	b := make([]byte, length)
	copy(b[length-byteLen:], b32[32-byteLen:])
	return b
}
