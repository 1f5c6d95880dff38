// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base128 implements the big-endian base-128 encoding of unsigned
// integers used by BER and DER for the components of an OBJECT IDENTIFIER
// (Rec. ITU-T X.690, Section 8.19). Each byte contributes 7 value bits; bit 7
// is set on every byte except the last one of a value. The encoding is
// self-terminating: a value ends at the first byte with bit 7 cleared.
//
// In contrast to a [Variable-length quantity] this package operates on byte
// slices instead of byte streams, so encoding and decoding never allocate.
//
// [Variable-length quantity]: https://en.wikipedia.org/wiki/Variable-length_quantity
package base128

import (
	"errors"
	"math"
	"math/bits"
)

var (
	// ErrTruncated indicates that a slice ended before a byte with the
	// continuation bit cleared was found.
	ErrTruncated = errors.New("base128: truncated value")
	// ErrOverflow indicates that a decoded value does not fit into 32 bits.
	ErrOverflow = errors.New("base128: value overflows 32 bits")
	// ErrNotMinimal indicates that a value starts with a redundant 0x80 byte.
	ErrNotMinimal = errors.New("base128: value is not minimally encoded")
)

// MaxLen is the maximum number of bytes in the encoding of a uint32.
const MaxLen = 5

// Len returns the number of bytes needed to encode v. The result is between 1
// and [MaxLen].
func Len(v uint32) int {
	if v == 0 {
		return 1
	}
	return (bits.Len32(v) + 6) / 7
}

// Put writes the minimal encoding of v to the beginning of b and returns the
// number of bytes written. If b is shorter than Len(v), Put panics.
func Put(b []byte, v uint32) int {
	n := Len(v)
	_ = b[n-1]
	for i := range n {
		c := byte(v>>(7*(n-1-i))) & 0x7f
		if i < n-1 {
			c |= 0x80
		}
		b[i] = c
	}
	return n
}

// Decode reads a single value from the beginning of b. It returns the value
// and the number of bytes consumed. Decode requires the minimal encoding: a
// leading 0x80 byte results in [ErrNotMinimal]. If b ends before the value
// terminates, Decode returns [ErrTruncated]. A value exceeding 32 bits
// results in [ErrOverflow].
func Decode(b []byte) (v uint32, n int, err error) {
	if len(b) == 0 {
		return 0, 0, ErrTruncated
	}
	if b[0] == 0x80 {
		return 0, 0, ErrNotMinimal
	}
	for n < len(b) {
		c := b[n]
		n++
		if v > math.MaxUint32>>7 {
			return 0, n, ErrOverflow
		}
		v = v<<7 | uint32(c&0x7f)
		if c&0x80 == 0 {
			return v, n, nil
		}
	}
	return 0, n, ErrTruncated
}
