// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oid

// MaxSize is the maximum number of value octets in the BER/DER encoding of an
// [ObjectIdentifier]. Together with the one-byte length counter this makes
// the ObjectIdentifier type 40 bytes in size.
const MaxSize = 39

// A buffer is a fixed-capacity byte buffer holding the value octets of a
// BER/DER OID encoding. Bytes beyond length are always zero, so two buffers
// holding the same octets compare equal with ==.
type buffer struct {
	bytes  [MaxSize]byte
	length uint8
}

// append returns a copy of b with p added at the end. If p does not fit into
// the remaining capacity, append fails with [ErrCapacity] and returns b
// unmodified. append never writes partial data.
func (b buffer) append(p ...byte) (buffer, error) {
	if int(b.length)+len(p) > MaxSize {
		return b, ErrCapacity
	}
	copy(b.bytes[b.length:], p)
	b.length += uint8(len(p))
	return b, nil
}

// slice returns the used portion of b.
func (b *buffer) slice() []byte {
	return b.bytes[:b.length]
}
