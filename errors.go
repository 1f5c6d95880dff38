// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oid

// An Error identifies the reason an [ObjectIdentifier] could not be
// constructed. Error values are comparable, so a specific failure can be
// tested for with == or [errors.Is]. All failures in this package are
// deterministic functions of the input: retrying with the same input cannot
// succeed.
//
//go:generate stringer -type=Error -trimprefix=Err
type Error uint8

const (
	// ErrEmpty indicates that a raw BER/DER encoding was empty.
	ErrEmpty Error = iota + 1

	// ErrTooFewArcs indicates that fewer than three arcs were present. An
	// object identifier consists of at least three arcs.
	ErrTooFewArcs

	// ErrCapacity indicates that the encoding of an object identifier would
	// exceed [MaxSize] bytes.
	ErrCapacity

	// ErrArcRange indicates that the first arc was greater than 2, or that
	// the second arc was greater than 39 while the first arc was 0 or 1.
	ErrArcRange

	// ErrTruncated indicates that a base-128 encoded arc ended before its
	// terminating byte.
	ErrTruncated

	// ErrOverflow indicates that a decoded or accumulated arc value does not
	// fit into the 32 bits of an [Arc].
	ErrOverflow

	// ErrNotMinimal indicates that an arc encoding carries redundant leading
	// continuation bytes. DER requires the minimal encoding.
	ErrNotMinimal

	// ErrSyntax indicates a structural error in a dotted decimal string: an
	// empty segment, a misplaced dot or a byte that is not an ASCII digit.
	ErrSyntax
)

// Error implements the error interface.
func (e Error) Error() string {
	switch e {
	case ErrEmpty:
		return "oid: empty OID encoding"
	case ErrTooFewArcs:
		return "oid: OID must have at least 3 arcs"
	case ErrCapacity:
		return "oid: encoded OID exceeds the maximum size"
	case ErrArcRange:
		return "oid: first or second arc out of range"
	case ErrTruncated:
		return "oid: truncated arc"
	case ErrOverflow:
		return "oid: arc value overflows 32 bits"
	case ErrNotMinimal:
		return "oid: arc encoding is not minimal"
	case ErrSyntax:
		return "oid: invalid dotted decimal syntax"
	default:
		return "oid: " + e.String()
	}
}
