// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oid

import (
	"codello.dev/oid/internal/base128"
)

// An Arc is a single integer node in the hierarchical path of an object
// identifier. Arcs are limited to 32 bits.
type Arc uint32

// Limits for the first two arcs imposed by their joint encoding. The second
// arc is only limited if the first arc is 0 or 1. See Rec. ITU-T X.690,
// Section 8.19.4.
const (
	maxFirstArc  = 2
	maxSecondArc = 39
)

// An arcCursor decodes the arcs of a BER/DER OID encoding one at a time. The
// first encoded value jointly carries the first two arcs and is unpacked into
// two results. A cursor cannot be reset; create a new cursor from the same
// bytes to iterate again.
type arcCursor struct {
	der []byte
	n   int // arcs produced so far

	// second holds the pending second arc after the leading combined value
	// has been decoded.
	second    Arc
	hasSecond bool
}

// next produces the next arc of the encoding. The second return value is
// false after the last arc. Any error is fatal to the decode: [ErrTruncated]
// for an arc without a terminating byte, [ErrOverflow] for an arc exceeding
// 32 bits and [ErrNotMinimal] for redundant leading continuation bytes.
func (c *arcCursor) next() (Arc, bool, error) {
	if c.hasSecond {
		c.hasSecond = false
		c.n++
		return c.second, true, nil
	}
	if len(c.der) == 0 {
		return 0, false, nil
	}
	v, n, err := base128.Decode(c.der)
	switch err {
	case nil:
	case base128.ErrTruncated:
		return 0, false, ErrTruncated
	case base128.ErrOverflow:
		return 0, false, ErrOverflow
	default:
		return 0, false, ErrNotMinimal
	}
	c.der = c.der[n:]
	if c.n > 0 {
		c.n++
		return Arc(v), true, nil
	}
	// The leading value packs the first two arcs as first*40+second. Values
	// below 80 limit the first arc to 0 or 1 and the second arc to 0..39;
	// everything above belongs to the unrestricted second arc below 2.
	first, second := Arc(v/40), Arc(v%40)
	if v >= 80 {
		first, second = 2, Arc(v-80)
	}
	c.second, c.hasSecond = second, true
	c.n++
	return first, true, nil
}
