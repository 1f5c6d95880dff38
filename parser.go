// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oid

import "math"

// parse implements [Parse]. It scans s exactly once, accumulating decimal
// digits and feeding each completed arc to an encoder. parse does not
// allocate; all state lives in the encoder value and two scalars.
func parse(s string) (ObjectIdentifier, error) {
	var (
		enc    encoder
		arc    uint64 // value of the current segment, checked against 32 bits
		digits int    // digits in the current segment
		err    error
	)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '.':
			if digits == 0 {
				return ObjectIdentifier{}, ErrSyntax
			}
			if enc, err = enc.arc(Arc(arc)); err != nil {
				return ObjectIdentifier{}, err
			}
			arc, digits = 0, 0
		case '0' <= c && c <= '9':
			arc = arc*10 + uint64(c-'0')
			if arc > math.MaxUint32 {
				return ObjectIdentifier{}, ErrOverflow
			}
			digits++
		default:
			return ObjectIdentifier{}, ErrSyntax
		}
	}
	// An empty final segment means the string was empty or ended in a dot.
	if digits == 0 {
		return ObjectIdentifier{}, ErrSyntax
	}
	if enc, err = enc.arc(Arc(arc)); err != nil {
		return ObjectIdentifier{}, err
	}
	return enc.finish()
}
