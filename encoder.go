// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oid

import (
	"math"

	"codello.dev/oid/internal/base128"
)

// An encoder incrementally builds the BER/DER encoding of an object
// identifier. The zero value is an empty encoder. Methods use value
// semantics: arc returns a new encoder and leaves its receiver untouched, so
// a failed append never leaves partially written state behind.
type encoder struct {
	der buffer

	// n counts the arcs appended so far. The first two arcs are encoded as a
	// single value, so the first arc is held in first until the second one
	// arrives. No bytes are written before that.
	n     int
	first Arc
}

// extend returns an encoder whose encoding continues the one of oid.
func extend(oid ObjectIdentifier) encoder {
	return encoder{der: oid.der, n: oid.Len()}
}

// arc appends a single arc to the encoding. The first arc must be at most 2,
// the second arc at most 39 if the first arc was 0 or 1; other values fail
// with [ErrArcRange]. An encoding exceeding [MaxSize] bytes fails with
// [ErrCapacity].
func (e encoder) arc(a Arc) (encoder, error) {
	switch e.n {
	case 0:
		if a > maxFirstArc {
			return e, ErrArcRange
		}
		e.first = a
		e.n = 1
		return e, nil
	case 1:
		if e.first < maxFirstArc && a > maxSecondArc {
			return e, ErrArcRange
		}
		v := uint64(e.first)*(maxSecondArc+1) + uint64(a)
		if v > math.MaxUint32 {
			return e, ErrOverflow
		}
		return e.encode(uint32(v))
	default:
		return e.encode(uint32(a))
	}
}

// encode appends the base-128 encoding of v to the buffer.
func (e encoder) encode(v uint32) (encoder, error) {
	var buf [base128.MaxLen]byte
	n := base128.Put(buf[:], v)
	der, err := e.der.append(buf[:n]...)
	if err != nil {
		return e, err
	}
	e.der = der
	e.n++
	return e, nil
}

// finish seals the encoding. An object identifier consists of at least three
// arcs; fewer fail with [ErrTooFewArcs].
func (e encoder) finish() (ObjectIdentifier, error) {
	if e.n < 3 {
		return ObjectIdentifier{}, ErrTooFewArcs
	}
	return ObjectIdentifier{der: e.der}, nil
}
