// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oid

import (
	"bytes"
	"errors"
	"testing"
)

// TestEncoderHoldsFirstArc asserts that no bytes are written before the
// second arc arrives, because the first two arcs encode into a single value.
func TestEncoderHoldsFirstArc(t *testing.T) {
	var e encoder
	e, err := e.arc(1)
	if err != nil {
		t.Fatalf("e.arc(1) error = %v, want nil", err)
	}
	if e.der.length != 0 {
		t.Errorf("encoder wrote %d bytes before the second arc", e.der.length)
	}
	if e, err = e.arc(39); err != nil {
		t.Fatalf("e.arc(39) error = %v, want nil", err)
	}
	if got := e.der.slice(); !bytes.Equal(got, []byte{0x4f}) {
		t.Errorf("encoder wrote %# x, want [0x4f]", got)
	}
}

// TestEncoderFailureKeepsState asserts that a failing append leaves the
// previous encoder value usable.
func TestEncoderFailureKeepsState(t *testing.T) {
	var (
		e   encoder
		err error
	)
	for _, a := range []Arc{1, 2, 3} {
		if e, err = e.arc(a); err != nil {
			t.Fatalf("e.arc(%d) error = %v, want nil", a, err)
		}
	}
	before := e
	for range 20 {
		e, err = e.arc(1 << 28) // 5 bytes per arc
		if err != nil {
			break
		}
	}
	if !errors.Is(err, ErrCapacity) {
		t.Fatalf("e.arc() error = %v, wantErr %v", err, ErrCapacity)
	}

	oid, err := before.finish()
	if err != nil {
		t.Fatalf("before.finish() error = %v, want nil", err)
	}
	if got := oid.String(); got != "1.2.3" {
		t.Errorf("before.finish().String() = %q, want %q", got, "1.2.3")
	}
}

func TestEncoderFinish(t *testing.T) {
	var (
		e   encoder
		err error
	)
	if _, err = e.finish(); !errors.Is(err, ErrTooFewArcs) {
		t.Errorf("finish() with 0 arcs error = %v, wantErr %v", err, ErrTooFewArcs)
	}
	e, _ = e.arc(1)
	e, _ = e.arc(2)
	if _, err = e.finish(); !errors.Is(err, ErrTooFewArcs) {
		t.Errorf("finish() with 2 arcs error = %v, wantErr %v", err, ErrTooFewArcs)
	}
	e, _ = e.arc(3)
	if _, err = e.finish(); err != nil {
		t.Errorf("finish() with 3 arcs error = %v, want nil", err)
	}
}

// TestArcCursorRederive asserts that a fresh cursor over the same bytes
// repeats the sequence of an exhausted one.
func TestArcCursorRederive(t *testing.T) {
	oid := MustParse("2.999.3")
	want := []Arc{2, 999, 3}
	for range 2 {
		c := arcCursor{der: oid.Bytes()}
		var got []Arc
		for {
			a, ok, err := c.next()
			if err != nil {
				t.Fatalf("c.next() error = %v, want nil", err)
			}
			if !ok {
				break
			}
			got = append(got, a)
		}
		if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
			t.Fatalf("cursor produced %v, want %v", got, want)
		}
	}
}
