// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base128

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestLen(t *testing.T) {
	tests := map[string]struct {
		v    uint32
		want int
	}{
		"Zero":       {0, 1},
		"SingleByte": {0x7f, 1},
		"TwoBytes":   {0x80, 2},
		"Max":        {math.MaxUint32, 5},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Len(tc.v); got != tc.want {
				t.Errorf("Len(%d) = %d, want %d", tc.v, got, tc.want)
			}
		})
	}
}

func TestPut(t *testing.T) {
	tests := map[string]struct {
		v    uint32
		want []byte
	}{
		"Zero":       {0, []byte{0x00}},
		"SingleByte": {85, []byte{0x55}},
		"TwoBytes":   {1079, []byte{0x88, 0x37}},
		"MultiByte":  {113549, []byte{0x86, 0xf7, 0x0d}},
		"Max":        {math.MaxUint32, []byte{0x8f, 0xff, 0xff, 0xff, 0x7f}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			buf := make([]byte, MaxLen)
			n := Put(buf, tc.v)
			if n != len(tc.want) || !bytes.Equal(buf[:n], tc.want) {
				t.Errorf("Put(%d) = %# x, want %# x", tc.v, buf[:n], tc.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := map[string]struct {
		data    []byte
		want    uint32
		wantN   int
		wantErr error
	}{
		"Zero":       {[]byte{0x00}, 0, 1, nil},
		"SingleByte": {[]byte{0x55}, 85, 1, nil},
		"MultiByte":  {[]byte{0x86, 0xf7, 0x0d, 0x01}, 113549, 3, nil},
		"Max":        {[]byte{0x8f, 0xff, 0xff, 0xff, 0x7f}, math.MaxUint32, 5, nil},
		"Empty":      {nil, 0, 0, ErrTruncated},
		"Truncated":  {[]byte{0x86, 0xf7}, 0, 0, ErrTruncated},
		"NotMinimal": {[]byte{0x80, 0x01}, 0, 0, ErrNotMinimal},
		"Overflow":   {[]byte{0x90, 0x80, 0x80, 0x80, 0x00}, 0, 0, ErrOverflow},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			v, n, err := Decode(tc.data)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Decode(%# x) error = %v, wantErr %v", tc.data, err, tc.wantErr)
			}
			if err != nil {
				return
			}
			if v != tc.want || n != tc.wantN {
				t.Errorf("Decode(%# x) = (%d, %d), want (%d, %d)", tc.data, v, n, tc.want, tc.wantN)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 39, 79, 80, 127, 128, 840, 1079, 113549, 1<<21 - 1, 1 << 21, math.MaxUint32}
	buf := make([]byte, MaxLen)
	for _, v := range values {
		n := Put(buf, v)
		got, gotN, err := Decode(buf[:n])
		if err != nil {
			t.Fatalf("Decode(Put(%d)) error = %v, want nil", v, err)
		}
		if got != v || gotN != n {
			t.Errorf("Decode(Put(%d)) = (%d, %d), want (%d, %d)", v, got, gotN, v, n)
		}
	}
}
