// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oid implements ASN.1 OBJECT IDENTIFIER values backed by their
// BER/DER encoding. The semantics of object identifiers are defined in
// [Rec. ITU-T X.660]; their encoding is defined in Section 8.19 of
// [Rec. ITU-T X.690].
//
// An [ObjectIdentifier] stores the value octets of its encoding in a
// fixed-size buffer of [MaxSize] bytes. The tag and length octets of a full
// TLV encoding are not part of the value; adding and removing them is the
// responsibility of an encoder for a set of encoding rules. ObjectIdentifier
// is a comparable value type: constructing, inspecting and deriving values
// does not allocate, every operation runs in time bounded by the input length
// and all failures are reported as [Error] values. This makes the package
// usable for package-level identifier tables:
//
//	var oidRSAEncryption = oid.MustParse("1.2.840.113549.1.1.1")
//
// In order for an object identifier to be valid it must consist of at least
// three arcs, the first arc must be 0, 1 or 2 and the second arc must be at
// most 39 if the first arc is 0 or 1. All constructors enforce these
// invariants as well as the [MaxSize] capacity.
//
// [Rec. ITU-T X.660]: https://www.itu.int/rec/T-REC-X.660
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
package oid

import (
	"bytes"
	"iter"
	"strconv"
)

// An ObjectIdentifier is an ASN.1 OBJECT IDENTIFIER: a sequence of at least
// three arcs identifying a standard-defined entity. The zero value is not a
// valid object identifier; use one of [Parse], [FromArcs] or [FromBytes] to
// construct a value. ObjectIdentifier values are immutable and comparable:
// == reports whether two values represent the same identifier.
type ObjectIdentifier struct {
	der buffer
}

// Parse parses an object identifier in dotted decimal notation, e.g.
// "1.2.840.113549.1.1.1". Structural errors in the string are reported as
// [ErrSyntax]; arcs exceeding 32 bits as [ErrOverflow]. The resulting value
// is validated like every other constructor.
func Parse(s string) (ObjectIdentifier, error) {
	return parse(s)
}

// MustParse works like [Parse] but panics if s is not a valid object
// identifier. It is intended for initializing package-level variables from
// string literals that are known to be well-formed. Code handling inputs that
// are not known good must use [Parse].
func MustParse(s string) ObjectIdentifier {
	oid, err := parse(s)
	if err != nil {
		panic("oid: MustParse(" + strconv.Quote(s) + "): " + err.Error())
	}
	return oid
}

// FromArcs constructs an object identifier from its arc values.
func FromArcs(arcs ...Arc) (ObjectIdentifier, error) {
	var (
		enc encoder
		err error
	)
	for _, a := range arcs {
		if enc, err = enc.arc(a); err != nil {
			return ObjectIdentifier{}, err
		}
	}
	return enc.finish()
}

// FromBytes constructs an object identifier from the value octets of its
// BER/DER encoding, i.e. the encoding without tag and length octets. The
// input is decoded in full: any malformed arc rejects the entire value.
// Empty input is reported as [ErrEmpty], input exceeding [MaxSize] bytes as
// [ErrCapacity].
func FromBytes(der []byte) (ObjectIdentifier, error) {
	switch {
	case len(der) == 0:
		return ObjectIdentifier{}, ErrEmpty
	case len(der) > MaxSize:
		return ObjectIdentifier{}, ErrCapacity
	}
	var oid ObjectIdentifier
	copy(oid.der.bytes[:], der)
	oid.der.length = uint8(len(der))

	c := arcCursor{der: oid.der.slice()}
	for {
		_, ok, err := c.next()
		if err != nil {
			return ObjectIdentifier{}, err
		}
		if !ok {
			break
		}
	}
	if c.n < 3 {
		return ObjectIdentifier{}, ErrTooFewArcs
	}
	return oid, nil
}

// IsValid reports whether oid was constructed successfully. The zero
// ObjectIdentifier is not valid.
func (oid ObjectIdentifier) IsValid() bool {
	return oid.der.length > 0
}

// Bytes returns the value octets of the BER/DER encoding of oid. The tag and
// length octets are not included. Modifying the result does not affect oid.
func (oid ObjectIdentifier) Bytes() []byte {
	return oid.der.slice()
}

// Arcs returns an iterator over the arcs of oid. Each call returns a fresh
// iterator starting at the first arc.
func (oid ObjectIdentifier) Arcs() iter.Seq[Arc] {
	return func(yield func(Arc) bool) {
		c := arcCursor{der: oid.der.slice()}
		for {
			a, ok, err := c.next()
			if !ok || err != nil {
				return
			}
			if !yield(a) {
				return
			}
		}
	}
}

// Arc returns the arc of oid at the given index, starting at 0. The second
// return value is false if oid has no arc at that index.
func (oid ObjectIdentifier) Arc(index int) (Arc, bool) {
	if index < 0 {
		return 0, false
	}
	for a := range oid.Arcs() {
		if index == 0 {
			return a, true
		}
		index--
	}
	return 0, false
}

// Len returns the number of arcs in oid. The zero ObjectIdentifier has
// length 0.
func (oid ObjectIdentifier) Len() int {
	c := arcCursor{der: oid.der.slice()}
	for {
		if _, ok, _ := c.next(); !ok {
			return c.n
		}
	}
}

// Parent returns the object identifier with the final arc of oid removed.
// Removing an arc from a three-arc OID leaves only two arcs, which no longer
// form a valid ObjectIdentifier. In that case, and for the zero value, ok is
// false.
func (oid ObjectIdentifier) Parent() (parent ObjectIdentifier, ok bool) {
	n := oid.Len() - 1
	var (
		enc encoder
		err error
	)
	for a := range oid.Arcs() {
		if enc.n == n {
			break
		}
		if enc, err = enc.arc(a); err != nil {
			return ObjectIdentifier{}, false
		}
	}
	parent, err = enc.finish()
	return parent, err == nil
}

// PushArc returns the child object identifier obtained by appending arc to
// oid. The receiver is not modified.
func (oid ObjectIdentifier) PushArc(arc Arc) (ObjectIdentifier, error) {
	enc, err := extend(oid).arc(arc)
	if err != nil {
		return ObjectIdentifier{}, err
	}
	return enc.finish()
}

// HasPrefix reports whether oid starts with the arcs of prefix. Because the
// final byte of every arc has the continuation bit cleared, a byte-wise
// prefix match always aligns on arc boundaries.
func (oid ObjectIdentifier) HasPrefix(prefix ObjectIdentifier) bool {
	return bytes.HasPrefix(oid.der.slice(), prefix.der.slice())
}

// Equal reports whether oid and other represent the same object identifier.
// It is equivalent to comparing the values with ==.
func (oid ObjectIdentifier) Equal(other ObjectIdentifier) bool {
	return oid == other
}

// Compare orders object identifiers by their encoded bytes, returning -1, 0
// or +1 like [bytes.Compare]. This is a total order that is compatible with
// [ObjectIdentifier.HasPrefix], but it is not the numeric order of the arc
// sequences.
func (oid ObjectIdentifier) Compare(other ObjectIdentifier) int {
	return bytes.Compare(oid.der.slice(), other.der.slice())
}

// String returns the dotted decimal notation of oid, e.g. "1.2.840.113549".
// The zero ObjectIdentifier returns the empty string.
func (oid ObjectIdentifier) String() string {
	b, _ := oid.AppendText(make([]byte, 0, 32))
	return string(b)
}

// AppendText implements the [encoding.TextAppender] interface. It appends
// the dotted decimal notation of oid to b.
func (oid ObjectIdentifier) AppendText(b []byte) ([]byte, error) {
	c := arcCursor{der: oid.der.slice()}
	for {
		a, ok, err := c.next()
		if err != nil {
			return b, err
		}
		if !ok {
			return b, nil
		}
		if c.n > 1 {
			b = append(b, '.')
		}
		b = strconv.AppendUint(b, uint64(a), 10)
	}
}

// MarshalText implements the [encoding.TextMarshaler] interface. The output
// is identical to the String representation.
func (oid ObjectIdentifier) MarshalText() ([]byte, error) {
	return oid.AppendText(make([]byte, 0, 32))
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface. It
// parses text like [Parse]. On error oid is unmodified.
func (oid *ObjectIdentifier) UnmarshalText(text []byte) error {
	parsed, err := parse(string(text))
	if err != nil {
		return err
	}
	*oid = parsed
	return nil
}

// AppendBinary implements the [encoding.BinaryAppender] interface. It
// appends the value octets of the BER/DER encoding of oid to b.
func (oid ObjectIdentifier) AppendBinary(b []byte) ([]byte, error) {
	return append(b, oid.der.slice()...), nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface. The
// output is identical to the Bytes representation.
func (oid ObjectIdentifier) MarshalBinary() ([]byte, error) {
	return oid.AppendBinary(make([]byte, 0, oid.der.length))
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface. It
// validates data like [FromBytes]. On error oid is unmodified.
func (oid *ObjectIdentifier) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*oid = parsed
	return nil
}
