// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ristretto255

import (
	"math/big"
	"testing"

	"github.com/cryptocore/ed25519"
)

// TestIdentityEncoding checks the identity element's well-known encoding:
// all zero bytes.
func TestIdentityEncoding(t *testing.T) {
	enc := Identity.Encode()
	for i, b := range enc {
		if b != 0 {
			t.Fatalf("identity byte %d = %#x, want 0", i, b)
		}
	}
}

// TestEncodeDecodeRoundTrip checks encode(decode(E)) == E for the
// generator's own encoding and a spread of its scalar multiples.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	e := Generator
	for i := int64(0); i < 12; i++ {
		enc := e.Encode()
		got, err := Decode(enc[:])
		if err != nil {
			t.Fatalf("#%d: Decode failed: %v", i, err)
		}
		gotEnc := got.Encode()
		if gotEnc != enc {
			t.Fatalf("#%d: round trip mismatch: got %x, want %x", i, gotEnc, enc)
		}
		e = e.Add(Generator)
	}
}

// TestScalarMultAndAddAgree checks that repeated addition of the generator
// matches scalar multiplication by the same count, comparing the two
// results through their canonical encodings.
func TestScalarMultAndAddAgree(t *testing.T) {
	sum := Identity
	for i := 0; i < 5; i++ {
		sum = sum.Add(Generator)
	}

	k := scalarFromInt64(t, 5)
	mult := Generator.ScalarMult(k)

	if !sum.IsEqual(mult) {
		t.Fatalf("repeated addition disagrees with scalar multiplication:\nsum  = %x\nmult = %x", sum.Encode(), mult.Encode())
	}
}

func scalarFromInt64(t *testing.T, n int64) *ed25519.Scalar {
	t.Helper()
	digest := make([]byte, 64)
	big.NewInt(n).FillBytes(digest[:32])
	// FillBytes writes big-endian into the tail of the slice; the scalar
	// reducer expects a little-endian wide digest, so reverse the 32 bytes
	// actually populated.
	for i, j := 0, 31; i < j; i, j = i+1, j-1 {
		digest[i], digest[j] = digest[j], digest[i]
	}
	return ed25519.ScalarFromUniformBytes(digest)
}

// TestDecodeRejectsWrongLength ensures Decode validates the input length
// before attempting to interpret it as a field element.
func TestDecodeRejectsWrongLength(t *testing.T) {
	if _, err := Decode(make([]byte, 31)); err == nil {
		t.Fatal("expected Decode to reject a 31-byte input")
	}
	if _, err := Decode(make([]byte, 33)); err == nil {
		t.Fatal("expected Decode to reject a 33-byte input")
	}
}

// TestDecodeRejectsNonCanonical ensures Decode rejects the field prime P
// itself as an element encoding, since it is not a reduced representative.
func TestDecodeRejectsNonCanonical(t *testing.T) {
	b := ed25519.P.Bytes()
	if _, err := Decode(b[:]); err == nil {
		t.Fatal("expected Decode to reject an encoding of P")
	}
}

// TestAddSubtractInverse checks e + other - other == e.
func TestAddSubtractInverse(t *testing.T) {
	other := Generator.Add(Generator)
	sum := Generator.Add(other)
	back := sum.Subtract(other)
	if !back.IsEqual(Generator) {
		t.Fatalf("e + other - other != e: got %x, want %x", back.Encode(), Generator.Encode())
	}
}

func TestNegateRoundTrip(t *testing.T) {
	neg := Generator.Negate()
	sum := Generator.Add(neg)
	if !sum.IsEqual(Identity) {
		t.Fatalf("e + (-e) != identity, got %x", sum.Encode())
	}
}
