// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ed25519

import (
	"bytes"
	"math/big"
	"testing"
)

func TestScalarArithmetic(t *testing.T) {
	a := newScalar(big.NewInt(7))
	b := newScalar(big.NewInt(5))

	if got := a.Add(b); !got.Equal(newScalar(big.NewInt(12))) {
		t.Errorf("Add: got %v, want 12", got.n)
	}
	if got := a.Sub(b); !got.Equal(newScalar(big.NewInt(2))) {
		t.Errorf("Sub: got %v, want 2", got.n)
	}
	if got := a.Mul(b); !got.Equal(newScalar(big.NewInt(35))) {
		t.Errorf("Mul: got %v, want 35", got.n)
	}
	if got := a.Negate(); !got.Add(a).IsZero() {
		t.Errorf("Negate: a + (-a) != 0")
	}
}

// TestScalarFromUniformBytesReduces ensures a wide digest larger than ℓ
// reduces correctly, by checking the result stays in [0, ℓ).
func TestScalarFromUniformBytesReduces(t *testing.T) {
	digest := make([]byte, 64)
	for i := range digest {
		digest[i] = 0xff
	}
	s := ScalarFromUniformBytes(digest)
	if s.n.Cmp(PrimeOrder) >= 0 {
		t.Fatalf("reduced scalar %v is not less than PrimeOrder %v", s.n, PrimeOrder)
	}
	if s.n.Sign() < 0 {
		t.Fatalf("reduced scalar is negative")
	}
}

func TestScalarFromUniformBytesWrongLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-64-byte digest")
		}
	}()
	ScalarFromUniformBytes(make([]byte, 32))
}

// TestScalarFromCanonicalBytesRejectsOverflow ensures an encoding of exactly
// ℓ (which is not a canonical residue, since residues are in [0, ℓ)) is
// rejected, directly exercising spec scenario 5's strict-s requirement.
func TestScalarFromCanonicalBytesRejectsOverflow(t *testing.T) {
	var b [32]byte
	le := PrimeOrder.Bytes() // big-endian
	for i, v := range le {
		b[len(le)-1-i] = v
	}
	if _, err := ScalarFromCanonicalBytes(b[:]); err == nil {
		t.Fatal("expected ScalarFromCanonicalBytes(ℓ) to fail")
	}
}

func TestScalarBytesRoundTrip(t *testing.T) {
	s := newScalar(big.NewInt(123456789))
	b := s.Bytes()
	got, err := ScalarFromCanonicalBytes(b[:])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(s) {
		t.Fatalf("round trip mismatch: got %v, want %v", got.n, s.n)
	}
	if !bytes.Equal(got.Bytes()[:], b[:]) {
		t.Fatalf("re-encoded bytes differ")
	}
}
