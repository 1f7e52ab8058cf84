// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ed25519

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func mustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("invalid hex %q: %v", s, err)
	}
	return b
}

// TestPointRoundTrip checks decode(encode(P)) == P for a spread of points
// built by repeated doubling of the base point.
func TestPointRoundTrip(t *testing.T) {
	p := BasePoint
	for i := 0; i < 16; i++ {
		enc := p.Encode()
		got, err := DecodePoint(enc[:])
		if err != nil {
			t.Fatalf("#%d: DecodePoint failed: %v", i, err)
		}
		if !got.Equal(p) {
			t.Fatalf("#%d: round trip mismatch:\ngot  %s\nwant %s", i, spew.Sdump(got), spew.Sdump(p))
		}
		p = p.Double()
	}
}

// TestGroupAxioms checks associativity, the identity and inverse laws.
func TestGroupAxioms(t *testing.T) {
	p := BasePoint
	q := BasePoint.Double()
	r := BasePoint.Double().Add(BasePoint)

	lhs := p.Add(q).Add(r)
	rhs := p.Add(q.Add(r))
	if !lhs.Equal(rhs) {
		t.Error("associativity failed")
	}
	if !p.Add(Identity).Equal(p) {
		t.Error("P + identity != P")
	}
	if !p.Add(p.Negate()).Equal(Identity) {
		t.Error("P + (-P) != identity")
	}
	if !p.Subtract(p).Equal(Identity) {
		t.Error("P - P != identity")
	}
}

// TestScalarDistributivity checks [k]*(P+Q) == [k]*P + [k]*Q and
// [k+m]*P == [k]*P + [m]*P.
func TestScalarDistributivity(t *testing.T) {
	k := newScalar(big.NewInt(17))
	m := newScalar(big.NewInt(29))
	p := BasePoint
	q := BasePoint.Double().Add(BasePoint)

	lhs := p.Add(q).ScalarMult(k)
	rhs := p.ScalarMult(k).Add(q.ScalarMult(k))
	if !lhs.Equal(rhs) {
		t.Error("[k]*(P+Q) != [k]*P + [k]*Q")
	}

	lhs2 := p.ScalarMult(k.Add(m))
	rhs2 := p.ScalarMult(k).Add(p.ScalarMult(m))
	if !lhs2.Equal(rhs2) {
		t.Error("[k+m]*P != [k]*P + [m]*P")
	}
}

// TestBasePointOrder implements spec scenario 4: [ℓ]*BasePoint == identity.
func TestBasePointOrder(t *testing.T) {
	got, err := BasePoint.ScalarMultInt(PrimeOrder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(Identity) {
		t.Fatalf("[ℓ]*B != identity, got %s", spew.Sdump(got))
	}
}

// TestBasePointEncoding implements spec scenario 3: BASE_POINT.multiply(1)
// encodes to a known constant.
func TestBasePointEncoding(t *testing.T) {
	want := mustDecodeHex(t, "5866666666666666666666666666666666666666666666666666666666666666")
	got := BasePoint.Encode()
	if hex.EncodeToString(got[:]) != hex.EncodeToString(want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

// TestDecodePointRejectsOrder4SignBit implements spec scenario 6: decoding
// y=0 with the sign bit set must fail.
func TestDecodePointRejectsOrder4SignBit(t *testing.T) {
	b := mustDecodeHex(t, "0000000000000000000000000000000000000000000000000000000000000080")
	if _, err := DecodePoint(b); err == nil {
		t.Fatal("expected decode of y=0, sign=1 to fail")
	}
}

// TestDecodePointRejectsNonCanonicalY ensures a y-coordinate encoding >= P
// is rejected.
func TestDecodePointRejectsNonCanonicalY(t *testing.T) {
	b := P.Bytes() // encodes P itself, which is >= P by definition
	if _, err := DecodePoint(b[:]); err == nil {
		t.Fatal("expected decode of y = P to fail")
	}
}

// TestScalarMultBaseMatchesGeneric ensures the cached base-point table in
// loadprecomputed.go agrees with the generic double-and-add path for a
// spread of scalars.
func TestScalarMultBaseMatchesGeneric(t *testing.T) {
	for _, n := range []int64{0, 1, 2, 3, 17, 255, 65537} {
		k := newScalar(big.NewInt(n))
		want := BasePoint.ScalarMult(k)
		got := ScalarMultBase(k)
		if !got.Equal(want) {
			t.Errorf("n=%d: ScalarMultBase disagrees with generic ScalarMult", n)
		}
	}
}

func TestIsOnCurve(t *testing.T) {
	if !IsOnCurve(BasePoint) {
		t.Error("base point must satisfy the curve equation")
	}
	if !IsOnCurve(Identity) {
		t.Error("identity must satisfy the curve equation")
	}
}
