// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ristretto255

import (
	"encoding/hex"
	"math/big"

	"github.com/cryptocore/ed25519"
)

// References:
//   [RISTRETTO]: The ristretto255 and decaf448 Groups, draft-irtf-cfrg-ristretto255-decaf448
//     https://datatracker.ietf.org/doc/html/draft-irtf-cfrg-ristretto255-decaf448
//
// Element is a ristretto255 group element, carrying an internal edwards25519
// point representative. Four internal points map onto every distinct
// Element, so two Elements must never be compared by comparing their
// internal points directly; IsEqual and Encode both normalize first.
type Element struct {
	p *ed25519.Point
}

// ElementSize is the length in bytes of an encoded ristretto255 element.
const ElementSize = 32

// invSqrtAMinusD is 1/sqrt(a-d) for edwards25519's a=-1, d, precomputed once
// as the constant [RISTRETTO] section 3.1 names INVSQRT_A_MINUS_D.
var invSqrtAMinusD = mustFieldFromHex("786c8905cfaffca216c27b91fe01d8409d2f16175a4172be99c8fdaa805d40ea")

func mustFieldFromHex(h string) *ed25519.FieldElement {
	n, ok := new(big.Int).SetString(h, 16)
	if !ok {
		panic("ristretto255: invalid hex constant: " + h)
	}
	return ed25519.FieldFromBigInt(n)
}

var fieldOne = ed25519.FieldOne()

// Identity is the ristretto255 identity element.
var Identity = &Element{p: ed25519.Identity}

// Generator is a fixed generator of the ristretto255 group, the edwards25519
// base point viewed through the ristretto255 quotient map.
var Generator = &Element{p: ed25519.BasePoint}

// NewElement wraps an already-reduced edwards25519 point as a ristretto255
// element. It does not validate that p lies in edwards25519's prime-order
// subgroup; callers that need that guarantee should build elements via
// Decode or ScalarMult from Generator.
func NewElement(p *ed25519.Point) *Element {
	return &Element{p: p}
}

// sqrtRatioM1 implements [RISTRETTO] section 3.1's SQRT_RATIO_M1(u, v): it
// returns a field element r such that r^2 = u/v if u/v is a square, or
// r^2 = i*u/v (i = sqrt(-1)) otherwise, always choosing the non-negative
// root, along with whether u/v itself was square.
func sqrtRatioM1(u, v *ed25519.FieldElement) (wasSquare bool, r *ed25519.FieldElement) {
	v3 := v.Square().Mul(v)
	v7 := v3.Square().Mul(v)
	r = u.Mul(v3).Mul(u.Mul(v7).PowPMinus5Over8())

	check := v.Mul(r.Square())
	negU := u.Neg()
	correctSign := check.Equal(u)
	flippedSign := check.Equal(negU)
	flippedSignI := check.Equal(negU.Mul(ed25519.SqrtM1()))

	if flippedSign || flippedSignI {
		r = r.Mul(ed25519.SqrtM1())
	}
	if r.IsNegative() {
		r = r.Neg()
	}
	return correctSign || flippedSign, r
}

// Decode parses a 32-byte ristretto255 element encoding, implementing
// [RISTRETTO] section 4.3.1's decode procedure. It is the only way to bring
// externally supplied bytes into the group: every check here exists to
// reject one of the many 32-byte strings that are not the canonical
// encoding of any element.
func Decode(b []byte) (*Element, error) {
	if len(b) != ElementSize {
		return nil, makeError(ErrInvalidEncodingLength, "ristretto255: element encoding must be 32 bytes")
	}

	s := ed25519.FieldFromBytes(b)
	// s must be the canonical (already-reduced) representative and
	// non-negative under the encoding's sign convention.
	var reencoded [32]byte = s.Bytes()
	for i := range reencoded {
		if reencoded[i] != b[i] {
			return nil, makeError(ErrNonCanonicalEncoding, "ristretto255: element encoding is not a canonical field element")
		}
	}
	if s.IsNegative() {
		return nil, makeError(ErrNonCanonicalEncoding, "ristretto255: element encoding has a negative sign representative")
	}

	ss := s.Square()
	u1 := fieldOne.Sub(ss)
	u2 := fieldOne.Add(ss)
	u2Sqr := u2.Square()

	v := ed25519.CurveD().Mul(u1.Square()).Neg().Sub(u2Sqr)

	wasSquare, invSqrt := sqrtRatioM1(fieldOne, v.Mul(u2Sqr))

	denX := invSqrt.Mul(u2)
	denY := invSqrt.Mul(denX).Mul(v)

	x := s.Add(s).Mul(denX)
	if x.IsNegative() {
		x = x.Neg()
	}
	y := u1.Mul(denY)
	t := x.Mul(y)

	if !wasSquare || t.IsNegative() || y.IsZero() {
		return nil, makeError(ErrInvalidElement, "ristretto255: encoding does not correspond to a group element")
	}

	return &Element{p: ed25519.NewAffinePoint(x, y)}, nil
}

// DecodeHex parses a 64-character hex string as a ristretto255 element.
func DecodeHex(s string) (*Element, error) {
	if len(s) != ElementSize*2 {
		return nil, makeError(ErrInvalidEncodingLength, "ristretto255: element hex must be 64 characters")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, makeError(ErrInvalidEncodingLength, "ristretto255: element hex is not valid hexadecimal")
	}
	return Decode(b)
}

// Encode serializes e as its canonical 32-byte representative, implementing
// [RISTRETTO] section 4.3.2's encode procedure.
func (e *Element) Encode() [32]byte {
	x0, y0, z0, t0 := e.p.X, e.p.Y, e.p.Z, e.p.T

	u1 := z0.Add(y0).Mul(z0.Sub(y0))
	u2 := x0.Mul(y0)
	_, invSqrt := sqrtRatioM1(fieldOne, u1.Mul(u2.Square()))

	den1 := invSqrt.Mul(u1)
	den2 := invSqrt.Mul(u2)
	zInv := den1.Mul(den2).Mul(t0)

	ix0 := x0.Mul(ed25519.SqrtM1())
	iy0 := y0.Mul(ed25519.SqrtM1())
	enchantedDenominator := den1.Mul(invSqrtAMinusD)

	x, y := x0, y0
	denInv := den2
	if t0.Mul(zInv).IsNegative() {
		x = iy0
		y = ix0
		denInv = enchantedDenominator
	}
	if x.Mul(zInv).IsNegative() {
		y = y.Neg()
	}

	s := denInv.Mul(z0.Sub(y))
	if s.IsNegative() {
		s = s.Neg()
	}
	return s.Bytes()
}

// Hex returns the 64-character hex encoding of e.
func (e *Element) Hex() string {
	b := e.Encode()
	return hex.EncodeToString(b[:])
}

// Add returns e + other.
func (e *Element) Add(other *Element) *Element {
	return &Element{p: e.p.Add(other.p)}
}

// Subtract returns e - other.
func (e *Element) Subtract(other *Element) *Element {
	return &Element{p: e.p.Subtract(other.p)}
}

// Negate returns -e.
func (e *Element) Negate() *Element {
	return &Element{p: e.p.Negate()}
}

// ScalarMult returns [k]*e.
func (e *Element) ScalarMult(k *ed25519.Scalar) *Element {
	return &Element{p: e.p.ScalarMult(k)}
}

// IsEqual reports whether e and other represent the same ristretto255
// element. Because distinct internal points can encode to the same
// element, this compares canonical encodings rather than the internal
// edwards25519 points directly.
func (e *Element) IsEqual(other *Element) bool {
	a := e.Encode()
	b := other.Encode()
	return a == b
}
