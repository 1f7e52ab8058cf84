// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ed25519

import (
	"encoding/hex"
	"math/big"
)

// References:
//   [RFC8032]: https://www.rfc-editor.org/rfc/rfc8032
//   [HWCD08]:  Twisted Edwards Curves Revisited, Hisil-Wong-Carter-Dawson 2008
//     https://eprint.iacr.org/2008/522.pdf
//
// Point is an element of the twisted Edwards curve
//
//	-x^2 + y^2 = 1 + d*x^2*y^2   (mod P)
//
// represented in extended homogeneous coordinates (X, Y, Z, T) with
// x = X/Z, y = Y/Z, T = X*Y/Z.  This representation allows the unified
// addition formula below to avoid any special-casing of the identity or of
// doubling.  Points are immutable values; every method returns a fresh
// *Point, matching the teacher's pattern of threading intermediate
// fieldVal/jacobianPoint values through local variables rather than mutating
// shared state.
type Point struct {
	X, Y, Z, T *FieldElement
}

var (
	// twoD is 2*d, precomputed once since it appears in every addition.
	twoD = curveD.Add(curveD)

	// Identity is the neutral element (0, 1, 1, 0).
	Identity = &Point{X: FieldZero(), Y: FieldOne(), Z: FieldOne(), T: FieldZero()}

	// BasePoint is the fixed generator B with y = 4/5 mod P and positive x,
	// per spec.md's glossary.
	BasePoint = mustAffinePoint(
		"15112221349535400772501151409588531511454012693041857206046113283949847762202",
		"46316835694926478169428394003475163141307993866256225615783033603165251855960",
	)
)

func mustAffinePoint(xDec, yDec string) *Point {
	x, ok := new(big.Int).SetString(xDec, 10)
	if !ok {
		panic("ed25519: invalid base point x constant")
	}
	y, ok := new(big.Int).SetString(yDec, 10)
	if !ok {
		panic("ed25519: invalid base point y constant")
	}
	return NewAffinePoint(newField(x), newField(y))
}

// NewAffinePoint lifts an affine (x, y) coordinate pair into extended
// coordinates: (x, y, 1, x*y).
func NewAffinePoint(x, y *FieldElement) *Point {
	return &Point{X: x, Y: y, Z: FieldOne(), T: x.Mul(y)}
}

// Affine returns the affine (x, y) coordinates of p via a single field
// inversion, as described in spec.md §3.
func (p *Point) Affine() (x, y *FieldElement) {
	zInv := p.Z.Invert()
	return p.X.Mul(zInv), p.Y.Mul(zInv)
}

// Add returns p + q using the unified addition law from spec.md §4.C
// ("add-2008-hwcd-3" in [HWCD08]).
func (p *Point) Add(q *Point) *Point {
	a := p.Y.Sub(p.X).Mul(q.Y.Sub(q.X))
	b := p.Y.Add(p.X).Mul(q.Y.Add(q.X))
	c := p.T.Mul(twoD).Mul(q.T)
	d := p.Z.Mul(bigTwoField).Mul(q.Z)
	e := b.Sub(a)
	f := d.Sub(c)
	g := d.Add(c)
	h := b.Add(a)
	return &Point{X: e.Mul(f), Y: g.Mul(h), T: e.Mul(h), Z: f.Mul(g)}
}

// bigTwoField is the field element 2, used to double Z1*Z2 without an extra
// big.Int allocation path per call.
var bigTwoField = newField(bigTwo)

// Negate returns -p = (-X, Y, Z, -T).
func (p *Point) Negate() *Point {
	return &Point{X: p.X.Neg(), Y: p.Y, Z: p.Z, T: p.T.Neg()}
}

// Subtract returns p - q, implemented as addition with q negated per
// spec.md §4.C.
func (p *Point) Subtract(q *Point) *Point {
	return p.Add(q.Negate())
}

// Double returns p + p using the dedicated doubling formula permitted by
// spec.md §4.C ([HWCD08] section 3.3): with a = -1,
//
//	A = X^2, B = Y^2, C = 2*Z^2, D = -A
//	E = (X+Y)^2 - A - B, G = D+B, F = G-C, H = D-B
//	X3 = E*F, Y3 = G*H, T3 = E*H, Z3 = F*G
func (p *Point) Double() *Point {
	a := p.X.Square()
	b := p.Y.Square()
	c := p.Z.Square().Mul(bigTwoField)
	d := a.Neg()
	e := p.X.Add(p.Y).Square().Sub(a).Sub(b)
	g := d.Add(b)
	f := g.Sub(c)
	h := d.Sub(b)
	return &Point{X: e.Mul(f), Y: g.Mul(h), T: e.Mul(h), Z: f.Mul(g)}
}

// Equal reports whether p and q represent the same curve point, using
// cross-multiplication to avoid a field inversion, per spec.md §4.C.
func (p *Point) Equal(q *Point) bool {
	return p.X.Mul(q.Z).Equal(q.X.Mul(p.Z)) && p.Y.Mul(q.Z).Equal(q.Y.Mul(p.Z))
}

// Encode compresses p into 32 bytes: the little-endian y-coordinate with the
// sign of x folded into the high bit of the final byte, per spec.md §4.D.
func (p *Point) Encode() [32]byte {
	x, y := p.Affine()
	out := y.Bytes()
	if x.IsNegative() {
		out[31] |= 0x80
	}
	return out
}

// DecodePoint reverses Encode, per the 6-step procedure in spec.md §4.D.
func DecodePoint(b []byte) (*Point, error) {
	if len(b) != 32 {
		return nil, makeError(ErrInvalidEncodingLength, "ed25519: point encoding must be 32 bytes")
	}

	sign := b[31] >> 7
	var yBytes [32]byte
	copy(yBytes[:], b)
	yBytes[31] &= 0x7f

	yInt := new(big.Int).SetBytes(reverse(yBytes[:]))
	if yInt.Cmp(P.n) >= 0 {
		return nil, makeError(ErrNonCanonicalFieldElement, "ed25519: non-canonical y-coordinate encoding")
	}
	y := &FieldElement{n: yInt}

	return pointFromYAndSign(y, sign)
}

// pointFromYAndSign recovers x from y via sqrtRatio and the sign bit,
// following steps 3-6 of spec.md §4.D's decode procedure: compute
// u/v = (y^2-1)/(d*y^2+1), take the square root, correct its sign, lift to
// extended coordinates, and validate the result lies on the curve. Both
// DecodePoint and NewPointFromY share this body.
func pointFromYAndSign(y *FieldElement, sign byte) (*Point, error) {
	if y.IsZero() && sign == 1 {
		// y = 0 recovers x = ±sqrt(-1), the two order-4 points of
		// edwards25519's 8-torsion subgroup; both roots satisfy the curve
		// equation, but this module treats the negative-sign encoding of
		// it as non-canonical, matching spec.md §8 scenario 6.
		return nil, makeError(ErrNonCanonicalFieldElement, "ed25519: non-canonical encoding of the order-4 torsion point")
	}

	// x^2 = (y^2 - 1) / (d*y^2 + 1)
	y2 := y.Square()
	u := y2.Sub(FieldOne())
	v := curveD.Mul(y2).Add(FieldOne())

	x, ok := sqrtRatio(u, v)
	if !ok {
		return nil, makeError(ErrNoSquareRoot, "ed25519: no square root exists for the decoded y-coordinate")
	}

	if x.IsNegative() != (sign == 1) {
		x = x.Neg()
	}

	pt := NewAffinePoint(x, y)
	if !IsOnCurve(pt) {
		return nil, makeError(ErrPointNotOnCurve, "ed25519: decoded point does not satisfy the curve equation")
	}
	return pt, nil
}

// NewPointFromY recovers a Point from its y-coordinate and the sign of x (0
// for non-negative, 1 for negative), per spec.md §6's "construct from y and
// implicit sign" primitive. It runs the same sqrt-recovery and curve check
// as DecodePoint, without the wire-format canonicality check on y that
// DecodePoint performs first, since the caller here supplies y directly
// rather than an untrusted 32-byte encoding.
func NewPointFromY(y *FieldElement, sign byte) (*Point, error) {
	return pointFromYAndSign(y, sign)
}

// PointFromHex parses a 64-character hex string as a compressed point
// encoding, following the same pattern as PublicKeyFromHex/SignatureFromHex.
func PointFromHex(s string) (*Point, error) {
	if len(s) != 64 {
		return nil, makeError(ErrInvalidHexLength, "ed25519: point hex must be 64 characters")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, makeError(ErrInvalidHexLength, "ed25519: point hex is not valid hexadecimal")
	}
	return DecodePoint(b)
}

// Hex returns the 64-character hex encoding of p.
func (p *Point) Hex() string {
	b := p.Encode()
	return hex.EncodeToString(b[:])
}

// IsOnCurve reports whether p satisfies -x^2 + y^2 = 1 + d*x^2*y^2 (mod P).
func IsOnCurve(p *Point) bool {
	x, y := p.Affine()
	x2 := x.Square()
	y2 := y.Square()
	lhs := y2.Sub(x2)
	rhs := FieldOne().Add(curveD.Mul(x2).Mul(y2))
	return lhs.Equal(rhs)
}

// ScalarMult returns [k]*p for a scalar k already reduced modulo ℓ, using
// left-to-right double-and-add over k's binary expansion per spec.md §4.E.
func (p *Point) ScalarMult(k *Scalar) *Point {
	r, err := scalarMultInt(p, k.n)
	if err != nil {
		// k.n is always in [0, ℓ) by construction, so this is unreachable.
		panic(err)
	}
	return r
}

// ScalarMultInt returns [k]*p for an arbitrary non-negative big.Int k,
// without reducing k modulo ℓ first. This is the entry point raw-bigint
// callers use, e.g. to exercise spec.md §8 scenario 4, BasePoint.multiply
// applied to PrimeOrder itself rather than PrimeOrder mod ℓ (which is zero).
func (p *Point) ScalarMultInt(k *big.Int) (*Point, error) {
	return scalarMultInt(p, k)
}

func scalarMultInt(p *Point, k *big.Int) (*Point, error) {
	if k.Sign() < 0 {
		return nil, makeError(ErrNegativeScalar, "ed25519: ScalarMultInt requires a non-negative scalar")
	}
	r := Identity
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = r.Double()
		if k.Bit(i) == 1 {
			r = r.Add(p)
		}
	}
	return r, nil
}
