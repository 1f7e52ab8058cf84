// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ed25519

import "math/big"

// References:
//   [RFC8032]: Edwards-Curve Digital Signature Algorithm (EdDSA)
//     https://www.rfc-editor.org/rfc/rfc8032
//
// FieldElement represents an element of GF(p), p = 2^255-19, following the
// teacher's pattern of value-semantic arithmetic types: every operation
// takes its operands by value and returns a freshly allocated result rather
// than mutating a receiver in place, matching spec.md's invariant that field
// elements are immutable.
//
// A fixed-width radix representation (five 51-bit or ten 26-bit limbs) is
// the usual systems-language choice for this field and is suggested in
// spec.md's design notes; this module keeps the arbitrary-precision
// representation that the reference implementation uses instead, since the
// algorithmic spec is explicitly representation-agnostic and correctness
// here matters far more than the speed a fixed-width limb set would buy.

// FieldElement is an integer in [0, P).
type FieldElement struct {
	n *big.Int
}

var (
	// P is 2^255-19, the field prime.
	P = fromHex255("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed")

	// d is -121665/121666 mod P, the twisted-Edwards curve parameter.
	curveD = fromHex255("52036cee2b6ffe738cc740797779e89800700a4d4141d8ab75eb4dca135978a3")

	// sqrtM1 is a square root of -1 modulo P, 2^((p-1)/4) mod p.
	sqrtM1 = fromHex255("2b8324804fc1df0b2b4d00993dfbd7a72f431806ad2fe478c4ee1b274a0ea0b0")

	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)

	// pMinus2 and pMinus5Over8 are exponents used by Invert and sqrtRatio
	// respectively; both are precomputed once at init time rather than on
	// every call.
	pMinus2      = new(big.Int).Sub(P.n, bigTwo)
	pMinus5Over8 = new(big.Int).Rsh(new(big.Int).Sub(P.n, big.NewInt(5)), 3)
)

// fromHex255 parses a big-endian hex literal into a field element without
// reducing it modulo P (P itself is loaded this way, so P.n holds the prime),
// mirroring the teacher's fromHex/SetHex constant-loading idiom in
// curve.go.
func fromHex255(hex string) *FieldElement {
	n, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		panic("ed25519: invalid hex constant: " + hex)
	}
	return &FieldElement{n: n}
}

// newField wraps n, reducing it into [0, P) if needed.
func newField(n *big.Int) *FieldElement {
	m := new(big.Int).Mod(n, P.n)
	return &FieldElement{n: m}
}

// FieldZero returns the additive identity of GF(p).
func FieldZero() *FieldElement { return &FieldElement{n: new(big.Int).Set(bigZero)} }

// FieldOne returns the multiplicative identity of GF(p).
func FieldOne() *FieldElement { return &FieldElement{n: new(big.Int).Set(bigOne)} }

// FieldFromBytes interprets b as a 32-byte little-endian integer and reduces
// it modulo P.  It does not reject non-canonical input; callers that must
// enforce canonicality check it themselves (ristretto255's Decode re-encodes
// the result and compares it with the input; DecodePoint does not use this
// function and checks y against P directly).
func FieldFromBytes(b []byte) *FieldElement {
	return newField(new(big.Int).SetBytes(reverse(b)))
}

// Bytes serializes fe as 32 little-endian bytes.
func (fe *FieldElement) Bytes() [32]byte {
	var out [32]byte
	b := fe.n.Bytes()
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// Add returns fe + other mod P.
func (fe *FieldElement) Add(other *FieldElement) *FieldElement {
	return newField(new(big.Int).Add(fe.n, other.n))
}

// Sub returns fe - other mod P.
func (fe *FieldElement) Sub(other *FieldElement) *FieldElement {
	return newField(new(big.Int).Sub(fe.n, other.n))
}

// Mul returns fe * other mod P.
func (fe *FieldElement) Mul(other *FieldElement) *FieldElement {
	return newField(new(big.Int).Mul(fe.n, other.n))
}

// Square returns fe * fe mod P.
func (fe *FieldElement) Square() *FieldElement {
	return fe.Mul(fe)
}

// Neg returns -fe mod P.
func (fe *FieldElement) Neg() *FieldElement {
	return newField(new(big.Int).Neg(fe.n))
}

// Pow returns fe^e mod P for a non-negative exponent e.
func (fe *FieldElement) Pow(e *big.Int) *FieldElement {
	return &FieldElement{n: new(big.Int).Exp(fe.n, e, P.n)}
}

// Invert returns fe^-1 mod P via Fermat's little theorem (fe^(p-2)).  The
// caller must never invoke this on the zero element; every constructor in
// this package guarantees Z != 0 for finite points, so this is an internal
// invariant rather than a condition Invert itself can usefully recover from.
func (fe *FieldElement) Invert() *FieldElement {
	if fe.IsZero() {
		panic(makeError(ErrInvertZero, "ed25519: Invert called on the zero field element"))
	}
	return fe.Pow(pMinus2)
}

// IsZero reports whether fe is the additive identity.
func (fe *FieldElement) IsZero() bool {
	return fe.n.Sign() == 0
}

// Equal reports whether fe and other represent the same field element.
func (fe *FieldElement) Equal(other *FieldElement) bool {
	return fe.n.Cmp(other.n) == 0
}

// IsNegative reports the "sign" of fe used by point encoding: the parity of
// its canonical little-endian representative, i.e. fe mod 2.
func (fe *FieldElement) IsNegative() bool {
	return fe.n.Bit(0) == 1
}

// BigInt returns a copy of fe's canonical representative in [0, P).
func (fe *FieldElement) BigInt() *big.Int {
	return new(big.Int).Set(fe.n)
}

// FieldFromBigInt reduces n modulo P, for callers in sibling packages (e.g.
// ristretto255) that need to build a FieldElement from an arithmetic result
// rather than a wire encoding.
func FieldFromBigInt(n *big.Int) *FieldElement {
	return newField(n)
}

// SqrtM1 returns a square root of -1 modulo P, exported for the
// ristretto255 package's own variant of the candidate-square-root
// procedure.
func SqrtM1() *FieldElement { return sqrtM1 }

// CurveD returns the twisted-Edwards curve parameter d, exported for the
// ristretto255 package's encode/decode maps.
func CurveD() *FieldElement { return curveD }

// PowPMinus5Over8 returns fe^((P-5)/8) mod P, the exponent the
// candidate-square-root procedure in both this package and ristretto255
// raises to.
func (fe *FieldElement) PowPMinus5Over8() *FieldElement {
	return fe.Pow(pMinus5Over8)
}

// sqrtRatio computes a square root of u/v modulo P following spec.md §4.A:
//
//  1. candidate r = u * v^3 * (u * v^7)^((p-5)/8)
//  2. check = v * r^2
//  3. check == u:  return r
//  4. check == -u: return r * sqrtM1
//  5. otherwise:   no square root exists
func sqrtRatio(u, v *FieldElement) (*FieldElement, bool) {
	v2 := v.Square()
	v3 := v2.Mul(v)
	v7 := v3.Square().Mul(v)
	uv7 := u.Mul(v7)
	candidate := uv7.Pow(pMinus5Over8)
	r := u.Mul(v3).Mul(candidate)

	check := v.Mul(r.Square())
	if check.Equal(u) {
		return r, true
	}
	if check.Equal(u.Neg()) {
		return r.Mul(sqrtM1), true
	}
	return nil, false
}

// reverse returns a new slice containing b's bytes in reverse order, used to
// convert between this module's little-endian wire format and math/big's
// big-endian internal representation.
func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
