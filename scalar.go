// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ed25519

import "math/big"

// Scalar is an integer modulo ℓ = 2^252 +
// 27742317777372353535851937790883648493, the prime order of the subgroup
// generated by BasePoint.  Like FieldElement, it is an immutable value type:
// every arithmetic method returns a freshly allocated Scalar.
type Scalar struct {
	n *big.Int
}

// PrimeOrder is ℓ, the order of the prime-order subgroup generated by
// BasePoint.
var PrimeOrder = func() *big.Int {
	n, ok := new(big.Int).SetString("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed", 16)
	if !ok {
		panic("ed25519: invalid PrimeOrder constant")
	}
	return n
}()

func newScalar(n *big.Int) *Scalar {
	return &Scalar{n: new(big.Int).Mod(n, PrimeOrder)}
}

// ScalarZero returns the additive identity of Fℓ.
func ScalarZero() *Scalar { return &Scalar{n: new(big.Int)} }

// ScalarFromUniformBytes reduces a 64-byte little-endian digest modulo ℓ.
// This is the `sha512_mod_ℓ` operation used throughout spec.md §4.F.
func ScalarFromUniformBytes(digest []byte) *Scalar {
	if len(digest) != 64 {
		panic(makeError(ErrInvalidEncodingLength, "ed25519: ScalarFromUniformBytes requires 64 bytes"))
	}
	return newScalar(new(big.Int).SetBytes(reverse(digest)))
}

// ScalarFromCanonicalBytes parses a 32-byte little-endian encoding as a
// scalar, requiring s < ℓ (spec.md §4.F verify step 2 / §8 scenario 5).
func ScalarFromCanonicalBytes(b []byte) (*Scalar, error) {
	if len(b) != 32 {
		return nil, makeError(ErrInvalidEncodingLength, "ed25519: scalar encoding must be 32 bytes")
	}
	n := new(big.Int).SetBytes(reverse(b))
	if n.Cmp(PrimeOrder) >= 0 {
		return nil, makeError(ErrScalarNotCanonical, "ed25519: scalar encoding is not reduced modulo the prime order")
	}
	return &Scalar{n: n}, nil
}

// Bytes serializes s as 32 little-endian bytes.
func (s *Scalar) Bytes() [32]byte {
	var out [32]byte
	b := s.n.Bytes()
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// Add returns s + other mod ℓ.
func (s *Scalar) Add(other *Scalar) *Scalar {
	return newScalar(new(big.Int).Add(s.n, other.n))
}

// Sub returns s - other mod ℓ.
func (s *Scalar) Sub(other *Scalar) *Scalar {
	return newScalar(new(big.Int).Sub(s.n, other.n))
}

// Mul returns s * other mod ℓ.
func (s *Scalar) Mul(other *Scalar) *Scalar {
	return newScalar(new(big.Int).Mul(s.n, other.n))
}

// Negate returns -s mod ℓ.
func (s *Scalar) Negate() *Scalar {
	return newScalar(new(big.Int).Neg(s.n))
}

// Equal reports whether s and other are the same residue mod ℓ.
func (s *Scalar) Equal(other *Scalar) bool {
	return s.n.Cmp(other.n) == 0
}

// IsZero reports whether s is the additive identity.
func (s *Scalar) IsZero() bool {
	return s.n.Sign() == 0
}

// BigInt returns the scalar's canonical representative as a *big.Int. The
// returned value is a copy; mutating it does not affect s.
func (s *Scalar) BigInt() *big.Int {
	return new(big.Int).Set(s.n)
}
