// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ed25519

import (
	"crypto"
	"crypto/sha512"
	"encoding/hex"
	"io"
	"math/big"
)

// SeedSize is the length in bytes of an Ed25519 private key seed.
const SeedSize = 32

// PrivateKey provides facilities for working with Ed25519 private keys
// within this package, including parsing them from their several accepted
// surface forms and deriving the clamped scalar, prefix, and public key
// spec.md §4.F requires, mirroring the teacher's PrivateKey type in
// privkey.go that wraps a ModNScalar and exposes PubKey()/Serialize().
type PrivateKey struct {
	seed   [SeedSize]byte
	scalar *Scalar    // clamped secret scalar a
	prefix [32]byte   // h[32:64], used as the nonce-derivation prefix
	pub    *PublicKey // cached A = encode([a]*B)
}

// PrivateKeyFromBytes returns a private key from a 32-byte seed, as
// accepted by spec.md §4.F.
func PrivateKeyFromBytes(seed []byte) (*PrivateKey, error) {
	if len(seed) != SeedSize {
		return nil, makeError(ErrInvalidEncodingLength, "ed25519: private key seed must be 32 bytes")
	}
	priv := &PrivateKey{}
	copy(priv.seed[:], seed)

	h := sha512.Sum512(priv.seed[:])
	clamp(h[:32])

	var wide [64]byte
	copy(wide[:32], h[:32])
	priv.scalar = ScalarFromUniformBytes(wide[:])
	copy(priv.prefix[:], h[32:])

	A := ScalarMultBase(priv.scalar)
	encoded := A.Encode()
	priv.pub = &PublicKey{point: A, encoded: encoded}
	return priv, nil
}

// PrivateKeyFromHex parses a 64-character hex string as a 32-byte seed, the
// hex surface form spec.md §4.F accepts.
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	if len(s) != SeedSize*2 {
		return nil, makeError(ErrInvalidHexLength, "ed25519: private key hex must be 64 characters")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, makeError(ErrInvalidHexLength, "ed25519: private key hex is not valid hexadecimal")
	}
	return PrivateKeyFromBytes(b)
}

// PrivateKeyFromBigInt converts a non-negative integer to a 32-byte
// little-endian seed, zero-padded, the integer surface form spec.md §4.F
// and §6 accept. It rejects integers requiring more than 32 bytes.
func PrivateKeyFromBigInt(n *big.Int) (*PrivateKey, error) {
	if n.Sign() < 0 {
		return nil, makeError(ErrNegativeScalar, "ed25519: private key integer must be non-negative")
	}
	b := n.Bytes()
	if len(b) > SeedSize {
		return nil, makeError(ErrIntegerTooLarge, "ed25519: private key integer requires more than 32 bytes")
	}
	var seed [SeedSize]byte
	// n.Bytes() is big-endian; the seed is little-endian zero-padded.
	for i, v := range b {
		seed[len(b)-1-i] = v
	}
	return PrivateKeyFromBytes(seed[:])
}

// clamp applies the RFC 8032 bit-masking to the first 32 bytes of
// SHA-512(seed), per spec.md §4.F step 2.
func clamp(a []byte) {
	a[0] &= 248
	a[31] &= 127
	a[31] |= 64
}

// Seed returns the 32-byte seed this key was derived from.
func (p *PrivateKey) Seed() [SeedSize]byte { return p.seed }

// PublicKey returns the public key corresponding to p, A = encode([a]*B).
func (p *PrivateKey) PublicKey() *PublicKey { return p.pub }

// Public implements crypto.Signer.
func (p *PrivateKey) Public() crypto.PublicKey { return p.pub }

// signMessage implements the RFC 8032 signing algorithm of spec.md §4.F
// steps 2-6, shared by the package-level Sign function and the
// crypto.Signer adapter below.
func (p *PrivateKey) signMessage(message []byte) *Signature {
	r := ScalarFromUniformBytes(sha512Sum(p.prefix[:], message))
	R := ScalarMultBase(r)
	encodedR := R.Encode()
	encodedA := p.pub.Bytes()

	k := ScalarFromUniformBytes(sha512Sum(encodedR[:], encodedA[:], message))
	s := r.Add(k.Mul(p.scalar))
	return &Signature{R: R, S: s}
}

// Sign implements crypto.Signer so a *PrivateKey can be used anywhere the
// standard library expects one. rand and opts are accepted and ignored:
// Ed25519 signing is deterministic given (seed, message) and does not use
// external randomness or a caller-chosen hash function, matching the
// contract of crypto/ed25519.PrivateKey.Sign.
func (p *PrivateKey) Sign(rand io.Reader, message []byte, opts crypto.SignerOpts) ([]byte, error) {
	sig := p.signMessage(message)
	out := sig.Bytes()
	return out[:], nil
}

// sha512Sum hashes the concatenation of parts with SHA-512, the external
// digest contract spec.md §6 names.
func sha512Sum(parts ...[]byte) []byte {
	h := sha512.New()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}
