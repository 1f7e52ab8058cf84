// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ed25519

import "encoding/hex"

// SignatureSize is the length in bytes of a serialized Ed25519 signature.
const SignatureSize = 64

// Signature is a type representing an Ed25519 signature: a pair (R, s)
// where R is an Edwards point and s a scalar, per spec.md §3. It mirrors
// the teacher's Signature type in signature.go, minus the DER/compact
// encodings that are specific to ECDSA.
type Signature struct {
	R *Point
	S *Scalar
}

// NewSignature instantiates a signature given R and s values.
func NewSignature(r *Point, s *Scalar) *Signature {
	return &Signature{R: r, S: s}
}

// Bytes serializes sig as 64 bytes: R (32, point encoding) || s (32,
// little-endian scalar encoding), per spec.md §6.
func (sig *Signature) Bytes() [SignatureSize]byte {
	var out [SignatureSize]byte
	r := sig.R.Encode()
	s := sig.S.Bytes()
	copy(out[:32], r[:])
	copy(out[32:], s[:])
	return out
}

// Hex returns the 128-character hex encoding of sig.
func (sig *Signature) Hex() string {
	b := sig.Bytes()
	return hex.EncodeToString(b[:])
}

// SignatureFromBytes parses a 64-byte signature, decoding R and requiring
// s to be a canonical scalar encoding (< ℓ), the strict-s check spec.md
// §4.F verify step 2 and §8 scenario 5 require of untrusted input.
func SignatureFromBytes(b []byte) (*Signature, error) {
	if len(b) != SignatureSize {
		return nil, makeError(ErrInvalidEncodingLength, "ed25519: signature must be 64 bytes")
	}
	R, err := DecodePoint(b[:32])
	if err != nil {
		return nil, makeError(ErrSignatureMalformed, "ed25519: signature R does not decode to a valid point: "+err.Error())
	}
	s, err := ScalarFromCanonicalBytes(b[32:])
	if err != nil {
		return nil, makeError(ErrSignatureMalformed, "ed25519: signature s is not a canonical scalar: "+err.Error())
	}
	return &Signature{R: R, S: s}, nil
}

// SignatureFromHex parses a 128-character hex string as a signature.
func SignatureFromHex(h string) (*Signature, error) {
	if len(h) != SignatureSize*2 {
		return nil, makeError(ErrInvalidHexLength, "ed25519: signature hex must be 128 characters")
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return nil, makeError(ErrInvalidHexLength, "ed25519: signature hex is not valid hexadecimal")
	}
	return SignatureFromBytes(b)
}
