// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ed25519

import "encoding/hex"

// PublicKeySize is the length in bytes of an encoded Ed25519 public key.
const PublicKeySize = 32

// PublicKey wraps a decoded Edwards point together with its 32-byte
// encoding, mirroring the teacher's PublicKey type that pairs affine
// coordinates with a cached serialized form.
type PublicKey struct {
	point   *Point
	encoded [32]byte
}

// PublicKeyFromBytes decodes a 32-byte public key encoding.
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != PublicKeySize {
		return nil, makeError(ErrInvalidEncodingLength, "ed25519: public key must be 32 bytes")
	}
	pt, err := DecodePoint(b)
	if err != nil {
		return nil, makeError(ErrPublicKeyMalformed, "ed25519: public key does not decode to a valid point: "+err.Error())
	}
	var encoded [32]byte
	copy(encoded[:], b)
	return &PublicKey{point: pt, encoded: encoded}, nil
}

// PublicKeyFromHex parses a 64-character hex string as a public key.
func PublicKeyFromHex(s string) (*PublicKey, error) {
	if len(s) != PublicKeySize*2 {
		return nil, makeError(ErrInvalidHexLength, "ed25519: public key hex must be 64 characters")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, makeError(ErrInvalidHexLength, "ed25519: public key hex is not valid hexadecimal")
	}
	return PublicKeyFromBytes(b)
}

// PublicKeyFromPoint wraps an already-decoded point as a public key,
// encoding it once.
func PublicKeyFromPoint(p *Point) *PublicKey {
	return &PublicKey{point: p, encoded: p.Encode()}
}

// Point returns the decoded Edwards point underlying pub.
func (pub *PublicKey) Point() *Point { return pub.point }

// Bytes returns the 32-byte encoding of pub.
func (pub *PublicKey) Bytes() [32]byte { return pub.encoded }

// Hex returns the 64-character hex encoding of pub.
func (pub *PublicKey) Hex() string { return hex.EncodeToString(pub.encoded[:]) }

// Equal reports whether pub and other decode to the same point.
func (pub *PublicKey) Equal(other *PublicKey) bool {
	return pub.point.Equal(other.point)
}
