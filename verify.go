// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ed25519

// Verify reports whether sig is a valid signature over message by pub,
// implementing spec.md §4.F's four-step verification procedure.
//
// Per the error-handling policy in spec.md §7: malformed input is reported
// as a non-nil error rather than as an invalid signature. Verify itself
// takes already-parsed values and only reports a signature with a nil R or
// S this way; bad lengths, undecodable points and a non-canonical s are
// reported by SignatureFromBytes and PublicKeyFromBytes (and so by
// VerifyBytes). A well-formed signature that simply fails the verification
// equation resolves to (false, nil), never an error.
func Verify(sig *Signature, message []byte, pub *PublicKey) (bool, error) {
	if sig == nil || sig.R == nil || sig.S == nil {
		return false, makeError(ErrSignatureMalformed, "ed25519: signature is incomplete")
	}

	encodedR := sig.R.Encode()
	encodedA := pub.Bytes()
	k := ScalarFromUniformBytes(sha512Sum(encodedR[:], encodedA[:], message))

	sB := ScalarMultBase(sig.S)
	rPlusKA := sig.R.Add(pub.Point().ScalarMult(k))
	return sB.Equal(rPlusKA), nil
}

// VerifyBytes is a convenience wrapper over Verify that accepts the 64-byte
// wire signature and 32-byte wire public key directly, surfacing the same
// decode errors SignatureFromBytes/PublicKeyFromBytes would.
func VerifyBytes(sig, message, publicKey []byte) (bool, error) {
	s, err := SignatureFromBytes(sig)
	if err != nil {
		return false, err
	}
	pub, err := PublicKeyFromBytes(publicKey)
	if err != nil {
		return false, err
	}
	return Verify(s, message, pub)
}
