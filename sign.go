// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ed25519

// GetPublicKey derives the public key matching sk, the first of the three
// public operations spec.md §1/§6 names.
func GetPublicKey(sk *PrivateKey) *PublicKey {
	return sk.PublicKey()
}

// Sign produces a signature over message using sk, following spec.md §4.F.
// Go's crypto/sha512 digest is synchronous, so the asynchronous signature
// spec.md §5/§9 describes for platforms with an async digest API collapses
// here to an ordinary synchronous call (see DESIGN.md, Open Question:
// async surface).
func Sign(message []byte, sk *PrivateKey) *Signature {
	return sk.signMessage(message)
}
