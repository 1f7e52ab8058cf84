// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package ed25519 implements the Edwards-curve Digital Signature Algorithm
(EdDSA) over edwards25519 in pure Go, per RFC 8032.

This package provides a from-scratch implementation of edwards25519 group
arithmetic as well as data structures and functions for working with
Ed25519 private keys, public keys, and signatures. See
https://www.rfc-editor.org/rfc/rfc8032 for details on the signature scheme,
and https://www.rfc-editor.org/rfc/rfc7748 for the underlying curve.

In addition, the ristretto255 sub package builds the ristretto255
prime-order group abstraction on top of the edwards25519 points this
package exposes, giving every group element a single canonical encoding
rather than the eight a raw curve point has.

An overview of the features provided by this package are as follows:

  - Private key parsing from a 32-byte seed, hex, or arbitrary-precision
    integer
  - Public key derivation, serialization, and parsing
  - FieldElement type for working modulo the field prime 2^255-19
  - Scalar type for working modulo the group order l
  - Group operations in extended homogeneous coordinates
  - Point addition via the unified add-2008-hwcd-3 law
  - Point doubling via the dedicated a=-1 doubling law
  - Scalar multiplication with an arbitrary point
  - Scalar multiplication with the base point, cached across powers of two
  - Point decompression from a given y coordinate and sign bit
  - One-way projection of an edwards25519 point onto the birationally
    equivalent Curve25519 Montgomery u-coordinate

It also exposes PrivateKey.Sign as an implementation of the standard
library's crypto.Signer interface, so a key produced by this package may be
used anywhere that interface is expected.

This package also provides Sign and Verify functions implementing the
deterministic EdDSA signing and verification procedures of RFC 8032,
including the exact candidate-square-root and point-decoding algorithms the
standard specifies, rather than approximations of them.

A suite of tests exercising the RFC 8032 test vectors, the group's algebraic
invariants, and the documented edge cases is provided to ensure proper
functionality.
*/
package ed25519
