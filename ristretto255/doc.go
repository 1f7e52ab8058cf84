// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ristretto255 implements the Ristretto255 prime-order group, a
// quotient of the edwards25519 curve group by its eight-element torsion
// subgroup.
//
// Every edwards25519 point has exactly eight encodings that differ only by a
// low-order component, which is a source of misuse: protocols that hash or
// compare wire encodings of points assume a bijection between group elements
// and their encodings, and that assumption is false for the curve directly.
// Ristretto255 repairs it: each Element has exactly one canonical 32-byte
// encoding, Encode and Decode are mutually inverse bijections on it, and the
// resulting group has prime order rather than order 8*l.
//
// An Element wraps an internal edwards25519 point in one of the four
// cosets that together cover a ristretto255 group element, and Encode always
// normalizes to the coset's canonical representative before serializing, so
// two elements produced by different arithmetic paths that represent the
// same group value always encode identically.
package ristretto255
