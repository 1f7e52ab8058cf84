// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ed25519

// ToMontgomeryX returns the Montgomery u-coordinate corresponding to p's
// Edwards y-coordinate, u = (1+y) * inv(1-y) mod P, per spec.md §4.X. This
// is a one-way projection onto curve25519's Montgomery model; it does not
// by itself provide X25519 key agreement (explicitly out of scope per
// spec.md §1 Non-goals).
func (p *Point) ToMontgomeryX() (*FieldElement, error) {
	_, y := p.Affine()
	if y.Equal(FieldOne()) {
		return nil, makeError(ErrLowOrderTwist, "ed25519: ToMontgomeryX is undefined at y = 1")
	}
	one := FieldOne()
	return one.Add(y).Mul(one.Sub(y).Invert()), nil
}
