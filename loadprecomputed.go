// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ed25519

import "sync"

// basePointPowers caches the doublings 2^i * BasePoint for i in [0, 256),
// the process-lifetime read-only table spec.md §5 and §4.E explicitly
// permit ("a small caching optimization for the base point ... behavior
// must be identical with and without it"). It is built lazily on first use
// via sync.Once, mirroring the teacher's s256BytePoints initialization
// idiom in this file, but computed in memory by repeated doubling rather
// than deserialized from a generated, compressed data blob — there is no
// code-generation step in this module to produce one.
var (
	basePointPowers     [256]*Point
	basePointPowersOnce sync.Once
)

func loadBasePointPowers() {
	basePointPowersOnce.Do(func() {
		cur := BasePoint
		for i := range basePointPowers {
			basePointPowers[i] = cur
			cur = cur.Double()
		}
	})
}

// ScalarMultBase returns [k]*BasePoint, using the cached power-of-two
// multiples table instead of doubling BasePoint from scratch. Its result is
// identical to BasePoint.ScalarMult(k) for every k; this is purely an
// optimization over the generic double-and-add path in point.go.
func ScalarMultBase(k *Scalar) *Point {
	loadBasePointPowers()
	r := Identity
	n := k.n
	for i := 0; i < n.BitLen(); i++ {
		if n.Bit(i) == 1 {
			r = r.Add(basePointPowers[i])
		}
	}
	return r
}
