// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package narrowphase

import "github.com/gazed/narrowphase2d/vec2"

// MaxContactsPerPair is the maximum number of contacts any single collision
// test returns. A compile-time constant; the solver this package feeds
// already assumes it.
const MaxContactsPerPair = 2

// Contact describes one point of interpenetration between two shapes.
// Normal points from shape1 toward shape2. Distance is negative while
// overlapping, zero when just touching, and a Contact is never returned
// for a positive (separated) distance.
type Contact struct {
	Point    vec2.Vec2
	Normal   vec2.Vec2
	Distance float64
	Hash     uint64
}

// newContact is the contact initializer: it sets point, normal, distance,
// and identifier in one place so every kernel constructs contacts the
// same way.
func newContact(point, normal vec2.Vec2, distance float64, hash uint64) Contact {
	return Contact{Point: point, Normal: normal, Distance: distance, Hash: hash}
}

// contactBuffer is a fixed-capacity, saturating output buffer: appending
// past MaxContactsPerPair is silently dropped rather than growing or
// overflowing; the contacts already written are kept unchanged.
type contactBuffer struct {
	out []Contact
	n   int
}

// add appends c if there is room, silently dropping it otherwise.
func (cb *contactBuffer) add(c Contact) {
	if cb.n >= len(cb.out) || cb.n >= MaxContactsPerPair {
		return
	}
	cb.out[cb.n] = c
	cb.n++
}

// hashPair commutatively combines two identifiers into one, used to build
// stable per-contact identifiers from a shape/polygon identity and a
// vertex or edge index. Commutative so that the same physical contact
// hashes the same regardless of which shape's feature is named first.
func hashPair(a, b uint64) uint64 {
	return (a * 31) ^ (b * 31)
}
