// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package narrowphase

import "github.com/gazed/narrowphase2d/vec2"

// findMSA finds the polygon plane of a that separates a and b by the
// smallest margin (the "minimum separating axis"). Returns ok=false if
// any plane of a already fully separates them.
func findMSA(a, b PolygonShape) (mini int, minDist float64, ok bool) {
	mini = 0
	minDist = polyValueOnAxis(b, a.TPlanes[0].N, a.TPlanes[0].D)
	if minDist > 0 {
		return 0, minDist, false
	}
	for i := 1; i < len(a.TPlanes); i++ {
		dist := polyValueOnAxis(b, a.TPlanes[i].N, a.TPlanes[i].D)
		if dist > 0 {
			return i, dist, false
		}
		if dist > minDist {
			minDist = dist
			mini = i
		}
	}
	return mini, minDist, true
}

// PolygonPolygon collides two convex polygons, writing up to
// MaxContactsPerPair contacts to out and returning the number written.
//
// It runs the separating axis test against both polygons' face normals to
// find the collision normal n (pointing from a to b); then, separately,
// picks which polygon lends the reference face: f1 = a's support edge
// along n, f2 = b's support edge along -n, and whichever of f1/f2 has its
// outward normal more aligned with n clips the other (this is a distinct
// decision from which polygon's axis won the separating-axis test above —
// the winning axis's own support edge is not guaranteed to be the
// better-aligned face). clipContacts then produces the final contacts.
func PolygonPolygon(a, b PolygonShape, out []Contact) int {
	minA, distA, okA := findMSA(a, b)
	if !okA {
		return 0
	}
	minB, distB, okB := findMSA(b, a)
	if !okB {
		return 0
	}

	var n vec2.Vec2
	if distA >= distB {
		n = a.TPlanes[minA].N
	} else {
		n = b.TPlanes[minB].N.Mul(-1)
	}

	f1 := supportEdge(a, n)
	f2 := supportEdge(b, n.Mul(-1))

	cb := contactBuffer{out: out}
	if f1.N.Dot(n) > -f2.N.Dot(n) {
		clipContacts(f1, f2, 1.0, &cb)
	} else {
		clipContacts(f2, f1, -1.0, &cb)
	}
	return cb.n
}
