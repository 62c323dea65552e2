// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package narrowphase

import (
	"math"

	"github.com/gazed/narrowphase2d/vec2"
)

// CirclePolygon collides a circle against a convex polygon, writing up to
// 1 contact to out and returning the number written.
//
// It finds the polygon plane the circle penetrates least (the
// "most-separating" plane); if the circle's projection onto that plane's
// edge falls beyond either endpoint, the result degenerates to a
// circle/point test against that vertex via circle2circleQuery (radius 0).
// Otherwise the circle is deepest against the edge interior and one
// contact is emitted directly on the edge's normal.
func CirclePolygon(circ CircleShape, poly PolygonShape, out []Contact) int {
	n := len(poly.TVerts)
	mini := 0
	min := math.Inf(-1)
	for i := 0; i < n; i++ {
		dist := splittingPlaneCompare(poly.TPlanes[i], circ.TC) - circ.R
		if dist > 0 {
			return 0 // circle is entirely outside this plane: no collision.
		}
		if dist > min {
			min = dist
			mini = i
		}
	}

	edgeNormal := poly.TPlanes[mini].N
	a := poly.TVerts[(mini-1+n)%n]
	b := poly.TVerts[mini]
	dta := vec2.Cross(edgeNormal, a)
	dtb := vec2.Cross(edgeNormal, b)
	dt := vec2.Cross(edgeNormal, circ.TC)

	cb := contactBuffer{out: out}
	switch {
	case dt < dtb:
		// Circle's projection falls beyond vertex b.
		if c, ok := circle2circleQuery(circ.TC, b, circ.R, 0); ok {
			cb.add(c)
		}
	case dt < dta:
		// Circle's projection falls within the edge interior.
		point := circ.TC.Sub(edgeNormal.Mul(circ.R + min/2))
		cb.add(newContact(point, edgeNormal.Mul(-1), min, 0))
	default:
		// Circle's projection falls beyond vertex a.
		if c, ok := circle2circleQuery(circ.TC, a, circ.R, 0); ok {
			cb.add(c)
		}
	}
	return cb.n
}
