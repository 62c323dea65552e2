// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package narrowphase

import (
	"math"

	"github.com/gazed/narrowphase2d/vec2"
)

// circle2circleQuery is the shared circle-vs-circle substrate reused by
// circle/circle, circle/segment's closest-point query, circle/polygon's
// vertex fallbacks, and segment/polygon's final endpoint fallback (the
// last two model a polygon vertex as a zero-radius circle). It reports
// whether two circles at p1/p2 with radii r1/r2 overlap and, if so,
// returns the one resulting contact and true.
func circle2circleQuery(p1, p2 vec2.Vec2, r1, r2 float64) (Contact, bool) {
	minDist := r1 + r2
	delta := p2.Sub(p1)
	distSq := vec2.LenSqr(delta)
	if distSq >= minDist*minDist {
		return Contact{}, false
	}

	dist := math.Sqrt(distSq)

	var normal vec2.Vec2
	var factor float64
	if dist > 0 {
		normal = delta.Mul(1 / dist)
		factor = 0.5 + (r1-0.5*minDist)/dist
	} else {
		// Coincident centers: (1, 0) is the documented tie-breaker normal,
		// and the weighted-midpoint factor degenerates to the plain
		// midpoint offset (r1-0.5*minDist)/inf == 0.
		normal = vec2.New(1, 0)
		factor = 0.5
	}
	point := p1.Add(delta.Mul(factor))

	return newContact(point, normal, dist-minDist, 0), true
}

// CircleCircle collides two circles, writing up to 1 contact to out and
// returning the number written.
func CircleCircle(a, b CircleShape, out []Contact) int {
	c, ok := circle2circleQuery(a.TC, b.TC, a.R, b.R)
	if !ok {
		return 0
	}
	cb := contactBuffer{out: out}
	cb.add(c)
	return cb.n
}
