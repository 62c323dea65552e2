// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package narrowphase

import "github.com/gazed/narrowphase2d/vec2"

// SegmentPolygon collides a rounded segment against a convex polygon,
// writing up to MaxContactsPerPair contacts to out and returning the
// number written.
//
// The test runs in stages, each a separating-axis check that can return 0
// early:
//
//  1. Reject if the polygon lies entirely to one side of the segment's
//     own infinite line (offset by its radius).
//  2. Find the polygon edge the segment penetrates least.
//  3. Offset the segment's endpoints outward along that edge's normal and
//     keep whichever still falls inside the polygon.
//  4. If the segment's own face turned out to be the separating axis,
//     also keep any polygon vertex that falls behind the segment line
//     (allowing it up to seg.R past the face, matching the segment's own
//     rounding) and within its span.
//  5. If nothing survived, fall back to four point-circle queries between
//     the segment's and the winning edge's endpoints.
func SegmentPolygon(seg SegmentShape, poly PolygonShape, out []Contact) int {
	segD := seg.TN.Dot(seg.TA)
	minNorm := polyValueOnAxis(poly, seg.TN, segD) - seg.R
	minNeg := polyValueOnAxis(poly, seg.TN.Mul(-1), -segD) - seg.R
	if minNorm > 0 || minNeg > 0 {
		return 0
	}

	n := len(poly.TVerts)
	mini := 0
	polyMin := minNorm // any finite starting value works; overwritten below.
	set := false
	for i := 0; i < n; i++ {
		v := segValueOnAxis(seg, poly.TPlanes[i].N, poly.TPlanes[i].D)
		if v > 0 {
			return 0
		}
		if !set || v > polyMin {
			polyMin = v
			mini = i
			set = true
		}
	}

	polyN := poly.TPlanes[mini].N.Mul(-1)
	va := seg.TA.Add(polyN.Mul(seg.R))
	vb := seg.TB.Add(polyN.Mul(seg.R))

	cb := contactBuffer{out: out}
	if polygonContainsVertex(poly, va) {
		cb.add(newContact(va, polyN, polyMin, hashPair(seg.ID, 0)))
	}
	if polygonContainsVertex(poly, vb) {
		cb.add(newContact(vb, polyN, polyMin, hashPair(seg.ID, 1)))
	}

	if minNorm >= polyMin || minNeg >= polyMin {
		faceN := seg.TN
		faceD := segD
		dist := minNorm
		if minNeg > minNorm {
			faceN = seg.TN.Mul(-1)
			faceD = -segD
			dist = minNeg
		}
		segDir := seg.TB.Sub(seg.TA)
		segDirLenSq := vec2.LenSqr(segDir)
		for i := 0; i < n; i++ {
			v := poly.TVerts[i]
			if faceN.Dot(v)-faceD-seg.R > 0 {
				continue
			}
			t := segDir.Dot(v.Sub(seg.TA)) / segDirLenSq
			if t < 0 || t > 1 {
				continue
			}
			cb.add(newContact(v, faceN, dist, hashPair(poly.ID, uint64(i))))
		}
	}

	if cb.n > 0 {
		return cb.n
	}

	// Nothing survived the face tests: fall back to point/point queries
	// between the segment's endpoints and the winning edge's endpoints.
	a := poly.TVerts[(mini-1+n)%n]
	b := poly.TVerts[mini]
	endpoints := [2]vec2.Vec2{seg.TA, seg.TB}
	edgeVerts := [2]vec2.Vec2{a, b}
	for _, ep := range endpoints {
		for _, pv := range edgeVerts {
			if c, ok := circle2circleQuery(ep, pv, seg.R, 0); ok {
				cb.add(c)
				return cb.n
			}
		}
	}
	return 0
}
