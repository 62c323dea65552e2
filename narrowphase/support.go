// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package narrowphase

import "github.com/gazed/narrowphase2d/vec2"

// splittingPlaneCompare returns the signed distance of point p from plane,
// positive meaning p is outside the plane's half-space.
func splittingPlaneCompare(plane Plane, p vec2.Vec2) float64 {
	return plane.N.Dot(p) - plane.D
}

// polyValueOnAxis returns the signed distance of poly's most-penetrating
// vertex (the one deepest inside the half-plane (n, d)) from that
// half-plane: the minimum of dot(n, v)-d over all of poly's vertices.
// A positive result means poly is entirely outside the half-plane.
func polyValueOnAxis(poly PolygonShape, n vec2.Vec2, d float64) float64 {
	min := n.Dot(poly.TVerts[0]) - d
	for i := 1; i < len(poly.TVerts); i++ {
		v := n.Dot(poly.TVerts[i]) - d
		if v < min {
			min = v
		}
	}
	return min
}

// segValueOnAxis is polyValueOnAxis's analogue for a rounded segment: the
// signed distance of the segment's closest endpoint (accounting for its
// radius) from the half-plane (n, d).
func segValueOnAxis(seg SegmentShape, n vec2.Vec2, d float64) float64 {
	a := n.Dot(seg.TA) - seg.R
	b := n.Dot(seg.TB) - seg.R
	if a < b {
		return a - d
	}
	return b - d
}

// supportPointIndex returns the index of the polygon vertex that maximizes
// dot(vertex, direction), i.e. the vertex furthest along direction.
func supportPointIndex(poly PolygonShape, direction vec2.Vec2) int {
	best := 0
	bestDot := poly.TVerts[0].Dot(direction)
	for i := 1; i < len(poly.TVerts); i++ {
		d := poly.TVerts[i].Dot(direction)
		if d > bestDot {
			bestDot = d
			best = i
		}
	}
	return best
}

// polygonContainsVertex reports whether v lies inside every one of poly's
// half-planes, i.e. is a strict interior/boundary point of poly.
func polygonContainsVertex(poly PolygonShape, v vec2.Vec2) bool {
	for _, p := range poly.TPlanes {
		if splittingPlaneCompare(p, v) > 0 {
			return false
		}
	}
	return true
}
