// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package narrowphase

import (
	"log/slog"

	"github.com/gazed/narrowphase2d/vec2"
)

// EdgePoint is one endpoint of a support edge: its world position and the
// contact hash it contributes if a clip keeps it.
type EdgePoint struct {
	V    vec2.Vec2
	Hash uint64
}

// Edge is a polygon's support edge: the edge whose outward normal is
// closest to a given separating direction, used as either the reference
// or incident face in polygon/polygon clipping.
type Edge struct {
	A, B EdgePoint
	N    vec2.Vec2
}

func newEdge(va, vb vec2.Vec2, ha, hb uint64) Edge {
	return Edge{
		A: EdgePoint{V: va, Hash: ha},
		B: EdgePoint{V: vb, Hash: hb},
		N: vec2.Unit(vec2.Perp(vb.Sub(va))),
	}
}

// supportEdge returns poly's edge most face-on to n: it finds poly's
// support vertex along n, then picks whichever of that vertex's two
// adjoining edges has the normal closer to n.
func supportEdge(poly PolygonShape, n vec2.Vec2) Edge {
	numVerts := len(poly.TVerts)
	i1 := supportPointIndex(poly, n)
	i0 := (i1 - 1 + numVerts) % numVerts
	i2 := (i1 + 1) % numVerts

	v0, v1, v2 := poly.TVerts[i0], poly.TVerts[i1], poly.TVerts[i2]
	h0 := hashPair(poly.ID, uint64(i0))
	h1 := hashPair(poly.ID, uint64(i1))
	h2 := hashPair(poly.ID, uint64(i2))

	if n.Dot(v1.Sub(v0)) < n.Dot(v1.Sub(v2)) {
		return newEdge(v0, v1, h0, h1)
	}
	return newEdge(v1, v2, h1, h2)
}

// clipContacts clips the incident edge inc against the reference edge
// ref's side planes, keeping the endpoints that end up behind ref's face.
// flipped is +1 when ref belongs to the first shape passed to the caller
// and -1 when it was the second, so the emitted normal always points from
// shape1 toward shape2 regardless of which polygon won reference-face
// selection.
func clipContacts(ref, inc Edge, flipped float64, cb *contactBuffer) {
	cian := vec2.Cross(inc.A.V, ref.N)
	cibn := vec2.Cross(inc.B.V, ref.N)
	cran := vec2.Cross(ref.A.V, ref.N)
	crbn := vec2.Cross(ref.B.V, ref.N)

	dran := ref.A.V.Dot(ref.N)
	dian := inc.A.V.Dot(ref.N) - dran
	dibn := inc.B.V.Dot(ref.N) - dran

	t1 := vec2.Clamp01((cian - cran) / (cian - cibn))
	d1 := vec2.LerpScalar(dian, dibn, t1)
	if d1 <= 0 {
		point := inc.B.V
		if t1 < 1.0 {
			point = ref.A.V
		}
		cb.add(newContact(point, ref.N.Mul(flipped), d1, hashPair(ref.A.Hash, inc.B.Hash)))
	}

	t2 := vec2.Clamp01((cibn - crbn) / (cibn - cian))
	d2 := vec2.LerpScalar(dibn, dian, t2)
	if d2 <= 0 {
		point := inc.A.V
		if t2 < 1.0 {
			point = ref.B.V
		}
		cb.add(newContact(point, ref.N.Mul(flipped), d2, hashPair(ref.B.Hash, inc.A.Hash)))
	}

	if cb.n == 0 {
		slog.Debug("clipContacts produced no contacts", "ref", ref, "inc", inc)
	}
}
