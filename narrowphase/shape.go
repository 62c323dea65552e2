// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package narrowphase

import (
	"math"

	"github.com/gazed/narrowphase2d/vec2"
)

// ShapeKind enumerates the shape kinds narrowphase can collide.
// Dispatch.go relies on the relative ordering (Circle < Segment < Polygon)
// being the "canonical order" callers must present shapes in.
type ShapeKind int

const (
	CircleShapeKind  ShapeKind = iota // a circle: center + radius.
	SegmentShapeKind                 // a capsule-like rounded line segment.
	PolygonShapeKind                 // a convex polygon.
	NumShapeTypes                    // keep this last; used to size the dispatch table.
)

// Plane is a polygon edge's outward-facing half-plane: unit normal n and
// signed offset d such that a point p is inside the half-plane iff
// dot(n, p) - d <= 0.
type Plane struct {
	N vec2.Vec2
	D float64
}

// CircleShape is a circle already transformed into world space.
type CircleShape struct {
	TC vec2.Vec2 // world-space center.
	R  float64   // radius, >= 0.
}

// NewCircleShape creates a CircleShape. Negative radii are turned positive.
func NewCircleShape(center vec2.Vec2, radius float64) CircleShape {
	return CircleShape{TC: center, R: math.Abs(radius)}
}

// Kind implements Shape.
func (CircleShape) Kind() ShapeKind { return CircleShapeKind }

// SegmentShape is a rounded line segment already transformed into world
// space: endpoints ta/tb, outward normal tn (perpendicular to tb-ta, unit
// length), radius r, and optional end-cap tangents. A zero tangent vector
// disables end-cap culling for that endpoint.
type SegmentShape struct {
	TA, TB   vec2.Vec2
	TN       vec2.Vec2
	R        float64
	ATangent vec2.Vec2
	BTangent vec2.Vec2

	// ID identifies this segment for stable contact hashing across frames.
	// It plays the role the original's shape.hashid field does: two
	// contacts naming the same physical feature across successive frames
	// must hash identically so a solver's warm-start cache can match them.
	ID uint64
}

// NewSegmentShape creates a SegmentShape. tn is computed as the unit
// perpendicular of (tb-ta); pass tangents as the zero vector to disable
// end-cap culling at that end. id seeds this segment's contact hashes; it
// need only be stable and distinct from the id of whatever it collides
// with.
func NewSegmentShape(ta, tb vec2.Vec2, radius float64, aTangent, bTangent vec2.Vec2, id uint64) SegmentShape {
	return SegmentShape{
		TA: ta, TB: tb,
		TN:       vec2.Unit(vec2.Perp(tb.Sub(ta))),
		R:        math.Abs(radius),
		ATangent: aTangent,
		BTangent: bTangent,
		ID:       id,
	}
}

// Kind implements Shape.
func (SegmentShape) Kind() ShapeKind { return SegmentShapeKind }

// PolygonShape is a convex polygon already transformed into world space.
// TVerts is in clockwise order; TPlanes[i] is the outward-facing plane of
// the edge running from TVerts[i-1] to TVerts[i] (indices mod N), so a
// plane and the vertex that terminates its edge share an index. Circle/
// polygon's vertex fallback relies on this pairing.
type PolygonShape struct {
	TVerts  []vec2.Vec2
	TPlanes []Plane

	// ID identifies this polygon for stable contact hashing across frames;
	// see SegmentShape.ID.
	ID uint64
}

// NewPolygonShape builds the outward-facing planes for a clockwise polygon
// given its transformed vertices. id seeds this polygon's contact hashes;
// it need only be stable and distinct from the id of whatever it collides
// with.
func NewPolygonShape(verts []vec2.Vec2, id uint64) PolygonShape {
	n := len(verts)
	planes := make([]Plane, n)
	for i := 0; i < n; i++ {
		a, b := verts[(i-1+n)%n], verts[i]
		normal := vec2.Unit(vec2.Perp(b.Sub(a)))
		planes[i] = Plane{N: normal, D: normal.Dot(a)}
	}
	return PolygonShape{TVerts: verts, TPlanes: planes, ID: id}
}

// Kind implements Shape.
func (p PolygonShape) Kind() ShapeKind { return PolygonShapeKind }

// Shape is implemented by CircleShape, SegmentShape, and PolygonShape.
// Callers wanting to invoke Collide on two Shape values must present them
// with Kind() in ascending canonical order.
type Shape interface {
	Kind() ShapeKind
}
