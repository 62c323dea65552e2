// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package narrowphase

import (
	"testing"

	"github.com/gazed/narrowphase2d/vec2"
)

// A segment resting flush against a square's left face produces two
// contacts on that face, normal pointing from the segment into the
// polygon.
func TestSegmentPolygonFaceOverlap(t *testing.T) {
	square := unitSquare(1)
	seg := NewSegmentShape(vec2.New(-2, -0.5), vec2.New(-2, 0.5), 1.1, vec2.Vec2{}, vec2.Vec2{}, 2)
	out := make([]Contact, MaxContactsPerPair)

	n := SegmentPolygon(seg, square, out)
	if n == 0 {
		t.Fatalf("got 0 contacts, want at least 1")
	}
	for i, c := range out[:n] {
		// Segment sits left of the square; the normal must point from the
		// segment toward the polygon, i.e. in +x.
		if !vecAlmostEqual(c.Normal, vec2.New(1, 0), 1e-9) {
			t.Errorf("contact %d normal = %v, want (1,0)", i, c.Normal)
		}
		if c.Distance > 0 {
			t.Errorf("contact %d distance = %v, want <= 0", i, c.Distance)
		}
	}
}

func TestSegmentPolygonSeparated(t *testing.T) {
	square := unitSquare(1)
	seg := NewSegmentShape(vec2.New(10, -0.5), vec2.New(10, 0.5), 0.1, vec2.Vec2{}, vec2.Vec2{}, 2)
	out := make([]Contact, MaxContactsPerPair)

	if n := SegmentPolygon(seg, square, out); n != 0 {
		t.Fatalf("got %d contacts, want 0", n)
	}
}

// A vertex just beyond the segment's own face, but still within the
// segment's radius of it, must be kept by the vertex-behind-segment step:
// cpCollision.c's findPointsBehindSeg gates on "cpvdot(v,n) < ...*coef +
// seg->r", not just the bare face plane.
func TestSegmentPolygonVertexWithinRadiusOfOwnFace(t *testing.T) {
	square := unitSquare(1)
	seg := NewSegmentShape(vec2.New(1.5, -2), vec2.New(1.5, 2), 0.6, vec2.Vec2{}, vec2.Vec2{}, 2)
	out := make([]Contact, MaxContactsPerPair)

	n := SegmentPolygon(seg, square, out)
	if n != 2 {
		t.Fatalf("got %d contacts, want 2 (square's right-face vertices, within seg.R of the segment's face)", n)
	}
	for i, c := range out[:n] {
		if !vecAlmostEqual(c.Normal, vec2.New(-1, 0), 1e-9) {
			t.Errorf("contact %d normal = %v, want (-1,0)", i, c.Normal)
		}
		if !almostEqual(c.Distance, -0.1, 1e-9) {
			t.Errorf("contact %d distance = %v, want -0.1", i, c.Distance)
		}
	}
}

// A segment crossing straight through the polygon's interior, perpendicular
// to a face, still reports an overlap (a contact against the near face).
func TestSegmentPolygonPerpendicularPenetration(t *testing.T) {
	square := unitSquare(1)
	seg := NewSegmentShape(vec2.New(0, -2), vec2.New(0, 2), 0.1, vec2.Vec2{}, vec2.Vec2{}, 2)
	out := make([]Contact, MaxContactsPerPair)

	n := SegmentPolygon(seg, square, out)
	if n == 0 {
		t.Fatalf("got 0 contacts, want at least 1 for a segment piercing the square")
	}
	for i, c := range out[:n] {
		if !almostEqual(c.Normal.Len(), 1, 1e-6) {
			t.Errorf("contact %d normal not unit length: %v", i, c.Normal)
		}
		if c.Distance > 1e-9 {
			t.Errorf("contact %d distance = %v, want <= 0", i, c.Distance)
		}
	}
}
