// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package narrowphase

import "log"

// Assertions controls what happens when Collide is called with
// preconditions violated (shapes out of canonical order). When true,
// violations panic; when false (the default) they are logged and treated
// as a zero-contact result. Tests that want to observe the panic should
// set this explicitly and restore it afterward.
var Assertions = false

type collideFunc func(a, b Shape, out []Contact) int

func collideCircleCircle(a, b Shape, out []Contact) int {
	return CircleCircle(a.(CircleShape), b.(CircleShape), out)
}

func collideCircleSegment(a, b Shape, out []Contact) int {
	return CircleSegment(a.(CircleShape), b.(SegmentShape), out)
}

func collideCirclePolygon(a, b Shape, out []Contact) int {
	return CirclePolygon(a.(CircleShape), b.(PolygonShape), out)
}

func collideSegmentPolygon(a, b Shape, out []Contact) int {
	return SegmentPolygon(a.(SegmentShape), b.(PolygonShape), out)
}

func collidePolygonPolygon(a, b Shape, out []Contact) int {
	return PolygonPolygon(a.(PolygonShape), b.(PolygonShape), out)
}

// algorithms is the dispatch table, indexed [type(a)][type(b)]. Callers
// must present shapes in ascending ShapeKind order; the reverse-order
// slots and segment/segment are left nil, same as the empty builtin
// slots the original dispatch array carries for pairs it doesn't
// implement.
var algorithms = [NumShapeTypes][NumShapeTypes]collideFunc{
	CircleShapeKind: {
		CircleShapeKind:  collideCircleCircle,
		SegmentShapeKind: collideCircleSegment,
		PolygonShapeKind: collideCirclePolygon,
	},
	SegmentShapeKind: {
		PolygonShapeKind: collideSegmentPolygon,
	},
	PolygonShapeKind: {
		PolygonShapeKind: collidePolygonPolygon,
	},
}

// Collide runs the pairwise collision test for a and b, writing up to
// MaxContactsPerPair contacts to out and returning the number written.
//
// a and b must be presented with Kind() in ascending canonical order
// (circle < segment < polygon); callers holding an unordered pair should
// swap operands and negate the resulting normals themselves, the same
// way the original's shape-swap wrapper does. Violating this is a
// programming error: with Assertions set it panics, otherwise it is
// logged and treated as no collision.
func Collide(a, b Shape, out []Contact) int {
	if a.Kind() > b.Kind() {
		msg := "narrowphase: Collide called with shapes out of canonical order"
		if Assertions {
			panic(msg)
		}
		log.Print(msg)
		return 0
	}
	fn := algorithms[a.Kind()][b.Kind()]
	if fn == nil {
		return 0
	}
	return fn(a, b, out)
}
