// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package narrowphase is the narrow-phase collision detection core of a 2D
// rigid-body physics engine. Given two shapes already transformed into
// world space by some external transform step, and identified as a
// candidate pair by some external broad-phase step, it decides whether the
// shapes actually intersect and, if so, produces up to MaxContactsPerPair
// contact points describing how the intersection should be resolved.
//
// Three shape kinds are supported: CircleShape, SegmentShape, and
// PolygonShape. Dispatch is by a compile-time table keyed by canonical
// (ascending) shape-type order; see Collide.
//
// narrowphase was adapted from the narrow-phase half of
// github.com/gazed/vu's physics package, restated for 2D circle/segment/
// polygon shapes instead of 3D sphere/box shapes. The file-to-concern
// mapping:
//
//	shape.go            : shape and plane value types
//	contact.go          : Contact, the saturating contact buffer
//	support.go          : projection and containment helpers shared by
//	                      the pairwise kernels
//	circle.go           : circle2circleQuery, the shared circle substrate
//	circle_segment.go   : circle/segment
//	circle_polygon.go   : circle/polygon
//	segment_polygon.go  : segment/polygon
//	edge.go             : support-edge selection and Sutherland-Hodgman
//	                      style contact clipping
//	polygon_polygon.go  : polygon/polygon
//	dispatch.go         : the canonical-order dispatch table and Collide
package narrowphase
