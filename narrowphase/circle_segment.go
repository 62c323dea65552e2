// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package narrowphase

import "github.com/gazed/narrowphase2d/vec2"

// CircleSegment collides a circle against a rounded segment, writing up to
// 1 contact to out and returning the number written.
//
// The circle center is projected onto the segment to find the closest
// point, which is then run through circle2circleQuery as a circle of the
// segment's radius. If the segment declares an end-cap tangent at the
// closest endpoint and the resulting normal points backward relative to
// it, the contact is discarded: this lets chained segments advertise that
// collisions against that end-cap should be ignored because another
// segment continues past it.
func CircleSegment(circ CircleShape, seg SegmentShape, out []Contact) int {
	segDelta := seg.TB.Sub(seg.TA)
	closestT := vec2.Clamp01(segDelta.Dot(circ.TC.Sub(seg.TA)) / vec2.LenSqr(segDelta))
	closest := seg.TA.Add(segDelta.Mul(closestT))

	c, ok := circle2circleQuery(circ.TC, closest, circ.R, seg.R)
	if !ok {
		return 0
	}

	n := c.Normal
	if (closestT == 0 && n.Dot(seg.ATangent) < 0) ||
		(closestT == 1 && n.Dot(seg.BTangent) < 0) {
		return 0
	}

	cb := contactBuffer{out: out}
	cb.add(c)
	return cb.n
}
