// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package narrowphase

import (
	"testing"

	"github.com/gazed/narrowphase2d/vec2"
)

// Two unit squares overlapping by 0.5 along a shared face produce two
// contacts on that face.
func TestPolygonPolygonFaceOverlap(t *testing.T) {
	a := unitSquare(1)
	b := NewPolygonShape([]vec2.Vec2{
		vec2.New(0.5, -1),
		vec2.New(0.5, 1),
		vec2.New(2.5, 1),
		vec2.New(2.5, -1),
	}, 2)
	out := make([]Contact, MaxContactsPerPair)

	n := PolygonPolygon(a, b, out)
	if n != 2 {
		t.Fatalf("got %d contacts, want 2", n)
	}
	for i, c := range out[:n] {
		if !vecAlmostEqual(c.Normal, vec2.New(1, 0), 1e-9) {
			t.Errorf("contact %d normal = %v, want (1,0)", i, c.Normal)
		}
		if !almostEqual(c.Distance, -0.5, 1e-9) {
			t.Errorf("contact %d distance = %v, want -0.5", i, c.Distance)
		}
	}
}

func TestPolygonPolygonSeparated(t *testing.T) {
	a := unitSquare(1)
	b := NewPolygonShape([]vec2.Vec2{
		vec2.New(5, -1),
		vec2.New(5, 1),
		vec2.New(7, 1),
		vec2.New(7, -1),
	}, 2)
	out := make([]Contact, MaxContactsPerPair)

	if n := PolygonPolygon(a, b, out); n != 0 {
		t.Fatalf("got %d contacts, want 0", n)
	}
}

func TestFindMSASeparatingAxis(t *testing.T) {
	a := unitSquare(1)
	b := NewPolygonShape([]vec2.Vec2{
		vec2.New(5, -1),
		vec2.New(5, 1),
		vec2.New(7, 1),
		vec2.New(7, -1),
	}, 2)

	_, _, ok := findMSA(a, b)
	if ok {
		t.Fatalf("findMSA reported overlap for separated polygons")
	}
}
