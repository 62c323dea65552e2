// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vec2

import (
	"math"
	"testing"
)

func TestCross(t *testing.T) {
	if got := Cross(New(1, 0), New(0, 1)); got != 1 {
		t.Errorf("Cross((1,0),(0,1)) = %f, want 1", got)
	}
	if got := Cross(New(0, 1), New(1, 0)); got != -1 {
		t.Errorf("Cross((0,1),(1,0)) = %f, want -1", got)
	}
}

func TestPerp(t *testing.T) {
	p := Perp(New(1, 0))
	if p != (Vec2{0, 1}) {
		t.Errorf("Perp((1,0)) = %v, want (0,1)", p)
	}
}

func TestUnitZero(t *testing.T) {
	u := Unit(New(0, 0))
	if u != (Vec2{1, 0}) {
		t.Errorf("Unit((0,0)) = %v, want (1,0)", u)
	}
}

func TestUnitNormalizes(t *testing.T) {
	u := Unit(New(3, 4))
	if math.Abs(u.Len()-1) > 1e-9 {
		t.Errorf("Unit((3,4)).Len() = %f, want 1", u.Len())
	}
}

func TestLerp(t *testing.T) {
	a, b := New(0, 0), New(10, 20)
	m := Lerp(a, b, 0.5)
	if m != (Vec2{5, 10}) {
		t.Errorf("Lerp = %v, want (5,10)", m)
	}
}

func TestClamp01(t *testing.T) {
	cases := map[float64]float64{-1: 0, 0: 0, 0.5: 0.5, 1: 1, 2: 1}
	for in, want := range cases {
		if got := Clamp01(in); got != want {
			t.Errorf("Clamp01(%f) = %f, want %f", in, got, want)
		}
	}
}
