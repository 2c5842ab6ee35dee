// seehuhn.de/go/ctrl - interactive vector controls
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ctrl

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
)

func TestFlip(t *testing.T) {
	b := NewBase(0, 0, 100, 100, true)

	x, y := b.TransformXY(5, 10)
	if x != 5 || y != 90 {
		t.Errorf("TransformXY(5, 10) = (%g, %g), want (5, 90)", x, y)
	}
	x, y = b.InverseTransformXY(5, 90)
	if x != 5 || y != 10 {
		t.Errorf("InverseTransformXY(5, 90) = (%g, %g), want (5, 10)", x, y)
	}
}

func TestRoundTrip(t *testing.T) {
	m1 := matrix.Scale(2, 3).Translate(10, -5)
	m2 := matrix.RotateDeg(30).Translate(7, 11)
	m3 := matrix.Matrix{1, 0.5, -0.25, 2, 3, 4}

	type testCase struct {
		name string
		flip bool
		m    *matrix.Matrix
	}
	cases := []testCase{
		{"plain", false, nil},
		{"flip", true, nil},
		{"scale", false, &m1},
		{"flip+scale", true, &m1},
		{"rotate", false, &m2},
		{"flip+rotate", true, &m2},
		{"flip+shear", true, &m3},
	}
	points := [][2]float64{{0, 0}, {5, 10}, {-3.5, 27}, {100, 100}, {1e3, -1e3}}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBase(10, 20, 110, 60, tc.flip)
			b.SetTransform(tc.m)
			for _, p := range points {
				dx, dy := b.TransformXY(p[0], p[1])
				x, y := b.InverseTransformXY(dx, dy)
				if math.Abs(x-p[0]) > 1e-9 || math.Abs(y-p[1]) > 1e-9 {
					t.Errorf("%v -> (%g, %g) -> (%g, %g)", p, dx, dy, x, y)
				}
			}
		})
	}
}

func TestTransformOrder(t *testing.T) {
	// flip first, then the matrix
	m := matrix.Scale(2, 2).Translate(1, 0)
	b := NewBase(0, 0, 10, 10, true)
	b.SetTransform(&m)

	x, y := b.TransformXY(3, 1)
	if x != 7 || y != 18 {
		t.Errorf("TransformXY(3, 1) = (%g, %g), want (7, 18)", x, y)
	}
}

func TestSingularMatrix(t *testing.T) {
	m := matrix.Matrix{0, 0, 0, 0, 5, 5}
	b := NewBase(0, 0, 10, 10, false)
	b.SetTransform(&m)

	x, y := b.InverseTransformXY(3, 4)
	if x != 3 || y != 4 {
		t.Errorf("InverseTransformXY(3, 4) = (%g, %g), want (3, 4)", x, y)
	}
}

func TestBorrowedMatrix(t *testing.T) {
	m := matrix.Identity
	b := NewBase(0, 0, 10, 10, false)
	b.SetTransform(&m)

	m = matrix.Scale(3, 3)
	x, y := b.TransformXY(1, 2)
	if x != 3 || y != 6 {
		t.Errorf("TransformXY(1, 2) = (%g, %g), want (3, 6)", x, y)
	}

	b.NoTransform()
	if b.Transform() != nil {
		t.Error("transform still attached")
	}
	x, y = b.TransformXY(1, 2)
	if x != 1 || y != 2 {
		t.Errorf("TransformXY(1, 2) = (%g, %g), want (1, 2)", x, y)
	}
}

func TestScale(t *testing.T) {
	b := NewBase(0, 0, 10, 10, false)
	if s := b.Scale(); s != 1 {
		t.Errorf("Scale() = %g without matrix, want 1", s)
	}

	m := matrix.Scale(2, 2)
	b.SetTransform(&m)
	if s := b.Scale(); math.Abs(s-2) > 1e-12 {
		t.Errorf("Scale() = %g, want 2", s)
	}

	m = matrix.RotateDeg(45).Translate(100, 100)
	if s := b.Scale(); math.Abs(s-1) > 1e-12 {
		t.Errorf("Scale() = %g for a rotation, want 1", s)
	}
}

func TestInRect(t *testing.T) {
	m := matrix.Scale(2, 2)
	b := NewBase(10, 10, 20, 20, true)
	b.SetTransform(&m)

	type testCase struct {
		x, y float64
		want bool
	}
	cases := []testCase{
		{30, 30, true},
		{20, 20, true}, // boundary
		{40, 40, true},
		{19, 30, false},
		{41, 30, false},
		{30, 41, false},
	}
	for _, tc := range cases {
		if got := b.InRect(tc.x, tc.y); got != tc.want {
			t.Errorf("InRect(%g, %g) = %t, want %t", tc.x, tc.y, got, tc.want)
		}
	}
}
