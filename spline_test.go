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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaturalSpline(t *testing.T) {
	var sp naturalSpline

	// a natural spline through collinear points is the line itself
	sp.init([]float64{0, 0.2, 0.5, 1}, []float64{1, 1.4, 2, 3})
	for _, x := range []float64{-0.5, 0, 0.1, 0.3, 0.77, 1, 1.5} {
		assert.InDelta(t, 1+2*x, sp.at(x), 1e-12, "x=%g", x)
	}

	// interpolation, and zero curvature at the ends
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{0, 1, 0, 1, 0}
	sp.init(xs, ys)
	for i := range xs {
		assert.InDelta(t, ys[i], sp.at(xs[i]), 1e-12)
	}
	assert.Equal(t, 0.0, sp.m[0])
	assert.Equal(t, 0.0, sp.m[4])

	// symmetric data gives a symmetric curve
	assert.InDelta(t, sp.at(0.5), sp.at(3.5), 1e-12)
	assert.InDelta(t, sp.at(1.3), sp.at(2.7), 1e-12)
}

func TestSplineEditorDefaults(t *testing.T) {
	s := NewSplineEditor(0, 0, 100, 100, 2, false)
	assert.Equal(t, MinSplinePoints, s.NumPoints())
	s = NewSplineEditor(0, 0, 100, 100, 100, false)
	assert.Equal(t, MaxSplinePoints, s.NumPoints())

	s = NewSplineEditor(0, 0, 100, 100, 5, false)
	x, y := s.Point(2)
	assert.Equal(t, 0.5, x)
	assert.Equal(t, 0.5, y)

	require.Len(t, s.Spline(), SplineSamples)
	require.Len(t, s.Spline8(), SplineSamples)
	for i := range SplineSamples {
		assert.InDelta(t, 0.5, s.Spline()[i], 1e-12)
		assert.Equal(t, uint8(127), s.Spline8()[i])
	}
}

func TestSplineEditorConstraints(t *testing.T) {
	s := NewSplineEditor(0, 0, 100, 100, 4, false)

	s.SetPoint(0, 0.5, 2)
	x, y := s.Point(0)
	assert.Equal(t, 0.0, x, "first knot is pinned")
	assert.Equal(t, 1.0, y)

	s.SetPoint(3, 0.2, -1)
	x, y = s.Point(3)
	assert.Equal(t, 1.0, x, "last knot is pinned")
	assert.Equal(t, 0.0, y)

	s.SetPoint(1, 0.9, 0.5)
	x, _ = s.Point(1)
	x2, _ := s.Point(2)
	assert.InDelta(t, x2-splineGap, x, 1e-12)

	s.SetPoint(7, 0.5, 0.5) // ignored
	for _, v := range s.Spline() {
		assert.True(t, v >= 0 && v <= 1 && !math.IsNaN(v))
	}
	assert.Equal(t, 1.0, s.Value(0))
	assert.Equal(t, 0.0, s.Value(1))
}

func TestSplineEditorSetPoints(t *testing.T) {
	s := NewSplineEditor(0, 0, 100, 100, 6, false)
	s.SetPoints([][2]float64{{0, 0}, {0.5, 0.2}, {0.6, 0.4}, {0.7, 0.6}, {0.9, 0.9}, {1, 1}})
	want := [][2]float64{{0, 0}, {0.5, 0.2}, {0.6, 0.4}, {0.7, 0.6}, {0.9, 0.9}, {1, 1}}
	for i, w := range want {
		x, y := s.Point(i)
		assert.InDelta(t, w[0], x, 1e-12, "knot %d", i)
		assert.InDelta(t, w[1], y, 1e-12, "knot %d", i)
	}
	assert.InDelta(t, 0.2, s.Value(0.5), 1e-9)

	// unordered and out-of-range input
	s = NewSplineEditor(0, 0, 100, 100, 4, false)
	s.SetPoints([][2]float64{{0.3, 2}, {0.8, 0.5}, {0.4, 0.5}, {5, 0.5}, {0.5, 0.5}})
	prev := -1.0
	for i := range 4 {
		x, y := s.Point(i)
		assert.Greater(t, x, prev, "knot %d", i)
		assert.True(t, y >= 0 && y <= 1)
		prev = x
	}
	x, y := s.Point(0)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 1.0, y)
	x, _ = s.Point(2)
	assert.InDelta(t, 0.8+splineGap, x, 1e-12)
	x, _ = s.Point(3)
	assert.Equal(t, 1.0, x)

	// a short list leaves the remaining knots in place
	s = NewSplineEditor(0, 0, 100, 100, 4, false)
	s.SetPoints([][2]float64{{0, 0.1}})
	x, y = s.Point(2)
	assert.InDelta(t, 2.0/3, x, 1e-12)
	assert.Equal(t, 0.5, y)
}

func TestSplineEditorDrag(t *testing.T) {
	s := NewSplineEditor(0, 0, 102, 102, 5, false)
	// knots at x = 1, 26, 51, 76, 101 and y = 51

	assert.False(t, s.OnMouseButtonDown(40, 40))
	require.True(t, s.OnMouseButtonDown(52, 52))
	assert.Equal(t, 2, s.ActivePoint())

	assert.True(t, s.OnMouseMove(52, 77, true))
	x, y := s.Point(2)
	assert.InDelta(t, 0.5, x, 1e-12)
	assert.InDelta(t, 0.75, y, 1e-12)
	assert.InDelta(t, 0.75, s.Value(0.5), 1e-12)

	assert.True(t, s.OnMouseButtonUp(52, 77))
	assert.False(t, s.OnMouseButtonUp(52, 77))
	assert.False(t, s.OnMouseMove(52, 10, true))
	assert.Equal(t, 2, s.ActivePoint(), "the knot stays highlighted")
}

func TestSplineEditorArrows(t *testing.T) {
	s := NewSplineEditor(0, 0, 100, 100, 5, false)
	assert.False(t, s.OnArrowKeys(false, false, false, true), "no active point")

	s.SetActivePoint(1)
	assert.True(t, s.OnArrowKeys(false, true, false, true))
	x, y := s.Point(1)
	assert.InDelta(t, 0.251, x, 1e-12)
	assert.InDelta(t, 0.501, y, 1e-12)

	s.SetActivePoint(10)
	assert.Equal(t, -1, s.ActivePoint())
}
