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
	"image/color"
	"math"

	"seehuhn.de/go/ctrl/vertex"
)

// Sub-paths of a [SplineEditor].
const (
	SplineBackground = iota
	SplineBorder
	SplineCurve
	SplineInactive
	SplineActive
	splineNumPaths
)

// Limits for the number of knots of a [SplineEditor].
const (
	MinSplinePoints = 4
	MaxSplinePoints = 32
)

// SplineSamples is the number of entries in the tabulated spline.
const SplineSamples = 256

// splineGap is the minimal horizontal distance between adjacent knots.
const splineGap = 0.001

// SplineEditor edits a function [0, 1] → [0, 1], given as a natural cubic
// spline through a fixed number of knots. It can be used for gamma or
// transfer curves.
//
// The spline is tabulated at [SplineSamples] equally spaced positions
// whenever a knot changes.
type SplineEditor struct {
	Base
	palette

	xs1, ys1, xs2, ys2 float64

	borderWidth float64
	borderExtra float64
	curveWidth  float64
	pointSize   float64

	n      int
	xp, yp [MaxSplinePoints]float64
	spline naturalSpline
	values [SplineSamples]float64
	bytes  [SplineSamples]uint8

	active   int
	move     int
	pdx, pdy float64

	// iteration state
	path    int
	item    int
	polys   polyGen
	curve   splineCurve
	stroke  vertex.Stroke
	ellipse vertex.Ellipse
}

// NewSplineEditor returns a spline editor with n knots, which are placed
// at equal distances along the line y = 0.5. The number of knots is
// clamped to [MinSplinePoints, MaxSplinePoints].
func NewSplineEditor(x1, y1, x2, y2 float64, n int, flipY bool) *SplineEditor {
	n = max(MinSplinePoints, min(n, MaxSplinePoints))
	s := &SplineEditor{
		Base:        NewBase(x1, y1, x2, y2, flipY),
		palette:     make(palette, splineNumPaths),
		borderWidth: 1,
		curveWidth:  1,
		pointSize:   3,
		n:           n,
		active:      -1,
		move:        -1,
		path:        -1,
	}
	for i := range n {
		s.xp[i] = float64(i) / float64(n-1)
		s.yp[i] = 0.5
	}
	s.curve.s = s
	s.stroke = *vertex.NewStroke(&s.curve, s.curveWidth)
	s.palette[SplineBackground] = rgba(1, 1, 0.9, 1)
	s.palette[SplineBorder] = color.Black
	s.palette[SplineCurve] = color.Black
	s.palette[SplineInactive] = color.Black
	s.palette[SplineActive] = rgba(1, 0, 0, 1)
	s.calcBox()
	s.update()
	return s
}

func (s *SplineEditor) calcBox() {
	x1, y1, x2, y2 := s.Rect()
	s.xs1 = x1 + s.borderWidth
	s.ys1 = y1 + s.borderWidth
	s.xs2 = x2 - s.borderWidth
	s.ys2 = y2 - s.borderWidth
}

// SetBorderWidth sets the width of the border and the extra margin of the
// background around the bounding rectangle.
func (s *SplineEditor) SetBorderWidth(t, extra float64) {
	s.borderWidth = max(t, 0)
	s.borderExtra = max(extra, 0)
	s.calcBox()
}

// SetCurveWidth sets the line width of the curve.
func (s *SplineEditor) SetCurveWidth(w float64) {
	s.curveWidth = max(w, 0)
}

// SetPointSize sets the radius of the knot markers.
func (s *SplineEditor) SetPointSize(r float64) {
	s.pointSize = max(r, 0)
}

// NumPoints returns the number of knots.
func (s *SplineEditor) NumPoints() int { return s.n }

// Point returns the position of knot i.
func (s *SplineEditor) Point(i int) (x, y float64) {
	if i < 0 || i >= s.n {
		return 0, 0
	}
	return s.xp[i], s.yp[i]
}

// SetPoint moves knot i. The position is clamped to the unit square, the
// knots are kept in order, and the first and last knot stay at x = 0 and
// x = 1. Invalid indices are ignored.
func (s *SplineEditor) SetPoint(i int, x, y float64) {
	if i < 0 || i >= s.n {
		return
	}
	s.setX(i, x)
	s.setY(i, y)
	s.update()
}

// SetPoints moves the first len(pts) knots at once. Surplus entries are
// ignored. The constraints of [SplineEditor.SetPoint] are applied after
// all knots have been placed, from left to right.
func (s *SplineEditor) SetPoints(pts [][2]float64) {
	for i, p := range pts[:min(len(pts), s.n)] {
		s.xp[i] = p[0]
		s.setY(i, p[1])
	}
	s.xp[0] = 0
	s.xp[s.n-1] = 1
	for i := 1; i < s.n-1; i++ {
		hi := 1 - float64(s.n-1-i)*splineGap
		s.xp[i] = clamp(s.xp[i], s.xp[i-1]+splineGap, hi)
	}
	s.update()
}

// SetKnotValue sets the y coordinate of knot i, clamped to [0, 1].
// Invalid indices are ignored.
func (s *SplineEditor) SetKnotValue(i int, y float64) {
	if i < 0 || i >= s.n {
		return
	}
	s.setY(i, y)
	s.update()
}

// ActivePoint returns the index of the highlighted knot, or -1.
func (s *SplineEditor) ActivePoint() int { return s.active }

// SetActivePoint highlights knot i. Invalid indices clear the highlight.
func (s *SplineEditor) SetActivePoint(i int) {
	if i < 0 || i >= s.n {
		i = -1
	}
	s.active = i
}

// Value evaluates the spline at x, clamped to [0, 1].
func (s *SplineEditor) Value(x float64) float64 {
	return clamp(s.spline.at(x), 0, 1)
}

// Spline returns the tabulated spline. The result is valid until the next
// change of the knots.
func (s *SplineEditor) Spline() []float64 { return s.values[:] }

// Spline8 returns the tabulated spline, scaled to [0, 255].
// The result is valid until the next change of the knots.
func (s *SplineEditor) Spline8() []uint8 { return s.bytes[:] }

func (s *SplineEditor) setX(i int, x float64) {
	x = clamp(x, 0, 1)
	switch i {
	case 0:
		x = 0
	case s.n - 1:
		x = 1
	default:
		x = max(x, s.xp[i-1]+splineGap)
		x = min(x, s.xp[i+1]-splineGap)
	}
	s.xp[i] = x
}

func (s *SplineEditor) setY(i int, y float64) {
	s.yp[i] = clamp(y, 0, 1)
}

// update recomputes the spline and its tables from the knots.
func (s *SplineEditor) update() {
	s.spline.init(s.xp[:s.n], s.yp[:s.n])
	for i := range SplineSamples {
		v := s.Value(float64(i) / (SplineSamples - 1))
		s.values[i] = v
		s.bytes[i] = uint8(v * 255)
	}
}

// knotXY returns the position of knot i in local coordinates.
func (s *SplineEditor) knotXY(i int) (float64, float64) {
	return s.xs1 + (s.xs2-s.xs1)*s.xp[i], s.ys1 + (s.ys2-s.ys1)*s.yp[i]
}

// NumPaths implements the [Shape] interface.
func (s *SplineEditor) NumPaths() int { return splineNumPaths }

// Rewind implements the [vertex.Source] interface.
func (s *SplineEditor) Rewind(pathID int) {
	s.path = pathID
	s.item = 0
	s.polys.clear()
	s.ellipse = vertex.Ellipse{}
	x1, y1, x2, y2 := s.Rect()

	switch pathID {
	case SplineBackground:
		e := s.borderExtra
		s.polys.rect(x1-e, y1-e, x2+e, y2+e)
	case SplineBorder:
		s.polys.frame(x1, y1, x2, y2, s.borderWidth)
	case SplineCurve:
		s.stroke.Width = s.curveWidth
		s.stroke.Rewind(0)
	case SplineInactive:
		s.nextInactive()
	case SplineActive:
		if s.active >= 0 {
			s.knotEllipse(s.active)
		}
	default:
		s.path = -1
	}
}

func (s *SplineEditor) knotEllipse(i int) {
	x, y := s.knotXY(i)
	s.ellipse.Init(x, y, s.pointSize, s.pointSize, 32, false)
}

// nextInactive prepares the marker of the next knot, starting at s.item,
// which is not highlighted. It reports whether such a knot exists.
func (s *SplineEditor) nextInactive() bool {
	if s.item == s.active {
		s.item++
	}
	if s.item >= s.n {
		return false
	}
	s.knotEllipse(s.item)
	return true
}

// Vertex implements the [vertex.Source] interface.
func (s *SplineEditor) Vertex() (vertex.Command, float64, float64) {
	var cmd vertex.Command
	var x, y float64

	switch s.path {
	case SplineBackground, SplineBorder:
		cmd, x, y = s.polys.vertex()
	case SplineCurve:
		cmd, x, y = s.stroke.Vertex()
	case SplineInactive:
		for s.item < s.n {
			cmd, x, y = s.ellipse.Vertex()
			if !cmd.IsStop() {
				break
			}
			s.item++
			if !s.nextInactive() {
				break
			}
		}
	case SplineActive:
		cmd, x, y = s.ellipse.Vertex()
	}

	if cmd.IsVertex() {
		x, y = s.TransformXY(x, y)
	}
	return cmd, x, y
}

// OnMouseButtonDown grabs the first knot within reach of (x, y).
func (s *SplineEditor) OnMouseButtonDown(x, y float64) bool {
	x, y = s.InverseTransformXY(x, y)
	for i := range s.n {
		kx, ky := s.knotXY(i)
		if math.Hypot(x-kx, y-ky) <= s.pointSize+1 {
			s.pdx = kx - x
			s.pdy = ky - y
			s.active = i
			s.move = i
			return true
		}
	}
	return false
}

// OnMouseButtonUp releases a grabbed knot.
func (s *SplineEditor) OnMouseButtonUp(x, y float64) bool {
	if s.move < 0 {
		return false
	}
	s.move = -1
	return true
}

// OnMouseMove drags the grabbed knot.
// A move without a pressed button releases the knot.
func (s *SplineEditor) OnMouseMove(x, y float64, buttonHeld bool) bool {
	if s.move < 0 {
		return false
	}
	if !buttonHeld {
		return s.OnMouseButtonUp(x, y)
	}
	x, y = s.InverseTransformXY(x, y)
	kx := (x + s.pdx - s.xs1) / (s.xs2 - s.xs1)
	ky := (y + s.pdy - s.ys1) / (s.ys2 - s.ys1)
	s.setX(s.move, kx)
	s.setY(s.move, ky)
	s.update()
	return true
}

// OnArrowKeys nudges the highlighted knot.
func (s *SplineEditor) OnArrowKeys(left, right, down, up bool) bool {
	if s.active < 0 {
		return false
	}
	kx, ky := s.xp[s.active], s.yp[s.active]
	changed := false
	if left {
		kx -= splineGap
		changed = true
	}
	if right {
		kx += splineGap
		changed = true
	}
	if down {
		ky -= splineGap
		changed = true
	}
	if up {
		ky += splineGap
		changed = true
	}
	if changed {
		s.setX(s.active, kx)
		s.setY(s.active, ky)
		s.update()
	}
	return changed
}

// splineCurve is the polyline through the tabulated spline values.
type splineCurve struct {
	s   *SplineEditor
	pos int
}

func (c *splineCurve) Rewind(pathID int) {
	c.pos = 0
	if pathID != 0 {
		c.pos = SplineSamples
	}
}

func (c *splineCurve) Vertex() (vertex.Command, float64, float64) {
	if c.pos >= SplineSamples {
		return vertex.Stop, 0, 0
	}
	s := c.s
	i := c.pos
	c.pos++
	x := s.xs1 + (s.xs2-s.xs1)*float64(i)/(SplineSamples-1)
	y := s.ys1 + (s.ys2-s.ys1)*s.values[i]
	if i == 0 {
		return vertex.MoveTo, x, y
	}
	return vertex.LineTo, x, y
}

// naturalSpline is an interpolating cubic spline with vanishing second
// derivative at both ends. Outside the knot range the spline is continued
// linearly.
type naturalSpline struct {
	n  int
	x  [MaxSplinePoints]float64
	y  [MaxSplinePoints]float64
	m  [MaxSplinePoints]float64 // second derivatives
	tw [MaxSplinePoints]float64 // scratch space for the solver
}

// init computes the spline through the points (x[i], y[i]).
// The x values must be strictly increasing.
func (sp *naturalSpline) init(x, y []float64) {
	n := len(x)
	sp.n = n
	copy(sp.x[:], x)
	copy(sp.y[:], y)
	sp.m[0] = 0
	sp.m[n-1] = 0

	// Solve the tridiagonal system for m[1], ..., m[n-2] with the
	// Thomas algorithm.
	sp.tw[0] = 0
	for i := 1; i < n-1; i++ {
		h0 := x[i] - x[i-1]
		h1 := x[i+1] - x[i]
		diag := 2 * (h0 + h1)
		rhs := 6 * ((y[i+1]-y[i])/h1 - (y[i]-y[i-1])/h0)
		if i > 1 {
			diag -= h0 * sp.tw[i-1]
			rhs -= h0 * sp.m[i-1]
		}
		sp.tw[i] = h1 / diag
		sp.m[i] = rhs / diag
	}
	for i := n - 3; i >= 1; i-- {
		sp.m[i] -= sp.tw[i] * sp.m[i+1]
	}
}

// at evaluates the spline.
func (sp *naturalSpline) at(x float64) float64 {
	n := sp.n
	if n < 2 {
		return 0
	}
	if x < sp.x[0] {
		h := sp.x[1] - sp.x[0]
		slope := (sp.y[1]-sp.y[0])/h - h*sp.m[1]/6
		return sp.y[0] + slope*(x-sp.x[0])
	}
	if x > sp.x[n-1] {
		h := sp.x[n-1] - sp.x[n-2]
		slope := (sp.y[n-1]-sp.y[n-2])/h + h*sp.m[n-2]/6
		return sp.y[n-1] + slope*(x-sp.x[n-1])
	}

	// binary search for the interval containing x
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if sp.x[mid] > x {
			hi = mid
		} else {
			lo = mid
		}
	}

	h := sp.x[hi] - sp.x[lo]
	a := (sp.x[hi] - x) / h
	b := (x - sp.x[lo]) / h
	return a*sp.y[lo] + b*sp.y[hi] +
		((a*a*a-a)*sp.m[lo]+(b*b*b-b)*sp.m[hi])*h*h/6
}
