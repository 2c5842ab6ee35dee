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

// Sub-paths of a [ScaleBar].
const (
	ScaleBarBackground = iota
	ScaleBarBorder
	ScaleBarPointer1
	ScaleBarPointer2
	ScaleBarRange
	scaleBarNumPaths
)

type scaleDrag uint8

const (
	dragNothing scaleDrag = iota
	dragValue1
	dragValue2
	dragRange
)

// ScaleBar selects a sub-interval [Value1, Value2] of [0, 1].
//
// The bar is horizontal if its bounding rectangle is wider than high, and
// vertical otherwise. Both ends of the interval can be dragged, and the
// interval as a whole can be moved by dragging the bar between them.
type ScaleBar struct {
	Base
	palette

	xs1, ys1, xs2, ys2 float64

	borderWidth    float64
	borderExtra    float64
	value1, value2 float64
	minD           float64

	pdx, pdy float64
	drag     scaleDrag

	// iteration state
	path    int
	polys   polyGen
	ellipse vertex.Ellipse
}

// NewScaleBar returns a scale bar with bounding rectangle (x1, y1)-(x2, y2)
// and the interval [0.3, 0.7].
func NewScaleBar(x1, y1, x2, y2 float64, flipY bool) *ScaleBar {
	s := &ScaleBar{
		Base:        NewBase(x1, y1, x2, y2, flipY),
		palette:     make(palette, scaleBarNumPaths),
		borderWidth: 1,
		value1:      0.3,
		value2:      0.7,
		minD:        0.01,
		path:        -1,
	}
	s.palette[ScaleBarBackground] = rgba(1, 0.9, 0.8, 1)
	s.palette[ScaleBarBorder] = color.Black
	s.palette[ScaleBarPointer1] = rgba(0.8, 0, 0, 0.8)
	s.palette[ScaleBarPointer2] = rgba(0.8, 0, 0, 0.8)
	s.palette[ScaleBarRange] = rgba(0.2, 0.1, 0, 0.6)
	s.calcBox()
	s.defaultExtra()
	return s
}

// defaultExtra sets the background margin to half the thickness of the bar.
func (s *ScaleBar) defaultExtra() {
	x1, y1, x2, y2 := s.Rect()
	if s.horizontal() {
		s.borderExtra = (y2 - y1) / 2
	} else {
		s.borderExtra = (x2 - x1) / 2
	}
}

func (s *ScaleBar) horizontal() bool {
	x1, y1, x2, y2 := s.Rect()
	return math.Abs(x2-x1) > math.Abs(y2-y1)
}

func (s *ScaleBar) calcBox() {
	x1, y1, x2, y2 := s.Rect()
	s.xs1 = x1 + s.borderWidth
	s.ys1 = y1 + s.borderWidth
	s.xs2 = x2 - s.borderWidth
	s.ys2 = y2 - s.borderWidth
}

// Resize changes the bounding rectangle. The flip flag and the attached
// transformation are kept, the background margin is reset.
func (s *ScaleBar) Resize(x1, y1, x2, y2 float64) {
	s.x1, s.y1, s.x2, s.y2 = x1, y1, x2, y2
	s.calcBox()
	s.defaultExtra()
}

// SetBorderWidth sets the width of the border and the extra margin of the
// background around the bounding rectangle.
func (s *ScaleBar) SetBorderWidth(t, extra float64) {
	s.borderWidth = max(t, 0)
	s.borderExtra = max(extra, 0)
	s.calcBox()
}

// Value1 returns the lower end of the interval.
func (s *ScaleBar) Value1() float64 { return s.value1 }

// Value2 returns the upper end of the interval.
func (s *ScaleBar) Value2() float64 { return s.value2 }

// MinDelta returns the minimal length of the interval.
func (s *ScaleBar) MinDelta() float64 { return s.minD }

// SetMinDelta sets the minimal length of the interval.
// The value is clamped to [0, 1].
func (s *ScaleBar) SetMinDelta(d float64) {
	s.minD = clamp(d, 0, 1)
	if s.value2-s.value1 < s.minD {
		s.value2 = s.value1 + s.minD
		if s.value2 > 1 {
			s.value2 = 1
			s.value1 = 1 - s.minD
		}
	}
}

// SetValue1 sets the lower end of the interval. The value is clamped to
// [0, Value2-MinDelta].
func (s *ScaleBar) SetValue1(v float64) {
	v = clamp(v, 0, 1)
	if s.value2-v < s.minD {
		v = s.value2 - s.minD
	}
	s.value1 = v
}

// SetValue2 sets the upper end of the interval. The value is clamped to
// [Value1+MinDelta, 1].
func (s *ScaleBar) SetValue2(v float64) {
	v = clamp(v, 0, 1)
	if v-s.value1 < s.minD {
		v = s.value1 + s.minD
	}
	s.value2 = v
}

// Move shifts the interval by d, keeping its length.
// The interval stops at the ends of [0, 1].
func (s *ScaleBar) Move(d float64) {
	s.value1 += d
	s.value2 += d
	if s.value1 < 0 {
		s.value2 -= s.value1
		s.value1 = 0
	}
	if s.value2 > 1 {
		s.value1 -= s.value2 - 1
		s.value2 = 1
	}
}

// pointer returns the centre of the pointer for the value v, together with
// its radius.
func (s *ScaleBar) pointer(v float64) (float64, float64, float64) {
	x1, y1, x2, y2 := s.Rect()
	if s.horizontal() {
		return s.xs1 + (s.xs2-s.xs1)*v, (s.ys1 + s.ys2) / 2, y2 - y1
	}
	return (s.xs1 + s.xs2) / 2, s.ys1 + (s.ys2-s.ys1)*v, x2 - x1
}

// NumPaths implements the [Shape] interface.
func (s *ScaleBar) NumPaths() int { return scaleBarNumPaths }

// Rewind implements the [vertex.Source] interface.
func (s *ScaleBar) Rewind(pathID int) {
	s.path = pathID
	s.polys.clear()
	s.ellipse = vertex.Ellipse{}
	x1, y1, x2, y2 := s.Rect()
	e := s.borderExtra

	switch pathID {
	case ScaleBarBackground:
		s.polys.rect(x1-e, y1-e, x2+e, y2+e)

	case ScaleBarBorder:
		s.polys.frame(x1, y1, x2, y2, s.borderWidth)

	case ScaleBarPointer1, ScaleBarPointer2:
		v := s.value1
		if pathID == ScaleBarPointer2 {
			v = s.value2
		}
		cx, cy, r := s.pointer(v)
		s.ellipse.Init(cx, cy, r, r, 32, false)

	case ScaleBarRange:
		if s.horizontal() {
			a := s.xs1 + (s.xs2-s.xs1)*s.value1
			b := s.xs1 + (s.xs2-s.xs1)*s.value2
			s.polys.rect(a, y1-e/2, b, y2+e/2)
		} else {
			a := s.ys1 + (s.ys2-s.ys1)*s.value1
			b := s.ys1 + (s.ys2-s.ys1)*s.value2
			s.polys.rect(x1-e/2, a, x2+e/2, b)
		}

	default:
		s.path = -1
	}
}

// Vertex implements the [vertex.Source] interface.
func (s *ScaleBar) Vertex() (vertex.Command, float64, float64) {
	var cmd vertex.Command
	var x, y float64

	switch s.path {
	case ScaleBarBackground, ScaleBarBorder, ScaleBarRange:
		cmd, x, y = s.polys.vertex()
	case ScaleBarPointer1, ScaleBarPointer2:
		cmd, x, y = s.ellipse.Vertex()
	}

	if cmd.IsVertex() {
		x, y = s.TransformXY(x, y)
	}
	return cmd, x, y
}

// OnMouseButtonDown starts dragging the range or one of its ends.
func (s *ScaleBar) OnMouseButtonDown(x, y float64) bool {
	x, y = s.InverseTransformXY(x, y)

	px1, py1, r := s.pointer(s.value1)
	px2, py2, _ := s.pointer(s.value2)

	if s.horizontal() {
		if x > px1 && x < px2 && y > s.ys1 && y < s.ys2 {
			s.pdx = px1 - x
			s.drag = dragRange
			return true
		}
	} else {
		if y > py1 && y < py2 && x > s.xs1 && x < s.xs2 {
			s.pdy = py1 - y
			s.drag = dragRange
			return true
		}
	}

	if math.Hypot(x-px1, y-py1) <= r {
		s.pdx, s.pdy = px1-x, py1-y
		s.drag = dragValue1
		return true
	}
	if math.Hypot(x-px2, y-py2) <= r {
		s.pdx, s.pdy = px2-x, py2-y
		s.drag = dragValue2
		return true
	}
	return false
}

// OnMouseMove drags the range or one of its ends.
// A move without a pressed button ends the drag.
func (s *ScaleBar) OnMouseMove(x, y float64, buttonHeld bool) bool {
	if s.drag == dragNothing {
		return false
	}
	if !buttonHeld {
		return s.OnMouseButtonUp(x, y)
	}
	x, y = s.InverseTransformXY(x, y)

	var v float64
	if s.horizontal() {
		v = (x + s.pdx - s.xs1) / (s.xs2 - s.xs1)
	} else {
		v = (y + s.pdy - s.ys1) / (s.ys2 - s.ys1)
	}
	if math.IsNaN(v) {
		return false
	}

	switch s.drag {
	case dragValue1:
		s.value1 = max(0, min(v, s.value2-s.minD))
	case dragValue2:
		s.value2 = min(1, max(v, s.value1+s.minD))
	case dragRange:
		s.Move(v - s.value1)
	}
	return true
}

// OnMouseButtonUp ends a drag.
func (s *ScaleBar) OnMouseButtonUp(x, y float64) bool {
	s.drag = dragNothing
	return false
}

// OnArrowKeys moves the interval by a small amount.
func (s *ScaleBar) OnArrowKeys(left, right, down, up bool) bool {
	switch {
	case right || up:
		s.Move(sliderArrowStep)
	case left || down:
		s.Move(-sliderArrowStep)
	default:
		return false
	}
	return true
}
