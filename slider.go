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
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/ctrl/text"
	"seehuhn.de/go/ctrl/vertex"
)

// Sub-paths of a [Slider].
const (
	SliderBackground = iota
	SliderTriangle
	SliderText
	SliderPreview
	SliderPointer
	SliderSteps
	sliderNumPaths
)

// sliderArrowStep is the change of the normalised value for one arrow key
// press, if the slider has no steps.
const sliderArrowStep = 0.005

// Slider selects a number from a range by dragging a pointer.
//
// Internally the value is kept normalised to [0, 1]. While the pointer is
// dragged, only the preview value follows the mouse; the value proper is
// updated, and snapped to the nearest step, when the button is released.
type Slider struct {
	Base
	palette

	xs1, ys1, xs2, ys2 float64

	borderWidth  float64
	borderExtra  float64
	value        float64
	previewValue float64
	min, max     float64
	numSteps     int
	descending   bool
	label        string

	pdx      float64
	dragging bool

	// iteration state
	path    int
	pos     int
	polys   polyGen
	text    text.Outline
	ellipse vertex.Ellipse
}

// NewSlider returns a slider with bounding rectangle (x1, y1)-(x2, y2),
// range [0, 1] and value 0.5.
func NewSlider(x1, y1, x2, y2 float64, flipY bool) *Slider {
	s := &Slider{
		Base:         NewBase(x1, y1, x2, y2, flipY),
		palette:      make(palette, sliderNumPaths),
		borderWidth:  1,
		borderExtra:  (y2 - y1) / 2,
		value:        0.5,
		previewValue: 0.5,
		min:          0,
		max:          1,
		path:         -1,
	}
	s.palette[SliderBackground] = rgba(1, 0.9, 0.8, 1)
	s.palette[SliderTriangle] = rgba(0.7, 0.6, 0.6, 1)
	s.palette[SliderText] = rgba(0, 0, 0, 1)
	s.palette[SliderPreview] = rgba(0.6, 0.4, 0.4, 0.4)
	s.palette[SliderPointer] = rgba(0.8, 0, 0, 0.6)
	s.palette[SliderSteps] = rgba(0, 0, 0, 1)
	s.calcBox()
	return s
}

func (s *Slider) calcBox() {
	x1, y1, x2, y2 := s.Rect()
	s.xs1 = x1 + s.borderWidth
	s.ys1 = y1 + s.borderWidth
	s.xs2 = x2 - s.borderWidth
	s.ys2 = y2 - s.borderWidth
}

// SetBorderWidth sets the inset of the track and the extra margin of the
// background around the bounding rectangle.
func (s *Slider) SetBorderWidth(t, extra float64) {
	s.borderWidth = max(t, 0)
	s.borderExtra = max(extra, 0)
	s.calcBox()
}

// SetRange sets the range of values. The normalised position of the
// pointer is kept.
func (s *Slider) SetRange(lo, hi float64) {
	s.min = lo
	s.max = hi
}

// SetNumSteps restricts the slider to n+1 equally spaced values.
// Zero allows all values.
func (s *Slider) SetNumSteps(n int) {
	s.numSteps = max(n, 0)
	s.normalize(true)
}

// SetDescending selects a triangle which gets smaller from left to right.
func (s *Slider) SetDescending(d bool) {
	s.descending = d
}

// SetLabel sets the label. If the label contains a formatting verb,
// the verb is expanded with the current value, for example "Gamma=%.3f".
func (s *Slider) SetLabel(format string) {
	s.label = format
}

// Value returns the current value.
func (s *Slider) Value() float64 {
	return s.value*(s.max-s.min) + s.min
}

// SetValue sets the value. Values outside the range are clamped.
func (s *Slider) SetValue(v float64) {
	s.previewValue = clamp((v-s.min)/(s.max-s.min), 0, 1)
	s.normalize(true)
}

// normalize snaps the preview value to the nearest step and stores it as
// the value. It reports whether the value changed.
func (s *Slider) normalize(preview bool) bool {
	changed := true
	if s.numSteps > 0 {
		n := float64(s.numSteps)
		step := math.Floor(s.previewValue*n + 0.5)
		changed = s.value != step/n
		s.value = step / n
	} else {
		s.value = s.previewValue
	}
	if preview {
		s.previewValue = s.value
	}
	return changed
}

// labelText returns the label with its formatting verb expanded.
// Labels without a valid verb, like "100%", are used as given.
func (s *Slider) labelText() string {
	if !strings.Contains(s.label, "%") {
		return s.label
	}
	res := fmt.Sprintf(s.label, s.Value())
	if strings.Contains(res, "%!") {
		return s.label
	}
	return res
}

// pointerX returns the horizontal position of the pointer for the
// normalised value v.
func (s *Slider) pointerX(v float64) float64 {
	return s.xs1 + (s.xs2-s.xs1)*v
}

// NumPaths implements the [Shape] interface.
func (s *Slider) NumPaths() int { return sliderNumPaths }

// Rewind implements the [vertex.Source] interface.
func (s *Slider) Rewind(pathID int) {
	s.path = pathID
	s.pos = 0
	s.polys.clear()
	x1, y1, x2, y2 := s.Rect()

	switch pathID {
	case SliderBackground:
		e := s.borderExtra
		s.polys.rect(x1-e, y1-e, x2+e, y2+e)

	case SliderTriangle:
		if s.descending {
			s.polys.vx = [8]float64{x1, x2, x1}
			s.polys.vy = [8]float64{y1, y1, y2}
		} else {
			s.polys.vx = [8]float64{x1, x2, x2}
			s.polys.vy = [8]float64{y1, y1, y2}
		}
		s.polys.set(1, 3)

	case SliderText:
		s.text.Text = s.labelText()
		s.text.X = x1
		s.text.Y = y1
		s.text.Height = y2 - y1
		s.text.Rewind(0)

	case SliderPreview, SliderPointer:
		v := s.value
		if pathID == SliderPreview {
			v = s.previewValue
		}
		r := y2 - y1
		s.ellipse.Init(s.pointerX(v), (s.ys1+s.ys2)/2, r, r, 32, false)

	case SliderSteps:
		// generated in Vertex

	default:
		s.path = -1
	}
}

// Vertex implements the [vertex.Source] interface.
func (s *Slider) Vertex() (vertex.Command, float64, float64) {
	var cmd vertex.Command
	var x, y float64

	switch s.path {
	case SliderBackground, SliderTriangle:
		cmd, x, y = s.polys.vertex()
	case SliderText:
		cmd, x, y = s.text.Vertex()
	case SliderPreview, SliderPointer:
		cmd, x, y = s.ellipse.Vertex()
	case SliderSteps:
		cmd, x, y = s.tick()
	}

	if cmd.IsVertex() {
		x, y = s.TransformXY(x, y)
	}
	return cmd, x, y
}

// tick emits the step marks, one small triangle per step below the track.
func (s *Slider) tick() (vertex.Command, float64, float64) {
	n := s.numSteps
	if n == 0 || s.pos >= 4*(n+1) {
		return vertex.Stop, 0, 0
	}
	x1, y1, x2, _ := s.Rect()
	i, k := s.pos/4, s.pos%4
	s.pos++

	d := min((s.xs2-s.xs1)/float64(n), 0.004) * (x2 - x1)
	x := s.xs1 + (s.xs2-s.xs1)*float64(i)/float64(n)
	yb := y1 - s.borderExtra
	switch k {
	case 0:
		return vertex.MoveTo, x, y1
	case 1:
		return vertex.LineTo, x - d, yb
	case 2:
		return vertex.LineTo, x + d, yb
	default:
		return vertex.ClosePolygon(vertex.OrientNone), 0, 0
	}
}

// OnMouseButtonDown grabs the pointer, if (x, y) is close to it.
func (s *Slider) OnMouseButtonDown(x, y float64) bool {
	x, y = s.InverseTransformXY(x, y)
	_, y1, _, y2 := s.Rect()
	xp := s.pointerX(s.value)
	yp := (s.ys1 + s.ys2) / 2
	if math.Hypot(x-xp, y-yp) > y2-y1 {
		return false
	}
	s.pdx = xp - x
	s.dragging = true
	return true
}

// OnMouseMove moves the preview pointer while the slider is dragged.
// A move without a pressed button ends the drag.
func (s *Slider) OnMouseMove(x, y float64, buttonHeld bool) bool {
	if !s.dragging {
		return false
	}
	if !buttonHeld {
		return s.OnMouseButtonUp(x, y)
	}
	x, _ = s.InverseTransformXY(x, y)
	xp := x + s.pdx
	s.previewValue = clamp((xp-s.xs1)/(s.xs2-s.xs1), 0, 1)
	return true
}

// OnMouseButtonUp ends a drag and snaps the value to the nearest step.
func (s *Slider) OnMouseButtonUp(x, y float64) bool {
	s.dragging = false
	s.normalize(true)
	return true
}

// OnArrowKeys changes the value by one step.
func (s *Slider) OnArrowKeys(left, right, down, up bool) bool {
	d := sliderArrowStep
	if s.numSteps > 0 {
		d = 1 / float64(s.numSteps)
	}
	switch {
	case right || up:
		s.previewValue = clamp(s.previewValue+d, 0, 1)
	case left || down:
		s.previewValue = clamp(s.previewValue-d, 0, 1)
	default:
		return false
	}
	s.normalize(true)
	return true
}
