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

package vertex

import "math"

// Ellipse generates an axis-aligned ellipse as a closed polygon.
// The zero value is an empty ellipse.
type Ellipse struct {
	cx, cy float64
	rx, ry float64
	steps  int
	cw     bool
	step   int
}

// NewEllipse returns an ellipse with the given centre and radii,
// approximated by a polygon with the given number of vertices.
// If steps is not positive, a suitable value is derived from the radii.
func NewEllipse(cx, cy, rx, ry float64, steps int, cw bool) *Ellipse {
	e := &Ellipse{}
	e.Init(cx, cy, rx, ry, steps, cw)
	return e
}

// Init replaces the geometry of the ellipse and rewinds it.
func (e *Ellipse) Init(cx, cy, rx, ry float64, steps int, cw bool) {
	e.cx, e.cy = cx, cy
	e.rx, e.ry = rx, ry
	e.cw = cw
	if steps <= 0 {
		steps = ellipseSteps(rx, ry)
	}
	e.steps = steps
	e.step = 0
}

// ellipseSteps chooses the number of polygon vertices so that the
// polygon deviates from the ellipse by about 1/8 unit.
func ellipseSteps(rx, ry float64) int {
	ra := (math.Abs(rx) + math.Abs(ry)) / 2
	if ra == 0 {
		return 4
	}
	da := math.Acos(ra/(ra+0.125)) * 2
	n := int(math.Round(2 * math.Pi / da))
	return max(n, 4)
}

// Rewind implements the [Source] interface.
// An ellipse has a single sub-path, with index 0.
func (e *Ellipse) Rewind(pathID int) {
	if pathID != 0 {
		e.step = e.steps + 1
		return
	}
	e.step = 0
}

// Vertex implements the [Source] interface.
func (e *Ellipse) Vertex() (Command, float64, float64) {
	if e.steps == 0 {
		return Stop, 0, 0
	}
	if e.step == e.steps {
		e.step++
		o := OrientCCW
		if e.cw {
			o = OrientCW
		}
		return ClosePolygon(o), 0, 0
	}
	if e.step > e.steps {
		return Stop, 0, 0
	}

	angle := float64(e.step) / float64(e.steps) * 2 * math.Pi
	if e.cw {
		angle = 2*math.Pi - angle
	}
	x := e.cx + math.Cos(angle)*e.rx
	y := e.cy + math.Sin(angle)*e.ry

	e.step++
	if e.step == 1 {
		return MoveTo, x, y
	}
	return LineTo, x, y
}
