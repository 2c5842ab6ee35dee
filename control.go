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

// Package ctrl implements interactive controls which are drawn as vector
// paths.
//
// Every control is a [vertex.Source] with several sub-paths, for example a
// border, a label and a marker. [RenderControl] rasterises the sub-paths one
// by one and fills each with the color the control assigns to it. Pointer
// and keyboard events are passed to the controls directly, or through a
// [Container] which keeps track of the control being dragged.
//
// Controls keep no path buffers: the vertices are computed on the fly from
// the current state, every time a sub-path is iterated.
//
// Controls are not safe for concurrent use.
package ctrl

import (
	"image/color"

	"seehuhn.de/go/ctrl/vertex"
)

// Shape is a vertex source with a known number of sub-paths.
// Sub-path indices outside 0, ..., NumPaths()-1 are empty.
type Shape interface {
	vertex.Source
	NumPaths() int
}

// Colorer assigns a fill color to each sub-path of a control.
type Colorer interface {
	Color(i int) color.Color
}

// InputHandler is implemented by controls which react to user input.
// All coordinates are in device space.
// The methods return true if the event was consumed and the control needs
// to be redrawn.
type InputHandler interface {
	InRect(x, y float64) bool
	OnMouseButtonDown(x, y float64) bool
	OnMouseButtonUp(x, y float64) bool
	OnMouseMove(x, y float64, buttonHeld bool) bool
	OnArrowKeys(left, right, down, up bool) bool
}

// Control is an interactive control.
type Control interface {
	Shape
	Colorer
	InputHandler
}

// InputFlags describes the state of mouse buttons and modifier keys.
type InputFlags uint8

// These are the bits of an [InputFlags] value.
const (
	MouseLeft InputFlags = 1 << iota
	MouseRight
	KbdShift
	KbdCtrl
)

// ButtonHeld reports whether a mouse button is pressed.
func (f InputFlags) ButtonHeld() bool {
	return f&(MouseLeft|MouseRight) != 0
}

// rgba converts color components in the range [0, 1] to a color.
func rgba(r, g, b, a float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp(r, 0, 1)*255 + 0.5),
		G: uint8(clamp(g, 0, 1)*255 + 0.5),
		B: uint8(clamp(b, 0, 1)*255 + 0.5),
		A: uint8(clamp(a, 0, 1)*255 + 0.5),
	}
}

// palette stores the colors of the sub-paths of a control.
type palette []color.Color

// Color returns the color for sub-path i.
// Unknown indices give a transparent color.
func (p palette) Color(i int) color.Color {
	if i < 0 || i >= len(p) || p[i] == nil {
		return color.Transparent
	}
	return p[i]
}

// SetColor sets the color for sub-path i.
// Unknown indices are ignored.
func (p palette) SetColor(i int, c color.Color) {
	if i >= 0 && i < len(p) {
		p[i] = c
	}
}

// clamp limits v to the range [lo, hi]. NaN is mapped to lo.
func clamp(v, lo, hi float64) float64 {
	if v < lo || v != v {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// polyGen emits up to two closed polygons, whose vertices are stored in
// vx and vy.
type polyGen struct {
	vx, vy [8]float64
	n, k   int // number of polygons, vertices per polygon
	pos    int
}

// set selects n polygons of k vertices each and restarts iteration.
func (g *polyGen) set(n, k int) {
	g.n, g.k, g.pos = n, k, 0
}

// rect selects the rectangle (x1, y1)-(x2, y2).
func (g *polyGen) rect(x1, y1, x2, y2 float64) {
	g.vx = [8]float64{x1, x2, x2, x1}
	g.vy = [8]float64{y1, y1, y2, y2}
	g.set(1, 4)
}

// frame selects a rectangular frame of thickness t inside (x1, y1)-(x2, y2).
// The inner rectangle runs in the opposite direction, so that it cuts a hole
// into the outer one.
func (g *polyGen) frame(x1, y1, x2, y2, t float64) {
	g.vx = [8]float64{x1, x2, x2, x1, x1 + t, x1 + t, x2 - t, x2 - t}
	g.vy = [8]float64{y1, y1, y2, y2, y1 + t, y2 - t, y2 - t, y1 + t}
	g.set(2, 4)
}

// clear selects no polygons.
func (g *polyGen) clear() {
	g.set(0, 0)
}

func (g *polyGen) vertex() (vertex.Command, float64, float64) {
	if g.pos >= g.n*(g.k+1) {
		return vertex.Stop, 0, 0
	}
	poly, i := g.pos/(g.k+1), g.pos%(g.k+1)
	g.pos++
	switch {
	case i == g.k:
		return vertex.ClosePolygon(vertex.OrientNone), 0, 0
	case i == 0:
		return vertex.MoveTo, g.vx[poly*g.k], g.vy[poly*g.k]
	default:
		return vertex.LineTo, g.vx[poly*g.k+i], g.vy[poly*g.k+i]
	}
}
