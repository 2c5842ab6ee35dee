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

	"seehuhn.de/go/geom/matrix"
)

// Base holds the geometry shared by all controls: the bounding rectangle in
// local control space, the flip flag and an optional transformation.
//
// Local coordinates are converted to device coordinates in two steps.
// First, if the flip flag is set, y is mirrored inside the bounding
// rectangle. Then the attached matrix, if any, is applied. The inverse
// conversion undoes these steps in the opposite order.
type Base struct {
	x1, y1, x2, y2 float64
	flipY          bool
	mtx            *matrix.Matrix
}

// NewBase returns the base for a control with bounding rectangle
// (x1, y1)-(x2, y2). The flip flag should be set if the y axis of the
// device points downwards.
func NewBase(x1, y1, x2, y2 float64, flipY bool) Base {
	return Base{x1: x1, y1: y1, x2: x2, y2: y2, flipY: flipY}
}

// SetTransform attaches a transformation matrix.
//
// The control does not copy the matrix. The caller may modify it between
// frames and must keep it alive while the control is in use.
// A nil matrix detaches the transformation.
func (b *Base) SetTransform(m *matrix.Matrix) {
	b.mtx = m
}

// NoTransform detaches the transformation matrix.
func (b *Base) NoTransform() {
	b.mtx = nil
}

// Transform returns the attached matrix, or nil.
func (b *Base) Transform() *matrix.Matrix {
	return b.mtx
}

// Rect returns the bounding rectangle in local control space.
func (b *Base) Rect() (x1, y1, x2, y2 float64) {
	return b.x1, b.y1, b.x2, b.y2
}

// FlipY reports whether y coordinates are mirrored.
func (b *Base) FlipY() bool {
	return b.flipY
}

// InRect reports whether the device space point (x, y) lies in the
// bounding rectangle.
func (b *Base) InRect(x, y float64) bool {
	x, y = b.InverseTransformXY(x, y)
	return x >= b.x1 && x <= b.x2 && y >= b.y1 && y <= b.y2
}

// TransformXY converts local coordinates to device coordinates.
func (b *Base) TransformXY(x, y float64) (float64, float64) {
	if b.flipY {
		y = b.y1 + b.y2 - y
	}
	if m := b.mtx; m != nil {
		x, y = m[0]*x+m[2]*y+m[4], m[1]*x+m[3]*y+m[5]
	}
	return x, y
}

// InverseTransformXY converts device coordinates to local coordinates.
// A singular matrix is treated as the identity.
func (b *Base) InverseTransformXY(x, y float64) (float64, float64) {
	if m := b.mtx; m != nil {
		det := m[0]*m[3] - m[1]*m[2]
		if det != 0 && !math.IsNaN(det) && !math.IsInf(det, 0) {
			dx, dy := x-m[4], y-m[5]
			x, y = (m[3]*dx-m[2]*dy)/det, (m[0]*dy-m[1]*dx)/det
		}
	}
	if b.flipY {
		y = b.y1 + b.y2 - y
	}
	return x, y
}

// Scale returns the average scale factor of the attached matrix,
// or 1 if no matrix is attached.
func (b *Base) Scale() float64 {
	m := b.mtx
	if m == nil {
		return 1
	}
	x := math.Sqrt2 / 2 * (m[0] + m[2])
	y := math.Sqrt2 / 2 * (m[1] + m[3])
	return math.Sqrt(x*x + y*y)
}

// invScale converts a length in device space to local space.
func (b *Base) invScale(d float64) float64 {
	s := b.Scale()
	if s == 0 {
		return d
	}
	return d / s
}
