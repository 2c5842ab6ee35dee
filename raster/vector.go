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

package raster

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/ctrl/vertex"
)

// Vector is a rasteriser backed by [vector.Rasterizer].
// It always uses the nonzero winding rule, and its coverage is quantised
// to 8 bits.
//
// The output region is the rectangle from (0, 0) to (width, height).
type Vector struct {
	// CTM is applied to all vertices before rasterisation.
	CTM matrix.Matrix

	z     *vector.Rasterizer
	mask  *image.Alpha
	row   []float32
	empty bool
}

// NewVector returns a rasteriser for an output region of the given size.
func NewVector(width, height int) *Vector {
	z := vector.NewRasterizer(width, height)
	z.DrawOp = draw.Src
	return &Vector{
		CTM:   matrix.Identity,
		z:     z,
		mask:  image.NewAlpha(image.Rect(0, 0, width, height)),
		row:   make([]float32, width),
		empty: true,
	}
}

// Reset discards all paths added so far.
func (v *Vector) Reset() {
	b := v.mask.Rect
	v.z.Reset(b.Dx(), b.Dy())
	v.z.DrawOp = draw.Src
	v.empty = true
}

// AddPath reads one sub-path of src and adds it to the rasteriser.
// Open polygons are closed implicitly.
func (v *Vector) AddPath(src vertex.Source, pathID int) {
	src.Rewind(pathID)

	var ctrl [2][2]float32
	nCtrl := 0
	open := false
	for range vertex.MaxCollect {
		cmd, x, y := src.Vertex()
		if cmd.IsStop() {
			break
		}
		dx, dy := v.apply(x, y)

		if cmd.IsVertex() && (cmd.IsMoveTo() || !open) {
			if open {
				v.z.ClosePath()
			}
			v.z.MoveTo(dx, dy)
			open = true
			nCtrl = 0
			continue
		}

		switch cmd.Kind() {
		case vertex.LineTo:
			v.z.LineTo(dx, dy)
			v.empty = false
			nCtrl = 0
		case vertex.Curve3:
			if nCtrl < 1 {
				ctrl[nCtrl] = [2]float32{dx, dy}
				nCtrl++
				continue
			}
			v.z.QuadTo(ctrl[0][0], ctrl[0][1], dx, dy)
			v.empty = false
			nCtrl = 0
		case vertex.Curve4:
			if nCtrl < 2 {
				ctrl[nCtrl] = [2]float32{dx, dy}
				nCtrl++
				continue
			}
			v.z.CubeTo(ctrl[0][0], ctrl[0][1], ctrl[1][0], ctrl[1][1], dx, dy)
			v.empty = false
			nCtrl = 0
		case vertex.EndPoly:
			if open {
				v.z.ClosePath()
			}
			open = false
			nCtrl = 0
		}
	}
	if open {
		v.z.ClosePath()
	}
}

func (v *Vector) apply(x, y float64) (float32, float32) {
	m := v.CTM
	return float32(m[0]*x + m[2]*y + m[4]), float32(m[1]*x + m[3]*y + m[5])
}

// Sweep appends the coverage of all paths added since the last Reset to sl.
// It returns true if any pixel is covered.
func (v *Vector) Sweep(sl *Scanline) bool {
	if v.empty {
		return false
	}
	clear(v.mask.Pix)
	v.z.Draw(v.mask, v.mask.Rect, image.Opaque, image.Point{})

	n := sl.Len()
	w := v.mask.Rect.Dx()
	for y := range v.mask.Rect.Dy() {
		pix := v.mask.Pix[y*v.mask.Stride : y*v.mask.Stride+w]
		for x, a := range pix {
			v.row[x] = float32(a) / 255
		}
		if trimmed, offset := trimZeros(v.row[:w]); trimmed != nil {
			sl.Add(y, offset, trimmed)
		}
	}
	return sl.Len() > n
}
