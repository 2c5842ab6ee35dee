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
	"image/color"

	"golang.org/x/image/draw"
)

// Renderer composites scanline coverage into an image, using a solid color.
type Renderer struct {
	// Dst is the target image.
	Dst draw.Image

	// Op is the Porter-Duff operator used for compositing.
	// The default, [draw.Over], blends the color over the existing pixels.
	Op draw.Op

	src  image.Uniform
	mask image.Alpha
}

// NewRenderer returns a renderer which draws into dst.
func NewRenderer(dst draw.Image) *Renderer {
	return &Renderer{Dst: dst, Op: draw.Over}
}

// Clear fills the whole target image with c.
func (r *Renderer) Clear(c color.Color) {
	r.src.C = c
	draw.Draw(r.Dst, r.Dst.Bounds(), &r.src, image.Point{}, draw.Src)
}

// Fill composites all spans of sl, using c modulated by the coverage.
// Fully transparent colors and empty scanlines leave the image unchanged.
func (r *Renderer) Fill(sl *Scanline, c color.Color) {
	if c == nil || sl.Len() == 0 {
		return
	}
	if _, _, _, a := c.RGBA(); a == 0 && r.Op == draw.Over {
		return
	}
	r.src.C = c

	bounds := r.Dst.Bounds()
	for i := range sl.Len() {
		span := sl.Span(i)
		n := len(span.Coverage)
		rect := image.Rect(span.X, span.Y, span.X+n, span.Y+1)
		if !rect.Overlaps(bounds) {
			continue
		}

		if cap(r.mask.Pix) < n {
			r.mask.Pix = make([]uint8, n)
		}
		r.mask.Pix = r.mask.Pix[:n]
		r.mask.Stride = n
		r.mask.Rect = rect
		for j, cov := range span.Coverage {
			r.mask.Pix[j] = coverageToAlpha(cov)
		}

		draw.DrawMask(r.Dst, rect.Intersect(bounds), &r.src, image.Point{}, &r.mask, rect.Intersect(bounds).Min, r.Op)
	}
}

// coverageToAlpha converts a coverage value in [0, 1] to an 8-bit alpha value.
func coverageToAlpha(c float32) uint8 {
	return uint8(max(0, min(255, int(c*255+0.5))))
}
