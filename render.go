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

	"seehuhn.de/go/ctrl/raster"
	"seehuhn.de/go/ctrl/vertex"
)

// Rasterizer converts a sub-path into coverage spans.
// [raster.Rasteriser] and [raster.Vector] implement this interface.
type Rasterizer interface {
	Reset()
	AddPath(src vertex.Source, pathID int)
	Sweep(sl *raster.Scanline) bool
}

// Renderer blends a color into the pixels covered by a scanline.
// [raster.Renderer] implements this interface.
type Renderer interface {
	Fill(sl *raster.Scanline, c color.Color)
}

// ColoredShape is a shape with a color for every sub-path.
type ColoredShape interface {
	Shape
	Colorer
}

// RenderControl draws all sub-paths of c, in index order.
// Each sub-path is rasterised on its own and filled with c.Color(i), so
// later sub-paths are drawn on top of earlier ones.
func RenderControl(ras Rasterizer, sl *raster.Scanline, ren Renderer, c ColoredShape) {
	for i := range c.NumPaths() {
		ras.Reset()
		ras.AddPath(c, i)
		sl.Reset()
		ras.Sweep(sl)
		ren.Fill(sl, c.Color(i))
	}
}

// RenderControls draws the given controls, in order.
func RenderControls(ras Rasterizer, sl *raster.Scanline, ren Renderer, cs ...Control) {
	for _, c := range cs {
		RenderControl(ras, sl, ren, c)
	}
}
