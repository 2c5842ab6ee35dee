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
// Package pdfout writes a frame of controls to a PDF file.
//
// The controls are written as filled vector paths, one path per sub-path,
// so the result can be zoomed without loss. The device space of the
// controls is taken to have its origin in the top-left corner, with y
// growing downwards, as for the raster output.
//
// PDF colors have no alpha channel here. Translucent colors are blended
// with the background color before they are written.
package pdfout

import (
	"fmt"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/ctrl"
	"seehuhn.de/go/ctrl/vertex"
)

// WriteFile writes a single-page PDF file of the given size in points,
// showing the shapes on top of the background color bg.
// If bg is nil, a white background is used.
func WriteFile(fname string, width, height float64, bg color.Color, shapes ...ctrl.ColoredShape) error {
	if bg == nil {
		bg = color.White
	}
	paper := &pdf.Rectangle{URx: width, URy: height}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("pdfout: %w", err)
	}

	bgRGB := toRGB(bg, rgb{1, 1, 1})
	page.SetFillColor(bgRGB.pdf())
	page.Rectangle(0, 0, width, height)
	page.Fill()

	// PDF origin is bottom-left
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})

	for _, s := range shapes {
		for i := range s.NumPaths() {
			c := s.Color(i)
			if c == nil {
				continue
			}
			if _, _, _, a := c.RGBA(); a == 0 {
				continue
			}
			p := vertex.ToData(s, i)
			if len(p.Cmds) == 0 {
				continue
			}
			page.SetFillColor(toRGB(c, bgRGB).pdf())
			drawPath(page, p)
			page.Fill()
		}
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("pdfout: %w", err)
	}
	return nil
}

// drawPath appends p to the current path of the page.
// Quadratic segments are converted to cubic ones.
func drawPath(page *document.Page, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

type rgb [3]float64

func (c rgb) pdf() pdfcolor.Color {
	return pdfcolor.DeviceRGB{c[0], c[1], c[2]}
}

// toRGB converts c to RGB components in [0, 1], blending translucent
// colors with bg.
func toRGB(c color.Color, bg rgb) rgb {
	r, g, b, a := c.RGBA() // premultiplied
	if a == 0 {
		return bg
	}
	alpha := float64(a) / 0xffff
	return rgb{
		float64(r)/0xffff + (1-alpha)*bg[0],
		float64(g)/0xffff + (1-alpha)*bg[1],
		float64(b)/0xffff + (1-alpha)*bg[2],
	}
}
