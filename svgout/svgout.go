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
// Package svgout writes a frame of controls as an SVG image.
//
// Every non-empty sub-path of every control becomes one SVG path element,
// filled with the nonzero winding rule.
package svgout

import (
	"fmt"
	"image/color"
	"io"

	"honnef.co/go/curve"

	"seehuhn.de/go/ctrl"
	"seehuhn.de/go/ctrl/vertex"
)

// precision is the number of decimal places used for coordinates.
const precision = 3

// Write writes an SVG image of the given size, showing the shapes on top of
// the background color bg. If bg is nil, the background is left
// transparent.
func Write(w io.Writer, width, height int, bg color.Color, shapes ...ctrl.ColoredShape) error {
	ew := &errWriter{w: w}
	ew.printf("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		width, height, width, height)
	if bg != nil {
		ew.printf("<rect width=\"%d\" height=\"%d\"%s/>\n", width, height, fillAttrs(bg))
	}

	opts := curve.SVGOptions{MaxPrecision: precision}
	for _, s := range shapes {
		for i := range s.NumPaths() {
			c := s.Color(i)
			if c == nil {
				continue
			}
			if _, _, _, a := c.RGBA(); a == 0 {
				continue
			}
			bp := vertex.ToBezPath(s, i)
			if len(bp) == 0 {
				continue
			}
			ew.printf("<path d=\"")
			if ew.err == nil {
				ew.err = bp.WriteSVG(ew.w, opts)
			}
			ew.printf("\"%s/>\n", fillAttrs(c))
		}
	}
	ew.printf("</svg>\n")

	if ew.err != nil {
		return fmt.Errorf("svgout: %w", ew.err)
	}
	return nil
}

// fillAttrs returns the fill and fill-opacity attributes for c.
func fillAttrs(c color.Color) string {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	s := fmt.Sprintf(" fill=\"#%02x%02x%02x\"", nc.R, nc.G, nc.B)
	if nc.A != 0xff {
		s += fmt.Sprintf(" fill-opacity=\"%.3g\"", float64(nc.A)/255)
	}
	return s
}

// errWriter remembers the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
