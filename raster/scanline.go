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

import "image"

// Span is a horizontal run of pixels with individual coverage values.
type Span struct {
	Y, X int

	// Coverage holds one value in [0, 1] per pixel, starting at X.
	Coverage []float32
}

// Scanline accumulates the coverage spans of one filled path.
// The zero value is an empty scanline, ready to use.
//
// Internal buffers grow as needed but never shrink.
type Scanline struct {
	spans []spanRef
	buf   []float32
}

type spanRef struct {
	y, x   int
	offset int
	n      int
}

// Reset removes all spans.
func (s *Scanline) Reset() {
	s.spans = s.spans[:0]
	s.buf = s.buf[:0]
}

// Add appends a span. The coverage values are copied.
func (s *Scanline) Add(y, x int, coverage []float32) {
	if len(coverage) == 0 {
		return
	}
	s.spans = append(s.spans, spanRef{y: y, x: x, offset: len(s.buf), n: len(coverage)})
	s.buf = append(s.buf, coverage...)
}

// Len returns the number of spans.
func (s *Scanline) Len() int {
	return len(s.spans)
}

// Span returns the i-th span.
// The coverage slice is valid until the next call to Add or Reset.
func (s *Scanline) Span(i int) Span {
	ref := s.spans[i]
	return Span{
		Y:        ref.y,
		X:        ref.x,
		Coverage: s.buf[ref.offset : ref.offset+ref.n],
	}
}

// Bounds returns the smallest rectangle containing all spans.
func (s *Scanline) Bounds() image.Rectangle {
	var b image.Rectangle
	for _, ref := range s.spans {
		b = b.Union(image.Rect(ref.x, ref.y, ref.x+ref.n, ref.y+1))
	}
	return b
}
