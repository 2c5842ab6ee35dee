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

// Package text generates glyph outlines for short labels.
//
// The outlines are emitted lazily through the vertex protocol, in a
// coordinate system where y grows upwards. Only a single line of text is
// supported.
package text

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/ctrl/vertex"
)

// Parse reads a TrueType or OpenType font.
func Parse(data []byte) (*sfnt.Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return f, nil
}

// Default returns the Go Regular font.
// The font is parsed on first use.
var Default = sync.OnceValues(func() (*sfnt.Font, error) {
	return Parse(goregular.TTF)
})

// Outline is a vertex source for the glyph outlines of a string.
//
// The text starts at (X, Y), which is the left end of the baseline.
// Height is the height of capital letters. If Width is positive, glyphs
// are stretched horizontally by Width/Height.
//
// The zero value uses the [Default] font and emits nothing until Text and
// Height are set.
type Outline struct {
	Text   string
	X, Y   float64
	Height float64
	Width  float64

	font    *sfnt.Font
	buf     sfnt.Buffer
	ref     fixed.Int26_6 // ppem at which outlines are loaded
	capH    float64       // cap height at ppem ref
	sx, sy  float64
	textPos int
	segs    sfnt.Segments
	seg     int
	arg     int
	open    bool
	done    bool
	pen     float64 // origin of the current glyph, in units of ref
	nextPen float64
	prev    sfnt.GlyphIndex
	hasPrev bool
}

// NewOutline returns an outline generator using the given font.
// If f is nil, the [Default] font is used.
func NewOutline(f *sfnt.Font) *Outline {
	o := &Outline{done: true}
	o.setFont(f)
	return o
}

func (o *Outline) setFont(f *sfnt.Font) {
	o.font = f
	if f == nil {
		return
	}
	o.ref = fixed.I(int(f.UnitsPerEm()))
	o.capH = capHeight(f, &o.buf, o.ref)
}

// capHeight returns the height of capital letters at the given ppem, in pixels.
func capHeight(f *sfnt.Font, buf *sfnt.Buffer, ppem fixed.Int26_6) float64 {
	m, err := f.Metrics(buf, ppem, font.HintingNone)
	if err == nil && m.CapHeight > 0 {
		return float64(m.CapHeight) / 64
	}
	if gi, err := f.GlyphIndex(buf, 'H'); err == nil && gi != 0 {
		b, _, err := f.GlyphBounds(buf, gi, ppem, font.HintingNone)
		if err == nil && b.Min.Y < 0 {
			return float64(-b.Min.Y) / 64
		}
	}
	return 0.7 * float64(ppem) / 64
}

// SetFont replaces the font.
func (o *Outline) SetFont(f *sfnt.Font) {
	o.setFont(f)
	o.done = true
}

// Advance returns the horizontal extent of the text, including the advance
// width of the last glyph.
func (o *Outline) Advance() float64 {
	if !o.prepare() {
		return 0
	}
	var buf sfnt.Buffer // o.buf may hold the current glyph
	var total fixed.Int26_6
	var prev sfnt.GlyphIndex
	for i, r := range o.Text {
		gi, err := o.font.GlyphIndex(&buf, r)
		if err != nil {
			continue
		}
		if i > 0 {
			if k, err := o.font.Kern(&buf, prev, gi, o.ref, font.HintingNone); err == nil {
				total += k
			}
		}
		if adv, err := o.font.GlyphAdvance(&buf, gi, o.ref, font.HintingNone); err == nil {
			total += adv
		}
		prev = gi
	}
	return float64(total) / 64 * o.sx
}

// prepare resolves the font and the scale factors.
// It returns false if nothing can be drawn.
func (o *Outline) prepare() bool {
	if o.font == nil {
		f, err := Default()
		if err != nil {
			return false
		}
		o.setFont(f)
	}
	if o.Height <= 0 || o.capH <= 0 {
		return false
	}
	o.sy = o.Height / o.capH
	o.sx = o.sy
	if o.Width > 0 {
		o.sx = o.sy * o.Width / o.Height
	}
	return true
}

// Rewind implements the [vertex.Source] interface.
// The outline has a single sub-path, with index 0.
func (o *Outline) Rewind(pathID int) {
	o.done = pathID != 0 || !o.prepare()
	o.textPos = 0
	o.segs = nil
	o.seg, o.arg = 0, 0
	o.open = false
	o.pen, o.nextPen = 0, 0
	o.hasPrev = false
}

// Vertex implements the [vertex.Source] interface.
func (o *Outline) Vertex() (vertex.Command, float64, float64) {
	for !o.done {
		if o.seg < len(o.segs) {
			s := &o.segs[o.seg]
			switch s.Op {
			case sfnt.SegmentOpMoveTo:
				if o.open {
					o.open = false
					return vertex.ClosePolygon(vertex.OrientNone), 0, 0
				}
				o.seg++
				o.open = true
				x, y := o.point(s.Args[0])
				return vertex.MoveTo, x, y
			case sfnt.SegmentOpLineTo:
				o.seg++
				x, y := o.point(s.Args[0])
				return vertex.LineTo, x, y
			case sfnt.SegmentOpQuadTo:
				x, y := o.point(s.Args[o.arg])
				o.step(2)
				return vertex.Curve3, x, y
			case sfnt.SegmentOpCubeTo:
				x, y := o.point(s.Args[o.arg])
				o.step(3)
				return vertex.Curve4, x, y
			default:
				o.seg++
				continue
			}
		}

		if o.open {
			o.open = false
			return vertex.ClosePolygon(vertex.OrientNone), 0, 0
		}
		if !o.nextGlyph() {
			o.done = true
		}
	}
	return vertex.Stop, 0, 0
}

// step advances to the next argument of a curve segment with n points.
func (o *Outline) step(n int) {
	o.arg++
	if o.arg == n {
		o.arg = 0
		o.seg++
	}
}

// nextGlyph loads the outline of the next glyph.
// It returns false at the end of the text.
func (o *Outline) nextGlyph() bool {
	if o.font == nil {
		return false
	}
	for o.textPos < len(o.Text) {
		r, size := utf8.DecodeRuneInString(o.Text[o.textPos:])
		o.textPos += size

		gi, err := o.font.GlyphIndex(&o.buf, r)
		if err != nil {
			continue
		}

		o.pen = o.nextPen
		if o.hasPrev {
			if k, err := o.font.Kern(&o.buf, o.prev, gi, o.ref, font.HintingNone); err == nil {
				o.pen += float64(k) / 64
			}
		}
		adv, err := o.font.GlyphAdvance(&o.buf, gi, o.ref, font.HintingNone)
		if err != nil {
			adv = 0
		}
		o.nextPen = o.pen + float64(adv)/64
		o.prev, o.hasPrev = gi, true

		segs, err := o.font.LoadGlyph(&o.buf, gi, o.ref, nil)
		if err != nil {
			continue
		}
		o.segs = segs
		o.seg, o.arg = 0, 0
		return true
	}
	return false
}

// point converts a glyph point to output coordinates.
// Glyph coordinates have y growing downwards.
func (o *Outline) point(p fixed.Point26_6) (float64, float64) {
	x := o.X + (o.pen+float64(p.X)/64)*o.sx
	y := o.Y - float64(p.Y)/64*o.sy
	return x, y
}
