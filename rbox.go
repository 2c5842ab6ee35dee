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
	"math"

	"seehuhn.de/go/ctrl/text"
	"seehuhn.de/go/ctrl/vertex"
)

// Sub-paths of a [RadioBox].
const (
	RadioBoxBackground = iota
	RadioBoxBorder
	RadioBoxText
	RadioBoxInactive
	RadioBoxActive
	radioBoxNumPaths
)

// MaxRadioItems is the maximal number of items in a [RadioBox].
const MaxRadioItems = 32

// radioCircleSteps is the number of vertices of the item circles.
const radioCircleSteps = 32

// RadioBox is a group of mutually exclusive items.
type RadioBox struct {
	Base
	palette

	xs1, ys1 float64

	borderWidth   float64
	borderExtra   float64
	textThickness float64
	textHeight    float64
	textWidth     float64
	items         []string
	cur           int

	// iteration state
	path    int
	item    int
	polys   polyGen
	text    text.Outline
	ellipse vertex.Ellipse
	stroke  vertex.Stroke
}

// NewRadioBox returns an empty radio box with bounding rectangle
// (x1, y1)-(x2, y2).
func NewRadioBox(x1, y1, x2, y2 float64, flipY bool) *RadioBox {
	r := &RadioBox{
		Base:          NewBase(x1, y1, x2, y2, flipY),
		palette:       make(palette, radioBoxNumPaths),
		borderWidth:   1,
		textThickness: 1.5,
		textHeight:    9,
		cur:           -1,
		path:          -1,
	}
	r.stroke = *vertex.NewStroke(&r.ellipse, r.textThickness)
	r.palette[RadioBoxBackground] = rgba(1, 1, 0.9, 1)
	r.palette[RadioBoxBorder] = color.Black
	r.palette[RadioBoxText] = color.Black
	r.palette[RadioBoxInactive] = color.Black
	r.palette[RadioBoxActive] = rgba(0.4, 0, 0, 1)
	r.calcBox()
	return r
}

func (r *RadioBox) calcBox() {
	x1, y1, _, _ := r.Rect()
	r.xs1 = x1 + r.borderWidth
	r.ys1 = y1 + r.borderWidth
}

// SetBorderWidth sets the width of the border and the extra margin of the
// background around the bounding rectangle.
func (r *RadioBox) SetBorderWidth(t, extra float64) {
	r.borderWidth = max(t, 0)
	r.borderExtra = max(extra, 0)
	r.calcBox()
}

// SetTextThickness sets the line width of the item circles.
func (r *RadioBox) SetTextThickness(t float64) {
	r.textThickness = max(t, 0)
}

// SetTextSize sets the height of capital letters in the item labels.
// If w is positive, glyphs are stretched to width w.
func (r *RadioBox) SetTextSize(h, w float64) {
	r.textHeight = max(h, 0)
	r.textWidth = max(w, 0)
}

// AddItem appends an item. Items beyond [MaxRadioItems] are ignored.
func (r *RadioBox) AddItem(label string) {
	if len(r.items) < MaxRadioItems {
		r.items = append(r.items, label)
	}
}

// NumItems returns the number of items.
func (r *RadioBox) NumItems() int { return len(r.items) }

// Item returns the label of item i, or the empty string if there is no
// such item.
func (r *RadioBox) Item(i int) string {
	if i < 0 || i >= len(r.items) {
		return ""
	}
	return r.items[i]
}

// CurItem returns the index of the selected item, or -1.
func (r *RadioBox) CurItem() int { return r.cur }

// SetCurItem selects item i. The index is clamped to the range -1, ...,
// NumItems()-1, where -1 means that no item is selected.
func (r *RadioBox) SetCurItem(i int) {
	r.cur = max(-1, min(i, len(r.items)-1))
}

// dy returns the vertical distance between items.
func (r *RadioBox) dy() float64 {
	return 2 * r.textHeight
}

// itemCenter returns the centre of the circle of item i.
func (r *RadioBox) itemCenter(i int) (float64, float64) {
	dy := r.dy()
	return r.xs1 + dy/1.3, r.ys1 + dy*float64(i) + dy/1.3
}

// NumPaths implements the [Shape] interface.
func (r *RadioBox) NumPaths() int { return radioBoxNumPaths }

// Rewind implements the [vertex.Source] interface.
func (r *RadioBox) Rewind(pathID int) {
	r.path = pathID
	r.item = 0
	r.polys.clear()
	x1, y1, x2, y2 := r.Rect()

	switch pathID {
	case RadioBoxBackground:
		e := r.borderExtra
		r.polys.rect(x1-e, y1-e, x2+e, y2+e)
	case RadioBoxBorder:
		r.polys.frame(x1, y1, x2, y2, r.borderWidth)
	case RadioBoxText, RadioBoxInactive:
		r.startItem()
	case RadioBoxActive:
		if r.cur >= 0 {
			cx, cy := r.itemCenter(r.cur)
			rad := r.textHeight / 2
			r.ellipse.Init(cx, cy, rad, rad, radioCircleSteps, false)
		} else {
			r.ellipse = vertex.Ellipse{}
		}
	default:
		r.path = -1
	}
}

// startItem prepares the text or circle of item r.item.
func (r *RadioBox) startItem() {
	if r.item >= len(r.items) {
		return
	}
	switch r.path {
	case RadioBoxText:
		dy := r.dy()
		r.text.Text = r.items[r.item]
		r.text.X = r.xs1 + 1.5*dy
		r.text.Y = r.ys1 + dy*float64(r.item) + dy/2
		r.text.Height = r.textHeight
		r.text.Width = r.textWidth
		r.text.Rewind(0)
	case RadioBoxInactive:
		cx, cy := r.itemCenter(r.item)
		rad := r.textHeight / 1.5
		r.ellipse.Init(cx, cy, rad, rad, radioCircleSteps, false)
		r.stroke.Width = r.textThickness
		r.stroke.Rewind(0)
	}
}

// Vertex implements the [vertex.Source] interface.
func (r *RadioBox) Vertex() (vertex.Command, float64, float64) {
	var cmd vertex.Command
	var x, y float64

	switch r.path {
	case RadioBoxBackground, RadioBoxBorder:
		cmd, x, y = r.polys.vertex()

	case RadioBoxText, RadioBoxInactive:
		for r.item < len(r.items) {
			if r.path == RadioBoxText {
				cmd, x, y = r.text.Vertex()
			} else {
				cmd, x, y = r.stroke.Vertex()
			}
			if !cmd.IsStop() {
				break
			}
			r.item++
			r.startItem()
		}

	case RadioBoxActive:
		cmd, x, y = r.ellipse.Vertex()
	}

	if cmd.IsVertex() {
		x, y = r.TransformXY(x, y)
	}
	return cmd, x, y
}

// OnMouseButtonDown selects the first item whose circle contains (x, y).
func (r *RadioBox) OnMouseButtonDown(x, y float64) bool {
	x, y = r.InverseTransformXY(x, y)
	for i := range r.items {
		cx, cy := r.itemCenter(i)
		if math.Hypot(x-cx, y-cy) <= r.textHeight/1.5 {
			r.cur = i
			return true
		}
	}
	return false
}

// OnMouseButtonUp implements the [InputHandler] interface.
func (r *RadioBox) OnMouseButtonUp(x, y float64) bool { return false }

// OnMouseMove implements the [InputHandler] interface.
func (r *RadioBox) OnMouseMove(x, y float64, buttonHeld bool) bool { return false }

// OnArrowKeys moves the selection. Up and right select the next item,
// down and left the previous one, wrapping around at the ends.
// Nothing happens if no item is selected.
func (r *RadioBox) OnArrowKeys(left, right, down, up bool) bool {
	n := len(r.items)
	if r.cur < 0 || n == 0 {
		return false
	}
	switch {
	case up || right:
		r.cur = (r.cur + 1) % n
		return true
	case down || left:
		r.cur = (r.cur - 1 + n) % n
		return true
	}
	return false
}
