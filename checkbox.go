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

	"seehuhn.de/go/ctrl/text"
	"seehuhn.de/go/ctrl/vertex"
)

// Sub-paths of a [CheckBox].
const (
	CheckBoxBorder = iota
	CheckBoxLabel
	CheckBoxMark
	checkBoxNumPaths
)

// checkBoxSize is the side length of the box.
const checkBoxSize = 13.5

// CheckBox is a square box with a label, which can be switched on and off.
type CheckBox struct {
	Base
	palette

	label         string
	textHeight    float64
	textWidth     float64
	textThickness float64
	status        bool

	// iteration state
	path  int
	polys polyGen
	text  text.Outline
}

// NewCheckBox returns a check box with its lower left corner at (x, y).
func NewCheckBox(x, y float64, label string, flipY bool) *CheckBox {
	c := &CheckBox{
		Base:          NewBase(x, y, x+checkBoxSize, y+checkBoxSize, flipY),
		palette:       make(palette, checkBoxNumPaths),
		label:         label,
		textHeight:    9,
		textThickness: 1.5,
		path:          -1,
	}
	c.palette[CheckBoxBorder] = color.Black
	c.palette[CheckBoxLabel] = color.Black
	c.palette[CheckBoxMark] = rgba(0.4, 0, 0, 1)
	return c
}

// Status reports whether the box is checked.
func (c *CheckBox) Status() bool { return c.status }

// SetStatus checks or unchecks the box.
func (c *CheckBox) SetStatus(on bool) { c.status = on }

// Label returns the label text.
func (c *CheckBox) Label() string { return c.label }

// SetLabel replaces the label text.
func (c *CheckBox) SetLabel(label string) { c.label = label }

// SetTextSize sets the height of capital letters in the label.
// If w is positive, glyphs are stretched to width w.
func (c *CheckBox) SetTextSize(h, w float64) {
	c.textHeight = max(h, 0)
	c.textWidth = max(w, 0)
}

// SetTextThickness sets the line thickness of the border and the mark.
func (c *CheckBox) SetTextThickness(t float64) {
	c.textThickness = clamp(t, 0, checkBoxSize/4)
}

// NumPaths implements the [Shape] interface.
func (c *CheckBox) NumPaths() int { return checkBoxNumPaths }

// Rewind implements the [vertex.Source] interface.
func (c *CheckBox) Rewind(pathID int) {
	c.path = pathID
	c.polys.clear()
	x1, y1, x2, y2 := c.Rect()
	t := c.textThickness

	switch pathID {
	case CheckBoxBorder:
		c.polys.frame(x1, y1, x2, y2, t)

	case CheckBoxLabel:
		h := c.textHeight
		c.text.Text = c.label
		c.text.X = x1 + 2*h
		c.text.Y = y1 + h/5
		c.text.Height = h
		c.text.Width = c.textWidth
		c.text.Rewind(0)

	case CheckBoxMark:
		d2 := (y2 - y1) / 2
		t15 := 1.5 * t
		c.polys.vx = [8]float64{x1 + t15, x1 + d2, x2 - t15, x1 + d2 + t15, x2 - t15, x1 + d2, x1 + t15, x1 + d2 - t15}
		c.polys.vy = [8]float64{y1, y1 + d2 - t15, y1, y1 + d2, y2, y1 + d2 + t15, y2, y1 + d2}
		c.polys.set(1, 8)

	default:
		c.path = -1
	}
}

// Vertex implements the [vertex.Source] interface.
func (c *CheckBox) Vertex() (vertex.Command, float64, float64) {
	var cmd vertex.Command
	var x, y float64

	switch c.path {
	case CheckBoxBorder:
		cmd, x, y = c.polys.vertex()
	case CheckBoxLabel:
		cmd, x, y = c.text.Vertex()
	case CheckBoxMark:
		if c.status {
			cmd, x, y = c.polys.vertex()
		}
	}

	if cmd.IsVertex() {
		x, y = c.TransformXY(x, y)
	}
	return cmd, x, y
}

// OnMouseButtonDown toggles the box if (x, y) is inside the box.
func (c *CheckBox) OnMouseButtonDown(x, y float64) bool {
	if !c.InRect(x, y) {
		return false
	}
	c.status = !c.status
	return true
}

// OnMouseButtonUp implements the [InputHandler] interface.
func (c *CheckBox) OnMouseButtonUp(x, y float64) bool { return false }

// OnMouseMove implements the [InputHandler] interface.
func (c *CheckBox) OnMouseMove(x, y float64, buttonHeld bool) bool { return false }

// OnArrowKeys implements the [InputHandler] interface.
func (c *CheckBox) OnArrowKeys(left, right, down, up bool) bool { return false }
