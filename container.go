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
	"log/slog"

	"seehuhn.de/go/ctrl/raster"
)

// Container dispatches input events to an ordered list of controls.
//
// A control which consumes a mouse button press becomes engaged: it
// receives all following mouse moves and the button release, even when
// the pointer leaves the control. The engaged control also becomes the
// focused control, which receives the arrow keys.
//
// Event handlers of the controls must not call back into the container.
// Such calls are refused.
type Container struct {
	controls []Control
	engaged  int
	focused  int
	busy     bool
}

// NewContainer returns a container holding the given controls.
func NewContainer(cs ...Control) *Container {
	c := &Container{engaged: -1, focused: -1}
	for _, ctl := range cs {
		c.Add(ctl)
	}
	return c
}

// Add appends a control. Nil controls are ignored.
func (c *Container) Add(ctl Control) {
	if ctl == nil {
		return
	}
	c.controls = append(c.controls, ctl)
}

// Len returns the number of controls.
func (c *Container) Len() int { return len(c.controls) }

// At returns control i.
func (c *Container) At(i int) Control { return c.controls[i] }

// Engaged returns the index of the engaged control, or -1.
func (c *Container) Engaged() int { return c.engaged }

// Focused returns the index of the focused control, or -1.
func (c *Container) Focused() int { return c.focused }

// enter marks the start of an event dispatch.
// It returns false if a dispatch is already in progress.
func (c *Container) enter(event string) bool {
	if c.busy {
		Logger().Warn("refusing re-entrant dispatch", slog.String("event", event))
		return false
	}
	c.busy = true
	return true
}

func (c *Container) leave() {
	c.busy = false
}

// InRect reports whether (x, y) lies inside any of the controls.
func (c *Container) InRect(x, y float64) bool {
	for _, ctl := range c.controls {
		if ctl.InRect(x, y) {
			return true
		}
	}
	return false
}

// OnMouseButtonDown passes the event to the first control which contains
// (x, y) and consumes the event. This control becomes engaged and focused.
func (c *Container) OnMouseButtonDown(x, y float64) bool {
	if !c.enter("down") {
		return false
	}
	defer c.leave()

	c.engaged = -1
	for i, ctl := range c.controls {
		if ctl.InRect(x, y) && ctl.OnMouseButtonDown(x, y) {
			c.engaged = i
			c.focused = i
			Logger().Debug("control engaged", slog.Int("index", i),
				slog.Float64("x", x), slog.Float64("y", y))
			return true
		}
	}
	return false
}

// OnMouseMove passes the event to the engaged control. If no control is
// engaged, the event goes to the first control which contains (x, y) and
// consumes it. A move without a pressed button ends the engagement.
func (c *Container) OnMouseMove(x, y float64, buttonHeld bool) bool {
	if !c.enter("move") {
		return false
	}
	defer c.leave()

	if i := c.engaged; i >= 0 {
		res := c.controls[i].OnMouseMove(x, y, buttonHeld)
		if !buttonHeld {
			c.release()
		}
		return res
	}
	for _, ctl := range c.controls {
		if ctl.InRect(x, y) && ctl.OnMouseMove(x, y, buttonHeld) {
			return true
		}
	}
	return false
}

// OnMouseButtonUp passes the event to the engaged control, and ends the
// engagement.
func (c *Container) OnMouseButtonUp(x, y float64) bool {
	if !c.enter("up") {
		return false
	}
	defer c.leave()

	i := c.engaged
	if i < 0 {
		return false
	}
	res := c.controls[i].OnMouseButtonUp(x, y)
	c.release()
	return res
}

func (c *Container) release() {
	Logger().Debug("control released", slog.Int("index", c.engaged))
	c.engaged = -1
}

// OnArrowKeys passes the event to the focused control.
func (c *Container) OnArrowKeys(left, right, down, up bool) bool {
	if !c.enter("keys") {
		return false
	}
	defer c.leave()

	if c.focused < 0 {
		return false
	}
	return c.controls[c.focused].OnArrowKeys(left, right, down, up)
}

// SetCurrent moves the focus to the first control containing (x, y), or
// clears the focus if there is no such control. It reports whether the
// focus changed.
func (c *Container) SetCurrent(x, y float64) bool {
	next := -1
	for i, ctl := range c.controls {
		if ctl.InRect(x, y) {
			next = i
			break
		}
	}
	if next == c.focused {
		return false
	}
	c.focused = next
	return true
}

// Render draws all controls, in order.
func (c *Container) Render(ras Rasterizer, sl *raster.Scanline, ren Renderer) {
	RenderControls(ras, sl, ren, c.controls...)
}
