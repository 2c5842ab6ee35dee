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
// Package scene reads descriptions of control panels from TOML files.
//
// A scene lists the controls of a panel together with a script of input
// events. The demo program builds the controls, replays the events and
// renders the final state.
package scene

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/ctrl"
)

// Errors returned when a scene is invalid.
var (
	ErrUnknownKind  = errors.New("unknown control kind")
	ErrUnknownEvent = errors.New("unknown event type")
	ErrBadGeometry  = errors.New("invalid geometry")
)

// Scene is the content of a scene file.
type Scene struct {
	Width      int       `toml:"width"`
	Height     int       `toml:"height"`
	FlipY      bool      `toml:"flip_y"`
	Background string    `toml:"background"`
	Transform  []float64 `toml:"transform"`
	Controls   []Control `toml:"control"`
	Events     []Event   `toml:"event"`
}

// Control describes one control. Which fields are used depends on Kind.
type Control struct {
	Kind string `toml:"kind"`

	// Rect is (x, y) for check boxes, and (x1, y1, x2, y2) for all
	// other controls except polygons.
	Rect []float64 `toml:"rect"`

	Label    string       `toml:"label"`
	Checked  bool         `toml:"checked"`
	Items    []string     `toml:"items"`
	Selected int          `toml:"selected"`
	Value    float64      `toml:"value"`
	Min      float64      `toml:"min"`
	Max      float64      `toml:"max"`
	Steps    int          `toml:"steps"`
	Points   [][2]float64 `toml:"points"`
	Radius   float64      `toml:"radius"`
	Knots    int          `toml:"knots"`
}

// Event is one scripted input event.
type Event struct {
	Type    string   `toml:"type"` // down, up, move, key or hover
	X       float64  `toml:"x"`
	Y       float64  `toml:"y"`
	Buttons int      `toml:"buttons"` // ctrl.InputFlags, for move events
	Keys    []string `toml:"keys"`    // left, right, down, up
}

// Load reads a scene from r. Unknown keys are an error.
func Load(r io.Reader) (*Scene, error) {
	s := &Scene{
		Width:      400,
		Height:     300,
		FlipY:      true,
		Background: "#ffffff",
	}
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("scene: image size %dx%d: %w", s.Width, s.Height, ErrBadGeometry)
	}
	if n := len(s.Transform); n != 0 && n != 6 {
		return nil, fmt.Errorf("scene: transform has %d entries, want 6: %w", n, ErrBadGeometry)
	}
	return s, nil
}

// LoadFile reads a scene from the named file.
func LoadFile(fname string) (*Scene, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer fd.Close()
	return Load(fd)
}

// BackgroundColor returns the background color of the scene.
func (s *Scene) BackgroundColor() (color.Color, error) {
	return ParseColor(s.Background)
}

// Matrix returns the transformation for the controls, or nil if the scene
// has none.
func (s *Scene) Matrix() *matrix.Matrix {
	if len(s.Transform) != 6 {
		return nil
	}
	var m matrix.Matrix
	copy(m[:], s.Transform)
	return &m
}

// Build creates the controls of the scene.
// The controls share the matrix returned by [Scene.Matrix].
func (s *Scene) Build() (*ctrl.Container, error) {
	c := ctrl.NewContainer()
	m := s.Matrix()
	for i, desc := range s.Controls {
		ctl, err := desc.build(s.FlipY)
		if err != nil {
			return nil, fmt.Errorf("scene: control %d: %w", i, err)
		}
		if m != nil {
			ctl.(interface{ SetTransform(*matrix.Matrix) }).SetTransform(m)
		}
		c.Add(ctl)
	}
	return c, nil
}

func (d *Control) rect(n int) ([]float64, error) {
	if len(d.Rect) != n {
		return nil, fmt.Errorf("%s: rect has %d entries, want %d: %w", d.Kind, len(d.Rect), n, ErrBadGeometry)
	}
	return d.Rect, nil
}

func (d *Control) build(flipY bool) (ctrl.Control, error) {
	switch d.Kind {
	case "checkbox":
		r, err := d.rect(2)
		if err != nil {
			return nil, err
		}
		cb := ctrl.NewCheckBox(r[0], r[1], d.Label, flipY)
		cb.SetStatus(d.Checked)
		return cb, nil

	case "radio":
		r, err := d.rect(4)
		if err != nil {
			return nil, err
		}
		rb := ctrl.NewRadioBox(r[0], r[1], r[2], r[3], flipY)
		for _, item := range d.Items {
			rb.AddItem(item)
		}
		rb.SetCurItem(d.Selected)
		return rb, nil

	case "slider":
		r, err := d.rect(4)
		if err != nil {
			return nil, err
		}
		sl := ctrl.NewSlider(r[0], r[1], r[2], r[3], flipY)
		if d.Min != d.Max {
			sl.SetRange(d.Min, d.Max)
		}
		sl.SetNumSteps(d.Steps)
		sl.SetLabel(d.Label)
		sl.SetValue(d.Value)
		return sl, nil

	case "scale":
		r, err := d.rect(4)
		if err != nil {
			return nil, err
		}
		sb := ctrl.NewScaleBar(r[0], r[1], r[2], r[3], flipY)
		if d.Min != 0 || d.Max != 0 {
			sb.SetValue2(d.Max)
			sb.SetValue1(d.Min)
		}
		return sb, nil

	case "spline":
		r, err := d.rect(4)
		if err != nil {
			return nil, err
		}
		n := d.Knots
		if n == 0 {
			n = 6
		}
		sp := ctrl.NewSplineEditor(r[0], r[1], r[2], r[3], n, flipY)
		if len(d.Points) > 0 {
			sp.SetPoints(d.Points)
		}
		return sp, nil

	case "polygon":
		if len(d.Points) < 2 {
			return nil, fmt.Errorf("polygon: %d points: %w", len(d.Points), ErrBadGeometry)
		}
		radius := d.Radius
		if radius <= 0 {
			radius = 5
		}
		pg := ctrl.NewPolygon(len(d.Points), radius)
		for i, p := range d.Points {
			pg.SetPoint(i, p[0], p[1])
		}
		return pg, nil
	}
	return nil, fmt.Errorf("%q: %w", d.Kind, ErrUnknownKind)
}

// Play sends the scripted events to c, in order. It returns the number of
// events which asked for a redraw.
func (s *Scene) Play(c *ctrl.Container) (int, error) {
	redraws := 0
	for i, ev := range s.Events {
		var redraw bool
		switch ev.Type {
		case "down":
			redraw = c.OnMouseButtonDown(ev.X, ev.Y)
		case "up":
			redraw = c.OnMouseButtonUp(ev.X, ev.Y)
		case "move":
			redraw = c.OnMouseMove(ev.X, ev.Y, ctrl.InputFlags(ev.Buttons).ButtonHeld())
		case "hover":
			redraw = c.SetCurrent(ev.X, ev.Y)
		case "key":
			var left, right, down, up bool
			for _, k := range ev.Keys {
				switch strings.ToLower(k) {
				case "left":
					left = true
				case "right":
					right = true
				case "down":
					down = true
				case "up":
					up = true
				default:
					return redraws, fmt.Errorf("scene: event %d: unknown key %q", i, k)
				}
			}
			redraw = c.OnArrowKeys(left, right, down, up)
		default:
			return redraws, fmt.Errorf("scene: event %d (%s): %w", i, ev.Type, ErrUnknownEvent)
		}
		ctrl.Logger().Debug("scene event", slog.Int("index", i),
			slog.String("type", ev.Type), slog.Bool("redraw", redraw))
		if redraw {
			redraws++
		}
	}
	return redraws, nil
}

// ParseColor parses colors of the form "#rgb", "#rrggbb" and "#rrggbbaa".
func ParseColor(s string) (color.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return nil, fmt.Errorf("scene: invalid color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("scene: invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("scene: invalid color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
