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
package scene

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/ctrl"
)

const panel = `
width = 200
height = 120
flip_y = false
background = "#ffeedd"

[[control]]
kind = "checkbox"
rect = [10, 10]
label = "Outline"

[[control]]
kind = "slider"
rect = [10, 40, 112, 50]
label = "Gamma=%.2f"
min = 0
max = 2
value = 1

[[control]]
kind = "radio"
rect = [120, 10, 190, 70]
items = ["a", "b", "c"]
selected = 1

[[control]]
kind = "scale"
rect = [10, 60, 110, 68]
min = 0.2
max = 0.6

[[control]]
kind = "spline"
rect = [10, 75, 60, 115]
knots = 5

[[control]]
kind = "polygon"
points = [[150, 80], [190, 80], [190, 110]]
radius = 4

[[event]]
type = "down"
x = 15
y = 15

[[event]]
type = "up"
x = 15
y = 15

[[event]]
type = "down"
x = 61
y = 45

[[event]]
type = "move"
x = 86.5
y = 45
buttons = 1

[[event]]
type = "up"
x = 86.5
y = 45

[[event]]
type = "key"
keys = ["right"]
`

func TestLoad(t *testing.T) {
	s, err := Load(strings.NewReader(panel))
	require.NoError(t, err)

	assert.Equal(t, 200, s.Width)
	assert.Equal(t, 120, s.Height)
	assert.False(t, s.FlipY)
	require.Len(t, s.Controls, 6)
	assert.Equal(t, "slider", s.Controls[1].Kind)
	assert.Equal(t, []float64{10, 40, 112, 50}, s.Controls[1].Rect)
	assert.Equal(t, [][2]float64{{150, 80}, {190, 80}, {190, 110}}, s.Controls[5].Points)
	require.Len(t, s.Events, 6)
	assert.Equal(t, []string{"right"}, s.Events[5].Keys)
	assert.Nil(t, s.Matrix())

	bg, err := s.BackgroundColor()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xee, B: 0xdd, A: 0xff}, bg)
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 400, s.Width)
	assert.Equal(t, 300, s.Height)
	assert.True(t, s.FlipY)
	assert.Empty(t, s.Controls)
}

func TestLoadErrors(t *testing.T) {
	cases := []string{
		"colour = 3\n",
		"width = \"wide\"\n",
		"width = -1\n",
		"transform = [1, 2, 3]\n",
		"[[control]]\nkind = \"checkbox\"\nsize = 3\n",
	}
	for _, in := range cases {
		_, err := Load(strings.NewReader(in))
		assert.Error(t, err, "input %q", in)
	}

	_, err := Load(strings.NewReader("transform = [1, 2, 3]\n"))
	assert.ErrorIs(t, err, ErrBadGeometry)
}

func TestLoadFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "panel.toml")
	require.NoError(t, os.WriteFile(fname, []byte(panel), 0o644))

	s, err := LoadFile(fname)
	require.NoError(t, err)
	assert.Len(t, s.Controls, 6)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestBuildAndPlay(t *testing.T) {
	s, err := Load(strings.NewReader(panel))
	require.NoError(t, err)

	c, err := s.Build()
	require.NoError(t, err)
	require.Equal(t, 6, c.Len())

	sl := c.At(1).(*ctrl.Slider)
	assert.InDelta(t, 1.0, sl.Value(), 1e-12)
	rb := c.At(2).(*ctrl.RadioBox)
	assert.Equal(t, 1, rb.CurItem())
	sb := c.At(3).(*ctrl.ScaleBar)
	assert.InDelta(t, 0.2, sb.Value1(), 1e-12)
	assert.InDelta(t, 0.6, sb.Value2(), 1e-12)
	sp := c.At(4).(*ctrl.SplineEditor)
	assert.Equal(t, 5, sp.NumPoints())
	pg := c.At(5).(*ctrl.Polygon)
	x, y := pg.Point(2)
	assert.Equal(t, 190.0, x)
	assert.Equal(t, 110.0, y)

	redraws, err := s.Play(c)
	require.NoError(t, err)
	assert.Equal(t, 5, redraws)

	cb := c.At(0).(*ctrl.CheckBox)
	assert.True(t, cb.Status())
	assert.Equal(t, 1, c.Focused())
	assert.InDelta(t, 1.52, sl.Value(), 1e-9)
}

func TestBuildSplinePoints(t *testing.T) {
	in := `
[[control]]
kind = "spline"
rect = [0, 0, 100, 100]
knots = 6
points = [[0, 0], [0.5, 0.2], [0.6, 0.4], [0.7, 0.6], [0.9, 0.9], [1, 1]]
`
	s, err := Load(strings.NewReader(in))
	require.NoError(t, err)
	c, err := s.Build()
	require.NoError(t, err)

	sp := c.At(0).(*ctrl.SplineEditor)
	for i, want := range s.Controls[0].Points {
		x, y := sp.Point(i)
		assert.InDelta(t, want[0], x, 1e-12, "knot %d", i)
		assert.InDelta(t, want[1], y, 1e-12, "knot %d", i)
	}
}

func TestBuildTransform(t *testing.T) {
	in := "flip_y = false\ntransform = [2, 0, 0, 2, 0, 0]\n" +
		"[[control]]\nkind = \"checkbox\"\nrect = [10, 10]\n"
	s, err := Load(strings.NewReader(in))
	require.NoError(t, err)
	c, err := s.Build()
	require.NoError(t, err)

	assert.False(t, c.InRect(15, 15))
	assert.True(t, c.InRect(30, 30))
}

func TestBuildErrors(t *testing.T) {
	type testCase struct {
		in   string
		want error
	}
	cases := []testCase{
		{"[[control]]\nkind = \"knob\"\n", ErrUnknownKind},
		{"[[control]]\nkind = \"checkbox\"\nrect = [1, 2, 3]\n", ErrBadGeometry},
		{"[[control]]\nkind = \"slider\"\nrect = [1, 2]\n", ErrBadGeometry},
		{"[[control]]\nkind = \"polygon\"\npoints = [[1, 2]]\n", ErrBadGeometry},
	}
	for _, tc := range cases {
		s, err := Load(strings.NewReader(tc.in))
		require.NoError(t, err)
		_, err = s.Build()
		assert.ErrorIs(t, err, tc.want, "input %q", tc.in)
	}

	s, err := Load(strings.NewReader("[[control]]\nkind = \"knob\"\n"))
	require.NoError(t, err)
	_, err = s.Build()
	assert.EqualError(t, err, `scene: control 0: "knob": unknown control kind`)
}

func TestPlayErrors(t *testing.T) {
	for _, in := range []string{
		"[[event]]\ntype = \"click\"\n",
		"[[event]]\ntype = \"key\"\nkeys = [\"home\"]\n",
	} {
		s, err := Load(strings.NewReader(in))
		require.NoError(t, err)
		_, err = s.Play(ctrl.NewContainer())
		assert.Error(t, err, "input %q", in)
	}

	s, err := Load(strings.NewReader("[[event]]\ntype = \"click\"\n"))
	require.NoError(t, err)
	_, err = s.Play(ctrl.NewContainer())
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestParseColor(t *testing.T) {
	type testCase struct {
		in   string
		want color.Color
	}
	cases := []testCase{
		{"#000", color.NRGBA{A: 255}},
		{"#f80", color.NRGBA{R: 0xff, G: 0x88, A: 0xff}},
		{"#102030", color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}},
		{"#10203040", color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if assert.NoError(t, err, tc.in) {
			assert.Equal(t, tc.want, got, tc.in)
		}
	}

	for _, in := range []string{"", "red", "#12", "#12345", "#gggggg", "102030"} {
		_, err := ParseColor(in)
		assert.Error(t, err, in)
	}
}
